package parser

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Descriptor field numbers used as source-location path components, per
// descriptor.proto.
const (
	fileMessagesTag   int32 = 4
	fileEnumsTag      int32 = 5
	fileServicesTag   int32 = 6
	fileExtensionsTag int32 = 7
	messageFieldsTag  int32 = 2
	messageNestedTag  int32 = 3
	messageEnumsTag   int32 = 4
	enumValuesTag     int32 = 2
	serviceMethodsTag int32 = 2
)

// docIndex maps a declaration's source-location path to its leading comment.
type docIndex map[string]string

func newDocIndex(info *descriptorpb.SourceCodeInfo) docIndex {
	index := docIndex{}
	for _, location := range info.GetLocation() {
		comment := strings.TrimSpace(location.GetLeadingComments())
		if comment == "" {
			continue
		}
		index[pathKey(location.GetPath()...)] = comment
	}
	return index
}

func (d docIndex) leading(path ...int32) string {
	return d[pathKey(path...)]
}

func pathKey(path ...int32) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, ".")
}
