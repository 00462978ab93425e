package schema

import (
	"github.com/minio/highwayhash"
)

var hashKey = []byte("wire-schema-fingerprint-key-0001")

// Hash fingerprints raw schema file content. The loader uses it to recognise
// the same file reached through more than one search directory.
func Hash(content []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(content)
	return h.Sum64(), err
}
