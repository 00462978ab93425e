// Command wire links .proto schema definitions and prints the resulting
// schema model as YAML, optionally pruned to a set of root types.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suparit/wire"
)

type linkFlags struct {
	directories []string
	roots       []string
	output      string
	verbose     bool
}

func newRootCommand() *cobra.Command {
	flags := &linkFlags{}
	cmd := &cobra.Command{
		Use:          "wire [proto...]",
		Short:        "Link proto schema definitions into a fully-qualified schema model",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			compiler := wire.NewCompiler().WithLogger(log)
			for _, directory := range flags.directories {
				compiler.AddDirectory(directory)
			}
			for _, proto := range args {
				compiler.AddProto(proto)
			}
			for _, root := range flags.roots {
				compiler.AddRoot(root)
			}

			files, err := compiler.Compile(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.output != "" {
				f, err := os.Create(flags.output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return writeSchema(out, files)
		},
	}
	cmd.Flags().StringArrayVarP(&flags.directories, "directory", "d", nil, "directory to resolve schema files and dependencies from")
	cmd.Flags().StringArrayVarP(&flags.roots, "root", "r", nil, "fully-qualified root type to keep, with its transitive dependencies")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the linked schema to a file instead of stdout")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
