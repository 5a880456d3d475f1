package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/rowforge/pkg/compression"
	"github.com/ajitpratap0/rowforge/pkg/config"
	"github.com/ajitpratap0/rowforge/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "rowforge",
		Short: "Rowforge - columnar-to-UnsafeRow batch encoder",
		Long: `Rowforge converts columnar batches into the UnsafeRow binary row format
used by large-scale SQL engines for shuffle and broadcast. It reads NDJSON
records, assembles them into typed columns against a YAML schema, and emits
one self-contained UnsafeRow per record.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Rowforge v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Schema command to validate and print a schema file
	schemaCmd := &cobra.Command{
		Use:   "schema <file>",
		Short: "Validate a schema file and print its resolved row type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, rowType, err := config.LoadSchema(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("schema: %s\n", s.Name)
			fmt.Printf("type:   %s\n", rowType)
			return nil
		},
	}
	root.AddCommand(schemaCmd)

	root.AddCommand(newEncodeCommand())

	if err := root.Execute(); err != nil {
		logger.Error("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func compressionFlagValues() string {
	names := ""
	for i, a := range compression.Algorithms() {
		if i > 0 {
			names += ", "
		}
		names += string(a)
	}
	return names
}
