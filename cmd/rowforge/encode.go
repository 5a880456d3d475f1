package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/rowforge/pkg/columnar"
	"github.com/ajitpratap0/rowforge/pkg/compression"
	"github.com/ajitpratap0/rowforge/pkg/config"
	"github.com/ajitpratap0/rowforge/pkg/jsonx"
	"github.com/ajitpratap0/rowforge/pkg/logger"
	"github.com/ajitpratap0/rowforge/pkg/metrics"
	"github.com/ajitpratap0/rowforge/pkg/types"
	"github.com/ajitpratap0/rowforge/pkg/unsaferow"
)

// Output framing: a 4-byte magic, then per row a little-endian uint32
// length followed by the UnsafeRow payload. Null rows carry the sentinel
// length nullRowLen and no payload. The whole stream may be wrapped in a
// compression frame.
const (
	outputMagic = "URF1"
	nullRowLen  = 0xFFFFFFFF
)

type encodeFlags struct {
	schemaPath  string
	inputPath   string
	outputPath  string
	compression string
	logLevel    string
}

func newEncodeCommand() *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode NDJSON records to UnsafeRow",
		Long: `Encode reads newline-delimited JSON records, builds typed columns against
the schema, and writes one UnsafeRow per record to the output file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logger.Config{Level: flags.logLevel, Encoding: "json"}); err != nil {
				return err
			}
			return runEncode(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.schemaPath, "schema", "s", "", "schema YAML file (required)")
	cmd.Flags().StringVarP(&flags.inputPath, "input", "i", "-", "NDJSON input file, - for stdin")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&flags.compression, "compression", "c", "none",
		"output compression: "+compressionFlagValues())
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runEncode(flags *encodeFlags) error {
	log := logger.Get()

	s, rowType, err := config.LoadSchema(flags.schemaPath)
	if err != nil {
		return err
	}
	log.Info("schema loaded",
		zap.String("schema", s.Name),
		zap.String("type", rowType.String()))

	in := os.Stdin
	if flags.inputPath != "-" {
		in, err = os.Open(flags.inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer in.Close() // Ignore close error
	}

	col, rows, err := buildColumn(rowType, in)
	if err != nil {
		return err
	}
	log.Info("columns built", zap.Int("rows", rows))

	enc, err := unsaferow.NewEncoder(rowType, &unsaferow.EncoderConfig{
		Logger:  log,
		Metrics: metrics.NewCollector(s.Name, prometheus.DefaultRegisterer),
	})
	if err != nil {
		return err
	}
	encoded, err := enc.EncodeBatch(col)
	if err != nil {
		return err
	}

	out := os.Stdout
	if flags.outputPath != "-" {
		out, err = os.Create(flags.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close() // Ignore close error
	}

	written, err := writeFrames(out, compression.Algorithm(flags.compression), encoded)
	if err != nil {
		return err
	}
	for _, buf := range encoded {
		enc.Release(buf)
	}

	log.Info("encode complete",
		zap.Int("rows", rows),
		zap.Int64("bytes", written))
	return nil
}

// buildColumn decodes NDJSON records and assembles them into a row column.
func buildColumn(rowType *types.Type, in io.Reader) (columnar.Column, int, error) {
	builder := columnar.NewBuilder(rowType)
	dec := jsonx.NewDecoder(in)
	line := 0
	for {
		var record map[string]any
		if err := dec.Decode(&record); err != nil {
			if err == io.EOF {
				break
			}
			return nil, 0, fmt.Errorf("record %d: %w", line+1, err)
		}
		if err := builder.Append(record); err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", line+1, err)
		}
		line++
	}
	return builder.Build(), line, nil
}

// writeFrames writes the framed, optionally compressed output stream.
func writeFrames(w io.Writer, algo compression.Algorithm, rows [][]byte) (int64, error) {
	comp, err := compression.NewCompressor(algo)
	if err != nil {
		return 0, err
	}

	pr, pw := io.Pipe()
	done := make(chan error, 1)
	counter := &countingWriter{w: w}
	go func() {
		done <- comp.CompressStream(counter, pr)
	}()

	writeErr := func() error {
		if _, err := pw.Write([]byte(outputMagic)); err != nil {
			return err
		}
		var lenBuf [4]byte
		for _, row := range rows {
			if row == nil {
				binary.LittleEndian.PutUint32(lenBuf[:], nullRowLen)
				if _, err := pw.Write(lenBuf[:]); err != nil {
					return err
				}
				continue
			}
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(row)))
			if _, err := pw.Write(lenBuf[:]); err != nil {
				return err
			}
			if _, err := pw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}()
	_ = pw.CloseWithError(writeErr)

	if err := <-done; err != nil {
		return counter.n, err
	}
	return counter.n, writeErr
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
