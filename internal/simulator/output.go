package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/cloudstore"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

type OutputDestination interface {
	Write(rec ConfirmationRecord) error
	Close() error
}

// ConsoleOutput writes one JSON document per line.
type ConsoleOutput struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{enc: json.NewEncoder(w)}
}

func (c *ConsoleOutput) Write(rec ConfirmationRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput writes JSON lines to a file or, through a CloudWriter, to an
// object store.
type JSONOutput struct {
	*ConsoleOutput
	closer io.Closer
}

func NewJSONOutput(path string) (*JSONOutput, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &JSONOutput{ConsoleOutput: NewConsoleOutput(f), closer: f}, nil
}

func NewCloudJSONOutput(w cloudstore.CloudWriter) *JSONOutput {
	return &JSONOutput{ConsoleOutput: NewConsoleOutput(w), closer: w}
}

func (j *JSONOutput) Close() error {
	return j.closer.Close()
}

type ParquetOutput struct {
	mu sync.Mutex
	pw *writer.ParquetWriter
	fw source.ParquetFile
}

func NewParquetOutput(path string) (*ParquetOutput, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return newParquetOutput(fw)
}

func NewCloudParquetOutput(w cloudstore.CloudWriter) (*ParquetOutput, error) {
	return newParquetOutput(NewCloudParquetFile(w))
}

func newParquetOutput(fw source.ParquetFile) (*ParquetOutput, error) {
	pw, err := writer.NewParquetWriter(fw, new(ConfirmationRecord), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	return &ParquetOutput{pw: pw, fw: fw}, nil
}

func (p *ParquetOutput) Write(rec ConfirmationRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.pw.Write(rec); err != nil {
		return fmt.Errorf("failed to write parquet record: %w", err)
	}
	return nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.pw.WriteStop(); err != nil {
		p.fw.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return p.fw.Close()
}

// CloudParquetFile adapts a write-only CloudWriter to source.ParquetFile.
// The object is uploaded when the file is closed.
type CloudParquetFile struct {
	cloudWriter cloudstore.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudstore.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(string) (source.ParquetFile, error)   { return c, nil }
func (c *CloudParquetFile) Create(string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek whence %d not supported for cloud storage", whence)
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

// NewOutput builds the destination named by cfg.OutputFormat. stdout backs
// the console format.
func NewOutput(ctx context.Context, cfg models.SimulateConfig, stdout io.Writer) (OutputDestination, error) {
	switch cfg.OutputFormat {
	case "", models.OutputFormatConsole:
		return NewConsoleOutput(stdout), nil
	case models.OutputFormatJSON:
		if cfg.OutputPath == "" {
			return nil, fmt.Errorf("simulate.output_path is required for %s output", cfg.OutputFormat)
		}
		return NewJSONOutput(cfg.OutputPath)
	case models.OutputFormatParquet:
		if cfg.S3.Bucket != "" {
			w, err := newS3Writer(ctx, cfg.S3)
			if err != nil {
				return nil, err
			}
			return NewCloudParquetOutput(w)
		}
		if cfg.OutputPath == "" {
			return nil, fmt.Errorf("simulate.output_path is required for %s output", cfg.OutputFormat)
		}
		return NewParquetOutput(cfg.OutputPath)
	case models.OutputFormatS3:
		w, err := newS3Writer(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewCloudJSONOutput(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

func newS3Writer(ctx context.Context, cfg models.S3ObjectConfig) (cloudstore.CloudWriter, error) {
	store, err := cloudstore.NewS3Store(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
	}
	return store.NewWriter(cfg.Bucket, cfg.Key)
}
