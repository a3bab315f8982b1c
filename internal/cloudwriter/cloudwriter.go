package cloudwriter

import (
	"fmt"
	"io"

	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/xitongsys/parquet-go/source"
)

// CloudWriter streams a single object to a storage provider. Bytes are
// buffered until Close, which performs the upload.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// NewFactory selects the provider from configuration. Only S3 is supported
// today; the switch leaves room for GCS and Azure.
func NewFactory(cfg models.CloudStorageConfig) (CloudWriterFactory, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3WriterFactory(cfg.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.Provider)
	}
}

// ParquetFile adapts a CloudWriter to the write-only subset of
// source.ParquetFile that the parquet writer needs.
type ParquetFile struct {
	cloudWriter CloudWriter
	offset      int64
}

func NewParquetFile(cloudWriter CloudWriter) *ParquetFile {
	return &ParquetFile{cloudWriter: cloudWriter}
}

func (p *ParquetFile) Open(name string) (source.ParquetFile, error) {
	// objects are write-once; there is nothing to open
	return p, nil
}

func (p *ParquetFile) Create(name string) (source.ParquetFile, error) {
	// the object is created implicitly on the first write
	return p, nil
}

func (p *ParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		p.offset = offset
	case io.SeekCurrent:
		p.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return p.offset, nil
}

func (p *ParquetFile) Read(b []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (p *ParquetFile) Write(b []byte) (n int, err error) {
	return p.cloudWriter.Write(b)
}

func (p *ParquetFile) Close() error {
	return p.cloudWriter.Close()
}
