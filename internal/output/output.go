package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/chrisdamba/foodinsights/internal/cloudwriter"
	"github.com/chrisdamba/foodinsights/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// OutputDestination receives serialized report messages keyed by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Determine picks the destination from configuration: Kafka first, then a
// file format under the output path, console as the fallback.
func Determine(config *models.Config) (OutputDestination, error) {
	if config.KafkaEnabled {
		return NewSaramaProducer(config)
	}
	if config.OutputPath != "" {
		switch config.OutputFormat {
		case "parquet":
			return NewParquetOutput(config)
		case "json":
			return NewJSONOutput(config.OutputPath, config.OutputFolder), nil
		case "csv":
			return NewCSVOutput(config.OutputPath, config.OutputFolder), nil
		case "console", "":
			return &ConsoleOutput{}, nil
		default:
			return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
		}
	}
	return &ConsoleOutput{}, nil
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, string(msg))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends newline-delimited JSON under <basePath>/<folder>/<topic>.json.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		dir := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(dir, topic+".json"))
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// CSVOutput writes one CSV per topic with headers derived from the first
// message's keys, sorted for stability.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var record map[string]interface{}
	if err := json.Unmarshal(msg, &record); err != nil {
		return err
	}

	csvWriter, ok := c.files[topic]
	if !ok {
		dir := filepath.Join(c.basePath, c.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(dir, topic+".csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[topic] = csvWriter

		headers := make([]string, 0, len(record))
		for key := range record {
			headers = append(headers, key)
		}
		sort.Strings(headers)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[topic] = headers
	}

	row := make([]string, len(c.headers[topic]))
	for i, header := range c.headers[topic] {
		if value, ok := record[header]; ok {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := csvWriter.Write(row); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (c *CSVOutput) Close() error {
	for _, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
	}
	return nil
}

// ParquetOutput writes columnar row files per topic, locally or to cloud
// storage. Topics without a parquet schema (the full report) fall back to a
// JSON sidecar file.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	sidecar            *JSONOutput
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
		sidecar:  NewJSONOutput(config.OutputPath, config.OutputFolder),
	}

	if config.OutputDestination != "local" {
		factory, err := cloudwriter.NewFactory(config.CloudStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	if _, err := GetSchema(topic); err != nil {
		// report blob has no row schema; keep it readable next to the rows
		return p.sidecar.WriteMessage(topic, msg)
	}

	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.newWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer: %w", err)
		}
	}

	var record map[string]interface{}
	if err := json.Unmarshal(msg, &record); err != nil {
		return err
	}
	if err := pw.Write(record); err != nil {
		return fmt.Errorf("failed to write row to %s: %w", topic, err)
	}
	return nil
}

func (p *ParquetOutput) newWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error

	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, "data.parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = cloudwriter.NewParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(dir, topic+".parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = fmt.Errorf("failed to finalize writer for %s: %w", topic, err)
		}
		if f, ok := p.files[topic]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
			}
		}
	}
	if err := p.sidecar.Close(); err != nil {
		lastErr = err
	}
	return lastErr
}
