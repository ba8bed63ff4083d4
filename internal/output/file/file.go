package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/output"
	"github.com/crimson-sun/castag/internal/report"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// WithAppend appends to an existing file instead of truncating it.
func WithAppend() Option {
	return func(o *Output) { o.flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND }
}

// Output writes NDJSON prediction records to a file with buffered I/O.
type Output struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	path    string
	tax     *taxonomy.Taxonomy
	bufSize int
	flags   int
}

// New creates a file output that writes NDJSON to the given path.
func New(path string, tax *taxonomy.Taxonomy, opts ...Option) (*Output, error) {
	o := &Output{
		path:    path,
		tax:     tax,
		bufSize: defaultBufSize,
		flags:   os.O_CREATE | os.O_WRONLY | os.O_TRUNC,
	}
	for _, opt := range opts {
		opt(o)
	}
	f, err := os.OpenFile(o.path, o.flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write JSON-encodes the prediction and appends it as a line to the file.
func (o *Output) Write(_ context.Context, p model.Prediction) error {
	return o.writeLine(output.FormatPrediction(p, o.tax))
}

// Summarize appends the run summary as a final line.
func (o *Output) Summarize(_ context.Context, r *report.Report) error {
	return o.writeLine(output.FormatSummary(r))
}

func (o *Output) writeLine(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
