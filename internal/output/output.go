package output

import (
	"context"
	"fmt"

	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/report"
)

// Output defines the interface for prediction destinations.
type Output interface {
	Write(ctx context.Context, p model.Prediction) error
	Close() error
}

// Summarizer is implemented by outputs that also render run-level results
// after all predictions have been written.
type Summarizer interface {
	Summarize(ctx context.Context, r *report.Report) error
}

// Encoding selects how predictions are rendered.
type Encoding string

const (
	Text Encoding = "text"
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// ParseEncoding validates an encoding name. The empty string means Text.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case "", Text:
		return Text, nil
	case JSON, YAML:
		return Encoding(s), nil
	default:
		return "", fmt.Errorf("output: unknown format %q (want text, json or yaml)", s)
	}
}

// WriteReport writes every prediction of r to out, then its summary when
// out supports one.
func WriteReport(ctx context.Context, out Output, r *report.Report) error {
	for _, p := range r.Predictions {
		if err := out.Write(ctx, p); err != nil {
			return err
		}
	}
	if s, ok := out.(Summarizer); ok {
		return s.Summarize(ctx, r)
	}
	return nil
}
