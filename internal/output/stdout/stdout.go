package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/output"
	"github.com/crimson-sun/castag/internal/report"
)

// Output renders predictions to a terminal or pipe.
type Output struct {
	w        io.Writer
	encoding output.Encoding
	tax      *taxonomy.Taxonomy

	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder

	category lipgloss.Style
	faint    lipgloss.Style
}

// New creates an Output writing to w in the given encoding. Colors are
// only emitted when w is a terminal.
func New(w io.Writer, enc output.Encoding, tax *taxonomy.Taxonomy) *Output {
	r := lipgloss.NewRenderer(w)
	o := &Output{
		w:        w,
		encoding: enc,
		tax:      tax,
		category: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		faint:    r.NewStyle().Faint(true),
	}
	switch enc {
	case output.JSON:
		o.jsonEnc = json.NewEncoder(w)
	case output.YAML:
		o.yamlEnc = yaml.NewEncoder(w)
		o.yamlEnc.SetIndent(2)
	}
	return o
}

func (o *Output) Write(_ context.Context, p model.Prediction) error {
	var err error
	switch o.encoding {
	case output.JSON:
		err = o.jsonEnc.Encode(output.FormatPrediction(p, o.tax))
	case output.YAML:
		err = o.yamlEnc.Encode(output.FormatPrediction(p, o.tax))
	default:
		err = o.writeText(p)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) writeText(p model.Prediction) error {
	line := output.FormatLine(p)
	if cats := o.tax.Names(p.Labels); len(cats) > 0 {
		line += " " + o.category.Render("("+strings.Join(cats, ", ")+")")
	}
	_, err := fmt.Fprintln(o.w, line)
	return err
}

// Summarize renders the run id and, when present, the metrics.
func (o *Output) Summarize(_ context.Context, r *report.Report) error {
	var err error
	switch o.encoding {
	case output.JSON:
		err = o.jsonEnc.Encode(output.FormatSummary(r))
	case output.YAML:
		err = o.yamlEnc.Encode(output.FormatSummary(r))
	default:
		err = o.summarizeText(r)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) summarizeText(r *report.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", o.faint.Render(fmt.Sprintf("run %s: %d items", r.RunID, len(r.Predictions))))
	if m := r.Metrics; m != nil {
		fmt.Fprintf(&b, "exact match %.3f, hamming loss %.3f\n", m.ExactMatch, m.HammingLoss)
		for i, c := range o.tax.Categories() {
			lm := m.PerLabel[i]
			fmt.Fprintf(&b, "  %-12s precision %.3f  recall %.3f  f1 %.3f  support %d\n",
				c.Name, lm.Precision, lm.Recall, lm.F1, lm.Support)
		}
	}
	_, err := io.WriteString(o.w, b.String())
	return err
}

// Close finishes any open YAML stream.
func (o *Output) Close() error {
	if o.yamlEnc != nil {
		return o.yamlEnc.Close()
	}
	return nil
}
