package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/castag/internal/engine/taxonomy"
	"github.com/crimson-sun/castag/internal/model"
	"github.com/crimson-sun/castag/internal/output"
	"github.com/crimson-sun/castag/internal/report"
)

func testPredictions() []model.Prediction {
	return []model.Prediction{
		{Item: "paint a mural", Labels: model.LabelVector{1, 0, 0}},
		{Item: "beach cleanup", Labels: model.LabelVector{0, 1, 1}},
		{Item: "nap", Labels: model.LabelVector{}},
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.Text, taxonomy.Default())
	for _, p := range testPredictions() {
		if err := out.Write(context.Background(), p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	out.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "paint a mural => [1 0 0]") || !strings.Contains(lines[0], "Creativity") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Action, Service") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "nap => [0 0 0]" {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.JSON, taxonomy.Default())
	for _, p := range testPredictions() {
		out.Write(context.Background(), p)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 NDJSON lines, got %d", len(lines))
	}
	var rec output.Record
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec.Item != "beach cleanup" || len(rec.Categories) != 2 {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestYAMLOutput(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, output.YAML, taxonomy.Default())
	for _, p := range testPredictions() {
		if err := out.Write(context.Background(), p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := yaml.NewDecoder(&buf)
	var recs []output.Record
	for {
		var rec output.Record
		if err := dec.Decode(&rec); err != nil {
			break
		}
		recs = append(recs, rec)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 YAML documents, got %d", len(recs))
	}
	if recs[0].Categories[0] != "Creativity" {
		t.Errorf("unexpected first record %+v", recs[0])
	}
}

func TestTextSummary(t *testing.T) {
	r := &report.Report{RunID: "run-1", Predictions: testPredictions()}
	if err := r.Score([]model.LabelVector{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	out := New(&buf, output.Text, taxonomy.Default())
	if err := out.Summarize(context.Background(), r); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	s := buf.String()
	for _, want := range []string{"run-1", "3 items", "exact match 0.667", "Service"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestWriteReportUsesSummarizer(t *testing.T) {
	r := &report.Report{RunID: "run-2", Predictions: testPredictions()}

	var buf bytes.Buffer
	out := New(&buf, output.JSON, taxonomy.Default())
	if err := output.WriteReport(context.Background(), out, r); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 3 predictions + 1 summary, got %d lines", len(lines))
	}
	var sum output.Summary
	if err := json.Unmarshal([]byte(lines[3]), &sum); err != nil {
		t.Fatalf("invalid summary JSON: %v", err)
	}
	if sum.RunID != "run-2" || sum.Items != 3 || sum.Metrics != nil {
		t.Errorf("unexpected summary %+v", sum)
	}
}
