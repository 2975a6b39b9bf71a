package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fusionforge/plasma-bootstrap/internal/engine"
	"github.com/fusionforge/plasma-bootstrap/internal/sweep"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testEvaluations() []engine.Evaluation {
	return []engine.Evaluation{
		{
			Name: "baseline",
			Result: engine.Result{
				Fraction: 0.2878,
				Strategy: engine.StrategySakai,
			},
		},
		{
			Name: "high-beta",
			Result: engine.Result{
				Fraction: 0.6,
				Strategy: engine.StrategySakai,
				Capped:   true,
			},
			Notes: []string{"Bootstrap fraction upper limit enforced"},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(testEvaluations())
	})

	if !strings.Contains(out, "Scenario") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(out, "baseline") || !strings.Contains(out, "high-beta") {
		t.Errorf("PrettyFormat missing scenario names")
	}
	if !strings.Contains(out, "sakai") {
		t.Errorf("PrettyFormat missing strategy name")
	}
	if !strings.Contains(out, "capped") {
		t.Errorf("PrettyFormat missing capped flag")
	}
	if !strings.Contains(out, "Bootstrap fraction upper limit enforced") {
		t.Errorf("PrettyFormat missing cap notice")
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat(testEvaluations())
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat produced %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "\"scenario\"") || !strings.Contains(lines[0], "\"fraction\"") {
		t.Errorf("CsvFormat header = %s", lines[0])
	}
	if !strings.Contains(lines[1], "\"baseline\"") || !strings.Contains(lines[1], "\"0.287800\"") {
		t.Errorf("CsvFormat row = %s", lines[1])
	}
	if !strings.Contains(lines[2], "\"true\"") {
		t.Errorf("CsvFormat capped row = %s", lines[2])
	}
}

func TestPrettySweep(t *testing.T) {
	points := []sweep.Point{
		{Value: 1.0, Result: engine.Result{Fraction: 0.25}},
		{Value: 1.2, Result: engine.Result{Fraction: 0.31}},
		{Value: 1.4, Err: errors.New("plasma: field zeff = 0.5 out of domain: must be at least 1")},
	}

	out := captureStdout(t, func() {
		PrettySweep("betaPoloidal", points)
	})

	if !strings.Contains(out, "Sweep over betaPoloidal") {
		t.Errorf("PrettySweep missing header")
	}
	if !strings.Contains(out, "0.2500") {
		t.Errorf("PrettySweep missing fraction value")
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("PrettySweep missing failed sample")
	}
}

func TestCsvSweep(t *testing.T) {
	points := []sweep.Point{
		{Value: 1.0, Result: engine.Result{Fraction: 0.25}},
	}

	out := captureStdout(t, func() {
		CsvSweep("betaPoloidal", points)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("CsvSweep produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "\"betaPoloidal\"") {
		t.Errorf("CsvSweep header = %s", lines[0])
	}
	if !strings.Contains(lines[1], "\"0.250000\"") {
		t.Errorf("CsvSweep row = %s", lines[1])
	}
}
