// Package output provides utilities for formatting and displaying evaluation results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fusionforge/plasma-bootstrap/internal/engine"
	"github.com/fusionforge/plasma-bootstrap/internal/sweep"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []engine.Evaluation) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Scenario             | Strategy | Fraction | Flags  | Notes\n")
	fmt.Printf("________             | ________ | ________ | _____  | _____\n")
	for _, result := range results {
		_, _ = p.Printf("%-20s | %-8s | %8.4f | %-6s | %s\n",
			result.Name,
			result.Result.Strategy.String(),
			result.Result.Fraction,
			flags(result.Result),
			strings.Join(result.Notes, ","),
		)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []engine.Evaluation) {
	fmt.Printf("\"scenario\",\"strategy\",\"fraction\",\"capped\",\"fixed\",\"notes\"\n")
	for _, result := range results {
		fmt.Printf("\"%s\",\"%s\",\"%.6f\",\"%t\",\"%t\",\"%s\"\n",
			result.Name,
			result.Result.Strategy.String(),
			result.Result.Fraction,
			result.Result.Capped,
			result.Result.Fixed,
			strings.Join(result.Notes, ","),
		)
	}
}

// PrettySweep outputs one line per sweep sample.
func PrettySweep(field string, points []sweep.Point) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Sweep over %s ---\n", field)
	fmt.Printf("%-12s | Fraction | Flags\n", field)
	for _, point := range points {
		if point.Err != nil {
			_, _ = p.Printf("%12.4f | %8s | error: %v\n", point.Value, "-", point.Err)
			continue
		}
		_, _ = p.Printf("%12.4f | %8.4f | %s\n", point.Value, point.Result.Fraction, flags(point.Result))
	}
}

// CsvSweep outputs the sweep samples in comma-separated value format.
func CsvSweep(field string, points []sweep.Point) {
	fmt.Printf("\"%s\",\"fraction\",\"capped\",\"error\"\n", field)
	for _, point := range points {
		errText := ""
		if point.Err != nil {
			errText = point.Err.Error()
		}
		fmt.Printf("\"%.6f\",\"%.6f\",\"%t\",\"%s\"\n",
			point.Value, point.Result.Fraction, point.Result.Capped, errText)
	}
}

func flags(result engine.Result) string {
	switch {
	case result.Fixed:
		return "fixed"
	case result.Capped:
		return "capped"
	}
	return ""
}
