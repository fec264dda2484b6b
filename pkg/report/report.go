package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/patrikhermansson/pairdist/example"
	"gopkg.in/yaml.v3"
)

// Report is everything a pairdist run prints.
type Report struct {
	CPU    map[string]bool       `yaml:"cpu"`
	Checks []example.CheckResult `yaml:"checks"`
	Trials *example.Summary      `yaml:"trials,omitempty"`
	Sample string                `yaml:"sample,omitempty"`
}

// OK reports whether every check and trial passed.
func (r Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return r.Trials == nil || r.Trials.Failed == 0
}

// Write renders r to w as "yaml" or "text".
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "text":
		_, err := io.WriteString(w, Text(r))
		return err
	default:
		return fmt.Errorf("unknown report format: %q", format)
	}
}

// Print writes r to standard output.
func Print(r Report, format string) error {
	return Write(os.Stdout, r, format)
}

// Text returns the human-readable form of r.
func Text(r Report) string {
	var sb strings.Builder

	names := make([]string, 0, len(r.CPU))
	for name := range r.CPU {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString("CPU features:")
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%v", name, r.CPU[name])
	}
	sb.WriteString("\n")

	if r.Sample != "" {
		sb.WriteString("Sample distance matrix:\n")
		sb.WriteString(r.Sample)
	}

	for _, c := range r.Checks {
		fmt.Fprintf(&sb, "Check %s: %d points, %s vs naive (%s): %s\n",
			c.Name, c.Points, c.Strategy, c.Metric, status(c.OK()))
		if c.Mismatches > 0 {
			fmt.Fprintf(&sb, " -> %d mismatched entries\n", c.Mismatches)
		}
		if c.Invariant != "" {
			fmt.Fprintf(&sb, " -> %s\n", c.Invariant)
		}
	}

	if t := r.Trials; t != nil {
		fmt.Fprintf(&sb, "Trials: %d of %d points, %s vs naive (%s), seed %d: %d failed\n",
			t.Trials, t.Points, t.Strategy, t.Metric, t.Seed, t.Failed)
		fmt.Fprintf(&sb, "Naive time: %v, %s time: %v, speedup: %.2fx\n",
			t.ReferenceTime, t.Strategy, t.StrategyTime, t.Speedup)
	}
	return sb.String()
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}
