package statistics

import (
	"fmt"
	"strings"
)

func formatValue(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// String renders the summary as an aligned multi-line report.
func (s Summary1D) String() string {
	var b strings.Builder
	name := s.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "Sample: %s\n", name)
	rows := []struct {
		label string
		value float64
	}{
		{"Mean", s.Mean},
		{"Median", s.Median},
		{"Q1", s.Q1},
		{"Q3", s.Q3},
		{"Min", s.Min},
		{"Max", s.Max},
		{"Var", s.Var},
		{"FullVar", s.FullVar},
		{"Sigma", s.Sigma},
		{"FullSigma", s.FullSigma},
		{"SE", s.SE},
		{"FullSE", s.FullSE},
		{"Skew", s.Skew},
		{"Kurt", s.Kurt},
	}
	fmt.Fprintf(&b, "  %-10s %d\n", "N", s.N)
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-10s %s\n", r.label, formatValue(r.value))
	}
	return b.String()
}

// String renders the joint statistics followed by both marginals.
func (s Summary2D) String() string {
	var b strings.Builder
	name := s.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "Paired sample: %s\n", name)
	fmt.Fprintf(&b, "  %-10s %d\n", "N", s.N)
	fmt.Fprintf(&b, "  %-10s %s\n", "Cov", formatValue(s.Cov))
	fmt.Fprintf(&b, "  %-10s %s\n", "Pearson", formatValue(s.Pearson))
	fmt.Fprintf(&b, "  %-10s %s\n", "Spearman", formatValue(s.Spearman))
	fmt.Fprintf(&b, "  %-10s %s\n", "Kendall", formatValue(s.Kendall))
	b.WriteString(s.X.String())
	b.WriteString(s.Y.String())
	return b.String()
}
