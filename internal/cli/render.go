// internal/cli/render.go
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zkbench/zkbench-go/schema"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderReport produces the human-readable summary printed by 'summary'.
func renderReport(report *schema.BenchmarkReport) string {
	var b strings.Builder

	md := report.Metadata
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s", md.Implementation, md.Version)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("commit %s · %s", md.CommitSHA, md.Timestamp)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(renderPlatform(md.Platform)))
	b.WriteString("\n\n")

	names := make([]string, 0, len(report.Benchmarks))
	for name := range report.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		b.WriteString("no benchmarks recorded\n")
		return b.String()
	}

	for _, name := range names {
		b.WriteString(nameStyle.Render(name))
		b.WriteString("\n")
		b.WriteString(renderResult(report.Benchmarks[name]))
	}
	return b.String()
}

func renderPlatform(p schema.Platform) string {
	parts := []string{fmt.Sprintf("%s/%s", p.OS, p.Arch), fmt.Sprintf("%d cpu", p.CPUCount)}
	if p.CPUVendor != "" {
		parts = append(parts, p.CPUVendor)
	}
	if p.GPUVendor != "" {
		parts = append(parts, p.GPUVendor)
	}
	return strings.Join(parts, " · ")
}

// renderResult lists the populated fields of one benchmark result, one per
// line, indented under the benchmark name.
func renderResult(result schema.BenchmarkResult) string {
	var b strings.Builder

	writeMetric := func(label string, m *schema.MetricValue) {
		if m == nil {
			return
		}
		b.WriteString(fmt.Sprintf("  %-12s %s\n", label, formatMetric(m)))
	}
	writeMetric("latency", result.Latency)
	writeMetric("memory", result.Memory)
	writeMetric("throughput", result.Throughput)

	if result.Iterations > 0 {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", "iterations", result.Iterations))
	}
	if tv := result.TestVectors; tv != nil {
		status := "verified"
		if !tv.Verified {
			status = "MISMATCH"
		}
		b.WriteString(fmt.Sprintf("  %-12s %s (in %s, out %s)\n", "vectors", status, shortHash(tv.InputHash), shortHash(tv.OutputHash)))
	}
	if len(result.Metadata) > 0 {
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %-12s %v\n", k, result.Metadata[k]))
		}
	}
	return b.String()
}

func formatMetric(m *schema.MetricValue) string {
	s := fmt.Sprintf("%.4g %s", m.Value, m.Unit)
	if m.LowerValue != nil && m.UpperValue != nil {
		s += fmt.Sprintf(" [%.4g, %.4g]", *m.LowerValue, *m.UpperValue)
	}
	return s
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
