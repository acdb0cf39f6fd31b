// internal/tui/report.go
// Package tui implements the interactive report browser behind
// 'zkbench view': a list of benchmarks that opens into a detail pane.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zkbench/zkbench-go/schema"
)

// viewState represents the current screen of the browser.
type viewState int

const (
	// viewBenchmarkList is the state where the user selects a benchmark.
	viewBenchmarkList viewState = iota
	// viewBenchmarkDetail is the state showing one benchmark's fields.
	viewBenchmarkDetail
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// item represents a selectable benchmark in the list.
type item struct {
	name string
	desc string
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.name }

type model struct {
	report        *schema.BenchmarkReport
	path          string
	state         viewState
	list          list.Model
	viewport      viewport.Model
	selected      string
	width, height int
}

func newModel(report *schema.BenchmarkReport, path string) *model {
	names := make([]string, 0, len(report.Benchmarks))
	for name := range report.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = item{name: name, desc: describeResult(report.Benchmarks[name])}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s — %s", report.Metadata.Implementation, path)
	l.SetShowHelp(true)

	return &model{
		report:   report,
		path:     path,
		state:    viewBenchmarkList,
		list:     l,
		viewport: viewport.New(80, 20),
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case viewBenchmarkList:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter":
				if it, ok := m.list.SelectedItem().(item); ok {
					m.selected = it.name
					m.viewport.SetContent(detailContent(m.report, it.name))
					m.viewport.GotoTop()
					m.state = viewBenchmarkDetail
				}
				return m, nil
			}
		case viewBenchmarkDetail:
			switch msg.String() {
			case "q", "esc":
				m.state = viewBenchmarkList
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case viewBenchmarkList:
		m.list, cmd = m.list.Update(msg)
	case viewBenchmarkDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *model) View() string {
	switch m.state {
	case viewBenchmarkDetail:
		header := titleStyle.Render(m.selected)
		footer := footerStyle.Render("esc: back · q: back · ctrl+c: quit")
		return fmt.Sprintf("%s\n\n%s\n%s", header, m.viewport.View(), footer)
	default:
		return m.list.View()
	}
}

// Run opens the browser over the given report until the user quits.
func Run(report *schema.BenchmarkReport, path string) error {
	p := tea.NewProgram(newModel(report, path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// describeResult produces the one-line list description for a benchmark.
func describeResult(result schema.BenchmarkResult) string {
	var parts []string
	if result.Latency != nil {
		parts = append(parts, fmt.Sprintf("latency %.4g %s", result.Latency.Value, result.Latency.Unit))
	}
	if result.Throughput != nil {
		parts = append(parts, fmt.Sprintf("throughput %.4g %s", result.Throughput.Value, result.Throughput.Unit))
	}
	if result.Memory != nil {
		parts = append(parts, fmt.Sprintf("memory %.4g %s", result.Memory.Value, result.Memory.Unit))
	}
	if result.Iterations > 0 {
		parts = append(parts, fmt.Sprintf("%d iterations", result.Iterations))
	}
	if len(parts) == 0 {
		return "no metrics recorded"
	}
	return strings.Join(parts, " · ")
}

// detailContent renders every populated field of the selected benchmark.
func detailContent(report *schema.BenchmarkReport, name string) string {
	result, ok := report.Benchmarks[name]
	if !ok {
		return "benchmark not found"
	}

	var b strings.Builder
	md := report.Metadata
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s %s · commit %s · %s", md.Implementation, md.Version, md.CommitSHA, md.Timestamp)))
	b.WriteString("\n\n")

	writeMetric := func(label string, m *schema.MetricValue) {
		if m == nil {
			return
		}
		line := fmt.Sprintf("%-12s %.6g %s", label, m.Value, m.Unit)
		if m.LowerValue != nil && m.UpperValue != nil {
			line += fmt.Sprintf("  [%.6g, %.6g]", *m.LowerValue, *m.UpperValue)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	writeMetric("latency", result.Latency)
	writeMetric("memory", result.Memory)
	writeMetric("throughput", result.Throughput)

	if result.Iterations > 0 {
		b.WriteString(fmt.Sprintf("%-12s %d\n", "iterations", result.Iterations))
	}
	if tv := result.TestVectors; tv != nil {
		b.WriteString(fmt.Sprintf("%-12s %v\n", "verified", tv.Verified))
		b.WriteString(fmt.Sprintf("%-12s %s\n", "input_hash", tv.InputHash))
		b.WriteString(fmt.Sprintf("%-12s %s\n", "output_hash", tv.OutputHash))
	}
	if len(result.Metadata) > 0 {
		b.WriteString("\n")
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("%-12s %v\n", k, result.Metadata[k]))
		}
	}
	return b.String()
}
