// schema/schema.go
// Package schema defines the shared benchmark report format. Every entity
// serializes to a deterministic JSON shape in which absent optional fields
// are omitted entirely, keeping reports byte-comparable across runs and
// across independently written harnesses.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zkbench/zkbench-go/stats"
)

// MetricValue is a measured quantity with a unit and optional confidence
// bounds. When bounds are present they satisfy lower <= value <= upper.
type MetricValue struct {
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	LowerValue *float64 `json:"lower_value,omitempty"`
	UpperValue *float64 `json:"upper_value,omitempty"`
}

// NewMetric returns a MetricValue without confidence bounds.
func NewMetric(value float64, unit string) MetricValue {
	return MetricValue{Value: value, Unit: unit}
}

// NewMetricWithBounds returns a MetricValue with confidence bounds,
// rejecting bounds that do not bracket the value.
func NewMetricWithBounds(value float64, unit string, lower, upper float64) (MetricValue, error) {
	if lower > value || value > upper {
		return MetricValue{}, fmt.Errorf("schema: bounds [%v, %v] do not bracket value %v", lower, upper, value)
	}
	return MetricValue{Value: value, Unit: unit, LowerValue: &lower, UpperValue: &upper}, nil
}

// MetricFromSamples builds a MetricValue directly from raw samples: the
// value is the sample mean and the bounds are the confidence interval at
// the given level. Fails on an empty sample.
func MetricFromSamples(values []float64, unit string, confidence float64) (MetricValue, error) {
	mean, stdev, err := stats.CalculateStatistics(values)
	if err != nil {
		return MetricValue{}, err
	}
	lower, upper, err := stats.ConfidenceInterval(mean, stdev, len(values), confidence)
	if err != nil {
		return MetricValue{}, err
	}
	return MetricValue{Value: mean, Unit: unit, LowerValue: &lower, UpperValue: &upper}, nil
}

// TestVectors records a single correctness check: content hashes of a
// benchmark's input and output plus whether the output matched the
// reference.
type TestVectors struct {
	InputHash  string `json:"input_hash"`
	OutputHash string `json:"output_hash"`
	Verified   bool   `json:"verified"`
}

// BenchmarkResult holds one named benchmark's outcome. Every field is
// independently optional; an Iterations of zero means "not reported" and is
// omitted from the serialized form.
type BenchmarkResult struct {
	Latency     *MetricValue   `json:"latency,omitempty"`
	Memory      *MetricValue   `json:"memory,omitempty"`
	Throughput  *MetricValue   `json:"throughput,omitempty"`
	Iterations  int            `json:"iterations,omitempty"`
	TestVectors *TestVectors   `json:"test_vectors,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Platform identifies the machine a benchmark ran on. CPUCount is always at
// least 1; the vendor fields are empty when detection failed.
type Platform struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUCount  int    `json:"cpu_count"`
	CPUVendor string `json:"cpu_vendor,omitempty"`
	GPUVendor string `json:"gpu_vendor,omitempty"`
}

// Metadata stamps a benchmark run with provenance: what was benchmarked, at
// which version and commit, when, and on what platform.
type Metadata struct {
	Implementation string   `json:"implementation"`
	Version        string   `json:"version"`
	CommitSHA      string   `json:"commit_sha"`
	Timestamp      string   `json:"timestamp"`
	Platform       Platform `json:"platform"`
}

// BenchmarkReport is the root serialization unit: run metadata plus results
// keyed by benchmark name.
type BenchmarkReport struct {
	Metadata   Metadata                   `json:"metadata"`
	Benchmarks map[string]BenchmarkResult `json:"benchmarks"`
}

// NewReport returns an empty report for the given run metadata.
func NewReport(md Metadata) *BenchmarkReport {
	return &BenchmarkReport{
		Metadata:   md,
		Benchmarks: make(map[string]BenchmarkResult),
	}
}

// Add records a named benchmark's result, replacing any previous result
// under the same name.
func (r *BenchmarkReport) Add(name string, result BenchmarkResult) {
	if r.Benchmarks == nil {
		r.Benchmarks = make(map[string]BenchmarkResult)
	}
	r.Benchmarks[name] = result
}

// ToJSON serializes the report with the given indentation width. Keys are
// emitted in a deterministic order: struct fields in declaration order,
// benchmark names sorted.
func (r *BenchmarkReport) ToJSON(indent int) ([]byte, error) {
	out := *r
	if out.Benchmarks == nil {
		out.Benchmarks = map[string]BenchmarkResult{}
	}
	data, err := json.MarshalIndent(&out, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, fmt.Errorf("schema: serialize report: %w", err)
	}
	return data, nil
}

// ParseReport deserializes a report previously produced by ToJSON or by
// another implementation of the shared format.
func ParseReport(data []byte) (*BenchmarkReport, error) {
	var report BenchmarkReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("schema: parse report: %w", err)
	}
	return &report, nil
}
