package platforminfo

import (
	"errors"
	"testing"
	"time"
)

// fakeEnvironment is a fixed Environment for tests. Command output is keyed
// by command name; absent entries fail like a missing binary.
type fakeEnvironment struct {
	goos     string
	goarch   string
	numCPU   int
	now      time.Time
	files    map[string]string
	env      map[string]string
	commands map[string]string
}

func (f *fakeEnvironment) GOOS() string   { return f.goos }
func (f *fakeEnvironment) GOARCH() string { return f.goarch }
func (f *fakeEnvironment) NumCPU() int    { return f.numCPU }
func (f *fakeEnvironment) Now() time.Time { return f.now }

func (f *fakeEnvironment) ReadFile(path string) ([]byte, error) {
	if content, ok := f.files[path]; ok {
		return []byte(content), nil
	}
	return nil, errors.New("no such file")
}

func (f *fakeEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f *fakeEnvironment) RunCommand(name string, args ...string) ([]byte, error) {
	if out, ok := f.commands[name]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("executable not found")
}

func TestDetectLinux(t *testing.T) {
	env := &fakeEnvironment{
		goos:   "linux",
		goarch: "amd64",
		numCPU: 16,
		files: map[string]string{
			"/proc/cpuinfo": "processor\t: 0\nmodel name\t: AMD Ryzen 9 5950X 16-Core Processor\nmodel name\t: other\n",
		},
		commands: map[string]string{
			"nvidia-smi": "NVIDIA GeForce RTX 4090\n",
		},
	}

	p := Detect(env)
	if p.OS != "linux" || p.Arch != "amd64" || p.CPUCount != 16 {
		t.Fatalf("base fields: %+v", p)
	}
	if p.CPUVendor != "AMD Ryzen 9 5950X 16-Core Processor" {
		t.Fatalf("cpu vendor: %q", p.CPUVendor)
	}
	if p.GPUVendor != "NVIDIA GeForce RTX 4090" {
		t.Fatalf("gpu vendor: %q", p.GPUVendor)
	}
}

func TestDetectLinuxROCmFallback(t *testing.T) {
	env := &fakeEnvironment{
		goos:   "linux",
		goarch: "amd64",
		numCPU: 8,
		commands: map[string]string{
			"rocm-smi": "GPU[0] : Card Series: Radeon RX 7900 XTX\n",
		},
	}

	p := Detect(env)
	if p.GPUVendor != "Radeon RX 7900 XTX" {
		t.Fatalf("gpu vendor: %q", p.GPUVendor)
	}
}

func TestDetectDarwin(t *testing.T) {
	env := &fakeEnvironment{
		goos:   "darwin",
		goarch: "arm64",
		numCPU: 10,
		commands: map[string]string{
			"sysctl":          "Apple M2 Pro\n",
			"system_profiler": "Graphics/Displays:\n    Apple M2 Pro:\n      Chipset Model: Apple M2 Pro\n",
		},
	}

	p := Detect(env)
	if p.CPUVendor != "Apple M2 Pro" {
		t.Fatalf("cpu vendor: %q", p.CPUVendor)
	}
	if p.GPUVendor != "Apple M2 Pro" {
		t.Fatalf("gpu vendor: %q", p.GPUVendor)
	}
}

func TestDetectWindows(t *testing.T) {
	env := &fakeEnvironment{
		goos:   "windows",
		goarch: "amd64",
		numCPU: 12,
		env: map[string]string{
			"PROCESSOR_IDENTIFIER": "Intel64 Family 6 Model 183",
		},
	}

	p := Detect(env)
	if p.CPUVendor != "Intel64 Family 6 Model 183" {
		t.Fatalf("cpu vendor: %q", p.CPUVendor)
	}
	if p.GPUVendor != "" {
		t.Fatalf("gpu vendor should be absent on windows: %q", p.GPUVendor)
	}
}

func TestDetectFailuresLeaveVendorsAbsent(t *testing.T) {
	env := &fakeEnvironment{goos: "linux", goarch: "amd64", numCPU: 4}

	p := Detect(env)
	if p.CPUVendor != "" || p.GPUVendor != "" {
		t.Fatalf("expected absent vendors: %+v", p)
	}
}

func TestDetectCPUCountFloorsAtOne(t *testing.T) {
	for _, count := range []int{0, -1} {
		env := &fakeEnvironment{goos: "linux", goarch: "amd64", numCPU: count}
		if p := Detect(env); p.CPUCount != 1 {
			t.Fatalf("numCPU=%d: cpu_count = %d, want 1", count, p.CPUCount)
		}
	}
}

func TestCurrentNeverPanics(t *testing.T) {
	p := Current()
	if p.OS == "" || p.Arch == "" {
		t.Fatalf("os/arch should always be set: %+v", p)
	}
	if p.CPUCount < 1 {
		t.Fatalf("cpu_count = %d, want >= 1", p.CPUCount)
	}
}
