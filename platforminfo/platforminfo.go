// platforminfo/platforminfo.go
// Package platforminfo identifies the machine a benchmark runs on. All
// detection is best effort: CPU and GPU vendor lookups that fail leave the
// field absent, and no failure ever propagates to the caller.
package platforminfo

import (
	"strings"

	"github.com/zkbench/zkbench-go/schema"
)

// Current detects the live platform.
func Current() schema.Platform {
	return Detect(System())
}

// Detect builds a Platform from the given environment. It never fails; the
// CPU count floors at 1 when the environment reports an unknown core count.
func Detect(env Environment) schema.Platform {
	count := env.NumCPU()
	if count < 1 {
		count = 1
	}
	return schema.Platform{
		OS:        strings.ToLower(env.GOOS()),
		Arch:      env.GOARCH(),
		CPUCount:  count,
		CPUVendor: cpuVendor(env),
		GPUVendor: gpuVendor(env),
	}
}

func cpuVendor(env Environment) string {
	switch env.GOOS() {
	case "linux":
		return cpuVendorLinux(env)
	case "darwin":
		out, err := env.RunCommand("sysctl", "-n", "machdep.cpu.brand_string")
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	case "windows":
		v, _ := env.LookupEnv("PROCESSOR_IDENTIFIER")
		return strings.TrimSpace(v)
	}
	return ""
}

// cpuVendorLinux reads the first "model name" entry from /proc/cpuinfo.
func cpuVendorLinux(env Environment) string {
	data, err := env.ReadFile("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, value, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func gpuVendor(env Environment) string {
	switch env.GOOS() {
	case "darwin":
		return gpuVendorDarwin(env)
	case "linux":
		if v := gpuVendorNvidia(env); v != "" {
			return v
		}
		return gpuVendorROCm(env)
	}
	return ""
}

func gpuVendorNvidia(env Environment) string {
	out, err := env.RunCommand("nvidia-smi", "--query-gpu=name", "--format=csv,noheader")
	if err != nil {
		return ""
	}
	first, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(first)
}

func gpuVendorROCm(env Environment) string {
	out, err := env.RunCommand("rocm-smi", "--showproductname")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "Card Series") {
			continue
		}
		if _, value, ok := strings.Cut(line, "Card Series:"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func gpuVendorDarwin(env Environment) string {
	out, err := env.RunCommand("system_profiler", "SPDisplaysDataType")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "Chipset Model:") {
			continue
		}
		if _, value, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
