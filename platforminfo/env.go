// platforminfo/env.go
package platforminfo

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// commandTimeout bounds every external diagnostic invocation so a
// misbehaving tool cannot hang a report build.
const commandTimeout = 5 * time.Second

// Environment is the ambient state detection reads from. Production code
// uses System; tests substitute a fixed implementation instead of mocking
// at the process level.
type Environment interface {
	GOOS() string
	GOARCH() string
	NumCPU() int
	Now() time.Time
	ReadFile(path string) ([]byte, error)
	LookupEnv(key string) (string, bool)
	RunCommand(name string, args ...string) ([]byte, error)
}

type systemEnvironment struct{}

// System returns the live process environment.
func System() Environment { return systemEnvironment{} }

func (systemEnvironment) GOOS() string   { return runtime.GOOS }
func (systemEnvironment) GOARCH() string { return runtime.GOARCH }
func (systemEnvironment) NumCPU() int    { return runtime.NumCPU() }
func (systemEnvironment) Now() time.Time { return time.Now() }

func (systemEnvironment) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (systemEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (systemEnvironment) RunCommand(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}
