// cmd/zkbench/main.go
package main

import (
	cmd "github.com/zkbench/zkbench-go/internal/cli"
)

// main starts the zkbench CLI by delegating to the cobra root command
// defined in the cli package.
func main() {
	cmd.Execute()
}
