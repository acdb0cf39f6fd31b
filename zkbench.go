// zkbench.go
// Package zkbench is a support library for cross-implementation benchmark
// harnesses. Harnesses run their own benchmark loops, then use the schema,
// stats, hashing, and platforminfo packages to assemble comparable report
// files; this package provides the run-metadata entry point that stamps a
// report with live provenance.
package zkbench

import (
	"time"

	"github.com/zkbench/zkbench-go/platforminfo"
	"github.com/zkbench/zkbench-go/schema"
)

// Version of the report library.
const Version = "0.1.0"

// CreateMetadata stamps run metadata with the current git commit, the
// current UTC timestamp, and the live platform. This is the single
// non-pure entry point in the schema layer.
func CreateMetadata(implementation, version string) schema.Metadata {
	return CreateMetadataIn(platforminfo.System(), implementation, version)
}

// CreateMetadataIn is CreateMetadata with an explicit environment, for
// callers and tests that need provenance detection pinned down.
func CreateMetadataIn(env platforminfo.Environment, implementation, version string) schema.Metadata {
	return schema.Metadata{
		Implementation: implementation,
		Version:        version,
		CommitSHA:      platforminfo.GitCommitSHA(env),
		Timestamp:      env.Now().UTC().Format(time.RFC3339),
		Platform:       platforminfo.Detect(env),
	}
}
