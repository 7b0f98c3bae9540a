// Package adapter contains the per-target gather/scatter logic. An adapter
// knows how to collect one category of local state into a staging directory
// for backup, and how to redistribute staged files back to their real
// locations on restore. The variant set is closed and small, so plain
// structs behind one interface are enough.
package adapter

import (
	"context"
)

type Adapter interface {
	Name() string
	// Gather populates stagingDir with this target's files.
	Gather(ctx context.Context, stagingDir string) error
	// Scatter redistributes files from stagingDir to their final locations,
	// fixing permissions where the target requires it.
	Scatter(ctx context.Context, stagingDir string) error
}
