package collector

import (
	"context"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// Collector stages one category of diagnostic artifacts for the bundle.
// Implementations copy files into the staging directory and report what
// they contributed.
type Collector interface {
	// Name identifies the collector in logs and the bundle manifest.
	Name() string

	// Collect stages the collector's artifacts. A nil error with
	// Artifact.Skipped set means the source was unavailable and the run
	// should continue; a non-nil error aborts the run.
	Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error)
}

// Artifact describes what a collector contributed to the staging tree.
type Artifact struct {
	// Collector is the name of the collector that produced this artifact.
	Collector string `json:"collector" yaml:"collector"`

	// Files lists staged paths relative to the staging directory root.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Skipped indicates the collector found nothing to stage.
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Reason explains a skip.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// skipped builds an Artifact for a collector that staged nothing.
func skipped(name, reason string) *Artifact {
	return &Artifact{
		Collector: name,
		Skipped:   true,
		Reason:    reason,
	}
}
