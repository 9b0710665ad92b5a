package bundle

import (
	"fmt"
	"time"
)

// Output contains the aggregated result of one bundle generation run.
type Output struct {
	// BundleID echoes the request id.
	BundleID string `json:"bundle_id" yaml:"bundle_id"`

	// RunID uniquely identifies this generation run.
	RunID string `json:"run_id" yaml:"run_id"`

	// MachineID is the node the bundle was collected on.
	MachineID string `json:"machine_id" yaml:"machine_id"`

	// ArchivePath is the absolute path of the produced tarball.
	ArchivePath string `json:"archive_path" yaml:"archive_path"`

	// ArchiveSize is the compressed archive size in bytes.
	ArchiveSize int64 `json:"archive_size_bytes" yaml:"archive_size_bytes"`

	// TotalFiles is the count of staged files across all steps.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalDuration is the wall time of the whole run.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`

	// Steps holds the per-step outcomes.
	Steps []StepResult `json:"steps" yaml:"steps"`
}

// SkippedCount returns the number of steps that were skipped.
func (o *Output) SkippedCount() int {
	count := 0
	for _, s := range o.Steps {
		if s.Status == StatusSkipped {
			count++
		}
	}
	return count
}

// Summary returns a human-readable summary of the run.
func (o *Output) Summary() string {
	return fmt.Sprintf(
		"Bundled %d files (%s) into %s in %v. Steps: %d collected, %d skipped.",
		o.TotalFiles,
		formatBytes(o.ArchiveSize),
		o.ArchivePath,
		o.TotalDuration.Round(time.Millisecond),
		len(o.Steps)-o.SkippedCount(),
		o.SkippedCount(),
	)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
