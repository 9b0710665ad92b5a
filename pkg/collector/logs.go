package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// LogsCollector copies component log files into staging. A missing log
// directory is a warning, not a failure: a node that never started the
// component still produces a useful bundle.
type LogsCollector struct {
	// LogDir is the per-node component log directory,
	// <log_base>/<component>/<machine_id>.
	LogDir string

	// Component is the subsystem name, e.g. "rgw".
	Component string
}

// LogsCollectorName is the manifest identifier for this collector.
const LogsCollectorName = "logs"

// Name implements Collector.
func (c *LogsCollector) Name() string {
	return LogsCollectorName
}

// patterns returns the glob patterns selecting component log files:
// client logs and setup logs, nothing else.
func (c *LogsCollector) patterns() []string {
	return []string{
		fmt.Sprintf("%s.client*.log", c.Component),
		fmt.Sprintf("%s_setup*.log", c.Component),
	}
}

// Collect enumerates LogDir (non-recursive) and copies every entry whose
// name matches one of the component log patterns, preserving filenames.
func (c *LogsCollector) Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.LogDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("log directory does not exist, skipping log collection",
				"path", c.LogDir)
			return skipped(LogsCollectorName,
				fmt.Sprintf("log directory %s does not exist", c.LogDir)), nil
		}
		return nil, fmt.Errorf("failed to list log directory %q: %w", c.LogDir, err)
	}

	patterns := c.patterns()
	var staged []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !matchAny(patterns, entry.Name()) {
			continue
		}
		if err := copyFile(filepath.Join(c.LogDir, entry.Name()), stage.Join(entry.Name())); err != nil {
			return nil, err
		}
		staged = append(staged, entry.Name())
	}

	slog.Info("staged component logs", "dir", c.LogDir, "count", len(staged))
	return &Artifact{
		Collector: LogsCollectorName,
		Files:     staged,
	}, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// Patterns are compile-time constants per component; Match
		// cannot fail on them.
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
