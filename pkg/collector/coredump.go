package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// CrashSubdir is the staging subdirectory that mirrors the crash-dump tree.
const CrashSubdir = "crash"

// CoredumpCollector mirrors the component crash-dump directory into
// staging when crash-dump collection is requested.
type CoredumpCollector struct {
	// CrashDir is the directory where the component leaves crash dumps.
	CrashDir string

	// Enabled gates collection; when false the collector always skips.
	Enabled bool
}

// CoredumpCollectorName is the manifest identifier for this collector.
const CoredumpCollectorName = "coredump"

// Name implements Collector.
func (c *CoredumpCollector) Name() string {
	return CoredumpCollectorName
}

// Collect recursively copies CrashDir into staging/crash/. Skips when
// disabled or when the crash directory does not exist.
func (c *CoredumpCollector) Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !c.Enabled {
		return skipped(CoredumpCollectorName, "coredump collection not requested"), nil
	}

	if _, err := os.Stat(c.CrashDir); err != nil {
		if os.IsNotExist(err) {
			slog.Warn("crash-dump directory does not exist, skipping",
				"path", c.CrashDir)
			return skipped(CoredumpCollectorName,
				fmt.Sprintf("crash directory %s does not exist", c.CrashDir)), nil
		}
		return nil, fmt.Errorf("failed to stat crash directory %q: %w", c.CrashDir, err)
	}

	copied, err := copyTree(c.CrashDir, stage.Join(CrashSubdir))
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(copied))
	for _, rel := range copied {
		files = append(files, filepath.Join(CrashSubdir, rel))
	}

	slog.Info("staged crash dumps", "dir", c.CrashDir, "count", len(files))
	return &Artifact{
		Collector: CoredumpCollectorName,
		Files:     files,
	}, nil
}
