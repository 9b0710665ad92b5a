package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// ConfigCollector copies the component configuration file into staging.
// The configuration file is the one artifact a bundle cannot do without:
// its absence aborts the run.
type ConfigCollector struct {
	// ConfigDir is the per-node component configuration directory,
	// <config_base>/<component>/<machine_id>.
	ConfigDir string

	// Component is the subsystem name, e.g. "rgw".
	Component string
}

// ConfigCollectorName is the manifest identifier for this collector.
const ConfigCollectorName = "config"

// Name implements Collector.
func (c *ConfigCollector) Name() string {
	return ConfigCollectorName
}

// Collect copies <ConfigDir>/<component>.conf into the staging root.
// Returns a NOT_FOUND error capturing the missing path when the source
// file is absent.
func (c *ConfigCollector) Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s.conf", c.Component)
	src := filepath.Join(c.ConfigDir, name)

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound,
				"component configuration file not found",
				map[string]any{"path": src})
		}
		return nil, fmt.Errorf("failed to stat component config %q: %w", src, err)
	}

	if err := copyFile(src, stage.Join(name)); err != nil {
		return nil, err
	}

	slog.Info("staged component configuration", "path", src)
	return &Artifact{
		Collector: ConfigCollectorName,
		Files:     []string{name},
	}, nil
}
