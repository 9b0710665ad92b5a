package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
	"gopkg.in/yaml.v3"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/defaults"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// ServicesFileName is the staged file holding service state.
const ServicesFileName = "services.yaml"

// unitStateKeys are the systemd unit properties worth bundling. Full
// property dumps are noisy and can leak credentials.
var unitStateKeys = []string{
	"Description",
	"LoadState",
	"ActiveState",
	"SubState",
	"FragmentPath",
}

// unitStateReader is the systemd connection surface the collector needs.
// Satisfied by *dbus.Conn; replaced in tests.
type unitStateReader interface {
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]interface{}, error)
	Close()
}

// ServicesCollector captures the state of the target systemd services
// into staging/services.yaml. Unavailable D-Bus (containers, test rigs)
// is a skip, not a failure.
type ServicesCollector struct {
	// Services are the systemd unit names to capture.
	Services []string

	// Timeout bounds the D-Bus queries. Zero means defaults.ServicesTimeout.
	Timeout time.Duration

	// dial overrides the systemd connection for tests.
	dial func(ctx context.Context) (unitStateReader, error)
}

// ServicesCollectorName is the manifest identifier for this collector.
const ServicesCollectorName = "services"

// Name implements Collector.
func (c *ServicesCollector) Name() string {
	return ServicesCollectorName
}

// Collect queries systemd for each target service and stages the result.
func (c *ServicesCollector) Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(c.Services) == 0 {
		return skipped(ServicesCollectorName, "no target services requested"), nil
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaults.ServicesTimeout
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := c.dial
	if dial == nil {
		dial = func(ctx context.Context) (unitStateReader, error) {
			return dbus.NewSystemdConnectionContext(ctx)
		}
	}

	conn, err := dial(qctx)
	if err != nil {
		slog.Warn("systemd is not reachable, skipping service state collection",
			"error", err)
		return skipped(ServicesCollectorName, "systemd is not reachable"), nil
	}
	defer conn.Close()

	states := make(map[string]map[string]string, len(c.Services))
	for _, service := range c.Services {
		props, err := conn.GetUnitPropertiesContext(qctx, service)
		if err != nil {
			return nil, fmt.Errorf("failed to get unit properties for %q: %w", service, err)
		}

		state := make(map[string]string, len(unitStateKeys))
		for _, key := range unitStateKeys {
			if v, ok := props[key]; ok {
				state[key] = fmt.Sprintf("%v", v)
			}
		}
		states[service] = state
	}

	b, err := yaml.Marshal(states)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service states: %w", err)
	}
	if err := os.WriteFile(stage.Join(ServicesFileName), b, 0644); err != nil {
		return nil, fmt.Errorf("failed to write service states: %w", err)
	}

	slog.Info("staged service states", "count", len(states))
	return &Artifact{
		Collector: ServicesCollectorName,
		Files:     []string{ServicesFileName},
	}, nil
}
