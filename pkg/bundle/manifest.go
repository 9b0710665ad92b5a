package bundle

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// ManifestFileName is the manifest's name inside the staged bundle.
const ManifestFileName = "manifest.yaml"

// Manifest is written into the bundle so the consumer can tell what was
// collected, what was skipped and why, without re-running anything on
// the node.
type Manifest struct {
	BundleID    string    `yaml:"bundle_id"`
	RunID       string    `yaml:"run_id"`
	Component   string    `yaml:"component"`
	MachineID   string    `yaml:"machine_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	ToolVersion string    `yaml:"tool_version"`

	// Requested options, recorded as given. Window and SizeLimit are
	// informational; collection does not enforce them.
	Window     string `yaml:"window,omitempty"`
	SizeLimit  uint64 `yaml:"size_limit_bytes,omitempty"`
	Binlogs    bool   `yaml:"binlogs"`
	Stacktrace bool   `yaml:"stacktrace"`
	Modules    string `yaml:"modules,omitempty"`

	Steps []StepResult `yaml:"steps"`
}

// write serializes the manifest into the staging root.
func (m *Manifest) write(stage *staging.Dir) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal bundle manifest: %w", err)
	}
	if err := os.WriteFile(stage.Join(ManifestFileName), b, 0644); err != nil {
		return fmt.Errorf("failed to write bundle manifest: %w", err)
	}
	return nil
}
