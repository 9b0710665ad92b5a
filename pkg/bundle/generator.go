package bundle

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/archive"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/collector"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/confstore"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// Generator assembles one support bundle per Generate call. The zero
// value is not usable; construct with New.
type Generator struct {
	component   string
	version     string
	machineID   confstore.MachineIDProvider
	factory     collector.Factory
	stagingBase string
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithComponent overrides the target component. Default is Component.
func WithComponent(component string) Option {
	return func(g *Generator) {
		g.component = component
	}
}

// WithVersion records the tool version in the bundle manifest.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithMachineIDProvider overrides the machine identity source.
func WithMachineIDProvider(p confstore.MachineIDProvider) Option {
	return func(g *Generator) {
		g.machineID = p
	}
}

// WithFactory overrides the collector factory.
func WithFactory(f collector.Factory) Option {
	return func(g *Generator) {
		g.factory = f
	}
}

// WithStagingBase overrides the base directory for staging directories.
// Used by tests; production runs stage under the system temp dir.
func WithStagingBase(base string) Option {
	return func(g *Generator) {
		g.stagingBase = base
	}
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{
		component: Component,
		version:   "dev",
		machineID: &confstore.FileMachineID{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.factory == nil {
		g.factory = collector.NewDefaultFactory(g.component)
	}
	return g
}

// Generate runs the full collection sequence for the given request and
// produces the compressed bundle archive. Steps run strictly in order;
// the staging directory is removed on every exit path, and a partially
// written archive never survives a failed or interrupted run.
func (g *Generator) Generate(ctx context.Context, req *Request) (*Output, error) {
	start := time.Now()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Step 1: resolve configuration.
	machineID, err := g.machineID.MachineID()
	if err != nil {
		return nil, err
	}

	store, err := confstore.Open(req.ClusterConfURI)
	if err != nil {
		return nil, err
	}
	logBase, err := store.Get(LogBaseKey)
	if err != nil {
		return nil, err
	}
	configBase, err := store.Get(ConfigBaseKey)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	slog.Info("starting bundle generation",
		"bundle_id", req.BundleID,
		"run_id", runID,
		"component", g.component,
		"machine_id", machineID,
		"target", req.TargetPath,
	)

	// Step 2: prepare the staging directory, purging any leftover from
	// a prior aborted run.
	stage, err := g.prepareStaging(req.BundleID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := stage.Remove(); rerr != nil {
			slog.Error("failed to clean up staging directory",
				"path", stage.Path(), "error", rerr)
		}
	}()

	configDir := filepath.Join(configBase, g.component, machineID)
	logDir := filepath.Join(logBase, g.component, machineID)

	// Steps 3-6: stage artifacts, strictly in order.
	collectors := []collector.Collector{
		g.factory.CreateConfigCollector(configDir),
		g.factory.CreateLogsCollector(logDir),
		g.factory.CreateCoredumpCollector(req.Coredumps),
		g.factory.CreateInventoryCollector(),
		g.factory.CreateServicesCollector(req.Services),
	}

	steps := make([]StepResult, 0, len(collectors))
	totalFiles := 0
	for _, c := range collectors {
		step, err := runStep(ctx, c, stage)
		steps = append(steps, step)
		if err != nil {
			return nil, wrapInterrupted(err)
		}
		totalFiles += len(step.Files)
	}

	// Record the manifest before checksumming so its own entry is covered.
	manifest := &Manifest{
		BundleID:    req.BundleID,
		RunID:       runID,
		Component:   g.component,
		MachineID:   machineID,
		GeneratedAt: start.UTC(),
		ToolVersion: g.version,
		Window:      formatWindow(req.Window),
		SizeLimit:   req.SizeLimit,
		Binlogs:     req.Binlogs,
		Stacktrace:  req.Stacktrace,
		Modules:     req.Modules,
		Steps:       steps,
	}
	if err := manifest.write(stage); err != nil {
		return nil, err
	}
	if err := archive.WriteChecksums(stage.Path()); err != nil {
		return nil, err
	}

	// Step 7: produce the archive.
	archivePath, err := g.writeArchive(ctx, req, stage)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive %q: %w", archivePath, err)
	}

	out := &Output{
		BundleID:      req.BundleID,
		RunID:         runID,
		MachineID:     machineID,
		ArchivePath:   archivePath,
		ArchiveSize:   info.Size(),
		TotalFiles:    totalFiles,
		TotalDuration: time.Since(start),
		Steps:         steps,
	}

	slog.Info("bundle generation complete", "summary", out.Summary())
	return out, nil
}

func (g *Generator) prepareStaging(bundleID string) (*staging.Dir, error) {
	if g.stagingBase != "" {
		return staging.PrepareAt(g.stagingBase, g.component, bundleID)
	}
	return staging.Prepare(g.component, bundleID)
}

// writeArchive creates <target>/<component>/<component>_<bundle_id>.tar.gz
// from the staging tree. A partial archive left by a failed or canceled
// write is removed before returning.
func (g *Generator) writeArchive(ctx context.Context, req *Request, stage *staging.Dir) (string, error) {
	outDir := filepath.Join(req.TargetPath, g.component)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	archivePath := filepath.Join(outDir, fmt.Sprintf("%s_%s.tar.gz", g.component, req.BundleID))

	if err := ctx.Err(); err != nil {
		return "", wrapInterrupted(err)
	}
	if err := archive.Create(archivePath, stage.Path(), stage.BaseName()); err != nil {
		if rerr := os.Remove(archivePath); rerr != nil && !os.IsNotExist(rerr) {
			slog.Error("failed to remove partial archive", "path", archivePath, "error", rerr)
		}
		return "", wrapInterrupted(err)
	}
	if err := ctx.Err(); err != nil {
		// Canceled while archiving finished; honor the abort and
		// discard the output.
		if rerr := os.Remove(archivePath); rerr != nil {
			slog.Error("failed to remove archive after cancellation",
				"path", archivePath, "error", rerr)
		}
		return "", wrapInterrupted(err)
	}

	return archivePath, nil
}

// runStep executes one collector and converts its artifact into a
// StepResult.
func runStep(ctx context.Context, c collector.Collector, stage *staging.Dir) (StepResult, error) {
	stepStart := time.Now()

	art, err := c.Collect(ctx, stage)
	step := StepResult{
		Name:     c.Name(),
		Duration: time.Since(stepStart),
	}

	if err != nil {
		step.Status = StatusFailed
		step.Reason = err.Error()
		slog.Error("collection step failed", "step", c.Name(), "error", err)
		return step, err
	}

	step.Files = art.Files
	if art.Skipped {
		step.Status = StatusSkipped
		step.Reason = art.Reason
	} else {
		step.Status = StatusCollected
	}
	return step, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "request cannot be nil")
	}
	if req.BundleID == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "bundle id is required")
	}
	if req.TargetPath == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "target path is required")
	}
	if req.ClusterConfURI == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "cluster configuration URI is required")
	}
	return nil
}

// wrapInterrupted converts operator cancellation into an INTERRUPTED
// structured error and a blown run deadline into TIMEOUT; other errors
// pass through unchanged.
func wrapInterrupted(err error) error {
	switch {
	case stderrors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrCodeInterrupted, "bundle generation aborted", err)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, "bundle generation timed out", err)
	default:
		return err
	}
}

func formatWindow(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
