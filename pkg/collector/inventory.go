package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/defaults"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/staging"
)

// InventoryFileName is the staged file holding the package inventory.
const InventoryFileName = "cortx-rpms"

// PackageQuery is the shell command listing installed product packages.
const PackageQuery = "rpm -qa | grep ^cortx"

// CommandResult is the structured outcome of one external command.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner executes an external command and returns its structured
// result. A non-zero exit is reported through CommandResult, not through
// the error; the error is reserved for failures to run at all.
type CommandRunner interface {
	Run(ctx context.Context, command string) (*CommandResult, error)
}

// ShellRunner runs commands through /bin/sh -c.
type ShellRunner struct{}

// Run implements CommandRunner.
func (ShellRunner) Run(ctx context.Context, command string) (*CommandResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %q: %w", command, err)
		}
	}

	return &CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// InventoryCollector captures the installed product package inventory.
// The query is best-effort: any failure to produce output is a skip.
type InventoryCollector struct {
	// Runner executes the package query. Nil means ShellRunner.
	Runner CommandRunner

	// Timeout bounds the query. Zero means defaults.InventoryTimeout.
	Timeout time.Duration
}

// InventoryCollectorName is the manifest identifier for this collector.
const InventoryCollectorName = "inventory"

// Name implements Collector.
func (c *InventoryCollector) Name() string {
	return InventoryCollectorName
}

// Collect runs the package query and, when it exits zero, writes its
// captured standard output verbatim to staging/cortx-rpms.
func (c *InventoryCollector) Collect(ctx context.Context, stage *staging.Dir) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runner := c.Runner
	if runner == nil {
		runner = ShellRunner{}
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaults.InventoryTimeout
	}

	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := runner.Run(qctx, PackageQuery)
	if err != nil {
		// Inventory is best-effort; a host without the package manager
		// still produces a bundle.
		slog.Debug("package query could not run, skipping inventory",
			"command", PackageQuery, "error", err)
		return skipped(InventoryCollectorName, "package query could not run"), nil
	}
	if res.ExitCode != 0 {
		slog.Debug("package query exited non-zero, skipping inventory",
			"command", PackageQuery, "exit_code", res.ExitCode)
		return skipped(InventoryCollectorName,
			fmt.Sprintf("package query exited with status %d", res.ExitCode)), nil
	}

	if err := os.WriteFile(stage.Join(InventoryFileName), res.Stdout, 0644); err != nil {
		return nil, fmt.Errorf("failed to write package inventory: %w", err)
	}

	slog.Info("staged package inventory", "bytes", len(res.Stdout))
	return &Artifact{
		Collector: InventoryCollectorName,
		Files:     []string{InventoryFileName},
	}, nil
}
