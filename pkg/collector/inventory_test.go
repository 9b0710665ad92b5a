package collector

import (
	"context"
	"errors"
	"os"
	"testing"
)

// fakeRunner returns canned command results.
type fakeRunner struct {
	result *CommandResult
	err    error
}

func (f *fakeRunner) Run(_ context.Context, _ string) (*CommandResult, error) {
	return f.result, f.err
}

func TestInventoryCollector(t *testing.T) {
	stage := newStage(t)

	inventory := "cortx-rgw-2.0.0-1.el8.x86_64\ncortx-motr-2.0.0-1.el8.x86_64\n"
	c := &InventoryCollector{
		Runner: &fakeRunner{result: &CommandResult{Stdout: []byte(inventory)}},
	}

	art, err := c.Collect(context.Background(), stage)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if art.Skipped {
		t.Fatal("expected collected artifact, got skip")
	}

	b, err := os.ReadFile(stage.Join(InventoryFileName))
	if err != nil {
		t.Fatalf("inventory file missing: %v", err)
	}
	if string(b) != inventory {
		t.Errorf("inventory content = %q, want verbatim stdout", b)
	}
}

func TestInventoryCollectorNonZeroExit(t *testing.T) {
	stage := newStage(t)

	c := &InventoryCollector{
		Runner: &fakeRunner{result: &CommandResult{ExitCode: 1}},
	}

	art, err := c.Collect(context.Background(), stage)
	if err != nil {
		t.Fatalf("Collect() error = %v, want skip", err)
	}
	if !art.Skipped {
		t.Fatal("expected skip for non-zero exit")
	}
	if _, err := os.Stat(stage.Join(InventoryFileName)); !os.IsNotExist(err) {
		t.Error("inventory file must not be written on non-zero exit")
	}
}

func TestInventoryCollectorRunnerFailure(t *testing.T) {
	stage := newStage(t)

	c := &InventoryCollector{
		Runner: &fakeRunner{err: errors.New("sh: not found")},
	}

	art, err := c.Collect(context.Background(), stage)
	if err != nil {
		t.Fatalf("Collect() error = %v, want skip", err)
	}
	if !art.Skipped {
		t.Fatal("expected skip when the query cannot run")
	}
}

func TestShellRunner(t *testing.T) {
	runner := ShellRunner{}

	t.Run("success with stdout", func(t *testing.T) {
		res, err := runner.Run(context.Background(), "echo hello")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if res.ExitCode != 0 {
			t.Errorf("ExitCode = %d", res.ExitCode)
		}
		if string(res.Stdout) != "hello\n" {
			t.Errorf("Stdout = %q", res.Stdout)
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		res, err := runner.Run(context.Background(), "exit 3")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if res.ExitCode != 3 {
			t.Errorf("ExitCode = %d, want 3", res.ExitCode)
		}
	})
}
