package bundle

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seagate/cortx-rgw-support-bundle/pkg/collector"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/confstore"
	"github.com/Seagate/cortx-rgw-support-bundle/pkg/errors"
)

const testMachineID = "7e5a1c90f3d24b6aa8f0c2d4e6b81357"

type stubRunner struct {
	result *collector.CommandResult
	err    error
}

func (r *stubRunner) Run(_ context.Context, _ string) (*collector.CommandResult, error) {
	return r.result, r.err
}

// testNode is a fake cluster node layout on disk: machine-id file,
// cluster conf store, config and log trees, and a crash-dump dir.
type testNode struct {
	confURI   string
	machineID string
	configDir string
	logDir    string
	crashDir  string
	target    string
	staging   string
}

func newTestNode(t *testing.T) *testNode {
	t.Helper()
	root := t.TempDir()

	n := &testNode{
		configDir: filepath.Join(root, "config", Component, testMachineID),
		logDir:    filepath.Join(root, "log", Component, testMachineID),
		crashDir:  filepath.Join(root, "crash"),
		target:    filepath.Join(root, "target"),
		staging:   filepath.Join(root, "staging"),
	}

	midPath := filepath.Join(root, "machine-id")
	require.NoError(t, os.WriteFile(midPath, []byte(testMachineID+"\n"), 0644))
	n.machineID = midPath

	confPath := filepath.Join(root, "cluster.conf")
	conf := fmt.Sprintf(
		"cortx:\n  common:\n    storage:\n      log: %s\n      config: %s\n",
		filepath.Join(root, "log"), filepath.Join(root, "config"))
	require.NoError(t, os.WriteFile(confPath, []byte(conf), 0644))
	n.confURI = confstore.YAMLURIScheme + confPath

	for dir, files := range map[string][]string{
		n.configDir: {Component + ".conf"},
		n.logDir:    {"rgw.client.radosgw-admin.log", "rgw_setup.log"},
		n.crashDir:  {"meta", "log.gz"},
	} {
		require.NoError(t, os.MkdirAll(dir, 0755))
		for _, f := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(f+" contents"), 0644))
		}
	}
	require.NoError(t, os.MkdirAll(n.staging, 0755))

	return n
}

func (n *testNode) generator() *Generator {
	return New(
		WithVersion("test"),
		WithMachineIDProvider(&confstore.FileMachineID{Path: n.machineID}),
		WithStagingBase(n.staging),
		WithFactory(&collector.DefaultFactory{
			Component: Component,
			CrashDir:  n.crashDir,
			Runner:    &stubRunner{result: &collector.CommandResult{Stdout: []byte("cortx-rgw-2.0.0\n")}},
		}),
	)
}

func (n *testNode) request(bundleID string) *Request {
	return &Request{
		BundleID:       bundleID,
		TargetPath:     n.target,
		ClusterConfURI: n.confURI,
		Coredumps:      true,
	}
}

// archiveEntries returns the entry names inside a gzipped tarball.
func archiveEntries(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gr.Close()

	var names []string
	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	return names
}

func stepByName(t *testing.T, steps []StepResult, name string) StepResult {
	t.Helper()
	for _, s := range steps {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("step %q not found in %v", name, steps)
	return StepResult{}
}

func TestGenerate(t *testing.T) {
	node := newTestNode(t)

	out, err := node.generator().Generate(context.Background(), node.request("SB101"))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "SB101", out.BundleID)
	assert.Equal(t, testMachineID, out.MachineID)
	assert.NotEmpty(t, out.RunID)
	assert.Greater(t, out.ArchiveSize, int64(0))
	assert.NotEmpty(t, out.Summary())

	wantArchive := filepath.Join(node.target, Component, "rgw_SB101.tar.gz")
	assert.Equal(t, wantArchive, out.ArchivePath)
	_, err = os.Stat(wantArchive)
	require.NoError(t, err)

	// Staging must be gone after a successful run.
	leftovers, err := os.ReadDir(node.staging)
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	// Every step ran; only services (no units requested) was skipped.
	require.Len(t, out.Steps, 5)
	assert.Equal(t, StatusCollected, stepByName(t, out.Steps, "config").Status)
	assert.Equal(t, StatusCollected, stepByName(t, out.Steps, "logs").Status)
	assert.Equal(t, StatusCollected, stepByName(t, out.Steps, "coredump").Status)
	assert.Equal(t, StatusCollected, stepByName(t, out.Steps, "inventory").Status)
	assert.Equal(t, StatusSkipped, stepByName(t, out.Steps, "services").Status)
	assert.Equal(t, 1, out.SkippedCount())

	// All entries live under a single top-level directory named after
	// the staging dir.
	entries := archiveEntries(t, wantArchive)
	root := "rgw_SB101/"
	for _, name := range entries {
		assert.True(t, name == "rgw_SB101" || len(name) > len(root) && name[:len(root)] == root,
			"entry %q outside bundle root", name)
	}
	assert.Contains(t, entries, "rgw_SB101/rgw.conf")
	assert.Contains(t, entries, "rgw_SB101/rgw.client.radosgw-admin.log")
	assert.Contains(t, entries, "rgw_SB101/rgw_setup.log")
	assert.Contains(t, entries, "rgw_SB101/crash/meta")
	assert.Contains(t, entries, "rgw_SB101/"+collector.InventoryFileName)
	assert.Contains(t, entries, "rgw_SB101/"+ManifestFileName)
	assert.Contains(t, entries, "rgw_SB101/checksums.txt")
}

func TestGenerateMissingConfig(t *testing.T) {
	node := newTestNode(t)
	require.NoError(t, os.Remove(filepath.Join(node.configDir, Component+".conf")))

	out, err := node.generator().Generate(context.Background(), node.request("SB102"))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))

	// Nothing published, staging cleaned up.
	_, err = os.Stat(filepath.Join(node.target, Component, "rgw_SB102.tar.gz"))
	assert.True(t, os.IsNotExist(err))
	leftovers, err := os.ReadDir(node.staging)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestGenerateMissingLogDir(t *testing.T) {
	node := newTestNode(t)
	require.NoError(t, os.RemoveAll(node.logDir))

	out, err := node.generator().Generate(context.Background(), node.request("SB103"))
	require.NoError(t, err)

	assert.Equal(t, StatusSkipped, stepByName(t, out.Steps, "logs").Status)
	_, err = os.Stat(out.ArchivePath)
	require.NoError(t, err)
}

func TestGenerateCoredumpsDisabled(t *testing.T) {
	node := newTestNode(t)
	req := node.request("SB104")
	req.Coredumps = false

	out, err := node.generator().Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, StatusSkipped, stepByName(t, out.Steps, "coredump").Status)
	for _, name := range archiveEntries(t, out.ArchivePath) {
		assert.NotContains(t, name, "/crash/")
	}
}

func TestGeneratePurgesLeftoverStaging(t *testing.T) {
	node := newTestNode(t)

	// Leave debris from a previous aborted run of the same bundle id.
	stale := filepath.Join(node.staging, "rgw_SB105")
	require.NoError(t, os.MkdirAll(stale, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "stale.dat"), []byte("old"), 0644))

	out, err := node.generator().Generate(context.Background(), node.request("SB105"))
	require.NoError(t, err)

	assert.NotContains(t, archiveEntries(t, out.ArchivePath), "rgw_SB105/stale.dat")
}

func TestGenerateCanceled(t *testing.T) {
	node := newTestNode(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := node.generator().Generate(ctx, node.request("SB106"))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, errors.ErrCodeInterrupted, errors.CodeOf(err))

	_, err = os.Stat(filepath.Join(node.target, Component, "rgw_SB106.tar.gz"))
	assert.True(t, os.IsNotExist(err))
	leftovers, err := os.ReadDir(node.staging)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestGenerateRequestValidation(t *testing.T) {
	node := newTestNode(t)
	g := node.generator()

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"missing bundle id", &Request{TargetPath: node.target, ClusterConfURI: node.confURI}},
		{"missing target", &Request{BundleID: "SB1", ClusterConfURI: node.confURI}},
		{"missing conf uri", &Request{BundleID: "SB1", TargetPath: node.target}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), tc.req)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidArgument, errors.CodeOf(err))
		})
	}
}
