package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultFactory(t *testing.T) {
	f := NewDefaultFactory("rgw")
	require.NotNil(t, f)
	assert.Equal(t, "rgw", f.Component)
	assert.Equal(t, DefaultCrashDir, f.CrashDir)
}

func TestFactoryCreatesCollectors(t *testing.T) {
	f := NewDefaultFactory("rgw")

	cfg, ok := f.CreateConfigCollector("/etc/cortx/rgw/node1").(*ConfigCollector)
	require.True(t, ok)
	assert.Equal(t, "/etc/cortx/rgw/node1", cfg.ConfigDir)
	assert.Equal(t, "rgw", cfg.Component)

	logs, ok := f.CreateLogsCollector("/var/log/cortx/rgw/node1").(*LogsCollector)
	require.True(t, ok)
	assert.Equal(t, "/var/log/cortx/rgw/node1", logs.LogDir)

	core, ok := f.CreateCoredumpCollector(true).(*CoredumpCollector)
	require.True(t, ok)
	assert.True(t, core.Enabled)
	assert.Equal(t, DefaultCrashDir, core.CrashDir)

	inv, ok := f.CreateInventoryCollector().(*InventoryCollector)
	require.True(t, ok)
	assert.Nil(t, inv.Runner)

	svc, ok := f.CreateServicesCollector([]string{"rgw.service"}).(*ServicesCollector)
	require.True(t, ok)
	assert.Equal(t, []string{"rgw.service"}, svc.Services)
}

func TestFactoryCrashDirOverride(t *testing.T) {
	f := NewDefaultFactory("rgw")
	f.CrashDir = "/custom/crash"

	core, ok := f.CreateCoredumpCollector(false).(*CoredumpCollector)
	require.True(t, ok)
	assert.Equal(t, "/custom/crash", core.CrashDir)
}
