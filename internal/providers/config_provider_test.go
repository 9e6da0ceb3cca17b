package providers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ard/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "secret_abc")
	t.Setenv("NOTION_PAGE_ID", "parent-page")
	t.Setenv("TWITTER_USER_TOKEN", "tw-token")
	t.Setenv("TWITTER_USER_NAME", "gopher")
	t.Setenv("STORAGE_ACCOUNT_NAME", "account")
	t.Setenv("STORAGE_ACCOUNT_KEY", "a2V5")
}

func TestNewConfigProvider_EnvOnly(t *testing.T) {
	setSecrets(t)

	conf, err := NewConfigProvider(&structures.CliFlags{DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "ActivityReportDaemon", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, "secret_abc", conf.Notion.Token)
	assert.Equal(t, "parent-page", conf.Notion.ParentPageID)
	assert.Equal(t, "gopher", conf.Twitter.UserName)
	assert.Equal(t, "account", conf.Storage.AccountName)
	assert.Equal(t, "charts", conf.Storage.Container)
	assert.Equal(t, "Twitter activity", conf.Notion.PageTitle)
	assert.Equal(t, 24*time.Hour, conf.Schedule.Interval)
	assert.Equal(t, 1000, conf.Chart.Width)
	assert.Equal(t, 300, conf.Chart.Height)
}

func TestNewConfigProvider_FileOverridesDefaults(t *testing.T) {
	setSecrets(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ard.yaml")
	yaml := `
schedule:
  interval: 6h
  runOnStart: true
webServer:
  port: 9090
notion:
  pageTitle: "Weekly tweets"
chart:
  barColor: navy
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 6*time.Hour, conf.Schedule.Interval)
	assert.True(t, conf.Schedule.RunOnStart)
	assert.Equal(t, 9090, conf.WebServer.Port)
	assert.Equal(t, "Weekly tweets", conf.Notion.PageTitle)
	assert.Equal(t, "navy", conf.Chart.BarColor)
}

func TestNewConfigProvider_EnvOverridesFile(t *testing.T) {
	setSecrets(t)
	t.Setenv("ARD_LOG_LEVEL", "debug")

	dir := t.TempDir()
	path := filepath.Join(dir, "ard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: error\n"), 0644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestNewConfigProvider_MissingFileIsNotAnError(t *testing.T) {
	setSecrets(t)

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.NoError(t, err)
}

func TestNewConfigProvider_MissingSecrets(t *testing.T) {
	for _, env := range []string{"NOTION_API_TOKEN", "NOTION_PAGE_ID", "TWITTER_USER_TOKEN", "TWITTER_USER_NAME", "STORAGE_ACCOUNT_NAME", "STORAGE_ACCOUNT_KEY"} {
		t.Setenv(env, "")
	}

	_, err := NewConfigProvider(&structures.CliFlags{})
	assert.Error(t, err)
}

func TestNewConfigProvider_MalformedFile(t *testing.T) {
	setSecrets(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schedule: [unclosed"), 0644))

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
