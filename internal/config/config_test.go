package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("NAUKRI_EMAIL", "user@example.com")
	t.Setenv("NAUKRI_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"DevOps Engineer", "Site Reliability Engineer"}, cfg.Search.Titles)
	assert.Equal(t, []string{"Remote"}, cfg.Search.Locations)
	assert.Equal(t, 2, cfg.Search.Experience)
	assert.Equal(t, 1, cfg.Run.IntervalHours)
	assert.True(t, cfg.Run.RotateProfile)
	assert.False(t, cfg.Run.ApplyJobs)
	assert.False(t, cfg.Run.EarlyAccess)
	assert.Equal(t, 3, cfg.Run.MaxApplications)
	assert.Equal(t, 2, cfg.Run.EarlyAccessLimit)
	assert.Equal(t, "debug", cfg.Paths.DebugDir)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.ReporterEnabled())
}

func TestLoadOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("JOB_TITLES", "Platform Engineer , Cloud Engineer,")
	t.Setenv("JOB_LOCATIONS", "Bengaluru")
	t.Setenv("JOB_EXPERIENCE", "5")
	t.Setenv("MAX_APPLICATIONS", "7")
	t.Setenv("RUN_JOB_APPLICATIONS", "true")
	t.Setenv("RUN_SUMMARY_ROTATION", "false")
	t.Setenv("INTERVAL_HOURS", "0")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Platform Engineer", "Cloud Engineer"}, cfg.Search.Titles)
	assert.Equal(t, []string{"Bengaluru"}, cfg.Search.Locations)
	assert.Equal(t, 5, cfg.Search.Experience)
	assert.Equal(t, 7, cfg.Run.MaxApplications)
	assert.True(t, cfg.Run.ApplyJobs)
	assert.False(t, cfg.Run.RotateProfile)
	assert.Equal(t, 0, cfg.Run.IntervalHours)
	assert.True(t, cfg.ReporterEnabled())
	assert.Equal(t, int64(12345), cfg.Telegram.ChatID)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("NAUKRI_EMAIL", "")
	t.Setenv("NAUKRI_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidChatID(t *testing.T) {
	setCredentials(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	setCredentials(t)
	t.Setenv("MAX_APPLICATIONS", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Run.MaxApplications)
}

func TestLoadHeadlines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headlines.yaml")
	content := "headlines:\n  - \"DevOps Engineer | AWS | Kubernetes\"\n  - \"\"\n  - \"SRE | Terraform | CI/CD\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := &Config{Paths: Paths{Headlines: path}}
	headlines, err := cfg.LoadHeadlines()
	require.NoError(t, err)
	assert.Equal(t, []string{"DevOps Engineer | AWS | Kubernetes", "SRE | Terraform | CI/CD"}, headlines)
}

func TestLoadHeadlinesMissingFile(t *testing.T) {
	cfg := &Config{Paths: Paths{Headlines: filepath.Join(t.TempDir(), "absent.yaml")}}
	_, err := cfg.LoadHeadlines()
	assert.Error(t, err)
}

func TestLoadHeadlinesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headlines: []\n"), 0644))

	cfg := &Config{Paths: Paths{Headlines: path}}
	_, err := cfg.LoadHeadlines()
	assert.Error(t, err)
}
