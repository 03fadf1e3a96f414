package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/atrium-hq/atrium/pkg/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atrium.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	path := writeConfig(t, `
[summary]
initial_delay = "30s"
interval = "2m"

[meeting]
timezone = "Asia/Tokyo"
`)

	cfg, err := config.LoadAppConfiguration(path)
	gt.NoError(t, err).Required()

	initialDelay, interval := cfg.Summary.Schedule()
	gt.Value(t, initialDelay).Equal(30 * time.Second)
	gt.Value(t, interval).Equal(2 * time.Minute)
	gt.Value(t, cfg.Meeting.Location().String()).Equal("Asia/Tokyo")
}

func TestLoadAppConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.LoadAppConfiguration(path)
	gt.NoError(t, err).Required()

	initialDelay, interval := cfg.Summary.Schedule()
	gt.Value(t, initialDelay).Equal(2 * time.Minute)
	gt.Value(t, interval).Equal(5 * time.Minute)
	gt.Value(t, cfg.Meeting.Location()).Equal(time.Local)
}

func TestLoadAppConfigurationInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "malformed duration",
			content: `
[summary]
interval = "five minutes"
`,
		},
		{
			name: "negative duration",
			content: `
[summary]
initial_delay = "-1m"
`,
		},
		{
			name: "unknown timezone",
			content: `
[meeting]
timezone = "Mars/Olympus_Mons"
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := config.LoadAppConfiguration(path)
			gt.Error(t, err)
		})
	}
}

func TestLoadAppConfigurationMissingFile(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
}
