package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/atrium-hq/atrium/pkg/usecase"
)

// App holds the CLI flag pointing at the optional TOML application
// configuration file
type App struct {
	path string
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML application configuration file",
			Sources:     cli.EnvVars("ATRIUM_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads and validates the application configuration. With no
// config path set, built-in defaults are returned.
func (a *App) Configure() (*AppConfig, error) {
	if a.path == "" {
		cfg := &AppConfig{}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadAppConfiguration(a.path)
}

// AppConfig represents the application configuration
type AppConfig struct {
	Summary SummarySchedule `toml:"summary"`
	Meeting MeetingDefaults `toml:"meeting"`
}

// SummarySchedule configures the periodic summary refresh of an active
// meeting
type SummarySchedule struct {
	InitialDelay string `toml:"initial_delay"`
	Interval     string `toml:"interval"`

	initialDelay time.Duration
	interval     time.Duration
}

// Validate parses the configured durations, falling back to the built-in
// refresh schedule for unset fields
func (s *SummarySchedule) Validate() error {
	s.initialDelay = usecase.DefaultRefreshInitialDelay
	s.interval = usecase.DefaultRefreshInterval

	if s.InitialDelay != "" {
		d, err := time.ParseDuration(s.InitialDelay)
		if err != nil || d <= 0 {
			return goerr.Wrap(ErrInvalidDuration, "summary.initial_delay must be a positive duration",
				goerr.V(FieldKey, "summary.initial_delay"),
				goerr.V("value", s.InitialDelay),
			)
		}
		s.initialDelay = d
	}

	if s.Interval != "" {
		d, err := time.ParseDuration(s.Interval)
		if err != nil || d <= 0 {
			return goerr.Wrap(ErrInvalidDuration, "summary.interval must be a positive duration",
				goerr.V(FieldKey, "summary.interval"),
				goerr.V("value", s.Interval),
			)
		}
		s.interval = d
	}

	return nil
}

// Schedule returns the parsed refresh schedule
func (s *SummarySchedule) Schedule() (initialDelay, interval time.Duration) {
	return s.initialDelay, s.interval
}

// MeetingDefaults configures how meeting start times are interpreted
type MeetingDefaults struct {
	Timezone string `toml:"timezone"`

	location *time.Location
}

// Validate resolves the configured timezone, defaulting to the host
// local zone
func (m *MeetingDefaults) Validate() error {
	if m.Timezone == "" {
		m.location = time.Local
		return nil
	}

	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return goerr.Wrap(ErrInvalidTimezone, "meeting.timezone is not a valid IANA zone",
			goerr.V(FieldKey, "meeting.timezone"),
			goerr.V("value", m.Timezone),
		)
	}
	m.location = loc
	return nil
}

// Location returns the resolved timezone for meeting start times
func (m *MeetingDefaults) Location() *time.Location {
	return m.location
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if err := a.Summary.Validate(); err != nil {
		return goerr.Wrap(err, "invalid summary configuration")
	}
	if err := a.Meeting.Validate(); err != nil {
		return goerr.Wrap(err, "invalid meeting configuration")
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "configuration file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}
