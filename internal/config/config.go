package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/teableio/devreaper/internal/errors"
)

// Config holds everything one cleanup process needs. It is built once at
// startup and passed explicitly into each component; nothing reads the
// environment after Load returns.
type Config struct {
	ProjectID        string        `mapstructure:"project_id"`
	Zone             string        `mapstructure:"zone"`
	IdleTimeoutHours int           `mapstructure:"idle_timeout_hours"`
	CredentialsFile  string        `mapstructure:"credentials_file"`
	ListenAddr       string        `mapstructure:"listen_addr"`
	NATSURL          string        `mapstructure:"nats_url"`
	NATSSubject      string        `mapstructure:"nats_subject"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	PollTimeout      time.Duration `mapstructure:"poll_timeout"`
}

// Load reads configuration from the environment and an optional config
// file. Environment variables win over file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("project_id", "teable-666")
	v.SetDefault("zone", "asia-east2-a")
	v.SetDefault("idle_timeout_hours", 12)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("nats_subject", "devreaper.cleanup")
	v.SetDefault("poll_interval", 2*time.Second)
	v.SetDefault("poll_timeout", 15*time.Minute)

	v.BindEnv("project_id", "GCP_PROJECT_ID")
	v.BindEnv("zone", "GCP_ZONE")
	v.BindEnv("idle_timeout_hours", "IDLE_TIMEOUT_HOURS")
	v.BindEnv("credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")
	v.BindEnv("listen_addr", "LISTEN_ADDR")
	v.BindEnv("nats_url", "NATS_URL")
	v.BindEnv("nats_subject", "NATS_SUBJECT")
	v.BindEnv("poll_interval", "POLL_INTERVAL")
	v.BindEnv("poll_timeout", "POLL_TIMEOUT")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ProjectID == "" {
		return apperrors.ProjectConfigurationError()
	}
	if c.Zone == "" {
		return apperrors.New(apperrors.ErrorTypeConfiguration, "GCP zone not configured").
			WithSolutions(`export GCP_ZONE="asia-east2-a"`)
	}
	if c.IdleTimeoutHours <= 0 {
		return apperrors.New(apperrors.ErrorTypeConfiguration, "idle timeout must be positive").
			WithCause(fmt.Sprintf("IDLE_TIMEOUT_HOURS=%d", c.IdleTimeoutHours)).
			WithSolutions("set IDLE_TIMEOUT_HOURS to a positive number of hours")
	}
	return nil
}

// IdleTimeout returns the configured idle threshold as a duration.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutHours) * time.Hour
}
