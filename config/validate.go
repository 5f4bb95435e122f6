package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the parts of the configuration that have no workable
// zero value. Defaults are filled in where a missing value is harmless.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Database.Port <= 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	if c.Logging.Output.File.Enabled && c.Logging.Output.File.Path == "" {
		errs = append(errs, errors.New("logging.output.file.path is required when file output is enabled"))
	}
	if c.Logging.Output.Loki.Enabled && c.Logging.Output.Loki.Endpoint == "" {
		errs = append(errs, errors.New("logging.output.loki.endpoint is required when loki output is enabled"))
	}

	if c.Email.Enabled {
		if c.Email.From == "" {
			errs = append(errs, errors.New("email.from is required when email is enabled"))
		}
		if c.Email.SMTP.Host == "" {
			errs = append(errs, errors.New("email.smtp.host is required when email is enabled"))
		}
	}

	if c.Observability.Enabled && c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "hms_backend"
	}

	return errors.Join(errs...)
}
