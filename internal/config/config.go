package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/hamed0406/envprobe/internal/domain"
)

type Config struct {
	Addr           string   // listen address, e.g. "0.0.0.0:9000"
	LogDir         string   // logs directory
	LogFile        string   // log file name under LogDir
	LogLevel       string   // zap level name, e.g. "info"
	LogMaxSizeMB   int      // rotate after this many megabytes
	LogMaxBackups  int      // rotated files kept
	LogMaxAgeDays  int      // days a rotated file is kept
	Regions        []string // raw region tokens, e.g. ["cn", " EU"]
	TimeoutSeconds int      // fetch timeout per endpoint; 0 disables it
	Disabled       []string // probe kinds left out of the report
	EndpointsFile  string   // optional YAML extending the built-in endpoints
}

// LoadDotEnv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func FromEnv() Config {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "0.0.0.0:9000"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// unparsable values fall back to the default; negative ones are kept
	// so Validate reports them
	timeout := 10
	if v := strings.TrimSpace(os.Getenv("TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			timeout = n
		}
	}

	logFile := strings.TrimSpace(os.Getenv("LOG_FILE"))
	if logFile == "" {
		logFile = "envprobe.log"
	}
	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:           addr,
		LogDir:         logDir,
		LogFile:        logFile,
		LogLevel:       logLevel,
		LogMaxSizeMB:   atoiDefault(os.Getenv("LOG_MAX_SIZE_MB"), 10),
		LogMaxBackups:  atoiDefault(os.Getenv("LOG_MAX_BACKUPS"), 5),
		LogMaxAgeDays:  atoiDefault(os.Getenv("LOG_MAX_AGE_DAYS"), 14),
		Regions:        SplitList(os.Getenv("REGION")),
		TimeoutSeconds: timeout,
		Disabled:       SplitList(os.Getenv("PROBES_DISABLED")),
		EndpointsFile:  strings.TrimSpace(os.Getenv("ENDPOINTS_FILE")),
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs error
	if c.TimeoutSeconds < 0 {
		errs = multierr.Append(errs, fmt.Errorf("timeout must be >= 0, got %d", c.TimeoutSeconds))
	}
	for _, name := range c.Disabled {
		if _, err := domain.ParseProbeKind(name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if c.Addr == "" {
		errs = multierr.Append(errs, errors.New("listen address is empty"))
	}
	if _, err := c.Level(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Enabled returns the probe kinds that are not disabled.
func (c Config) Enabled() map[domain.ProbeKind]bool {
	out := make(map[domain.ProbeKind]bool, len(domain.SectionOrder))
	for _, k := range domain.SectionOrder {
		out[k] = true
	}
	for _, name := range c.Disabled {
		if k, err := domain.ParseProbeKind(name); err == nil {
			out[k] = false
		}
	}
	return out
}

// SplitList splits a comma separated value, dropping blank items.
func SplitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// atoiDefault parses a positive int, falling back to def.
func atoiDefault(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
