package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/hamed0406/envprobe/internal/domain"
)

// Flags binds command-line overrides to a Config. Defaults come from the
// Config as loaded from the environment.
type Flags struct {
	cfg    *Config
	region string
	probes map[domain.ProbeKind]*bool
}

func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{
		cfg:    cfg,
		region: strings.Join(cfg.Regions, ","),
		probes: make(map[domain.ProbeKind]*bool, len(domain.SectionOrder)),
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for log files")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&f.region, "region", f.region, "additional endpoint regions to test, comma separated (e.g. cn)")
	fs.IntVar(&cfg.TimeoutSeconds, "timeout", cfg.TimeoutSeconds, "connection test timeout in seconds, 0 to disable")
	fs.StringVar(&cfg.EndpointsFile, "endpoints", cfg.EndpointsFile, "YAML file extending the built-in endpoints")

	enabled := cfg.Enabled()
	for _, k := range domain.SectionOrder {
		on := enabled[k]
		f.probes[k] = &on
		fs.BoolVar(f.probes[k], k.String(), on, "diagnose "+k.String())
	}
	return f
}

// Apply copies parsed flag values into the Config.
func (f *Flags) Apply() {
	f.cfg.Regions = SplitList(f.region)
	f.cfg.Disabled = nil
	for _, k := range domain.SectionOrder {
		if !*f.probes[k] {
			f.cfg.Disabled = append(f.cfg.Disabled, k.String())
		}
	}
}
