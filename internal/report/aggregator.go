package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/config"
	"github.com/hamed0406/envprobe/internal/domain"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/probe"
)

// Collaborator produces the text of one non-network section.
type Collaborator interface {
	Run(ctx context.Context) (string, error)
}

// BatchRunner probes the endpoints of a registry.
type BatchRunner interface {
	Run(ctx context.Context, reg *endpoints.Registry, regions []string, timeoutSeconds int) probe.Batch
}

// Settings selects what a report contains. A nil Enabled enables every kind.
type Settings struct {
	Enabled        map[domain.ProbeKind]bool
	Regions        []string
	TimeoutSeconds int
}

func FromConfig(cfg config.Config) Settings {
	return Settings{
		Enabled:        cfg.Enabled(),
		Regions:        cfg.Regions,
		TimeoutSeconds: cfg.TimeoutSeconds,
	}
}

func (s Settings) enabled(k domain.ProbeKind) bool {
	if s.Enabled == nil {
		return true
	}
	return s.Enabled[k]
}

var titles = map[domain.ProbeKind]string{
	domain.KindIdentity:  "Go Info",
	domain.KindToolchain: "Toolchain Info",
	domain.KindBuild:     "Build Info",
	domain.KindOS:        "System Info",
	domain.KindHardware:  "Hardware Info",
	domain.KindNetwork:   "Network Test",
	domain.KindLoad:      "Load Test",
	domain.KindIP:        "IP Test",
	domain.KindTime:      "Time Test",
}

// Report is the ordered set of sections produced by one Build.
type Report struct {
	Sections []domain.Section
	Warnings []domain.UnknownRegionWarning
}

// Err combines the errors of every degraded section, or returns nil.
func (r *Report) Err() error {
	var errs error
	for _, s := range r.Sections {
		if s.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", s.Kind, s.Err))
		}
	}
	return errs
}

func (r *Report) Degraded() bool { return r.Err() != nil }

// Aggregator runs the enabled probes in section order.
type Aggregator struct {
	Logger        *zap.Logger
	Registry      *endpoints.Registry
	Network       BatchRunner
	Collaborators map[domain.ProbeKind]Collaborator
}

func NewAggregator(logger *zap.Logger, reg *endpoints.Registry, network BatchRunner, collabs map[domain.ProbeKind]Collaborator) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{Logger: logger, Registry: reg, Network: network, Collaborators: collabs}
}

// Build always returns a complete report. Probe failures only show up as
// text inside their own section.
func (a *Aggregator) Build(ctx context.Context, s Settings) *Report {
	rep := &Report{}
	for _, k := range domain.SectionOrder {
		if !s.enabled(k) {
			continue
		}
		rep.Sections = append(rep.Sections, a.section(ctx, k, s, rep))
	}
	if err := rep.Err(); err != nil {
		a.Logger.Debug("report_degraded", zap.Error(err))
	}
	return rep
}

func (a *Aggregator) section(ctx context.Context, k domain.ProbeKind, s Settings, rep *Report) (sec domain.Section) {
	sec = domain.Section{Kind: k, Title: titles[k]}
	defer func() {
		if p := recover(); p != nil {
			sec.Err = fmt.Errorf("%s probe panicked: %v", k, p)
			sec.Lines = append(sec.Lines, domain.Error("Error: "+sec.Err.Error()))
		}
	}()

	if k == domain.KindNetwork {
		a.network(ctx, &sec, s, rep)
		return sec
	}

	c := a.Collaborators[k]
	if c == nil {
		sec.Err = fmt.Errorf("no %s probe available", k)
		sec.Lines = append(sec.Lines, domain.Error("Error: "+sec.Err.Error()))
		return sec
	}
	text, err := c.Run(ctx)
	for _, l := range splitLines(text) {
		sec.Lines = append(sec.Lines, domain.Info(l))
	}
	if err != nil {
		sec.Err = err
		sec.Lines = append(sec.Lines, failureLine(err))
	}
	return sec
}

func (a *Aggregator) network(ctx context.Context, sec *domain.Section, s Settings, rep *Report) {
	if a.Network == nil || a.Registry == nil {
		sec.Err = errors.New("no network probe available")
		sec.Lines = append(sec.Lines, domain.Error("Error: "+sec.Err.Error()))
		return
	}
	if s.TimeoutSeconds > 0 {
		sec.Lines = append(sec.Lines, domain.Info(fmt.Sprintf("Setting timeout: %d", s.TimeoutSeconds)))
	}

	batch := a.Network.Run(ctx, a.Registry, s.Regions, s.TimeoutSeconds)
	for _, w := range batch.Warnings {
		rep.Warnings = append(rep.Warnings, w)
		sec.Lines = append(sec.Lines, domain.Warn("Warning: "+w.String()))
	}
	for _, o := range batch.Outcomes {
		sec.Lines = append(sec.Lines, FormatOutcome(o))
		if err := outcomeErr(o); err != nil {
			sec.Err = multierr.Append(sec.Err, fmt.Errorf("%s: %w", o.Target().Name, err))
		}
	}
}

// FormatOutcome renders one endpoint result with 4-decimal timings.
func FormatOutcome(o domain.Outcome) domain.Line {
	switch o := o.(type) {
	case domain.Success:
		return domain.Info(fmt.Sprintf("Timing for %s: %s, DNS: %.4f sec, LOAD: %.4f sec.",
			o.Endpoint.Name, o.Endpoint.URL, o.DNSElapsed.Seconds(), o.LoadElapsed.Seconds()))
	case domain.DNSFailure:
		return domain.Error(fmt.Sprintf("Error resolving DNS for %s: %s, %v",
			o.Endpoint.Name, o.Endpoint.URL, o.Err))
	case domain.FetchFailure:
		return domain.Error(fmt.Sprintf("Error open %s: %s, %v, DNS finished in %.4f sec.",
			o.Endpoint.Name, o.Endpoint.URL, o.Err, o.DNSElapsed.Seconds()))
	}
	return domain.Error(fmt.Sprintf("Unknown outcome %T", o))
}

func outcomeErr(o domain.Outcome) error {
	switch o := o.(type) {
	case domain.DNSFailure:
		return o.Err
	case domain.FetchFailure:
		return o.Err
	}
	return nil
}

func failureLine(err error) domain.Line {
	switch {
	case errors.Is(err, domain.ErrDependencyAbsent):
		return domain.Warn(err.Error() + ".")
	case errors.Is(err, domain.ErrExternalCommand):
		return domain.Error("Command failed: " + err.Error())
	}
	return domain.Error("Error: " + err.Error())
}

func splitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
