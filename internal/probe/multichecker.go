package probe

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/domain"
	"github.com/hamed0406/envprobe/internal/endpoints"
)

// Batch is the result of one connectivity run.
type Batch struct {
	Outcomes []domain.Outcome
	Warnings []domain.UnknownRegionWarning
}

// Runner probes every endpoint of a registry, one after another.
type Runner struct {
	Logger *zap.Logger
	Prober Prober
}

func NewRunner(logger *zap.Logger, p Prober) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger, Prober: p}
}

// Run expands regions against reg and probes the result in iteration
// order. A failing endpoint never stops the batch.
func (r *Runner) Run(ctx context.Context, reg *endpoints.Registry, regions []string, timeoutSeconds int) Batch {
	set, warnings := r.Expand(reg, regions)

	eps := set.Endpoints()
	b := Batch{Outcomes: make([]domain.Outcome, 0, len(eps)), Warnings: warnings}
	for _, ep := range eps {
		out := r.Prober.Probe(ctx, ep.Name, ep.URL, timeoutSeconds)
		b.Outcomes = append(b.Outcomes, out)
		r.Logger.Debug("endpoint_probed",
			zap.String("name", ep.Name),
			zap.String("url", ep.URL),
			zap.String("outcome", outcomeKind(out)),
		)
	}
	return b
}

// Expand merges the overlay of each distinct region into the base set.
func (r *Runner) Expand(reg *endpoints.Registry, regions []string) (endpoints.Set, []domain.UnknownRegionWarning) {
	var (
		overlays []endpoints.Set
		warnings []domain.UnknownRegionWarning
	)
	for _, region := range NormalizeRegions(regions) {
		o, ok := reg.OverlayFor(region)
		if !ok {
			r.Logger.Warn("region_unknown", zap.String("region", region))
			warnings = append(warnings, domain.UnknownRegionWarning{Region: region})
			continue
		}
		overlays = append(overlays, o)
	}
	return endpoints.Merge(reg.Base(), overlays...), warnings
}

// NormalizeRegions splits comma separated tokens, trims and lowercases
// them, and drops empties and repeats. First occurrence keeps its place.
func NormalizeRegions(tokens []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, ",") {
			key := endpoints.NormalizeRegion(part)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

func outcomeKind(o domain.Outcome) string {
	switch o.(type) {
	case domain.Success:
		return "success"
	case domain.FetchFailure:
		return "fetch_failure"
	case domain.DNSFailure:
		return "dns_failure"
	}
	return "unknown"
}
