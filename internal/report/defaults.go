package report

import (
	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/domain"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/probe"
	"github.com/hamed0406/envprobe/internal/sysinfo"
)

// NewDefault wires the local collaborators and the connectivity runner.
// The hardware platform is detected once, here.
func NewDefault(logger *zap.Logger, reg *endpoints.Registry, cmd sysinfo.Commander) *Aggregator {
	runner := probe.NewRunner(logger, probe.NewConnectivityChecker())
	collabs := map[domain.ProbeKind]Collaborator{
		domain.KindIdentity:  sysinfo.Identity{},
		domain.KindToolchain: sysinfo.Toolchain{Cmd: cmd},
		domain.KindBuild:     sysinfo.NewBuild(),
		domain.KindOS:        sysinfo.NewOS(cmd),
		domain.KindHardware:  sysinfo.NewHardware(cmd),
		domain.KindLoad:      sysinfo.Uptime(cmd),
		domain.KindIP:        sysinfo.HostIPs(cmd),
		domain.KindTime:      sysinfo.Date(cmd),
	}
	return NewAggregator(logger, reg, runner, collabs)
}
