package domain

import (
	"fmt"
	"strings"
)

// Endpoint is a named network target. Name is its identity.
type Endpoint struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// ProbeKind identifies one section of the report.
type ProbeKind int

const (
	KindIdentity ProbeKind = iota
	KindToolchain
	KindBuild
	KindOS
	KindHardware
	KindNetwork
	KindLoad
	KindIP
	KindTime
)

// SectionOrder is the fixed order in which sections appear in a report.
var SectionOrder = []ProbeKind{
	KindIdentity,
	KindToolchain,
	KindBuild,
	KindOS,
	KindHardware,
	KindNetwork,
	KindLoad,
	KindIP,
	KindTime,
}

var kindNames = map[ProbeKind]string{
	KindIdentity:  "identity",
	KindToolchain: "toolchain",
	KindBuild:     "build",
	KindOS:        "os",
	KindHardware:  "hardware",
	KindNetwork:   "network",
	KindLoad:      "load",
	KindIP:        "ip",
	KindTime:      "time",
}

func (k ProbeKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseProbeKind maps a case-insensitive probe name to its kind.
func ParseProbeKind(s string) (ProbeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown probe %q", s)
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Line is one line of report text.
type Line struct {
	Text     string
	Severity Severity
}

func Info(text string) Line  { return Line{Text: text} }
func Warn(text string) Line  { return Line{Text: text, Severity: SeverityWarn} }
func Error(text string) Line { return Line{Text: text, Severity: SeverityError} }

// Section is one titled block of report text produced by a single probe.
// Err is set when the probe degraded; its text is already part of Lines.
type Section struct {
	Kind  ProbeKind
	Title string
	Lines []Line
	Err   error
}
