package domain

import "time"

// Outcome is the result of probing one endpoint. It is exactly one of
// DNSFailure, FetchFailure or Success.
type Outcome interface {
	Target() Endpoint
	outcome()
}

// DNSFailure means the host could not be extracted or resolved. No fetch
// was attempted.
type DNSFailure struct {
	Endpoint   Endpoint
	Err        error
	DNSElapsed time.Duration
}

// FetchFailure means resolution succeeded but the content fetch did not.
type FetchFailure struct {
	Endpoint   Endpoint
	Err        error
	DNSElapsed time.Duration
}

// Success carries both timing phases of a reachable endpoint.
type Success struct {
	Endpoint    Endpoint
	DNSElapsed  time.Duration
	LoadElapsed time.Duration
}

func (o DNSFailure) Target() Endpoint   { return o.Endpoint }
func (o FetchFailure) Target() Endpoint { return o.Endpoint }
func (o Success) Target() Endpoint      { return o.Endpoint }

func (DNSFailure) outcome()   {}
func (FetchFailure) outcome() {}
func (Success) outcome()      {}
