package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNameResolution   = errors.New("name resolution failed")
	ErrFetch            = errors.New("fetch failed")
	ErrDependencyAbsent = errors.New("not installed")
	ErrExternalCommand  = errors.New("external command failed")
)

// DependencyAbsentError names an optional component that is missing.
type DependencyAbsentError struct {
	What string
}

func NotInstalled(what string) error { return &DependencyAbsentError{What: what} }

func (e *DependencyAbsentError) Error() string { return e.What + " is not installed" }

func (e *DependencyAbsentError) Is(target error) bool { return target == ErrDependencyAbsent }

// UnknownRegionWarning is advisory: the region has no overlay and the base
// endpoints are probed unchanged.
type UnknownRegionWarning struct {
	Region string
}

func (w UnknownRegionWarning) String() string {
	return fmt.Sprintf("Region %s does not need specific test, please refer to global sites.", w.Region)
}
