package renderer

import (
	"errors"
	"fmt"
)

// AcquisitionStage names the step of GPU device acquisition that failed.
type AcquisitionStage string

const (
	StageInstance AcquisitionStage = "instance"
	StageSurface  AcquisitionStage = "surface"
	StageAdapter  AcquisitionStage = "adapter"
	StageDevice   AcquisitionStage = "device"
)

// AcquisitionError reports a failure of one stage of the instance, surface,
// adapter, device acquisition sequence. Construction never proceeds past a
// failed stage; state acquired by earlier stages is released before the error
// is returned.
type AcquisitionError struct {
	Stage AcquisitionStage
	Err   error
}

func (e *AcquisitionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gpu acquisition failed at %s stage", e.Stage)
	}
	return fmt.Sprintf("gpu acquisition failed at %s stage: %v", e.Stage, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

var (
	// ErrCapabilityMissing indicates the surface reported an empty format or
	// alpha mode list, leaving nothing to negotiate against.
	ErrCapabilityMissing = errors.New("surface reports no usable capability")

	// ErrImmediateLimitTooLow indicates the adapter cannot push an immediate
	// constant block of the required size.
	ErrImmediateLimitTooLow = errors.New("adapter immediate constant limit below required block size")

	// ErrSurfaceOutdated indicates the acquired drawable no longer matches the
	// surface configuration. Recoverable by reconfiguring.
	ErrSurfaceOutdated = errors.New("surface outdated")

	// ErrSurfaceLost indicates the surface was lost and must be reconfigured
	// before further acquisition.
	ErrSurfaceLost = errors.New("surface lost")
)

// isSurfaceTransient reports whether err is a recoverable swap-chain loss that
// a reconfiguration is expected to fix.
func isSurfaceTransient(err error) bool {
	return errors.Is(err, ErrSurfaceOutdated) || errors.Is(err, ErrSurfaceLost)
}
