package display

import (
	"errors"
	"fmt"

	"github.com/tekert/golang-display/display/pkg/hexf"
)

// Error categories, matched with errors.Is. An OS failure whose code means
// "missing" (ERROR_FILE_NOT_FOUND...) matches both ErrOSOperation and
// ErrNotFound.
var (
	// Something the caller asked for does not exist (no primary monitor,
	// missing registry key, missing interface name). Never retried internally.
	ErrNotFound = errors.New("not found")

	// An identifier did not follow its documented grammar.
	ErrMalformedInput = errors.New("malformed input")

	// A host call failed; the wrapped Errno carries the raw code.
	ErrOSOperation = errors.New("os operation failed")

	// The platform has no display subsystem adapter.
	ErrUnsupported = errors.New("display: unsupported platform")
)

var (
	ErrNoPrimary                = fmt.Errorf("%w: no primary monitor", ErrNotFound)
	ErrNoPrimaryDevice          = fmt.Errorf("%w: no primary display device, are you running interactively?", ErrNotFound)
	ErrNonexistentInterfaceName = fmt.Errorf("%w: device has no monitor interface name", ErrNotFound)
	ErrNoDeviceForInterface     = fmt.Errorf("%w: no present monitor device matches interface", ErrNotFound)

	ErrInvalidInterface = fmt.Errorf("%w: invalid monitor interface name", ErrMalformedInput)
	ErrInvalidInstance  = fmt.Errorf("%w: invalid monitor device instance id", ErrMalformedInput)
	ErrInvalidPath      = fmt.Errorf("%w: invalid monitor registry path", ErrMalformedInput)
	ErrColorSpace       = fmt.Errorf("%w: unexpected color space record", ErrMalformedInput)
	ErrPhysicalRecord   = fmt.Errorf("%w: truncated physical monitor buffer", ErrMalformedInput)

	// Cause logged for the WinDisc monitor reported by non-interactive
	// sessions. Monitors() filters those records out.
	ErrPlaceholder = fmt.Errorf("%w: got placeholder monitor (%s), are you running in a non-interactive session?", ErrNotFound, PlaceholderMonitorName)

	ErrListIntersecting      = errors.New("could not get monitors intersecting window")
	ErrListDisplayDrivers    = errors.New("error listing display drivers to get monitors")
	ErrListMonitorsForDriver = errors.New("error listing monitors for display driver")
)

// Errno is a raw Win32 error code as read from the thread's last-error slot
// (or a registry/SetupAPI status) right after the failing call.
type Errno uint32

// Win32 codes the core reacts to.
const (
	ERROR_SUCCESS             Errno = 0
	ERROR_FILE_NOT_FOUND      Errno = 2
	ERROR_PATH_NOT_FOUND      Errno = 3
	ERROR_ACCESS_DENIED       Errno = 5
	ERROR_INVALID_HANDLE      Errno = 6
	ERROR_INVALID_PARAMETER   Errno = 87
	ERROR_INSUFFICIENT_BUFFER Errno = 122
	ERROR_MORE_DATA           Errno = 234
	ERROR_NO_MORE_ITEMS       Errno = 259
	ERROR_INVALID_DATA        Errno = 13
	ERROR_NOT_FOUND           Errno = 1168
)

func (e Errno) Error() string {
	return "WinError(" + hexf.NUm32(uint32(e)) + ")"
}

// Is lets not-found codes match ErrNotFound.
func (e Errno) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e == ERROR_FILE_NOT_FOUND || e == ERROR_PATH_NOT_FOUND || e == ERROR_NOT_FOUND
	}
	return false
}

// OpError records a failed host operation and the target it was applied to.
type OpError struct {
	Op     string // "open key", "read value", "create dc", ...
	Target string // registry path, device name, handle
	Err    error
}

func (e *OpError) Error() string {
	if e.Target == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Target + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func (e *OpError) Is(target error) bool { return target == ErrOSOperation }

func opError(op, target string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Target: target, Err: err}
}

// ParseError reports an identifier string that failed its grammar. Raw is the
// offending input, unchanged.
type ParseError struct {
	Kind string // "interface", "instance", "path"
	Raw  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case "interface":
		return fmt.Sprintf(`%v. Expected something like \\?\DISPLAY#MEI96A2#4&289d...#{...}, got: %s`, ErrInvalidInterface, e.Raw)
	case "instance":
		return fmt.Sprintf(`%v. Expected something like DISPLAY\MEI96A2\4&289d..., got: %s`, ErrInvalidInstance, e.Raw)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidPath, e.Raw)
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case "interface":
		return ErrInvalidInterface
	case "instance":
		return ErrInvalidInstance
	}
	return ErrInvalidPath
}
