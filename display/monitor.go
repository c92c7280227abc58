package display

import (
	"errors"
	"log/slog"
)

// PlaceholderMonitorName is the device name GDI reports for the stand-in
// monitor of non-interactive sessions.
const PlaceholderMonitorName = "WinDisc"

/*
typedef struct tagRECT {
	LONG left;
	LONG top;
	LONG right;
	LONG bottom;
} RECT;
*/

// Rect is in virtual screen coordinates, monitors left of or above the
// primary one have negative coordinates.
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Contains reports whether the point is inside r, right and bottom edges
// excluded.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Monitor is a GDI virtual monitor. Handle is only good for the enumeration
// that produced it.
type Monitor struct {
	Handle    MonitorHandle `json:"-"`
	Name      string        `json:"name"`
	Rect      Rect          `json:"rect"`
	WorkArea  Rect          `json:"work_area"`
	IsPrimary bool          `json:"is_primary"`
}

func (h *Host) monitorInfo(mh MonitorHandle) (Monitor, error) {
	info, err := h.sys.MonitorInfo(mh)
	if err != nil {
		return Monitor{}, opError("get monitor info", "", err)
	}
	return Monitor{
		Handle:    mh,
		Name:      DecodeWideString(info.Device[:]),
		Rect:      info.Monitor,
		WorkArea:  info.Work,
		IsPrimary: info.Flags&MONITORINFOF_PRIMARY != 0,
	}, nil
}

func (h *Host) monitorHandles(dc DCHandle) ([]MonitorHandle, error) {
	var handles []MonitorHandle
	err := h.sys.EnumMonitors(dc, func(mh MonitorHandle) bool {
		handles = append(handles, mh)
		return true
	})
	return handles, err
}

// Monitors lists the virtual monitors of the desktop.
//
// Placeholder monitors are dropped. A monitor whose info can't be read is
// logged and left out, the call only fails when every monitor fails. At
// most one monitor is primary, others claiming it are demoted.
func (h *Host) Monitors() ([]Monitor, error) {
	handles, err := h.monitorHandles(0)
	if err != nil {
		return nil, opError("enumerate monitors", "", err)
	}

	var errs []error
	monitors := make([]Monitor, 0, len(handles))
	primary := false
	for _, mh := range handles {
		m, err := h.monitorInfo(mh)
		if err != nil {
			slog.Warn("display: skipping monitor", "handle", mh, "error", err)
			errs = append(errs, err)
			continue
		}
		if m.Name == PlaceholderMonitorName {
			slog.Debug("display: skipping monitor", "error", ErrPlaceholder)
			continue
		}
		if m.IsPrimary {
			if primary {
				slog.Warn("display: more than one primary monitor, demoting", "name", m.Name)
				m.IsPrimary = false
			}
			primary = true
		}
		monitors = append(monitors, m)
	}

	if len(handles) > 0 && len(errs) == len(handles) {
		return nil, errors.Join(errs...)
	}
	LogTrace("display: monitors", "count", len(monitors))
	return monitors, nil
}

// PrimaryMonitor fails with ErrNoPrimary when Monitors has no primary entry,
// which happens with placeholder-only sessions.
func (h *Host) PrimaryMonitor() (Monitor, error) {
	monitors, err := h.Monitors()
	if err != nil {
		return Monitor{}, err
	}
	for _, m := range monitors {
		if m.IsPrimary {
			return m, nil
		}
	}
	return Monitor{}, ErrNoPrimary
}
