package display

import (
	"fmt"
	"log/slog"
)

// IntersectingMonitor is a virtual monitor covered by a window, joined with
// the identity of its monitor device.
type IntersectingMonitor struct {
	Monitor       Monitor         `json:"monitor"`
	InterfaceName string          `json:"interface_name"`
	Identity      MonitorIdentity `json:"identity"`
}

// Intersecting lists the monitors overlapping any point of window w.
//
// Unlike Monitors this is a single target query: the first monitor that
// can't be resolved to an identity fails the whole call.
func (h *Host) Intersecting(w WindowHandle) ([]IntersectingMonitor, error) {
	if w == 0 {
		return nil, fmt.Errorf("%w: null window handle", ErrListIntersecting)
	}

	dc, err := h.sys.WindowDC(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListIntersecting, opError("get window dc", "", err))
	}
	defer func() {
		if err := h.sys.ReleaseWindowDC(w, dc); err != nil {
			slog.Warn("display: failed to release window dc", "error", err)
		}
	}()

	var out []IntersectingMonitor
	var cbErr error
	err = h.sys.EnumMonitors(dc, func(mh MonitorHandle) bool {
		m, err := h.monitorInfo(mh)
		if err != nil {
			cbErr = err
			return false
		}
		if m.Name == PlaceholderMonitorName {
			cbErr = ErrPlaceholder
			return false
		}
		name, err := h.InterfaceName(m.Name)
		if err != nil {
			cbErr = err
			return false
		}
		id, err := ParseInterfaceName(name)
		if err != nil {
			cbErr = err
			return false
		}
		out = append(out, IntersectingMonitor{Monitor: m, InterfaceName: name, Identity: id})
		return true
	})
	if cbErr != nil {
		return nil, cbErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListIntersecting, opError("enumerate monitors", "", err))
	}
	return out, nil
}
