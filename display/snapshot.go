package display

import (
	"log/slog"
	"strings"

	"github.com/0xrawsec/golang-utils/datastructs"
)

// Snapshot is one correlated view of the display subsystem.
type Snapshot struct {
	Monitors []Monitor       `json:"monitors"`
	Devices  []DisplayDevice `json:"devices"`
	// One entry per monitor device attached to an adapter, first seen wins.
	Attached []SnapshotEntry `json:"attached"`
	// Registry monitors not attached to any adapter right now.
	Stale []MonitorIdentity `json:"stale"`
}

// SnapshotEntry joins an adapter, one of its monitor devices and, when the
// adapter drives one, the GDI virtual monitor of the same name.
type SnapshotEntry struct {
	Adapter DisplayDevice   `json:"adapter"`
	Device  AttachedMonitor `json:"device"`
	Monitor *Monitor        `json:"monitor,omitempty"`
}

// Snapshot lists monitors, adapters and their monitor devices, then splits
// the registry view into attached and stale identities. Identities are
// compared case insensitively. A failing registry walk only leaves Stale
// empty.
func (h *Host) Snapshot() (*Snapshot, error) {
	monitors, err := h.Monitors()
	if err != nil {
		return nil, err
	}
	devices, err := h.DisplayDevices()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(monitors))
	for i, m := range monitors {
		byName[strings.ToUpper(m.Name)] = i
	}

	s := &Snapshot{Monitors: monitors, Devices: devices}
	attached := datastructs.NewInitSet()
	for _, d := range devices {
		for _, am := range h.AttachedMonitors(d) {
			if am.Identity.IsZero() {
				continue
			}
			k := am.Identity.key()
			if attached.Contains(k) {
				LogTrace("display: duplicate monitor device", "identity", am.Identity.String())
				continue
			}
			attached.Add(k)

			e := SnapshotEntry{Adapter: d, Device: am}
			if i, ok := byName[strings.ToUpper(d.Name)]; ok {
				e.Monitor = &s.Monitors[i]
			}
			s.Attached = append(s.Attached, e)
		}
	}

	all, err := h.AllMonitors()
	if err != nil {
		slog.Warn("display: registry walk failed, no stale monitors", "error", err)
		return s, nil
	}
	seen := datastructs.NewInitSet()
	for _, id := range all {
		k := id.key()
		if attached.Contains(k) || seen.Contains(k) {
			continue
		}
		seen.Add(k)
		s.Stale = append(s.Stale, id)
	}
	slog.Debug("display: snapshot", "monitors", len(s.Monitors), "devices", len(s.Devices),
		"attached", attached.Len(), "stale", len(s.Stale))
	return s, nil
}
