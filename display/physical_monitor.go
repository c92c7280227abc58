package display

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

/*
#pragma pack(push, 1)
typedef struct _PHYSICAL_MONITOR {
	HANDLE hPhysicalMonitor;
	WCHAR  szPhysicalMonitorDescription[PHYSICAL_MONITOR_DESCRIPTION_SIZE];
} PHYSICAL_MONITOR, *LPPHYSICAL_MONITOR;
#pragma pack(pop)
*/

// native HANDLE size
const ptrSize = bits.UintSize / 8

// PhysicalMonitor is one hardware monitor behind a virtual monitor. The
// handle must be given back with ReleasePhysicalMonitors.
type PhysicalMonitor struct {
	Handle      PhysicalMonitorHandle `json:"-"`
	Description string                `json:"description"`
}

// aligned copy of one packed record
type physicalMonitorRecord struct {
	Handle      uint64
	Description [physicalMonitorDescriptionLen]uint16
}

func physicalMonitorStride(handleSize int) int {
	return handleSize + physicalMonitorDescriptionLen*2
}

// decodePhysicalMonitors copies count packed records out of raw. The raw
// memory is never aliased, fields are read byte by byte.
func decodePhysicalMonitors(raw []byte, count uint32, handleSize int) ([]PhysicalMonitor, error) {
	if handleSize != 4 && handleSize != 8 {
		return nil, fmt.Errorf("%w: handle size %d", ErrPhysicalRecord, handleSize)
	}
	stride := physicalMonitorStride(handleSize)
	if uint64(len(raw)) < uint64(count)*uint64(stride) {
		return nil, fmt.Errorf("%w: %d bytes for %d records", ErrPhysicalRecord, len(raw), count)
	}

	out := make([]PhysicalMonitor, 0, count)
	for i := 0; i < int(count); i++ {
		b := raw[i*stride : (i+1)*stride]

		var rec physicalMonitorRecord
		if handleSize == 8 {
			rec.Handle = binary.LittleEndian.Uint64(b)
		} else {
			rec.Handle = uint64(binary.LittleEndian.Uint32(b))
		}
		for j := range rec.Description {
			rec.Description[j] = binary.LittleEndian.Uint16(b[handleSize+2*j:])
		}

		out = append(out, PhysicalMonitor{
			Handle:      PhysicalMonitorHandle(rec.Handle),
			Description: DecodeWideString(rec.Description[:]),
		})
	}
	return out, nil
}

// PhysicalMonitors lists the physical monitors behind m. Nothing is cached
// on m, each call acquires new handles.
func (h *Host) PhysicalMonitors(m Monitor) ([]PhysicalMonitor, error) {
	raw, count, err := h.sys.PhysicalMonitors(m.Handle)
	if err != nil {
		return nil, opError("get physical monitors", m.Name, err)
	}
	if count == 0 {
		return []PhysicalMonitor{}, nil
	}
	return decodePhysicalMonitors(raw, count, ptrSize)
}

// ReleasePhysicalMonitors destroys every handle of list, failures are joined.
func (h *Host) ReleasePhysicalMonitors(list []PhysicalMonitor) error {
	var errs []error
	for _, pm := range list {
		if err := h.sys.DestroyPhysicalMonitor(pm.Handle); err != nil {
			errs = append(errs, opError("destroy physical monitor", pm.Description, err))
		}
	}
	return errors.Join(errs...)
}
