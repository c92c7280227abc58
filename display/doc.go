/*
Package display queries the Windows display subsystem: GDI virtual monitors,
display devices (adapters and the monitors attached to them), physical
monitors, color spaces and the EDID blocks kept in the registry.

The three host views of a monitor use different identifiers. GDI names a
virtual monitor after its adapter (\\.\DISPLAY1). The adapter's first monitor
device carries an interface name

	\\?\DISPLAY#MEI96A2#4&289d1234&0&UID0#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}

whose driver and monitor segments form a MonitorIdentity. The same pair names
the SetupAPI device instance (DISPLAY\MEI96A2\4&289d1234&0&UID0) and the
registry key under HKLM\SYSTEM\CurrentControlSet\Enum\DISPLAY holding the
EDID.

Every query is a fresh snapshot, nothing is cached between calls. Host
handles are only valid for the call that returned them.

	monitors, err := display.Monitors()
	if err != nil {
		return err
	}
	for _, m := range monitors {
		fmt.Println(m.Name, m.Rect, m.IsPrimary)
	}

Queries go through an OS adapter. NewHost accepts any OS implementation,
DefaultHost uses the platform one (only Windows has one).
*/
package display
