// Command monitordump prints what the display package sees on this host as
// JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/tekert/golang-display/display"
	"github.com/tekert/golang-display/display/pkg/hexf"
)

var (
	flagLogLevel string
	flagDebug    bool
	flagPretty   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monitordump",
	Short: "Dump monitors, display devices and EDID blocks",
	Long: `monitordump queries the Windows display subsystem and prints the result
as JSON on stdout. Logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel, flagDebug, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "debug logging with source locations")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "monitors",
			Short: "List virtual monitors",
			RunE: func(cmd *cobra.Command, args []string) error {
				return dump(cmd.OutOrStdout(), display.Monitors)
			},
		},
		&cobra.Command{
			Use:   "primary",
			Short: "Show the primary monitor and display device",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := display.PrimaryMonitor()
				if err != nil {
					return err
				}
				d, err := display.PrimaryDisplayDevice()
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), map[string]any{"monitor": m, "device": d})
			},
		},
		&cobra.Command{
			Use:   "devices",
			Short: "List display adapters with their monitor devices",
			RunE:  runDevices,
		},
		&cobra.Command{
			Use:   "all",
			Short: "List every monitor known to the registry",
			RunE: func(cmd *cobra.Command, args []string) error {
				return dump(cmd.OutOrStdout(), display.AllMonitors)
			},
		},
		&cobra.Command{
			Use:   "edid <driver> <monitor>",
			Short: `Hex dump the EDID stored under DISPLAY\<driver>\<monitor>`,
			Args:  cobra.ExactArgs(2),
			RunE:  runEDID,
		},
		&cobra.Command{
			Use:   "colorspace [device]",
			Short: "Show the color space of a display device (primary by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runColorSpace,
		},
		&cobra.Command{
			Use:   "physical",
			Short: "List physical monitors behind each virtual monitor",
			RunE:  runPhysical,
		},
		&cobra.Command{
			Use:   "values",
			Short: "List driver registry value names of each display device",
			RunE:  runValues,
		},
		&cobra.Command{
			Use:   "snapshot",
			Short: "Correlated view of monitors, devices and registry entries",
			RunE: func(cmd *cobra.Command, args []string) error {
				return dump(cmd.OutOrStdout(), display.DefaultHost().Snapshot)
			},
		},
	)
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func setupLogging(level string, debug bool, w io.Writer) error {
	if debug {
		display.SetDebugLevel(true)
		return nil
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logger := &log.Logger{
		Level:  lvl,
		Writer: &log.ConsoleWriter{Writer: w},
	}
	display.SetLoggerHandler(logger.Slog().Handler())
	return nil
}

func write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if flagPretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func dump[T any](w io.Writer, query func() (T, error)) error {
	v, err := query()
	if err != nil {
		return err
	}
	return write(w, v)
}

type deviceEntry struct {
	display.DisplayDevice
	Monitors []display.AttachedMonitor `json:"monitors"`
}

func runDevices(cmd *cobra.Command, args []string) error {
	h := display.DefaultHost()
	devices, err := h.DisplayDevices()
	if err != nil {
		return err
	}
	out := make([]deviceEntry, 0, len(devices))
	for _, d := range devices {
		out = append(out, deviceEntry{DisplayDevice: d, Monitors: h.AttachedMonitors(d)})
	}
	return write(cmd.OutOrStdout(), out)
}

func runEDID(cmd *cobra.Command, args []string) error {
	id := display.MonitorIdentity{DriverID: args[0], MonitorID: args[1]}
	edid, err := display.DefaultHost().EDID(id)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), hexf.Dump(edid, 16))
	return err
}

func runColorSpace(cmd *cobra.Command, args []string) error {
	h := display.DefaultHost()
	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		d, err := h.PrimaryDisplayDevice()
		if err != nil {
			return err
		}
		name = d.Name
	}
	return dump(cmd.OutOrStdout(), func() (display.ColorSpace, error) {
		return h.ColorSpace(name)
	})
}

func runPhysical(cmd *cobra.Command, args []string) error {
	h := display.DefaultHost()
	monitors, err := h.Monitors()
	if err != nil {
		return err
	}
	out := make(map[string][]display.PhysicalMonitor, len(monitors))
	for _, m := range monitors {
		list, err := h.PhysicalMonitors(m)
		if err != nil {
			slog.Warn("monitordump: no physical monitors", "monitor", m.Name, "error", err)
			continue
		}
		out[m.Name] = list
		if err := h.ReleasePhysicalMonitors(list); err != nil {
			slog.Warn("monitordump: release failed", "monitor", m.Name, "error", err)
		}
	}
	return write(cmd.OutOrStdout(), out)
}

func runValues(cmd *cobra.Command, args []string) error {
	h := display.DefaultHost()
	devices, err := h.DisplayDevices()
	if err != nil {
		return err
	}
	out := make(map[string][]string, len(devices))
	for _, d := range devices {
		names, err := h.DriverValueNames(d)
		if err != nil {
			slog.Info("monitordump: skipping device", "device", d.Name, "error", err)
			continue
		}
		out[d.Name] = names
	}
	return write(cmd.OutOrStdout(), out)
}
