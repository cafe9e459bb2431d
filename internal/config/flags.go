package config

import (
	"flag"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagVerbose    = flag.Bool("verbose", false, "Forward the importer's verbose messages")
	flagPreset     = flag.String("preset", "", "Post-process preset (none, realtime-fast, realtime-quality, realtime-max-quality)")
	flagSteps      = flag.String("steps", "", "Comma-separated extra post-process steps")
	flagFormat     = flag.String("format", "", "Default export format id")
	flagEncoding   = flag.String("encoding", "", "Legacy encoding of names in model files, e.g. euc-kr")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWireframe  = flag.Bool("wireframe", false, "Start the viewer in wireframe mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVerbose {
		cfg.Logging.Verbose = true
	}
	if *flagPreset != "" {
		cfg.Import.Preset = *flagPreset
	}
	if *flagSteps != "" {
		cfg.Import.Steps = append(cfg.Import.Steps, splitList(*flagSteps)...)
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
	if *flagEncoding != "" {
		cfg.Data.Encoding = *flagEncoding
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
