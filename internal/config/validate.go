package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/encoding"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(section string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
	}

	_, err := c.Import.Flags()
	add("import", err)
	_, err = c.Import.StepList()
	add("import", err)
	_, err = c.Import.PropertyList()
	add("import.properties", err)

	if c.Export.Format == "" {
		add("export", errors.New("format is empty"))
	}
	_, err = c.Export.Flags()
	add("export", err)

	if !slices.Contains(logLevels, c.Logging.Level) {
		add("logging", fmt.Errorf("unknown level %q, want one of %s", c.Logging.Level, strings.Join(logLevels, ", ")))
	}
	for _, s := range c.Logging.Streams {
		add("logging.streams", validateStream(s))
	}

	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		add("viewer", fmt.Errorf("invalid size %dx%d", c.Viewer.Width, c.Viewer.Height))
	}
	if c.Viewer.FPSLimit < 0 {
		add("viewer", fmt.Errorf("negative fps_limit %d", c.Viewer.FPSLimit))
	}
	if c.Viewer.UVChannel < 0 || c.Viewer.UVChannel >= abi.MaxTextureCoords {
		add("viewer", fmt.Errorf("uv_channel %d out of range [0,%d)", c.Viewer.UVChannel, abi.MaxTextureCoords))
	}

	_, err = encoding.Lookup(c.Data.Encoding)
	add("data", err)

	return errors.Join(errs...)
}

func validateStream(s string) error {
	switch {
	case s == "zap", s == "stdout", s == "stderr", s == "debugger":
		return nil
	case strings.HasPrefix(s, "file:") && len(s) > len("file:"):
		return nil
	}
	return fmt.Errorf("unknown stream %q", s)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
