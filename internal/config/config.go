// Package config provides host-facing editor options with TOML and
// YAML file loading, environment overrides, and a polling watcher for
// live reload.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options holds the tunable parameters of an editing surface.
type Options struct {
	// WrapMode is one of "none", "word", "char".
	WrapMode string `toml:"wrap_mode" yaml:"wrap_mode"`

	// SingleLine turns Enter into an event instead of a line split.
	SingleLine bool `toml:"single_line" yaml:"single_line"`

	// TabWidth is the number of columns a tab advances.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// CullMargin is the number of extra display rows materialized on
	// each side of the visible range.
	CullMargin int `toml:"cull_margin" yaml:"cull_margin"`

	// RightMarginPx is the pixel margin kept free right of the cursor
	// during auto-scroll.
	RightMarginPx int `toml:"right_margin_px" yaml:"right_margin_px"`

	// GutterWidthPx is the pixel width reserved for the gutter.
	GutterWidthPx int `toml:"gutter_width_px" yaml:"gutter_width_px"`

	// BlinkIntervalMs is the cursor blink period in milliseconds.
	BlinkIntervalMs int `toml:"blink_interval_ms" yaml:"blink_interval_ms"`
}

// Default returns the standard options.
func Default() Options {
	return Options{
		WrapMode:        "none",
		TabWidth:        4,
		CullMargin:      5,
		RightMarginPx:   20,
		GutterWidthPx:   0,
		BlinkIntervalMs: 500,
	}
}

// Normalize replaces out-of-domain values with their defaults.
func (o Options) Normalize() Options {
	def := Default()

	switch o.WrapMode {
	case "none", "word", "char":
	default:
		o.WrapMode = def.WrapMode
	}
	if o.TabWidth < 1 {
		o.TabWidth = def.TabWidth
	}
	if o.CullMargin < 0 {
		o.CullMargin = def.CullMargin
	}
	if o.RightMarginPx < 0 {
		o.RightMarginPx = def.RightMarginPx
	}
	if o.GutterWidthPx < 0 {
		o.GutterWidthPx = def.GutterWidthPx
	}
	if o.BlinkIntervalMs < 1 {
		o.BlinkIntervalMs = def.BlinkIntervalMs
	}
	return o
}

// Load reads options from path, dispatching on the file extension:
// .toml, .yaml, or .yml. A missing file is not an error; defaults are
// returned. Loaded values are normalized.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return Default(), fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func parseTOML(source string, data []byte) (Options, error) {
	opts := Default()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", source, err)
	}
	return opts.Normalize(), nil
}

func parseYAML(source string, data []byte) (Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", source, err)
	}
	return opts.Normalize(), nil
}

// ApplyEnv overlays values from EDITKIT_-prefixed environment
// variables onto o. Unset or malformed variables leave the existing
// value in place.
func (o Options) ApplyEnv() Options {
	if v, ok := os.LookupEnv("EDITKIT_WRAP_MODE"); ok {
		o.WrapMode = v
	}
	if v, ok := lookupBool("EDITKIT_SINGLE_LINE"); ok {
		o.SingleLine = v
	}
	if v, ok := lookupInt("EDITKIT_TAB_WIDTH"); ok {
		o.TabWidth = v
	}
	if v, ok := lookupInt("EDITKIT_CULL_MARGIN"); ok {
		o.CullMargin = v
	}
	if v, ok := lookupInt("EDITKIT_BLINK_INTERVAL_MS"); ok {
		o.BlinkIntervalMs = v
	}
	return o.Normalize()
}

func lookupInt(key string) (int, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(key string) (bool, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}
