// Package normalize merges caller-supplied properties over the
// catalog's per-kind default tables and converts semantic values
// (colors, dimensions, enumerations) into the target format's literal
// encodings.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// DensityMode selects the suffix for pixel dimensions
type DensityMode string

const (
	DensityPx DensityMode = "px"
	DensityDp DensityMode = "dp"
)

// Error names the property and component that carried an untypable or
// out-of-range value.
type Error struct {
	Component string
	Property  string
	Reason    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalize: %s.%s: %s", e.Component, e.Property, e.Reason)
}

// Normalizer encodes validated values into target literals
type Normalizer struct {
	density DensityMode
}

// New creates a normalizer for the configured density mode.
func New(density DensityMode) *Normalizer {
	if density != DensityDp {
		density = DensityPx
	}
	return &Normalizer{density: density}
}

// NormalizeApp fills the effective encoded property table of every
// screen and component: per-kind defaults overlaid with the validated
// caller values. appName is the sanitized app name injected into each
// screen's AppName property.
func (n *Normalizer) NormalizeApp(app *types.AppDescription, appName string) error {
	for si := range app.Screens {
		screen := &app.Screens[si]
		if err := n.normalizeScreen(app, screen, appName); err != nil {
			return err
		}
		for _, node := range screen.Components {
			var walkErr error
			node.Walk(func(c *types.ComponentNode) {
				if walkErr != nil {
					return
				}
				walkErr = n.normalizeComponent(c)
			})
			if walkErr != nil {
				return walkErr
			}
		}
	}
	return nil
}

// normalizeScreen resolves the screen's Form properties, folding in the
// Title shorthand and the app-level theme.
func (n *Normalizer) normalizeScreen(app *types.AppDescription, screen *types.ScreenDescription, appName string) error {
	spec, _ := catalog.Component(types.KindForm)
	values := make(map[string]types.Value, len(screen.Values)+3)
	for k, v := range screen.Values {
		values[k] = v
	}
	values["AppName"] = types.Text(appName)
	if screen.Title != "" {
		values["Title"] = types.Text(screen.Title)
	} else if _, ok := values["Title"]; !ok {
		values["Title"] = types.Text(screen.Name)
	}
	if app.Theme != "" {
		if _, ok := values["Theme"]; !ok {
			values["Theme"] = types.Enum(app.Theme)
		}
	}

	encoded, err := n.encodeAll(screen.Name, spec, values)
	if err != nil {
		return err
	}
	screen.Encoded = encoded
	return nil
}

func (n *Normalizer) normalizeComponent(node *types.ComponentNode) error {
	spec, ok := catalog.Component(node.Kind)
	if !ok {
		return &Error{Component: node.Name, Reason: fmt.Sprintf("unrecognized kind %q", node.Kind)}
	}
	encoded, err := n.encodeAll(node.Name, spec, node.Values)
	if err != nil {
		return err
	}
	node.Encoded = encoded
	return nil
}

// encodeAll produces the full effective table: every property the kind
// declares, set values overlaying defaults.
func (n *Normalizer) encodeAll(component string, spec *catalog.ComponentSpec, values map[string]types.Value) (map[string]string, error) {
	encoded := make(map[string]string, len(spec.Properties))
	for i := range spec.Properties {
		pspec := &spec.Properties[i]
		value, ok := values[pspec.Name]
		if !ok {
			value = pspec.Default
		}
		lit, err := n.Encode(pspec, value)
		if err != nil {
			return nil, &Error{Component: component, Property: pspec.Name, Reason: err.Error()}
		}
		encoded[pspec.Name] = lit
	}
	return encoded, nil
}

// Encode converts one typed value into the target literal for its
// property spec.
func (n *Normalizer) Encode(pspec *catalog.PropertySpec, value types.Value) (string, error) {
	if value.Kind != pspec.Kind {
		return "", fmt.Errorf("value kind %q does not match property kind %q", value.Kind, pspec.Kind)
	}
	switch pspec.Kind {
	case types.ValueText:
		return value.Str, nil
	case types.ValueNumber:
		return strconv.FormatFloat(value.Num, 'f', -1, 64), nil
	case types.ValueBool:
		if value.Bool {
			return "True", nil
		}
		return "False", nil
	case types.ValueColor:
		return EncodeColor(value.Str)
	case types.ValueDimension:
		return n.encodeDimension(value.Str)
	case types.ValueEnum:
		lit, ok := pspec.Enum[strings.ToLower(value.Str)]
		if !ok {
			return "", fmt.Errorf("unrecognized %s value %q", pspec.Name, value.Str)
		}
		return lit, nil
	}
	return "", fmt.Errorf("unsupported property kind %q", pspec.Kind)
}

var (
	percentDim = regexp.MustCompile(`^(\d+)%$`)
	pixelDim   = regexp.MustCompile(`^(\d+)(px|dp)?$`)
)

// encodeDimension maps a dimension spec onto the target encoding:
// fill/automatic sentinels, "<n>%" percent strings, and pixel counts
// suffixed per the configured density mode.
func (n *Normalizer) encodeDimension(spec string) (string, error) {
	switch strings.ToLower(spec) {
	case "fill", "fill_parent":
		return "-2", nil
	case "auto", "automatic":
		return "-1", nil
	}
	if m := percentDim.FindStringSubmatch(spec); m != nil {
		return m[1] + "%", nil
	}
	if m := pixelDim.FindStringSubmatch(spec); m != nil {
		return m[1] + string(n.density), nil
	}
	return "", fmt.Errorf("unrecognized dimension %q", spec)
}
