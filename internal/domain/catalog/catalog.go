package catalog

import (
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Format version pair declared by every screen's paired documents.
// The .scm root and the .bky yacodeblocks element must agree; the host
// tool treats a mismatch as a corrupt screen.
const (
	FormatVersion   = "232" // YaVersion / ya-version
	LanguageVersion = "37"  // blocks language-version
)

// AuthURL is the origin list declared by every .scm document
var AuthURL = []string{"ai2.appinventor.mit.edu"}

// PropertySpec declares one property of a component kind.
// Declaration order within a ComponentSpec is the canonical
// serialization order.
type PropertySpec struct {
	Name    string
	Kind    types.ValueKind
	Default types.Value
	Enum    map[string]string // symbol -> target literal, enum kind only
}

// ComponentSpec declares one component kind: its per-kind format
// version, whether it may hold children, its property table, and the
// events it can source.
type ComponentSpec struct {
	Kind       types.ComponentKind
	Version    string
	Container  bool
	ScreenOnly bool
	Properties []PropertySpec
	Events     []string
}

// Property looks up a property spec by name.
func (s *ComponentSpec) Property(name string) (*PropertySpec, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return &s.Properties[i], true
		}
	}
	return nil, false
}

// HasEvent reports whether the kind can source the named event.
func (s *ComponentSpec) HasEvent(event string) bool {
	for _, e := range s.Events {
		if e == event {
			return true
		}
	}
	return false
}

var (
	alignHorizontal = map[string]string{"left": "1", "right": "2", "center": "3"}
	alignVertical   = map[string]string{"top": "1", "bottom": "2", "center": "3"}
	textAlignment   = map[string]string{"left": "0", "center": "1", "right": "2", "opposite": "3"}
	fontTypeface    = map[string]string{"default": "0", "sans serif": "1", "serif": "2", "monospace": "3"}
	buttonShape     = map[string]string{"default": "0", "rounded": "1", "rectangular": "2", "oval": "3"}
	orientations    = map[string]string{
		"unspecified": "unspecified", "portrait": "portrait",
		"landscape": "landscape", "sensor": "sensor", "user": "user",
	}
	themes = map[string]string{
		"classic":     "Classic",
		"device":      "DeviceDefault",
		"black_title": "BlackTitleText",
		"dark":        "Dark",
		"light":       "AppTheme.Light.DarkActionBar",
	}
)

// fontProperties is the shared typography slice reused by text-bearing kinds
func fontProperties(size float64) []PropertySpec {
	return []PropertySpec{
		{Name: "FontBold", Kind: types.ValueBool, Default: types.Boolean(false)},
		{Name: "FontItalic", Kind: types.ValueBool, Default: types.Boolean(false)},
		{Name: "FontSize", Kind: types.ValueNumber, Default: types.Number(size)},
		{Name: "FontTypeface", Kind: types.ValueEnum, Default: types.Enum("default"), Enum: fontTypeface},
	}
}

func sizeProperties() []PropertySpec {
	return []PropertySpec{
		{Name: "Height", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
		{Name: "Width", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
	}
}

var components = []*ComponentSpec{
	{
		Kind:       types.KindForm,
		Version:    "31",
		Container:  true,
		ScreenOnly: true,
		Properties: []PropertySpec{
			{Name: "AboutScreen", Kind: types.ValueText, Default: types.Text("")},
			{Name: "ActionBar", Kind: types.ValueBool, Default: types.Boolean(true)},
			{Name: "AppName", Kind: types.ValueText, Default: types.Text("")},
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&HFFFFFFFF")},
			{Name: "ScreenOrientation", Kind: types.ValueEnum, Default: types.Enum("unspecified"), Enum: orientations},
			{Name: "Scrollable", Kind: types.ValueBool, Default: types.Boolean(false)},
			{Name: "Theme", Kind: types.ValueEnum, Default: types.Enum("light"), Enum: themes},
			{Name: "Title", Kind: types.ValueText, Default: types.Text("")},
			{Name: "TitleVisible", Kind: types.ValueBool, Default: types.Boolean(true)},
		},
		Events: []string{"Initialize", "BackPressed"},
	},
	{
		Kind:    types.KindButton,
		Version: "7",
		Properties: append(append([]PropertySpec{
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			{Name: "Enabled", Kind: types.ValueBool, Default: types.Boolean(true)},
		}, fontProperties(14)...), append(sizeProperties(),
			PropertySpec{Name: "Image", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "Shape", Kind: types.ValueEnum, Default: types.Enum("default"), Enum: buttonShape},
			PropertySpec{Name: "ShowFeedback", Kind: types.ValueBool, Default: types.Boolean(true)},
			PropertySpec{Name: "Text", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "TextAlignment", Kind: types.ValueEnum, Default: types.Enum("center"), Enum: textAlignment},
			PropertySpec{Name: "TextColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			PropertySpec{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		)...),
		Events: []string{"Click", "LongClick", "GotFocus", "LostFocus"},
	},
	{
		Kind:    types.KindLabel,
		Version: "6",
		Properties: append(append([]PropertySpec{
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
		}, fontProperties(14)...), append(sizeProperties(),
			PropertySpec{Name: "HTMLFormat", Kind: types.ValueBool, Default: types.Boolean(false)},
			PropertySpec{Name: "Text", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "TextAlignment", Kind: types.ValueEnum, Default: types.Enum("left"), Enum: textAlignment},
			PropertySpec{Name: "TextColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			PropertySpec{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		)...),
	},
	{
		Kind:    types.KindTextBox,
		Version: "6",
		Properties: append(append([]PropertySpec{
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			{Name: "Enabled", Kind: types.ValueBool, Default: types.Boolean(true)},
		}, fontProperties(14)...), append(sizeProperties(),
			PropertySpec{Name: "Hint", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "MultiLine", Kind: types.ValueBool, Default: types.Boolean(false)},
			PropertySpec{Name: "NumbersOnly", Kind: types.ValueBool, Default: types.Boolean(false)},
			PropertySpec{Name: "ReadOnly", Kind: types.ValueBool, Default: types.Boolean(false)},
			PropertySpec{Name: "Text", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "TextAlignment", Kind: types.ValueEnum, Default: types.Enum("left"), Enum: textAlignment},
			PropertySpec{Name: "TextColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			PropertySpec{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		)...),
		Events: []string{"GotFocus", "LostFocus"},
	},
	{
		Kind:    types.KindImage,
		Version: "5",
		Properties: append(sizeProperties(),
			PropertySpec{Name: "Picture", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "RotationAngle", Kind: types.ValueNumber, Default: types.Number(0)},
			PropertySpec{Name: "ScalePictureToFit", Kind: types.ValueBool, Default: types.Boolean(false)},
			PropertySpec{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		),
	},
	{
		Kind:    types.KindCheckBox,
		Version: "2",
		Properties: append(append([]PropertySpec{
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			{Name: "Checked", Kind: types.ValueBool, Default: types.Boolean(false)},
			{Name: "Enabled", Kind: types.ValueBool, Default: types.Boolean(true)},
		}, fontProperties(14)...), append(sizeProperties(),
			PropertySpec{Name: "Text", Kind: types.ValueText, Default: types.Text("")},
			PropertySpec{Name: "TextColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			PropertySpec{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		)...),
		Events: []string{"Changed", "GotFocus", "LostFocus"},
	},
	{
		Kind:      types.KindHorizontalArrangement,
		Version:   "5",
		Container: true,
		Properties: []PropertySpec{
			{Name: "AlignHorizontal", Kind: types.ValueEnum, Default: types.Enum("left"), Enum: alignHorizontal},
			{Name: "AlignVertical", Kind: types.ValueEnum, Default: types.Enum("top"), Enum: alignVertical},
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			{Name: "Height", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
			{Name: "Width", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
			{Name: "Image", Kind: types.ValueText, Default: types.Text("")},
			{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		},
	},
	{
		Kind:      types.KindVerticalArrangement,
		Version:   "5",
		Container: true,
		Properties: []PropertySpec{
			{Name: "AlignHorizontal", Kind: types.ValueEnum, Default: types.Enum("left"), Enum: alignHorizontal},
			{Name: "AlignVertical", Kind: types.ValueEnum, Default: types.Enum("top"), Enum: alignVertical},
			{Name: "BackgroundColor", Kind: types.ValueColor, Default: types.Color("&H00000000")},
			{Name: "Height", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
			{Name: "Width", Kind: types.ValueDimension, Default: types.Dimension("automatic")},
			{Name: "Image", Kind: types.ValueText, Default: types.Text("")},
			{Name: "Visible", Kind: types.ValueBool, Default: types.Boolean(true)},
		},
	},
}

var byKind = func() map[types.ComponentKind]*ComponentSpec {
	m := make(map[types.ComponentKind]*ComponentSpec, len(components))
	for _, c := range components {
		m[c.Kind] = c
	}
	return m
}()

// Component looks up a component spec by kind.
func Component(kind types.ComponentKind) (*ComponentSpec, bool) {
	spec, ok := byKind[kind]
	return spec, ok
}

// Components returns all specs in declaration order.
func Components() []*ComponentSpec {
	return components
}

// IsContainer reports whether the kind may hold child components.
func IsContainer(kind types.ComponentKind) bool {
	spec, ok := byKind[kind]
	return ok && spec.Container
}
