package types

import (
	"fmt"
	"strconv"
)

// ValueKind tags the Value union
type ValueKind string

const (
	ValueText      ValueKind = "text"
	ValueNumber    ValueKind = "number"
	ValueBool      ValueKind = "boolean"
	ValueColor     ValueKind = "color"
	ValueDimension ValueKind = "dimension"
	ValueEnum      ValueKind = "enum"
)

// Category is the socket-level value category used by block type checking.
// Dimension and enum properties take number sockets in the block editor.
type Category string

const (
	CategoryText      Category = "text"
	CategoryNumber    Category = "number"
	CategoryBool      Category = "boolean"
	CategoryColor     Category = "color"
	CategoryComponent Category = "component"
)

// Category maps a value kind to the socket category it satisfies.
func (k ValueKind) Category() Category {
	switch k {
	case ValueText:
		return CategoryText
	case ValueNumber, ValueDimension, ValueEnum:
		return CategoryNumber
	case ValueBool:
		return CategoryBool
	case ValueColor:
		return CategoryColor
	default:
		return CategoryText
	}
}

// Value is the closed tagged union every validated property carries.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Str  string  // text, enum symbol, color spec, dimension spec
	Num  float64 // number
	Bool bool    // boolean
}

// Text constructs a text value
func Text(s string) Value { return Value{Kind: ValueText, Str: s} }

// Number constructs a numeric value
func Number(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

// Bool constructs a boolean value
func Boolean(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Color constructs a color value from a raw spec (name, #RRGGBB, #AARRGGBB, &H literal)
func Color(spec string) Value { return Value{Kind: ValueColor, Str: spec} }

// Dimension constructs a dimension value from a raw spec
// (pixel count, "<n>%", "fill", "automatic")
func Dimension(spec string) Value { return Value{Kind: ValueDimension, Str: spec} }

// Enum constructs an enum value from its symbolic name
func Enum(symbol string) Value { return Value{Kind: ValueEnum, Str: symbol} }

// String renders the value for diagnostics, not for serialization.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Equal reports payload equality for matching kinds.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNumber:
		return v.Num == o.Num
	case ValueBool:
		return v.Bool == o.Bool
	default:
		return v.Str == o.Str
	}
}

// GoString aids test failure output
func (v Value) GoString() string {
	return fmt.Sprintf("types.Value{%s:%s}", v.Kind, v.String())
}
