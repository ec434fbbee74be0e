package types

// ComponentKind identifies a supported App Inventor component type
type ComponentKind string

const (
	KindForm                  ComponentKind = "Form"
	KindButton                ComponentKind = "Button"
	KindLabel                 ComponentKind = "Label"
	KindTextBox               ComponentKind = "TextBox"
	KindImage                 ComponentKind = "Image"
	KindCheckBox              ComponentKind = "CheckBox"
	KindHorizontalArrangement ComponentKind = "HorizontalArrangement"
	KindVerticalArrangement   ComponentKind = "VerticalArrangement"
)

// AppDescription is the root entity handed to the synthesizer
type AppDescription struct {
	Name      string              `json:"name" binding:"required"`
	Namespace string              `json:"namespace,omitempty"`
	Theme     string              `json:"theme,omitempty"`
	Screens   []ScreenDescription `json:"screens" binding:"required"`

	// Project palette, raw color specs; defaults applied when empty.
	PrimaryColor     string `json:"primary_color,omitempty"`
	PrimaryDarkColor string `json:"primary_dark_color,omitempty"`
	AccentColor      string `json:"accent_color,omitempty"`
}

// ScreenDescription holds one screen's component tree and its event bindings.
// The screen itself is the root container; Components are its direct children.
type ScreenDescription struct {
	Name       string                 `json:"name" binding:"required"`
	Title      string                 `json:"title,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Components []*ComponentNode       `json:"components,omitempty"`
	Events     []EventBinding         `json:"events,omitempty"`

	// Filled by the schema validator and property normalizer;
	// never set by callers.
	Values  map[string]Value  `json:"-"`
	Encoded map[string]string `json:"-"`
}

// ComponentNode is one node in a screen's component tree.
//
// Properties carries the raw bag from the wire; Values is filled by the
// schema validator, Encoded by the property normalizer, and ID by the
// identity assigner. Child ordering is meaningful and preserved.
type ComponentNode struct {
	Kind       ComponentKind          `json:"kind"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Children   []*ComponentNode       `json:"children,omitempty"`

	// Filled by pipeline stages; never set by callers.
	ID      int               `json:"-"`
	Values  map[string]Value  `json:"-"`
	Encoded map[string]string `json:"-"`
}

// Walk visits n and every descendant in declaration order.
func (n *ComponentNode) Walk(visit func(*ComponentNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// EventBinding attaches an ordered action sequence to a component event
type EventBinding struct {
	Component string            `json:"component" binding:"required"`
	Event     string            `json:"event" binding:"required"`
	Actions   []ActionStatement `json:"actions"`
}

// ActionKind enumerates supported action statements
type ActionKind string

const (
	ActionSetProperty ActionKind = "SetProperty"
	ActionNavigate    ActionKind = "Navigate"
)

// ActionStatement is one step executed when an event fires
type ActionStatement struct {
	Action   ActionKind        `json:"action"`
	Target   string            `json:"target,omitempty"`
	Property string            `json:"property,omitempty"`
	Args     []*ExpressionNode `json:"args,omitempty"`
}

// ExprKind tags the ExpressionNode variant
type ExprKind string

const (
	ExprLiteral     ExprKind = "literal"
	ExprPropertyGet ExprKind = "get"
	ExprOperator    ExprKind = "op"
)

// ExpressionNode is a tagged expression variant: a literal, a component
// property read, or an operator application over child expressions.
// Trees are built top-down from the description and cannot cycle.
type ExpressionNode struct {
	Kind      ExprKind          `json:"kind"`
	Value     interface{}       `json:"value,omitempty"`
	Component string            `json:"component,omitempty"`
	Property  string            `json:"property,omitempty"`
	Op        string            `json:"op,omitempty"`
	Args      []*ExpressionNode `json:"args,omitempty"`
}
