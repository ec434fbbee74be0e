package schema

import (
	"fmt"
	"strings"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Violation is one named structural problem in a description
type Violation struct {
	Screen    string `json:"screen,omitempty"`
	Component string `json:"component,omitempty"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
}

func (v Violation) String() string {
	var b strings.Builder
	if v.Screen != "" {
		b.WriteString(v.Screen)
	}
	if v.Component != "" {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(v.Component)
	}
	if v.Field != "" {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(v.Field)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(v.Message)
	return b.String()
}

// ValidationError carries every violation found in the failing class
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "validation failed: " + e.Violations[0].String()
	}
	return fmt.Sprintf("validation failed: %d violations, first: %s", len(e.Violations), e.Violations[0].String())
}

// Validate checks a description against the catalog and converts its
// loose property bags into typed values. It returns nil on success or a
// *ValidationError listing all violations of the first failing class.
func Validate(app *types.AppDescription) error {
	checks := []func(*types.AppDescription) []Violation{
		checkStructure,
		checkInstanceNames,
		checkProperties,
		checkBindings,
	}
	for _, check := range checks {
		if violations := check(app); len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}
	}
	return nil
}

// checkStructure verifies screen presence, recognized kinds, and that
// only container kinds carry children.
func checkStructure(app *types.AppDescription) []Violation {
	var out []Violation
	if len(app.Screens) == 0 {
		return []Violation{{Message: "app must declare at least one screen"}}
	}
	for si := range app.Screens {
		screen := &app.Screens[si]
		if screen.Name == "" {
			out = append(out, Violation{Screen: fmt.Sprintf("screens[%d]", si), Message: "screen name is required"})
			continue
		}
		for _, node := range screen.Components {
			out = append(out, checkNodeStructure(screen.Name, node)...)
		}
	}
	return out
}

func checkNodeStructure(screen string, node *types.ComponentNode) []Violation {
	var out []Violation
	if node.Name == "" {
		out = append(out, Violation{Screen: screen, Message: fmt.Sprintf("component of kind %q has no instance name", node.Kind)})
	}
	spec, ok := catalog.Component(node.Kind)
	switch {
	case !ok:
		out = append(out, Violation{Screen: screen, Component: node.Name,
			Message: fmt.Sprintf("unrecognized component kind %q", node.Kind)})
	case spec.ScreenOnly:
		out = append(out, Violation{Screen: screen, Component: node.Name,
			Message: fmt.Sprintf("kind %q is the screen root and cannot be nested", node.Kind)})
	case !spec.Container && len(node.Children) > 0:
		out = append(out, Violation{Screen: screen, Component: node.Name,
			Message: fmt.Sprintf("leaf kind %q cannot hold children", node.Kind)})
	}
	for _, child := range node.Children {
		out = append(out, checkNodeStructure(screen, child)...)
	}
	return out
}

// checkInstanceNames verifies per-screen uniqueness and reports every
// duplicated name, not just the first.
func checkInstanceNames(app *types.AppDescription) []Violation {
	var out []Violation
	for si := range app.Screens {
		screen := &app.Screens[si]
		seen := make(map[string]int)
		var order []string
		for _, node := range screen.Components {
			node.Walk(func(n *types.ComponentNode) {
				if seen[n.Name] == 0 {
					order = append(order, n.Name)
				}
				seen[n.Name]++
			})
		}
		for _, name := range order {
			if seen[name] > 1 {
				out = append(out, Violation{Screen: screen.Name, Component: name,
					Message: fmt.Sprintf("instance name used %d times, must be unique within the screen", seen[name])})
			}
		}
	}
	return out
}

// checkProperties verifies property legality per kind and converts
// every bag entry to a typed value.
func checkProperties(app *types.AppDescription) []Violation {
	var out []Violation
	for si := range app.Screens {
		screen := &app.Screens[si]
		formSpec, _ := catalog.Component(types.KindForm)
		screen.Values = make(map[string]types.Value, len(screen.Properties))
		out = append(out, convertBag(screen.Name, screen.Name, formSpec, screen.Properties, screen.Values)...)
		for _, node := range screen.Components {
			node.Walk(func(n *types.ComponentNode) {
				spec, ok := catalog.Component(n.Kind)
				if !ok {
					return
				}
				n.Values = make(map[string]types.Value, len(n.Properties))
				out = append(out, convertBag(screen.Name, n.Name, spec, n.Properties, n.Values)...)
			})
		}
	}
	return out
}

func convertBag(screen, component string, spec *catalog.ComponentSpec, bag map[string]interface{}, into map[string]types.Value) []Violation {
	var out []Violation
	for i := range spec.Properties {
		pspec := &spec.Properties[i]
		raw, ok := bag[pspec.Name]
		if !ok {
			continue
		}
		value, err := Convert(pspec.Kind, raw)
		if err != nil {
			out = append(out, Violation{Screen: screen, Component: component, Field: pspec.Name, Message: err.Error()})
			continue
		}
		if into != nil {
			into[pspec.Name] = value
		}
	}
	for name := range bag {
		if _, ok := spec.Property(name); !ok {
			out = append(out, Violation{Screen: screen, Component: component, Field: name,
				Message: fmt.Sprintf("property %q is not legal for kind %q", name, spec.Kind)})
		}
	}
	return out
}

// Convert maps one raw wire value onto the closed union for the
// declared property kind.
func Convert(kind types.ValueKind, raw interface{}) (types.Value, error) {
	switch kind {
	case types.ValueText:
		s, ok := raw.(string)
		if !ok {
			return types.Value{}, fmt.Errorf("expected text, got %T", raw)
		}
		return types.Text(s), nil
	case types.ValueNumber:
		switch n := raw.(type) {
		case float64:
			return types.Number(n), nil
		case int:
			return types.Number(float64(n)), nil
		}
		return types.Value{}, fmt.Errorf("expected number, got %T", raw)
	case types.ValueBool:
		b, ok := raw.(bool)
		if !ok {
			return types.Value{}, fmt.Errorf("expected boolean, got %T", raw)
		}
		return types.Boolean(b), nil
	case types.ValueColor:
		s, ok := raw.(string)
		if !ok {
			return types.Value{}, fmt.Errorf("expected color spec, got %T", raw)
		}
		return types.Color(s), nil
	case types.ValueDimension:
		switch d := raw.(type) {
		case float64:
			return types.Dimension(fmt.Sprintf("%dpx", int(d))), nil
		case int:
			return types.Dimension(fmt.Sprintf("%dpx", d)), nil
		case string:
			return types.Dimension(d), nil
		}
		return types.Value{}, fmt.Errorf("expected dimension, got %T", raw)
	case types.ValueEnum:
		s, ok := raw.(string)
		if !ok {
			return types.Value{}, fmt.Errorf("expected enum symbol, got %T", raw)
		}
		return types.Enum(s), nil
	}
	return types.Value{}, fmt.Errorf("unsupported value kind %q", kind)
}

// checkBindings verifies event sources, event kinds, action kinds, and
// action targets against the validated component tree.
func checkBindings(app *types.AppDescription) []Violation {
	var out []Violation
	screenNames := make(map[string]bool, len(app.Screens))
	for si := range app.Screens {
		screenNames[app.Screens[si].Name] = true
	}
	for si := range app.Screens {
		screen := &app.Screens[si]
		kinds := instanceKinds(screen)
		for bi := range screen.Events {
			binding := &screen.Events[bi]
			srcKind, ok := kinds[binding.Component]
			if !ok {
				out = append(out, Violation{Screen: screen.Name, Component: binding.Component,
					Message: fmt.Sprintf("event binding references unknown component %q", binding.Component)})
				continue
			}
			spec, _ := catalog.Component(srcKind)
			if !spec.HasEvent(binding.Event) {
				out = append(out, Violation{Screen: screen.Name, Component: binding.Component, Field: binding.Event,
					Message: fmt.Sprintf("kind %q cannot source event %q", srcKind, binding.Event)})
			}
			for ai := range binding.Actions {
				out = append(out, checkAction(screen.Name, binding, &binding.Actions[ai], kinds, screenNames)...)
			}
		}
	}
	return out
}

func checkAction(screen string, binding *types.EventBinding, action *types.ActionStatement, kinds map[string]types.ComponentKind, screenNames map[string]bool) []Violation {
	var out []Violation
	spec, ok := catalog.Action(action.Action)
	if !ok {
		return []Violation{{Screen: screen, Component: binding.Component,
			Message: fmt.Sprintf("unrecognized action kind %q", action.Action)}}
	}
	switch spec.Kind {
	case types.ActionSetProperty:
		targetKind, ok := kinds[action.Target]
		if !ok {
			out = append(out, Violation{Screen: screen, Component: binding.Component,
				Message: fmt.Sprintf("action targets unknown component %q", action.Target)})
			break
		}
		cspec, _ := catalog.Component(targetKind)
		if _, ok := cspec.Property(action.Property); !ok {
			out = append(out, Violation{Screen: screen, Component: action.Target, Field: action.Property,
				Message: fmt.Sprintf("kind %q has no property %q", targetKind, action.Property)})
		}
		if len(action.Args) != 1 {
			out = append(out, Violation{Screen: screen, Component: action.Target, Field: action.Property,
				Message: fmt.Sprintf("SetProperty takes exactly one argument, got %d", len(action.Args))})
		}
	case types.ActionNavigate:
		if len(action.Args) != 1 {
			out = append(out, Violation{Screen: screen, Component: binding.Component,
				Message: fmt.Sprintf("Navigate takes exactly one argument, got %d", len(action.Args))})
			break
		}
		if lit := action.Args[0]; lit.Kind == types.ExprLiteral {
			if dest, ok := lit.Value.(string); ok && !screenNames[dest] {
				out = append(out, Violation{Screen: screen, Component: binding.Component,
					Message: fmt.Sprintf("Navigate targets unknown screen %q", dest)})
			}
		}
	}
	return out
}

func instanceKinds(screen *types.ScreenDescription) map[string]types.ComponentKind {
	kinds := make(map[string]types.ComponentKind)
	for _, node := range screen.Components {
		node.Walk(func(n *types.ComponentNode) {
			kinds[n.Name] = n.Kind
		})
	}
	return kinds
}
