package blocks

import (
	"fmt"
	"strconv"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/normalize"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Placement rule for top-level event blocks: fixed left margin,
// vertical stacking with fixed spacing. Purely cosmetic but must be
// deterministic and non-overlapping.
const (
	placementX       = 20
	placementYOrigin = 20
	placementYStride = 140
)

// Error reports a synthesis failure: a dangling component reference or
// a socket whose expression resolved to the wrong value category.
type Error struct {
	Screen string
	Block  string
	Socket string
	Reason string
}

func (e *Error) Error() string {
	msg := "blocks: " + e.Screen
	if e.Block != "" {
		msg += ", block " + e.Block
	}
	if e.Socket != "" {
		msg += ", socket " + e.Socket
	}
	return msg + ": " + e.Reason
}

// synthesizer holds the per-run id counter and the screen's instance
// kind table; one is created per screen, never shared.
type synthesizer struct {
	screen *types.ScreenDescription
	kinds  map[string]types.ComponentKind
	nextID int
}

// Synthesize builds one top-level event block per binding with the
// binding's actions sequenced under it in declaration order.
func Synthesize(screen *types.ScreenDescription) ([]*Block, error) {
	s := &synthesizer{
		screen: screen,
		kinds:  make(map[string]types.ComponentKind),
	}
	for _, node := range screen.Components {
		node.Walk(func(n *types.ComponentNode) {
			s.kinds[n.Name] = n.Kind
		})
	}

	top := make([]*Block, 0, len(screen.Events))
	for bi := range screen.Events {
		block, err := s.eventBlock(&screen.Events[bi], bi)
		if err != nil {
			return nil, err
		}
		top = append(top, block)
	}
	return top, nil
}

func (s *synthesizer) newID() string {
	s.nextID++
	return "b" + strconv.Itoa(s.nextID)
}

func (s *synthesizer) eventBlock(binding *types.EventBinding, index int) (*Block, error) {
	srcKind, ok := s.kinds[binding.Component]
	if !ok {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("event binding references unknown component instance %q", binding.Component)}
	}
	spec, ok := catalog.Component(srcKind)
	if !ok || !spec.HasEvent(binding.Event) {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("component %q of kind %q cannot source event %q", binding.Component, srcKind, binding.Event)}
	}

	block := &Block{
		Type:     "component_event",
		ID:       s.newID(),
		X:        placementX,
		Y:        placementYOrigin + placementYStride*index,
		TopLevel: true,
		Mutation: &Mutation{
			ComponentType: string(srcKind),
			IsGeneric:     "false",
			InstanceName:  binding.Component,
			EventName:     binding.Event,
		},
	}

	var head, tail *Block
	for ai := range binding.Actions {
		stmt, err := s.actionBlock(&binding.Actions[ai])
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = stmt
		} else {
			tail.Next = stmt
		}
		tail = stmt
	}
	if head != nil {
		block.Statements = []StatementSocket{{Name: "DO", Block: head}}
	}
	return block, nil
}

func (s *synthesizer) actionBlock(action *types.ActionStatement) (*Block, error) {
	aspec, ok := catalog.Action(action.Action)
	if !ok {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("unrecognized action kind %q", action.Action)}
	}
	switch aspec.Kind {
	case types.ActionSetProperty:
		return s.setPropertyBlock(action)
	case types.ActionNavigate:
		return s.navigateBlock(action, aspec)
	}
	return nil, &Error{Screen: s.screen.Name, Reason: fmt.Sprintf("action kind %q has no block form", action.Action)}
}

// setPropertyBlock emits a property setter; the value socket's expected
// category is derived from the target property's declared kind.
func (s *synthesizer) setPropertyBlock(action *types.ActionStatement) (*Block, error) {
	targetKind, ok := s.kinds[action.Target]
	if !ok {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("action targets unknown component instance %q", action.Target)}
	}
	cspec, _ := catalog.Component(targetKind)
	pspec, ok := cspec.Property(action.Property)
	if !ok {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("kind %q has no property %q", targetKind, action.Property)}
	}
	if len(action.Args) != 1 {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("SetProperty %s.%s takes exactly one argument, got %d", action.Target, action.Property, len(action.Args))}
	}

	block := &Block{
		Type: "component_set_get",
		ID:   s.newID(),
		Mutation: &Mutation{
			ComponentType: string(targetKind),
			SetOrGet:      "set",
			PropertyName:  action.Property,
			IsGeneric:     "false",
			InstanceName:  action.Target,
		},
		Fields: []Field{{Name: "PROP", Value: action.Property}},
	}
	value, err := s.expression(action.Args[0], pspec.Kind.Category(), block.ID, "VALUE")
	if err != nil {
		return nil, err
	}
	block.Values = []ValueSocket{{Name: "VALUE", Block: value}}
	return block, nil
}

func (s *synthesizer) navigateBlock(action *types.ActionStatement, aspec *catalog.ActionSpec) (*Block, error) {
	if len(action.Args) != 1 {
		return nil, &Error{Screen: s.screen.Name,
			Reason: fmt.Sprintf("Navigate takes exactly one argument, got %d", len(action.Args))}
	}
	block := &Block{
		Type: "controls_openAnotherScreen",
		ID:   s.newID(),
	}
	socket := aspec.Sockets[0]
	value, err := s.expression(action.Args[0], socket.Category, block.ID, socket.Name)
	if err != nil {
		return nil, err
	}
	block.Values = []ValueSocket{{Name: socket.Name, Block: value}}
	return block, nil
}

// expression resolves an expression node against the socket's expected
// category and emits the matching literal, property-read, or operator
// block. A category mismatch is a hard synthesis failure naming the
// offending block and socket.
func (s *synthesizer) expression(expr *types.ExpressionNode, expected types.Category, parentID, socket string) (*Block, error) {
	switch expr.Kind {
	case types.ExprLiteral:
		return s.literalBlock(expr, expected, parentID, socket)
	case types.ExprPropertyGet:
		return s.propertyGetBlock(expr, expected, parentID, socket)
	case types.ExprOperator:
		return s.operatorBlock(expr, expected, parentID, socket)
	}
	return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
		Reason: fmt.Sprintf("unrecognized expression kind %q", expr.Kind)}
}

func (s *synthesizer) literalBlock(expr *types.ExpressionNode, expected types.Category, parentID, socket string) (*Block, error) {
	mismatch := func(got types.Category) error {
		return &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("socket expects %s, literal resolves to %s", expected, got)}
	}
	switch raw := expr.Value.(type) {
	case string:
		// Color sockets accept color specs; everything else treats a
		// string literal as text.
		if expected == types.CategoryColor {
			n, err := normalize.ColorInt(raw)
			if err != nil {
				return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket, Reason: err.Error()}
			}
			return &Block{Type: "math_number", ID: s.newID(),
				Fields: []Field{{Name: "NUM", Value: strconv.FormatInt(int64(n), 10)}}}, nil
		}
		if expected != types.CategoryText {
			return nil, mismatch(types.CategoryText)
		}
		return &Block{Type: "text", ID: s.newID(),
			Fields: []Field{{Name: "TEXT", Value: raw}}}, nil
	case float64:
		if expected != types.CategoryNumber {
			return nil, mismatch(types.CategoryNumber)
		}
		return &Block{Type: "math_number", ID: s.newID(),
			Fields: []Field{{Name: "NUM", Value: strconv.FormatFloat(raw, 'f', -1, 64)}}}, nil
	case int:
		if expected != types.CategoryNumber {
			return nil, mismatch(types.CategoryNumber)
		}
		return &Block{Type: "math_number", ID: s.newID(),
			Fields: []Field{{Name: "NUM", Value: strconv.Itoa(raw)}}}, nil
	case bool:
		if expected != types.CategoryBool {
			return nil, mismatch(types.CategoryBool)
		}
		lit := "FALSE"
		if raw {
			lit = "TRUE"
		}
		return &Block{Type: "logic_boolean", ID: s.newID(),
			Fields: []Field{{Name: "BOOL", Value: lit}}}, nil
	}
	return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
		Reason: fmt.Sprintf("unsupported literal type %T", expr.Value)}
}

func (s *synthesizer) propertyGetBlock(expr *types.ExpressionNode, expected types.Category, parentID, socket string) (*Block, error) {
	kind, ok := s.kinds[expr.Component]
	if !ok {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("property read references unknown component instance %q", expr.Component)}
	}
	cspec, _ := catalog.Component(kind)
	pspec, ok := cspec.Property(expr.Property)
	if !ok {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("kind %q has no property %q", kind, expr.Property)}
	}
	if got := pspec.Kind.Category(); got != expected {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("socket expects %s, %s.%s resolves to %s", expected, expr.Component, expr.Property, got)}
	}
	return &Block{
		Type: "component_set_get",
		ID:   s.newID(),
		Mutation: &Mutation{
			ComponentType: string(kind),
			SetOrGet:      "get",
			PropertyName:  expr.Property,
			IsGeneric:     "false",
			InstanceName:  expr.Component,
		},
		Fields: []Field{{Name: "PROP", Value: expr.Property}},
	}, nil
}

func (s *synthesizer) operatorBlock(expr *types.ExpressionNode, expected types.Category, parentID, socket string) (*Block, error) {
	op, ok := catalog.Operator(expr.Op)
	if !ok {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("unrecognized operator %q", expr.Op)}
	}
	if op.Result != expected {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("socket expects %s, operator %q yields %s", expected, op.Name, op.Result)}
	}
	if len(expr.Args) != len(op.Args) {
		return nil, &Error{Screen: s.screen.Name, Block: parentID, Socket: socket,
			Reason: fmt.Sprintf("operator %q takes %d arguments, got %d", op.Name, len(op.Args), len(expr.Args))}
	}

	block := &Block{Type: op.BlockType, ID: s.newID()}
	if op.Mutation {
		block.Mutation = &Mutation{Items: strconv.Itoa(len(op.Args))}
	}
	if op.OpField != "" {
		block.Fields = []Field{{Name: "OP", Value: op.OpField}}
	}
	for i, arg := range expr.Args {
		child, err := s.expression(arg, op.Args[i], block.ID, op.ArgNames[i])
		if err != nil {
			return nil, err
		}
		block.Values = append(block.Values, ValueSocket{Name: op.ArgNames[i], Block: child})
	}
	return block, nil
}
