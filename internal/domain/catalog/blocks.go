package catalog

import (
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// SocketSpec declares one typed argument slot of an action or operator.
type SocketSpec struct {
	Name     string // value element name in the block document
	Category types.Category
}

// ActionSpec declares the block-level shape of an action kind.
// DynamicSocket marks actions whose value socket category comes from the
// target property's declared kind rather than a fixed table entry.
type ActionSpec struct {
	Kind          types.ActionKind
	Sockets       []SocketSpec
	DynamicSocket bool
}

var actions = map[types.ActionKind]*ActionSpec{
	types.ActionSetProperty: {
		Kind:          types.ActionSetProperty,
		Sockets:       []SocketSpec{{Name: "VALUE"}},
		DynamicSocket: true,
	},
	types.ActionNavigate: {
		Kind:    types.ActionNavigate,
		Sockets: []SocketSpec{{Name: "SCREEN", Category: types.CategoryText}},
	},
}

// Action looks up an action signature.
func Action(kind types.ActionKind) (*ActionSpec, bool) {
	spec, ok := actions[kind]
	return spec, ok
}

// OperatorSpec declares a built-in operator: argument categories, result
// category, and the target block encoding (block type, arg socket names,
// optional OP field and items mutation).
type OperatorSpec struct {
	Name      string
	Args      []types.Category
	Result    types.Category
	BlockType string
	ArgNames  []string
	OpField   string // value of the OP field, empty when absent
	Mutation  bool   // emit an items="<n>" mutation (join-style blocks)
}

var operators = map[string]*OperatorSpec{
	"join": {
		Name: "join", Args: []types.Category{types.CategoryText, types.CategoryText},
		Result: types.CategoryText, BlockType: "text_join",
		ArgNames: []string{"ADD0", "ADD1"}, Mutation: true,
	},
	"add": {
		Name: "add", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryNumber, BlockType: "math_add",
		ArgNames: []string{"NUM0", "NUM1"}, Mutation: true,
	},
	"subtract": {
		Name: "subtract", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryNumber, BlockType: "math_subtract",
		ArgNames: []string{"A", "B"},
	},
	"multiply": {
		Name: "multiply", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryNumber, BlockType: "math_multiply",
		ArgNames: []string{"NUM0", "NUM1"}, Mutation: true,
	},
	"divide": {
		Name: "divide", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryNumber, BlockType: "math_division",
		ArgNames: []string{"A", "B"},
	},
	"equals": {
		Name: "equals", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryBool, BlockType: "math_compare",
		ArgNames: []string{"A", "B"}, OpField: "EQ",
	},
	"greater": {
		Name: "greater", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryBool, BlockType: "math_compare",
		ArgNames: []string{"A", "B"}, OpField: "GT",
	},
	"less": {
		Name: "less", Args: []types.Category{types.CategoryNumber, types.CategoryNumber},
		Result: types.CategoryBool, BlockType: "math_compare",
		ArgNames: []string{"A", "B"}, OpField: "LT",
	},
	"not": {
		Name: "not", Args: []types.Category{types.CategoryBool},
		Result: types.CategoryBool, BlockType: "logic_negate",
		ArgNames: []string{"BOOL"},
	},
}

// Operator looks up a built-in operator signature.
func Operator(name string) (*OperatorSpec, bool) {
	spec, ok := operators[name]
	return spec, ok
}

// Operators returns the operator names in sorted-stable order for
// capability listings.
func Operators() []string {
	names := make([]string, 0, len(operators))
	for _, op := range []string{"join", "add", "subtract", "multiply", "divide", "equals", "greater", "less", "not"} {
		if _, ok := operators[op]; ok {
			names = append(names, op)
		}
	}
	return names
}
