package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

func validApp() *types.AppDescription {
	return &types.AppDescription{
		Name: "TestApp",
		Screens: []types.ScreenDescription{{
			Name:  "Screen1",
			Title: "Main",
			Components: []*types.ComponentNode{
				{Kind: types.KindButton, Name: "Button1", Properties: map[string]interface{}{"Text": "Go"}},
				{Kind: types.KindLabel, Name: "Label1"},
			},
			Events: []types.EventBinding{{
				Component: "Button1",
				Event:     "Click",
				Actions: []types.ActionStatement{{
					Action:   types.ActionSetProperty,
					Target:   "Label1",
					Property: "Text",
					Args:     []*types.ExpressionNode{{Kind: types.ExprLiteral, Value: "done"}},
				}},
			}},
		}},
	}
}

func TestValidateAcceptsWellFormedApp(t *testing.T) {
	app := validApp()
	require.NoError(t, Validate(app))

	// Property bags were converted to typed values.
	button := app.Screens[0].Components[0]
	require.Contains(t, button.Values, "Text")
	assert.Equal(t, types.Text("Go"), button.Values["Text"])
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	app := validApp()
	app.Screens[0].Components = append(app.Screens[0].Components,
		&types.ComponentNode{Kind: "Spinner3000", Name: "X"})

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0].Message, "Spinner3000")
}

func TestValidateRejectsChildrenOnLeaf(t *testing.T) {
	app := validApp()
	app.Screens[0].Components[0].Children = []*types.ComponentNode{
		{Kind: types.KindLabel, Name: "Nested"},
	}

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, "cannot hold children")
}

func TestValidateReportsAllDuplicateNames(t *testing.T) {
	app := validApp()
	app.Screens[0].Components = []*types.ComponentNode{
		{Kind: types.KindButton, Name: "A"},
		{Kind: types.KindButton, Name: "A"},
		{Kind: types.KindLabel, Name: "B"},
		{Kind: types.KindLabel, Name: "B"},
		{Kind: types.KindLabel, Name: "C"},
	}
	app.Screens[0].Events = nil

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 2, "one violation per duplicated name")
	assert.Equal(t, "A", verr.Violations[0].Component)
	assert.Equal(t, "B", verr.Violations[1].Component)
}

func TestValidateRejectsIllegalProperty(t *testing.T) {
	app := validApp()
	app.Screens[0].Components[1].Properties = map[string]interface{}{"Hint": "nope"}

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "Hint", verr.Violations[0].Field)
}

func TestValidateRejectsMistypedProperty(t *testing.T) {
	app := validApp()
	app.Screens[0].Components[0].Properties = map[string]interface{}{"FontSize": "big"}

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "FontSize", verr.Violations[0].Field)
	assert.Contains(t, verr.Violations[0].Message, "expected number")
}

func TestValidateRejectsUnknownEventSource(t *testing.T) {
	app := validApp()
	app.Screens[0].Events[0].Component = "Ghost"

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, `unknown component "Ghost"`)
}

func TestValidateRejectsIllegalEventKind(t *testing.T) {
	app := validApp()
	app.Screens[0].Events[0].Component = "Label1"

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, `cannot source event "Click"`)
}

func TestValidateRejectsUnknownActionTarget(t *testing.T) {
	app := validApp()
	app.Screens[0].Events[0].Actions[0].Target = "Ghost"

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, `unknown component "Ghost"`)
}

func TestValidateRejectsNavigateToUnknownScreen(t *testing.T) {
	app := validApp()
	app.Screens[0].Events[0].Actions = []types.ActionStatement{{
		Action: types.ActionNavigate,
		Args:   []*types.ExpressionNode{{Kind: types.ExprLiteral, Value: "Nowhere"}},
	}}

	err := Validate(app)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, `unknown screen "Nowhere"`)
}

func TestValidateRequiresScreens(t *testing.T) {
	err := Validate(&types.AppDescription{Name: "Empty"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, "at least one screen")
}

func TestConvertDimension(t *testing.T) {
	v, err := Convert(types.ValueDimension, float64(120))
	require.NoError(t, err)
	assert.Equal(t, types.Dimension("120px"), v)

	v, err = Convert(types.ValueDimension, "50%")
	require.NoError(t, err)
	assert.Equal(t, types.Dimension("50%"), v)

	_, err = Convert(types.ValueDimension, true)
	assert.Error(t, err)
}
