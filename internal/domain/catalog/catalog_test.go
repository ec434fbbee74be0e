package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

func TestEveryKindHasCompleteDefaults(t *testing.T) {
	for _, spec := range Components() {
		require.NotEmpty(t, spec.Version, "kind %s has no format version", spec.Kind)
		for i := range spec.Properties {
			prop := &spec.Properties[i]
			assert.Equal(t, prop.Kind, prop.Default.Kind,
				"%s.%s default kind mismatch", spec.Kind, prop.Name)
			if prop.Kind == types.ValueEnum {
				require.NotNil(t, prop.Enum, "%s.%s enum table missing", spec.Kind, prop.Name)
				_, ok := prop.Enum[prop.Default.Str]
				assert.True(t, ok, "%s.%s default %q not in enum table", spec.Kind, prop.Name, prop.Default.Str)
			}
		}
	}
}

func TestFormIsScreenOnlyContainer(t *testing.T) {
	form, ok := Component(types.KindForm)
	require.True(t, ok)
	assert.True(t, form.Container)
	assert.True(t, form.ScreenOnly)

	_, hasTitle := form.Property("Title")
	assert.True(t, hasTitle)
}

func TestContainerFlags(t *testing.T) {
	assert.True(t, IsContainer(types.KindHorizontalArrangement))
	assert.True(t, IsContainer(types.KindVerticalArrangement))
	assert.False(t, IsContainer(types.KindButton))
	assert.False(t, IsContainer("Bogus"))
}

func TestButtonEvents(t *testing.T) {
	button, ok := Component(types.KindButton)
	require.True(t, ok)
	assert.True(t, button.HasEvent("Click"))
	assert.True(t, button.HasEvent("LongClick"))
	assert.False(t, button.HasEvent("Changed"))
}

func TestOperatorSignatures(t *testing.T) {
	join, ok := Operator("join")
	require.True(t, ok)
	assert.Equal(t, types.CategoryText, join.Result)
	assert.Len(t, join.ArgNames, len(join.Args))

	for _, name := range Operators() {
		op, ok := Operator(name)
		require.True(t, ok, name)
		assert.Len(t, op.ArgNames, len(op.Args), name)
	}

	_, ok = Operator("modulo")
	assert.False(t, ok)
}

func TestVersionPair(t *testing.T) {
	assert.Equal(t, "232", FormatVersion)
	assert.Equal(t, "37", LanguageVersion)
}
