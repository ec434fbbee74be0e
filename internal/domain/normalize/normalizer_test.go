package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

func TestEncodeColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"red", "&HFFFF0000"},
		{"None", "&H00FFFFFF"},
		{"#ff8800", "&HFFFF8800"},
		{"#80ff8800", "&H80FF8800"},
		{"&Hff00ff00", "&HFF00FF00"},
	}
	for _, tc := range cases {
		got, err := EncodeColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := EncodeColor("chartreuse-ish")
	assert.Error(t, err)
}

func TestColorIntIsSigned(t *testing.T) {
	v, err := ColorInt("red")
	require.NoError(t, err)
	assert.Equal(t, int32(-65536), v)

	v, err = ColorInt("none")
	require.NoError(t, err)
	assert.Equal(t, int32(0x00FFFFFF), v)
}

func TestEncodeDimension(t *testing.T) {
	px := New(DensityPx)
	cases := []struct {
		in   string
		want string
	}{
		{"fill", "-2"},
		{"fill_parent", "-2"},
		{"automatic", "-1"},
		{"auto", "-1"},
		{"50%", "50%"},
		{"120", "120px"},
		{"120px", "120px"},
	}
	for _, tc := range cases {
		got, err := px.encodeDimension(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	dp := New(DensityDp)
	got, err := dp.encodeDimension("64")
	require.NoError(t, err)
	assert.Equal(t, "64dp", got)

	_, err = px.encodeDimension("wide")
	assert.Error(t, err)
}

func TestEncodeRejectsKindMismatch(t *testing.T) {
	spec, _ := catalog.Component(types.KindButton)
	pspec, ok := spec.Property("FontSize")
	require.True(t, ok)

	_, err := New(DensityPx).Encode(pspec, types.Text("big"))
	assert.Error(t, err)
}

func TestEncodeNumberTrimsTrailingZeros(t *testing.T) {
	spec, _ := catalog.Component(types.KindButton)
	pspec, _ := spec.Property("FontSize")

	lit, err := New(DensityPx).Encode(pspec, types.Number(18))
	require.NoError(t, err)
	assert.Equal(t, "18", lit)

	lit, err = New(DensityPx).Encode(pspec, types.Number(14.5))
	require.NoError(t, err)
	assert.Equal(t, "14.5", lit)
}

func TestNormalizeAppFillsEffectiveTables(t *testing.T) {
	app := &types.AppDescription{
		Name:  "Demo",
		Theme: "dark",
		Screens: []types.ScreenDescription{{
			Name: "Screen1",
			Components: []*types.ComponentNode{{
				Kind: types.KindButton,
				Name: "Go",
				Values: map[string]types.Value{
					"Text":            types.Text("Go!"),
					"BackgroundColor": types.Color("red"),
					"Width":           types.Dimension("fill"),
				},
			}},
		}},
	}

	require.NoError(t, New(DensityPx).NormalizeApp(app, "Demo"))

	screen := app.Screens[0]
	assert.Equal(t, "Demo", screen.Encoded["AppName"])
	assert.Equal(t, "Screen1", screen.Encoded["Title"], "title falls back to screen name")
	assert.Equal(t, "Dark", screen.Encoded["Theme"])
	assert.Equal(t, "True", screen.Encoded["TitleVisible"])

	btn := screen.Components[0].Encoded
	assert.Equal(t, "Go!", btn["Text"])
	assert.Equal(t, "&HFFFF0000", btn["BackgroundColor"])
	assert.Equal(t, "-2", btn["Width"])
	assert.Equal(t, "-1", btn["Height"], "unset dimension defaults to automatic")
	assert.Equal(t, "14", btn["FontSize"])
	assert.Equal(t, "1", btn["TextAlignment"], "button text centers by default")

	spec, _ := catalog.Component(types.KindButton)
	assert.Len(t, btn, len(spec.Properties), "every declared property is present")
}

func TestNormalizeAppTitleShorthandWins(t *testing.T) {
	app := &types.AppDescription{
		Name: "Demo",
		Screens: []types.ScreenDescription{{
			Name:  "Screen1",
			Title: "Welcome",
		}},
	}
	require.NoError(t, New(DensityPx).NormalizeApp(app, "Demo"))
	assert.Equal(t, "Welcome", app.Screens[0].Encoded["Title"])
}

func TestNormalizeAppReportsBadColor(t *testing.T) {
	app := &types.AppDescription{
		Name: "Demo",
		Screens: []types.ScreenDescription{{
			Name: "Screen1",
			Components: []*types.ComponentNode{{
				Kind:   types.KindLabel,
				Name:   "Label1",
				Values: map[string]types.Value{"TextColor": types.Color("blurple")},
			}},
		}},
	}

	err := New(DensityPx).NormalizeApp(app, "Demo")
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "Label1", nerr.Component)
	assert.Equal(t, "TextColor", nerr.Property)
}
