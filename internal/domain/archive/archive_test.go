package archive

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/blocks"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/normalize"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// resolvedProject normalizes a small two-level layout and wraps it the
// way the pipeline hands projects to the assembler.
func resolvedProject(t *testing.T) *ResolvedProject {
	t.Helper()
	app := &types.AppDescription{
		Name: "Demo",
		Screens: []types.ScreenDescription{{
			Name: "Screen1",
			Components: []*types.ComponentNode{
				{Kind: types.KindVerticalArrangement, Name: "Panel", ID: 1, Children: []*types.ComponentNode{
					{Kind: types.KindButton, Name: "Button1", ID: 2,
						Values: map[string]types.Value{"Text": types.Text("Go")}},
				}},
				{Kind: types.KindLabel, Name: "Label1", ID: 3},
			},
			Events: []types.EventBinding{{
				Component: "Button1",
				Event:     "Click",
				Actions: []types.ActionStatement{{
					Action: types.ActionSetProperty, Target: "Label1", Property: "Text",
					Args: []*types.ExpressionNode{{Kind: types.ExprLiteral, Value: "pressed"}},
				}},
			}},
		}},
	}
	require.NoError(t, normalize.New(normalize.DensityPx).NormalizeApp(app, "Demo"))

	screen := &app.Screens[0]
	blks, err := blocks.Synthesize(screen)
	require.NoError(t, err)

	return &ResolvedProject{
		AppName:          "Demo",
		PackagePath:      "acct123.Demo",
		MainScreen:       "acct123.Demo.Screen1",
		Theme:            screen.Encoded["Theme"],
		PrimaryColor:     "&HFF3F51B5",
		PrimaryDarkColor: "&HFF303F9F",
		AccentColor:      "&HFFFF4081",
		Screens: []*ResolvedScreen{{
			Name:       screen.Name,
			Form:       screen.Encoded,
			Components: screen.Components,
			Blocks:     blks,
		}},
	}
}

func TestEncodeSCMWrapperAndPayload(t *testing.T) {
	p := resolvedProject(t)
	data, err := EncodeSCM(p.Screens[0], 0)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "#|\n$JSON\n"))
	assert.True(t, strings.HasSuffix(text, "\n|#"))

	payload := strings.TrimSuffix(strings.TrimPrefix(text, "#|\n$JSON\n"), "\n|#")
	assert.NotContains(t, payload, "\n", "payload is a single line")
	assert.Contains(t, payload, `"authURL":["ai2.appinventor.mit.edu"]`)
	assert.Contains(t, payload, `"YaVersion":"232"`)
	assert.Contains(t, payload, `"Source":"Form"`)
	assert.Contains(t, payload, `"$Name":"Screen1"`)
	assert.Contains(t, payload, `"Uuid":"0"`, "main screen uses the zero uuid")
}

func TestScreenUUID(t *testing.T) {
	assert.Equal(t, "0", screenUUID(0))
	assert.Equal(t, "2", screenUUID(2))
}

func TestSCMRoundTripIsIsomorphic(t *testing.T) {
	p := resolvedProject(t)
	screen := p.Screens[0]
	data, err := EncodeSCM(screen, 0)
	require.NoError(t, err)

	decoded, err := DecodeSCM(data)
	require.NoError(t, err)
	assert.Equal(t, "Screen1", decoded.Name)
	assert.Equal(t, "232", decoded.Version)
	assert.Equal(t, screen.Form, decoded.Form)

	require.Len(t, decoded.Components, 2)
	panel := decoded.Components[0]
	assert.Equal(t, types.KindVerticalArrangement, panel.Kind)
	assert.Equal(t, "Panel", panel.Name)
	assert.Equal(t, 1, panel.ID)
	assert.Equal(t, screen.Components[0].Encoded, panel.Encoded)

	require.Len(t, panel.Children, 1)
	btn := panel.Children[0]
	assert.Equal(t, "Button1", btn.Name)
	assert.Equal(t, 2, btn.ID)
	assert.Equal(t, "Go", btn.Encoded["Text"])

	assert.Equal(t, "Label1", decoded.Components[1].Name)
}

func TestDecodeSCMRejectsVersionDrift(t *testing.T) {
	doc := "#|\n$JSON\n" + `{"authURL":["ai2.appinventor.mit.edu"],"YaVersion":"9","Source":"Form","Properties":{"$Name":"S"}}` + "\n|#"
	_, err := DecodeSCM([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format version")
}

func TestEncodeBKY(t *testing.T) {
	p := resolvedProject(t)
	data, err := EncodeBKY(p.Screens[0].Blocks)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `<xml xmlns="https://developers.google.com/blockly/xml">`)
	assert.Contains(t, text, `<block type="component_event" id="b1" x="20" y="20">`)
	assert.Contains(t, text, `component_type="Button"`)
	assert.Contains(t, text, `instance_name="Button1"`)
	assert.Contains(t, text, `event_name="Click"`)
	assert.Contains(t, text, `<field name="PROP">Text</field>`)
	assert.Contains(t, text, `ya-version="232" language-version="37"`)
	assert.Equal(t, 1, strings.Count(text, ` x="`), "only top-level blocks carry placement")
	assert.NotContains(t, text, "<?xml", "no declaration, matching the block editor's output")
}

func TestEncodeProjectProperties(t *testing.T) {
	p := resolvedProject(t)
	data := EncodeProjectProperties(p)

	text := string(data)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Equal(t, "#", lines[0])
	assert.Equal(t, "#Project properties", lines[1], "header carries no timestamp")
	assert.Equal(t, "sizing=Responsive", lines[2])
	assert.Contains(t, lines, "aname=Demo")
	assert.Contains(t, lines, "main=acct123.Demo.Screen1")
	assert.Contains(t, lines, "color.primary=&HFF3F51B5")
	assert.Contains(t, lines, "source=../src")
	assert.Contains(t, lines, "versionname=1.0")

	assert.Equal(t, data, EncodeProjectProperties(p))
}

func TestAssembleEntries(t *testing.T) {
	p := resolvedProject(t)
	data, err := Assemble(p)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"assets/",
		"src/acct123/Demo/Screen1.scm",
		"src/acct123/Demo/Screen1.bky",
		"youngandroidproject/project.properties",
	}, names)
}

func TestAssembleIsByteIdentical(t *testing.T) {
	first, err := Assemble(resolvedProject(t))
	require.NoError(t, err)
	second, err := Assemble(resolvedProject(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssembleRejectsPathCollision(t *testing.T) {
	p := resolvedProject(t)
	p.Screens = append(p.Screens, p.Screens[0])

	_, err := Assemble(p)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Contains(t, aerr.Reason, "path collision")
}
