package synth

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/identity"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/schema"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/logging"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// twoButtonApp is rebuilt per call; the pipeline annotates the
// description in place.
func twoButtonApp() *types.AppDescription {
	return &types.AppDescription{
		Name:      "TwoButtonApp",
		Namespace: "acct123",
		Screens: []types.ScreenDescription{{
			Name: "Screen1",
			Components: []*types.ComponentNode{
				{Kind: types.KindButton, Name: "ButtonA",
					Properties: map[string]interface{}{"Text": "Say hello"}},
				{Kind: types.KindButton, Name: "ButtonB",
					Properties: map[string]interface{}{"Text": "Clear"}},
				{Kind: types.KindLabel, Name: "Output"},
			},
			Events: []types.EventBinding{
				{Component: "ButtonA", Event: "Click", Actions: []types.ActionStatement{{
					Action: types.ActionSetProperty, Target: "Output", Property: "Text",
					Args: []*types.ExpressionNode{{Kind: types.ExprLiteral, Value: "hello"}},
				}}},
				{Component: "ButtonB", Event: "Click", Actions: []types.ActionStatement{{
					Action: types.ActionSetProperty, Target: "Output", Property: "Text",
					Args: []*types.ExpressionNode{{Kind: types.ExprLiteral, Value: ""}},
				}}},
			},
		}},
	}
}

func newTestSynthesizer(cfg Config) *Synthesizer {
	return New(cfg, logging.NewNop())
}

func zipEntry(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		return buf.Bytes()
	}
	t.Fatalf("archive has no entry %q", name)
	return nil
}

func TestSynthesizeTwoButtonApp(t *testing.T) {
	s := newTestSynthesizer(DefaultConfig())
	result, err := s.Synthesize(twoButtonApp())
	require.NoError(t, err)

	assert.Equal(t, "TwoButtonApp.aia", result.Filename)
	assert.Equal(t, "acct123.TwoButtonApp.Screen1", result.MainScreen)

	props := string(zipEntry(t, result.Archive, "youngandroidproject/project.properties"))
	assert.Contains(t, props, "main=acct123.TwoButtonApp.Screen1\n")
	assert.Contains(t, props, "aname=TwoButtonApp\n")

	scm := string(zipEntry(t, result.Archive, "src/acct123/TwoButtonApp/Screen1.scm"))
	assert.Contains(t, scm, `"$Name":"ButtonA"`)
	assert.Contains(t, scm, `"Text":"Say hello"`)

	bky := string(zipEntry(t, result.Archive, "src/acct123/TwoButtonApp/Screen1.bky"))
	assert.Equal(t, 2, strings.Count(bky, `type="component_event"`))
	assert.Contains(t, bky, `y="20"`)
	assert.Contains(t, bky, `y="160"`, "second event block stacks below the first")
}

func TestSynthesizeIsIdempotent(t *testing.T) {
	s := newTestSynthesizer(DefaultConfig())
	first, err := s.Synthesize(twoButtonApp())
	require.NoError(t, err)
	second, err := s.Synthesize(twoButtonApp())
	require.NoError(t, err)
	assert.Equal(t, first.Archive, second.Archive)
}

func TestSynthesizeRejectsLeadingDigitNamespace(t *testing.T) {
	app := twoButtonApp()
	app.Namespace = "9lives"

	s := newTestSynthesizer(DefaultConfig())
	result, err := s.Synthesize(app)
	assert.Nil(t, result, "no partial archive on failure")

	var ierr *identity.Error
	require.ErrorAs(t, err, &ierr)
}

func TestSynthesizeRejectsInvalidDescription(t *testing.T) {
	app := twoButtonApp()
	app.Screens[0].Components[0].Kind = "Spinner"

	s := newTestSynthesizer(DefaultConfig())
	_, err := s.Synthesize(app)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Violations)
}

func TestSynthesizeRejectsBadPaletteColor(t *testing.T) {
	app := twoButtonApp()
	app.PrimaryColor = "ultraviolet"

	s := newTestSynthesizer(DefaultConfig())
	_, err := s.Synthesize(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary_color")
}

func TestSynthesizeEnforcesComponentLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxComponents = 2

	s := newTestSynthesizer(cfg)
	_, err := s.Synthesize(twoButtonApp())

	var lerr *LimitError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "component count", lerr.Limit)
	assert.Equal(t, 3, lerr.Actual)
}

func TestCheckReportsWithoutAssembling(t *testing.T) {
	s := newTestSynthesizer(DefaultConfig())
	require.NoError(t, s.Check(twoButtonApp()))

	app := twoButtonApp()
	app.Screens = nil
	var verr *schema.ValidationError
	require.ErrorAs(t, s.Check(app), &verr)
}
