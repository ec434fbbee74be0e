// Package synth orchestrates the synthesis pipeline: schema validation,
// identity assignment, property normalization, block synthesis, and
// archive assembly. One description in, one archive (or one typed
// error) out; no stage passes partially-valid data forward and no state
// survives the request.
package synth

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/archive"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/blocks"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/identity"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/normalize"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/schema"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/logging"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Config bounds one synthesizer instance. Limits cap worst-case cost;
// block synthesis is proportional to total expression node count.
type Config struct {
	DefaultNamespace   string
	Density            normalize.DensityMode
	MaxComponents      int
	MaxNestingDepth    int
	MaxExpressionNodes int
}

// DefaultConfig returns the limits used when the host does not
// configure its own.
func DefaultConfig() Config {
	return Config{
		DefaultNamespace:   "appinventor.ai_anonymous",
		Density:            normalize.DensityPx,
		MaxComponents:      500,
		MaxNestingDepth:    20,
		MaxExpressionNodes: 2000,
	}
}

// LimitError reports an input exceeding the configured bounds
type LimitError struct {
	Limit  string
	Actual int
	Max    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("synth: %s %d exceeds limit %d", e.Limit, e.Actual, e.Max)
}

// Result is a successful synthesis: the container bytes plus naming
// derived for the caller's storage sink.
type Result struct {
	Archive    []byte
	Filename   string
	MainScreen string
}

// Synthesizer runs the pipeline. Safe for concurrent use; it holds only
// read-only configuration.
type Synthesizer struct {
	cfg        Config
	assigner   *identity.Assigner
	normalizer *normalize.Normalizer
	logger     *logging.Logger
}

// New creates a synthesizer with the given configuration.
func New(cfg Config, logger *logging.Logger) *Synthesizer {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Synthesizer{
		cfg:        cfg,
		assigner:   identity.New(cfg.DefaultNamespace),
		normalizer: normalize.New(cfg.Density),
		logger:     logger,
	}
}

// Synthesize converts one description into archive bytes, or returns
// the first stage's typed error. Identical input and configuration
// yield byte-identical output.
func (s *Synthesizer) Synthesize(app *types.AppDescription) (*Result, error) {
	start := time.Now()

	if err := s.checkLimits(app); err != nil {
		return nil, err
	}
	if err := schema.Validate(app); err != nil {
		return nil, err
	}
	id, err := s.assigner.Assign(app)
	if err != nil {
		return nil, err
	}
	if err := s.normalizer.NormalizeApp(app, id.AppName); err != nil {
		return nil, err
	}

	project, err := s.resolve(app, id)
	if err != nil {
		return nil, err
	}
	data, err := archive.Assemble(project)
	if err != nil {
		return nil, err
	}

	s.logger.Info("synthesis complete",
		zap.String("app", id.AppName),
		zap.String("main", id.MainScreen),
		zap.Int("screens", len(app.Screens)),
		zap.Int("archive_bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)

	return &Result{
		Archive:    data,
		Filename:   id.AppName + ".aia",
		MainScreen: id.MainScreen,
	}, nil
}

// Check runs only the validation and identity stages, for dry-run
// callers that want diagnostics without an archive.
func (s *Synthesizer) Check(app *types.AppDescription) error {
	if err := s.checkLimits(app); err != nil {
		return err
	}
	if err := schema.Validate(app); err != nil {
		return err
	}
	_, err := s.assigner.Assign(app)
	return err
}

// resolve builds the immutable artifact set the assembler consumes.
func (s *Synthesizer) resolve(app *types.AppDescription, id *identity.Identity) (*archive.ResolvedProject, error) {
	project := &archive.ResolvedProject{
		AppName:     id.AppName,
		PackagePath: id.PackagePath,
		MainScreen:  id.MainScreen,
	}

	var err error
	if project.PrimaryColor, err = paletteColor(app.PrimaryColor, "&HFF3F51B5"); err != nil {
		return nil, &normalize.Error{Component: "project", Property: "primary_color", Reason: err.Error()}
	}
	if project.PrimaryDarkColor, err = paletteColor(app.PrimaryDarkColor, "&HFF303F9F"); err != nil {
		return nil, &normalize.Error{Component: "project", Property: "primary_dark_color", Reason: err.Error()}
	}
	if project.AccentColor, err = paletteColor(app.AccentColor, "&HFFFF4081"); err != nil {
		return nil, &normalize.Error{Component: "project", Property: "accent_color", Reason: err.Error()}
	}

	for si := range app.Screens {
		screen := &app.Screens[si]
		top, err := blocks.Synthesize(screen)
		if err != nil {
			return nil, err
		}
		project.Screens = append(project.Screens, &archive.ResolvedScreen{
			Name:       screen.Name,
			Form:       screen.Encoded,
			Components: screen.Components,
			Blocks:     top,
		})
		if si == 0 {
			project.Theme = screen.Encoded["Theme"]
		}
	}
	return project, nil
}

func paletteColor(spec, fallback string) (string, error) {
	if spec == "" {
		return fallback, nil
	}
	return normalize.EncodeColor(spec)
}

func (s *Synthesizer) checkLimits(app *types.AppDescription) error {
	componentCount := 0
	maxDepth := 0
	exprNodes := 0
	for si := range app.Screens {
		screen := &app.Screens[si]
		for _, node := range screen.Components {
			componentCount += countNodes(node)
			if d := depth(node, 1); d > maxDepth {
				maxDepth = d
			}
		}
		for bi := range screen.Events {
			for ai := range screen.Events[bi].Actions {
				for _, arg := range screen.Events[bi].Actions[ai].Args {
					exprNodes += countExpr(arg)
				}
			}
		}
	}
	if s.cfg.MaxComponents > 0 && componentCount > s.cfg.MaxComponents {
		return &LimitError{Limit: "component count", Actual: componentCount, Max: s.cfg.MaxComponents}
	}
	if s.cfg.MaxNestingDepth > 0 && maxDepth > s.cfg.MaxNestingDepth {
		return &LimitError{Limit: "nesting depth", Actual: maxDepth, Max: s.cfg.MaxNestingDepth}
	}
	if s.cfg.MaxExpressionNodes > 0 && exprNodes > s.cfg.MaxExpressionNodes {
		return &LimitError{Limit: "expression node count", Actual: exprNodes, Max: s.cfg.MaxExpressionNodes}
	}
	return nil
}

func countNodes(n *types.ComponentNode) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

func depth(n *types.ComponentNode, current int) int {
	deepest := current
	for _, c := range n.Children {
		if d := depth(c, current+1); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func countExpr(e *types.ExpressionNode) int {
	total := 1
	for _, a := range e.Args {
		total += countExpr(a)
	}
	return total
}
