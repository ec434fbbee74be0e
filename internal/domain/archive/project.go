package archive

import (
	"github.com/serkac1000/AIAGENERATOR/internal/domain/blocks"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// ResolvedProject is the fully-normalized artifact set produced once
// per synthesis request. It is immutable and consumed only by the
// assembler.
type ResolvedProject struct {
	AppName     string
	PackagePath string // {namespace}.{appname}
	MainScreen  string // fully-qualified path of the first screen

	Theme            string // encoded theme literal
	PrimaryColor     string // encoded &H literal
	PrimaryDarkColor string
	AccentColor      string

	Screens []*ResolvedScreen
}

// ResolvedScreen pairs one screen's normalized component tree with its
// synthesized block tree.
type ResolvedScreen struct {
	Name       string
	Form       map[string]string // encoded screen-level properties
	Components []*types.ComponentNode
	Blocks     []*blocks.Block
}
