// Package identity derives stable identifiers and hierarchical naming
// for a validated description: numeric instance ids for every component
// and the fully-qualified {namespace}.{app}.{screen} project path.
package identity

import (
	"fmt"
	"strings"

	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Error reports an illegal or unresolvable name. It is a hard failure;
// names are never silently corrected into empty or invalid segments.
type Error struct {
	Segment string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity: %s: %s", e.Segment, e.Reason)
}

// reservedWords cannot be used as app or screen names; they collide
// with the host tool's code generator.
var reservedWords = map[string]bool{
	"and": true, "or": true, "not": true, "if": true, "then": true,
	"else": true, "define": true, "lambda": true, "let": true,
	"begin": true, "do": true, "while": true, "for": true, "foreach": true,
}

const maxNameLength = 50

// Identity is the computed naming for one synthesis run
type Identity struct {
	AppName     string            // sanitized app name
	Namespace   string            // sanitized dotted namespace
	PackagePath string            // {namespace}.{appname}
	MainScreen  string            // fully-qualified path of the first screen
	ScreenPaths map[string]string // screen name -> fully-qualified path
}

// Assigner computes identities with a configured namespace fallback
type Assigner struct {
	defaultNamespace string
}

// New creates an assigner. The fallback namespace is used when a
// description omits its own.
func New(defaultNamespace string) *Assigner {
	return &Assigner{defaultNamespace: defaultNamespace}
}

// Assign sanitizes the app naming, computes the project path, and
// numbers every component node in declaration order (stable within one
// run, used for cross-referencing in the block documents).
func (a *Assigner) Assign(app *types.AppDescription) (*Identity, error) {
	name, err := sanitizeSegment(app.Name, "app name")
	if err != nil {
		return nil, err
	}
	if reservedWords[strings.ToLower(name)] {
		return nil, &Error{Segment: "app name", Reason: fmt.Sprintf("%q is a reserved word", name)}
	}

	namespace := app.Namespace
	if namespace == "" {
		namespace = a.defaultNamespace
	}
	namespace, err = sanitizePath(namespace, "namespace")
	if err != nil {
		return nil, err
	}

	id := &Identity{
		AppName:     name,
		Namespace:   namespace,
		PackagePath: namespace + "." + name,
		ScreenPaths: make(map[string]string, len(app.Screens)),
	}

	for si := range app.Screens {
		screen := &app.Screens[si]
		screenName, err := sanitizeSegment(screen.Name, fmt.Sprintf("screen %q name", screen.Name))
		if err != nil {
			return nil, err
		}
		screen.Name = screenName
		path := id.PackagePath + "." + screenName
		if _, dup := id.ScreenPaths[screenName]; dup {
			return nil, &Error{Segment: screenName, Reason: "sanitized screen name collides with another screen"}
		}
		id.ScreenPaths[screenName] = path
		if si == 0 {
			id.MainScreen = path
		}

		next := 1
		for _, node := range screen.Components {
			node.Walk(func(n *types.ComponentNode) {
				n.ID = next
				next++
			})
		}
	}

	return id, nil
}

// sanitizePath sanitizes each dot-separated segment of a path.
func sanitizePath(path, what string) (string, error) {
	if path == "" {
		return "", &Error{Segment: what, Reason: "must not be empty"}
	}
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		clean, err := sanitizeSegment(seg, fmt.Sprintf("%s segment %q", what, seg))
		if err != nil {
			return "", err
		}
		segments[i] = clean
	}
	return strings.Join(segments, "."), nil
}

// sanitizeSegment replaces illegal identifier characters with
// underscores and collapses repeats. A segment that is empty or starts
// with a digit after sanitization is rejected outright.
func sanitizeSegment(seg, what string) (string, error) {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range seg {
		legal := r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !legal {
			r = '_'
		}
		if r == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteRune(r)
	}
	clean := strings.Trim(b.String(), "_")
	if clean == "" {
		return "", &Error{Segment: what, Reason: "empty after sanitization"}
	}
	if clean[0] >= '0' && clean[0] <= '9' {
		return "", &Error{Segment: what, Reason: fmt.Sprintf("%q must not start with a digit", clean)}
	}
	if len(clean) > maxNameLength {
		return "", &Error{Segment: what, Reason: fmt.Sprintf("%q exceeds %d characters", clean, maxNameLength)}
	}
	return clean, nil
}
