package archive

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// The UI-layout document is a comment-delimited block wrapping a
// single-line tagged JSON document:
//
//	#|
//	$JSON
//	{...}
//	|#
const (
	scmOpen  = "#|\n$JSON\n"
	scmClose = "\n|#"
)

// EncodeSCM serializes one screen's UI-layout document. Property
// iteration follows the catalog's declaration order so output bytes are
// reproducible.
func EncodeSCM(screen *ResolvedScreen, screenIndex int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(scmOpen)

	buf.WriteByte('{')
	buf.WriteString(`"authURL":[`)
	for i, origin := range catalog.AuthURL {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, origin)
	}
	buf.WriteString(`],"YaVersion":`)
	writeJSONString(&buf, catalog.FormatVersion)
	buf.WriteString(`,"Source":"Form","Properties":`)

	formSpec, _ := catalog.Component(types.KindForm)
	if err := writeProperties(&buf, screen.Name, formSpec, screen.Form, screenUUID(screenIndex), screen.Components); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	buf.WriteString(scmClose)
	return buf.Bytes(), nil
}

// screenUUID follows the host tool: "0" for the main screen, a
// deterministic positive index for the rest.
func screenUUID(index int) string {
	if index == 0 {
		return "0"
	}
	return strconv.Itoa(index)
}

func writeProperties(buf *bytes.Buffer, name string, spec *catalog.ComponentSpec, encoded map[string]string, uuid string, children []*types.ComponentNode) error {
	buf.WriteString(`{"$Name":`)
	writeJSONString(buf, name)
	buf.WriteString(`,"$Type":`)
	writeJSONString(buf, string(spec.Kind))
	buf.WriteString(`,"$Version":`)
	writeJSONString(buf, spec.Version)
	for i := range spec.Properties {
		pname := spec.Properties[i].Name
		lit, ok := encoded[pname]
		if !ok {
			return fmt.Errorf("component %q has no encoding for property %q", name, pname)
		}
		buf.WriteByte(',')
		writeJSONString(buf, pname)
		buf.WriteByte(':')
		writeJSONString(buf, lit)
	}
	buf.WriteString(`,"Uuid":`)
	writeJSONString(buf, uuid)
	if len(children) > 0 {
		buf.WriteString(`,"$Components":[`)
		for i, child := range children {
			if i > 0 {
				buf.WriteByte(',')
			}
			cspec, ok := catalog.Component(child.Kind)
			if !ok {
				return fmt.Errorf("component %q has unrecognized kind %q", child.Name, child.Kind)
			}
			if err := writeProperties(buf, child.Name, cspec, child.Encoded, strconv.Itoa(child.ID), child.Children); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}

// writeJSONString appends one escaped JSON string token.
func writeJSONString(buf *bytes.Buffer, s string) {
	b, err := sonic.Marshal(s)
	if err != nil {
		// A bare string cannot fail to marshal; guard anyway.
		b = []byte(`""`)
	}
	buf.Write(b)
}

// scmDocument mirrors the decoded wire shape
type scmDocument struct {
	AuthURL    []string               `json:"authURL"`
	YaVersion  string                 `json:"YaVersion"`
	Source     string                 `json:"Source"`
	Properties map[string]interface{} `json:"Properties"`
}

// DecodedScreen is the component tree reconstructed from a UI-layout
// document, used by round-trip verification.
type DecodedScreen struct {
	Name       string
	Version    string
	Form       map[string]string
	Components []*types.ComponentNode
}

// DecodeSCM parses a UI-layout document back into a component tree
// isomorphic to the one it was serialized from.
func DecodeSCM(data []byte) (*DecodedScreen, error) {
	text := string(data)
	if !strings.HasPrefix(text, scmOpen) || !strings.HasSuffix(text, scmClose) {
		return nil, fmt.Errorf("scm: missing comment wrapper")
	}
	payload := strings.TrimSuffix(strings.TrimPrefix(text, scmOpen), scmClose)

	var doc scmDocument
	if err := sonic.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("scm: %w", err)
	}
	if doc.YaVersion != catalog.FormatVersion {
		return nil, fmt.Errorf("scm: format version %q does not match %q", doc.YaVersion, catalog.FormatVersion)
	}
	name, _ := doc.Properties["$Name"].(string)
	screen := &DecodedScreen{
		Name:    name,
		Version: doc.YaVersion,
		Form:    decodeBag(doc.Properties),
	}
	components, err := decodeComponents(doc.Properties)
	if err != nil {
		return nil, err
	}
	screen.Components = components
	return screen, nil
}

func decodeComponents(props map[string]interface{}) ([]*types.ComponentNode, error) {
	raw, ok := props["$Components"].([]interface{})
	if !ok {
		return nil, nil
	}
	nodes := make([]*types.ComponentNode, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("scm: malformed $Components entry")
		}
		name, _ := obj["$Name"].(string)
		kind, _ := obj["$Type"].(string)
		node := &types.ComponentNode{
			Kind:    types.ComponentKind(kind),
			Name:    name,
			Encoded: decodeBag(obj),
		}
		if idStr, ok := obj["Uuid"].(string); ok {
			node.ID, _ = strconv.Atoi(idStr)
		}
		children, err := decodeComponents(obj)
		if err != nil {
			return nil, err
		}
		node.Children = children
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// decodeBag extracts the plain property literals, dropping the $-tagged
// structure keys and the instance identifier.
func decodeBag(obj map[string]interface{}) map[string]string {
	bag := make(map[string]string)
	for k, v := range obj {
		if strings.HasPrefix(k, "$") || k == "Uuid" {
			continue
		}
		if s, ok := v.(string); ok {
			bag[k] = s
		}
	}
	return bag
}
