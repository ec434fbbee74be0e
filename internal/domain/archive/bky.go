package archive

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/blocks"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
)

const blocklyNamespace = "https://developers.google.com/blockly/xml"

type xmlDocument struct {
	XMLName      xml.Name `xml:"xml"`
	Namespace    string   `xml:"xmlns,attr"`
	Blocks       []*xmlBlock
	Yacodeblocks xmlYacodeblocks
}

type xmlBlock struct {
	XMLName    xml.Name       `xml:"block"`
	Type       string         `xml:"type,attr"`
	ID         string         `xml:"id,attr"`
	X          string         `xml:"x,attr,omitempty"`
	Y          string         `xml:"y,attr,omitempty"`
	Mutation   *xmlMutation   `xml:"mutation,omitempty"`
	Fields     []xmlField     `xml:"field"`
	Values     []xmlValue     `xml:"value"`
	Statements []xmlStatement `xml:"statement"`
	Next       *xmlNext       `xml:"next,omitempty"`
}

type xmlMutation struct {
	ComponentType string `xml:"component_type,attr,omitempty"`
	SetOrGet      string `xml:"set_or_get,attr,omitempty"`
	PropertyName  string `xml:"property_name,attr,omitempty"`
	IsGeneric     string `xml:"is_generic,attr,omitempty"`
	InstanceName  string `xml:"instance_name,attr,omitempty"`
	EventName     string `xml:"event_name,attr,omitempty"`
	Items         string `xml:"items,attr,omitempty"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlValue struct {
	Name  string    `xml:"name,attr"`
	Block *xmlBlock `xml:"block"`
}

type xmlStatement struct {
	Name  string    `xml:"name,attr"`
	Block *xmlBlock `xml:"block"`
}

type xmlNext struct {
	Block *xmlBlock `xml:"block"`
}

// yacodeblocks declares the version pair; ya-version must equal the
// .scm YaVersion or the host tool treats the screen as corrupt.
type xmlYacodeblocks struct {
	XMLName         xml.Name `xml:"yacodeblocks"`
	YaVersion       string   `xml:"ya-version,attr"`
	LanguageVersion string   `xml:"language-version,attr"`
}

// EncodeBKY serializes one screen's block-logic document. The output is
// UTF-8 XML without a byte-order mark or XML declaration, matching what
// the host tool's block editor saves.
func EncodeBKY(top []*blocks.Block) ([]byte, error) {
	doc := xmlDocument{
		Namespace: blocklyNamespace,
		Yacodeblocks: xmlYacodeblocks{
			YaVersion:       catalog.FormatVersion,
			LanguageVersion: catalog.LanguageVersion,
		},
	}
	for _, b := range top {
		doc.Blocks = append(doc.Blocks, toXMLBlock(b))
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("bky: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("bky: %w", err)
	}
	return buf.Bytes(), nil
}

func toXMLBlock(b *blocks.Block) *xmlBlock {
	out := &xmlBlock{
		Type: b.Type,
		ID:   b.ID,
	}
	if b.TopLevel {
		out.X = strconv.Itoa(b.X)
		out.Y = strconv.Itoa(b.Y)
	}
	if b.Mutation != nil {
		out.Mutation = &xmlMutation{
			ComponentType: b.Mutation.ComponentType,
			SetOrGet:      b.Mutation.SetOrGet,
			PropertyName:  b.Mutation.PropertyName,
			IsGeneric:     b.Mutation.IsGeneric,
			InstanceName:  b.Mutation.InstanceName,
			EventName:     b.Mutation.EventName,
			Items:         b.Mutation.Items,
		}
	}
	for _, f := range b.Fields {
		out.Fields = append(out.Fields, xmlField{Name: f.Name, Value: f.Value})
	}
	for _, v := range b.Values {
		out.Values = append(out.Values, xmlValue{Name: v.Name, Block: toXMLBlock(v.Block)})
	}
	for _, s := range b.Statements {
		out.Statements = append(out.Statements, xmlStatement{Name: s.Name, Block: toXMLBlock(s.Block)})
	}
	if b.Next != nil {
		out.Next = &xmlNext{Block: toXMLBlock(b.Next)}
	}
	return out
}
