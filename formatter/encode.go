package formatter

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"

	"github.com/shibukawa/dialectsql/ast"
)

// ErrUnknownFormat is returned for an output format Encode does not know.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats understood by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Encode writes the AST of stmts to w in the given format.
func Encode(w io.Writer, format string, stmts []ast.Statement) error {
	trees := make([]*Node, len(stmts))
	for i, stmt := range stmts {
		trees[i] = Tree(stmt)
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(mapSlices(trees))
	case FormatJSON:
		data, err = yaml.MarshalWithOptions(mapSlices(trees), yaml.JSON())
	case FormatXML:
		data, err = xmlDocument(trees).WriteToBytes()
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	_, err = w.Write(data)

	return err
}

func mapSlices(trees []*Node) []yaml.MapSlice {
	result := make([]yaml.MapSlice, len(trees))
	for i, n := range trees {
		result[i] = n.mapSlice()
	}

	return result
}

func (n *Node) mapSlice() yaml.MapSlice {
	m := yaml.MapSlice{{Key: "type", Value: n.Type}}
	for _, f := range n.Fields {
		m = append(m, yaml.MapItem{Key: f.Name, Value: plain(f.Value)})
	}

	return m
}

func plain(value any) any {
	switch v := value.(type) {
	case *Node:
		if v == nil {
			return nil
		}
		return v.mapSlice()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = plain(item)
		}
		return items
	}

	return value
}

func xmlDocument(trees []*Node) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("statements")
	for _, n := range trees {
		n.appendXML(root)
	}

	doc.Indent(2)

	return doc
}

// appendXML renders n as an element named after its type. Scalar fields
// become attributes, node and list fields become child elements.
func (n *Node) appendXML(parent *etree.Element) {
	el := parent.CreateElement(n.Type)
	for _, f := range n.Fields {
		switch v := f.Value.(type) {
		case *Node:
			v.appendXML(el.CreateElement(f.Name))
		case []any:
			appendXMLItems(el.CreateElement(f.Name), v)
		default:
			el.CreateAttr(f.Name, fmt.Sprint(v))
		}
	}
}

func appendXMLItems(parent *etree.Element, items []any) {
	for _, item := range items {
		switch v := item.(type) {
		case *Node:
			v.appendXML(parent)
		case []any:
			appendXMLItems(parent.CreateElement("row"), v)
		case nil:
			parent.CreateElement("null")
		default:
			parent.CreateElement("item").SetText(fmt.Sprint(v))
		}
	}
}
