// Package xmltree provides a generic XML element tree: named nodes with an
// attribute map, ordered children, and optional character data.
//
// The tree is schema-agnostic. Producers (Parse) and consumers treat a Node
// as immutable once built; nothing in this package validates content beyond
// XML well-formedness.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Node is a single XML element.
type Node struct {
	// Name is the element's local tag name. Namespace prefixes are not
	// preserved.
	Name string

	// Attributes maps attribute names to values. Nil when the element
	// carries no attributes.
	Attributes map[string]string

	// Children holds child elements in document order.
	Children []*Node

	// Text is the element's character data with surrounding whitespace
	// trimmed. Empty for container elements.
	Text string
}

// New returns a leaf node with the given tag name and text.
func New(name, text string) *Node {
	return &Node{Name: name, Text: text}
}

// Child returns the first child element with the given tag name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Attribute returns the value of the named attribute and whether it is set.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.Attributes[name]
	return v, ok
}

// SetAttribute sets an attribute, allocating the map on first use.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// Append adds children to the node in order.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("xmltree: document has no root element")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return decodeElement(dec, start)
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*Node, error) {
	n := &Node{Name: start.Name.Local}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		n.SetAttribute(a.Name.Local, a.Value)
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Mixed content is not meaningful for element trees; text is
			// only kept on leaf elements.
			if len(n.Children) == 0 {
				n.Text = strings.TrimSpace(text.String())
			}
			return n, nil
		}
	}
}

// Encode writes the node and its subtree as an XML document to w.
func (n *Node) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeElement(enc, n); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeElement(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: name},
			Value: n.Attributes[name],
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}
