package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// EnumeratedValue names a single value a field may take.
type EnumeratedValue struct {
	Name        string
	Description *string
	Value       *uint32
	IsDefault   *bool
}

type enumeratedValueBuilder struct {
	name        *string
	description *string
	value       *uint32
	isDefault   *bool
}

func (b *enumeratedValueBuilder) Build() (EnumeratedValue, error) {
	var ev EnumeratedValue
	var err error
	if ev.Name, err = need("name", b.name); err != nil {
		return EnumeratedValue{}, err
	}
	ev.Description = b.description
	ev.Value = b.value
	ev.IsDefault = b.isDefault
	return ev, nil
}

// ParseEnumeratedValue parses an <enumeratedValue> element.
func ParseEnumeratedValue(n *xmltree.Node) (EnumeratedValue, error) {
	if n.Name != "enumeratedValue" {
		return EnumeratedValue{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "enumeratedValue"}
	}
	var b enumeratedValueBuilder
	name, err := childText(n, "name")
	if err != nil {
		return EnumeratedValue{}, err
	}
	if err := CheckName(name); err != nil {
		return EnumeratedValue{}, err
	}
	b.name = &name
	b.description = childTextOpt(n, "description")
	if b.value, err = childNumOpt(n, "value"); err != nil {
		return EnumeratedValue{}, err
	}
	if b.isDefault, err = childBoolOpt(n, "isDefault"); err != nil {
		return EnumeratedValue{}, err
	}
	return b.Build()
}

// Encode emits the <enumeratedValue> element.
func (ev EnumeratedValue) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "enumeratedValue"}
	n.Append(xmltree.New("name", ev.Name))
	if ev.Description != nil {
		n.Append(xmltree.New("description", *ev.Description))
	}
	if ev.Value != nil {
		n.Append(xmltree.New("value", dec(*ev.Value)))
	}
	if ev.IsDefault != nil {
		n.Append(xmltree.New("isDefault", boolText(*ev.IsDefault)))
	}
	return n, nil
}

// EnumeratedValues is a named set of enumerated values for a field. A set
// may reference another set through the derivedFrom attribute; the
// reference is stored verbatim and not resolved here.
type EnumeratedValues struct {
	Name        *string
	Usage       *Usage
	DerivedFrom *string
	Values      []EnumeratedValue
}

// ParseEnumeratedValues parses an <enumeratedValues> element. At least
// one <enumeratedValue> child is required.
func ParseEnumeratedValues(n *xmltree.Node) (EnumeratedValues, error) {
	if n.Name != "enumeratedValues" {
		return EnumeratedValues{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "enumeratedValues"}
	}
	var evs EnumeratedValues
	evs.Name = childTextOpt(n, "name")
	if evs.Name != nil {
		if err := CheckName(*evs.Name); err != nil {
			return EnumeratedValues{}, err
		}
	}
	if c := n.Child("usage"); c != nil {
		u, err := ParseUsage(c.Text, n)
		if err != nil {
			return EnumeratedValues{}, err
		}
		evs.Usage = &u
	}
	if v, ok := n.Attribute("derivedFrom"); ok {
		evs.DerivedFrom = &v
	}
	i := 0
	for _, c := range n.Children {
		if c.Name != "enumeratedValue" {
			continue
		}
		ev, err := ParseEnumeratedValue(c)
		if err != nil {
			return EnumeratedValues{}, fmt.Errorf("parsing enumerated value #%d: %w", i, err)
		}
		evs.Values = append(evs.Values, ev)
		i++
	}
	if len(evs.Values) == 0 {
		return EnumeratedValues{}, &TagError{Kind: MissingTag, Node: n, Tag: "enumeratedValue"}
	}
	return evs, nil
}

// Encode emits the <enumeratedValues> element.
func (evs EnumeratedValues) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "enumeratedValues"}
	if evs.DerivedFrom != nil {
		n.SetAttribute("derivedFrom", *evs.DerivedFrom)
	}
	if evs.Name != nil {
		n.Append(xmltree.New("name", *evs.Name))
	}
	if evs.Usage != nil {
		n.Append(xmltree.New("usage", evs.Usage.String()))
	}
	for _, ev := range evs.Values {
		c, err := ev.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	return n, nil
}

func (evs EnumeratedValues) clone() EnumeratedValues {
	out := EnumeratedValues{
		Name:        cp(evs.Name),
		Usage:       cp(evs.Usage),
		DerivedFrom: cp(evs.DerivedFrom),
	}
	for _, ev := range evs.Values {
		out.Values = append(out.Values, EnumeratedValue{
			Name:        ev.Name,
			Description: cp(ev.Description),
			Value:       cp(ev.Value),
			IsDefault:   cp(ev.IsDefault),
		})
	}
	return out
}
