package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Field is a named bit field inside a register.
type Field struct {
	Name                string
	Description         *string
	BitRange            BitRange
	Access              *Access
	ModifiedWriteValues *ModifiedWriteValues
	WriteConstraint     WriteConstraint
	EnumeratedValues    []EnumeratedValues
}

type fieldBuilder struct {
	name                *string
	description         *string
	bitRange            *BitRange
	access              *Access
	modifiedWriteValues *ModifiedWriteValues
	writeConstraint     WriteConstraint
	enumeratedValues    []EnumeratedValues
}

func (b *fieldBuilder) Build() (Field, error) {
	var f Field
	var err error
	if f.Name, err = need("name", b.name); err != nil {
		return Field{}, err
	}
	f.Description = b.description
	if f.BitRange, err = need("bitRange", b.bitRange); err != nil {
		return Field{}, err
	}
	f.Access = b.access
	f.ModifiedWriteValues = b.modifiedWriteValues
	f.WriteConstraint = b.writeConstraint
	f.EnumeratedValues = b.enumeratedValues
	return f, nil
}

// ParseField parses a <field> element.
func ParseField(n *xmltree.Node) (Field, error) {
	if n.Name != "field" {
		return Field{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "field"}
	}
	name, err := childText(n, "name")
	if err != nil {
		return Field{}, err
	}
	f, err := parseFieldNamed(n, name)
	if err != nil {
		return Field{}, fmt.Errorf("in field `%s`: %w", name, err)
	}
	return f, nil
}

func parseFieldNamed(n *xmltree.Node, name string) (Field, error) {
	if err := CheckName(name); err != nil {
		return Field{}, err
	}
	b := fieldBuilder{name: &name}
	b.description = childTextOpt(n, "description")
	br, err := parseBitRange(n)
	if err != nil {
		return Field{}, err
	}
	b.bitRange = &br
	if b.access, err = childAccessOpt(n, "access"); err != nil {
		return Field{}, err
	}
	if b.modifiedWriteValues, err = childMwvOpt(n, "modifiedWriteValues"); err != nil {
		return Field{}, err
	}
	if b.writeConstraint, err = childWriteConstraintOpt(n); err != nil {
		return Field{}, err
	}
	i := 0
	for _, c := range n.Children {
		if c.Name != "enumeratedValues" {
			continue
		}
		evs, err := ParseEnumeratedValues(c)
		if err != nil {
			return Field{}, fmt.Errorf("parsing enumerated values #%d: %w", i, err)
		}
		b.enumeratedValues = append(b.enumeratedValues, evs)
		i++
	}
	return b.Build()
}

// Encode emits the <field> element. The bit position always takes the
// canonical bitOffset/bitWidth form.
func (f Field) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "field"}
	n.Append(xmltree.New("name", f.Name))
	if f.Description != nil {
		n.Append(xmltree.New("description", *f.Description))
	}
	f.BitRange.encodeInto(n)
	if f.Access != nil {
		n.Append(xmltree.New("access", f.Access.String()))
	}
	if f.ModifiedWriteValues != nil {
		n.Append(xmltree.New("modifiedWriteValues", f.ModifiedWriteValues.String()))
	}
	if f.WriteConstraint != nil {
		n.Append(encodeWriteConstraint(f.WriteConstraint))
	}
	for _, evs := range f.EnumeratedValues {
		c, err := evs.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	return n, nil
}

func (f Field) clone() Field {
	out := Field{
		Name:                f.Name,
		Description:         cp(f.Description),
		BitRange:            f.BitRange,
		Access:              cp(f.Access),
		ModifiedWriteValues: cp(f.ModifiedWriteValues),
		WriteConstraint:     cloneWriteConstraint(f.WriteConstraint),
	}
	for _, evs := range f.EnumeratedValues {
		out.EnumeratedValues = append(out.EnumeratedValues, evs.clone())
	}
	return out
}
