package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Register is a single addressable register.
type Register struct {
	Name           string
	Description    *string
	AlternateGroup *string
	AddressOffset  uint32

	// Properties left nil inherit from the enclosing cluster or
	// peripheral defaults at the point of use.
	Properties RegisterProperties

	ModifiedWriteValues *ModifiedWriteValues
	WriteConstraint     WriteConstraint

	// Fields is nil when the <fields> node is absent, and empty but
	// non-nil when it is present with no children. The two re-encode
	// differently.
	Fields []Field
}

type registerBuilder struct {
	name                *string
	description         *string
	alternateGroup      *string
	addressOffset       *uint32
	properties          RegisterProperties
	modifiedWriteValues *ModifiedWriteValues
	writeConstraint     WriteConstraint
	fields              []Field
}

func (b *registerBuilder) Build() (*Register, error) {
	var r Register
	var err error
	if r.Name, err = need("name", b.name); err != nil {
		return nil, err
	}
	r.Description = b.description
	r.AlternateGroup = b.alternateGroup
	if r.AddressOffset, err = need("addressOffset", b.addressOffset); err != nil {
		return nil, err
	}
	r.Properties = b.properties
	r.ModifiedWriteValues = b.modifiedWriteValues
	r.WriteConstraint = b.writeConstraint
	r.Fields = b.fields
	return &r, nil
}

// ParseRegister parses a <register> element.
func ParseRegister(n *xmltree.Node) (*Register, error) {
	if n.Name != "register" {
		return nil, &TagError{Kind: NotExpectedTag, Node: n, Tag: "register"}
	}
	name, err := childText(n, "name")
	if err != nil {
		return nil, err
	}
	r, err := parseRegisterNamed(n, name)
	if err != nil {
		return nil, fmt.Errorf("in register `%s`: %w", name, err)
	}
	return r, nil
}

func parseRegisterNamed(n *xmltree.Node, name string) (*Register, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	b := registerBuilder{name: &name}
	b.description = childTextOpt(n, "description")
	b.alternateGroup = childTextOpt(n, "alternateGroup")
	offset, err := childNum(n, "addressOffset")
	if err != nil {
		return nil, err
	}
	b.addressOffset = &offset
	if b.properties, err = parseRegisterProperties(n); err != nil {
		return nil, err
	}
	if b.modifiedWriteValues, err = childMwvOpt(n, "modifiedWriteValues"); err != nil {
		return nil, err
	}
	if b.writeConstraint, err = childWriteConstraintOpt(n); err != nil {
		return nil, err
	}
	if fields := n.Child("fields"); fields != nil {
		b.fields = make([]Field, 0, len(fields.Children))
		i := 0
		for _, c := range fields.Children {
			if c.Name != "field" {
				continue
			}
			f, err := ParseField(c)
			if err != nil {
				return nil, fmt.Errorf("parsing field #%d: %w", i, err)
			}
			b.fields = append(b.fields, f)
			i++
		}
	}
	return b.Build()
}

// Encode emits the <register> element in schema order.
func (r *Register) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "register"}
	n.Append(xmltree.New("name", r.Name))
	if r.Description != nil {
		n.Append(xmltree.New("description", *r.Description))
	}
	if r.AlternateGroup != nil {
		n.Append(xmltree.New("alternateGroup", *r.AlternateGroup))
	}
	n.Append(xmltree.New("addressOffset", hex(r.AddressOffset)))
	r.Properties.encodeInto(n)
	if r.ModifiedWriteValues != nil {
		n.Append(xmltree.New("modifiedWriteValues", r.ModifiedWriteValues.String()))
	}
	if r.WriteConstraint != nil {
		n.Append(encodeWriteConstraint(r.WriteConstraint))
	}
	if r.Fields != nil {
		fields := &xmltree.Node{Name: "fields"}
		for _, f := range r.Fields {
			c, err := f.Encode()
			if err != nil {
				return nil, err
			}
			fields.Append(c)
		}
		n.Append(fields)
	}
	return n, nil
}

func (r *Register) clone() *Register {
	out := &Register{
		Name:                r.Name,
		Description:         cp(r.Description),
		AlternateGroup:      cp(r.AlternateGroup),
		AddressOffset:       r.AddressOffset,
		Properties:          r.Properties.clone(),
		ModifiedWriteValues: cp(r.ModifiedWriteValues),
		WriteConstraint:     cloneWriteConstraint(r.WriteConstraint),
	}
	if r.Fields != nil {
		out.Fields = make([]Field, 0, len(r.Fields))
		for _, f := range r.Fields {
			out.Fields = append(out.Fields, f.clone())
		}
	}
	return out
}
