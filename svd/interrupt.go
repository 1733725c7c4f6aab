package svd

import "github.com/golangsvd/gosvd/xmltree"

// Interrupt associates a peripheral with an interrupt line.
type Interrupt struct {
	Name        string
	Description *string
	Value       uint32
}

type interruptBuilder struct {
	name        *string
	description *string
	value       *uint32
}

func (b *interruptBuilder) Build() (Interrupt, error) {
	var it Interrupt
	var err error
	if it.Name, err = need("name", b.name); err != nil {
		return Interrupt{}, err
	}
	it.Description = b.description
	if it.Value, err = need("value", b.value); err != nil {
		return Interrupt{}, err
	}
	return it, nil
}

// ParseInterrupt parses an <interrupt> element.
func ParseInterrupt(n *xmltree.Node) (Interrupt, error) {
	if n.Name != "interrupt" {
		return Interrupt{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "interrupt"}
	}
	var b interruptBuilder
	name, err := childText(n, "name")
	if err != nil {
		return Interrupt{}, err
	}
	if err := CheckName(name); err != nil {
		return Interrupt{}, err
	}
	b.name = &name
	b.description = childTextOpt(n, "description")
	value, err := childNum(n, "value")
	if err != nil {
		return Interrupt{}, err
	}
	b.value = &value
	return b.Build()
}

// Encode emits the <interrupt> element.
func (it Interrupt) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "interrupt"}
	n.Append(xmltree.New("name", it.Name))
	if it.Description != nil {
		n.Append(xmltree.New("description", *it.Description))
	}
	n.Append(xmltree.New("value", dec(it.Value)))
	return n, nil
}
