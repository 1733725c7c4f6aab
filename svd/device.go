// Package svd holds the typed model of a CMSIS-SVD device description and
// the bidirectional engine converting it to and from a generic element
// tree.
//
// Every entity implements a symmetric pair: a ParseX function reading the
// entity from an xmltree.Node, and an Encode method writing it back. Parse
// validates against the schema's closed sets and required fields; encode
// re-emits children in schema declaration order with canonical numeric
// literals, so round-trips are semantically (not byte) identical.
package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Device is the root of a device description: the processor core, the
// device-wide register property defaults, and the peripherals.
type Device struct {
	Name        string
	Version     *string
	Description *string

	Cpu             *Cpu
	AddressUnitBits *uint32
	Width           *uint32

	// DefaultRegisterProperties seed the property cascade for the whole
	// device.
	DefaultRegisterProperties RegisterProperties

	Peripherals []*Peripheral

	// SchemaVersion is the schemaVersion attribute, stored verbatim.
	// Version negotiation is out of scope.
	SchemaVersion *string
}

type deviceBuilder struct {
	name *string
	rest Device
}

func (b *deviceBuilder) Build() (*Device, error) {
	d := b.rest
	var err error
	if d.Name, err = need("name", b.name); err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDevice parses a <device> element and everything below it. The
// result still carries unresolved derivedFrom references; call
// ResolveDerived before using derived peripherals.
func ParseDevice(n *xmltree.Node) (*Device, error) {
	if n.Name != "device" {
		return nil, &TagError{Kind: NotExpectedTag, Node: n, Tag: "device"}
	}
	var b deviceBuilder
	name, err := childText(n, "name")
	if err != nil {
		return nil, err
	}
	b.name = &name
	if v, ok := n.Attribute("schemaVersion"); ok {
		b.rest.SchemaVersion = &v
	}
	b.rest.Version = childTextOpt(n, "version")
	b.rest.Description = childTextOpt(n, "description")
	if c := n.Child("cpu"); c != nil {
		cpu, err := ParseCpu(c)
		if err != nil {
			return nil, err
		}
		b.rest.Cpu = &cpu
	}
	if b.rest.AddressUnitBits, err = childNumOpt(n, "addressUnitBits"); err != nil {
		return nil, err
	}
	if b.rest.Width, err = childNumOpt(n, "width"); err != nil {
		return nil, err
	}
	if b.rest.DefaultRegisterProperties, err = parseRegisterProperties(n); err != nil {
		return nil, err
	}
	peripherals := n.Child("peripherals")
	if peripherals == nil {
		return nil, &TagError{Kind: MissingTag, Node: n, Tag: "peripherals"}
	}
	i := 0
	for _, c := range peripherals.Children {
		if c.Name != "peripheral" {
			continue
		}
		p, err := ParsePeripheral(c)
		if err != nil {
			return nil, fmt.Errorf("parsing peripheral #%d: %w", i, err)
		}
		b.rest.Peripherals = append(b.rest.Peripherals, p)
		i++
	}
	return b.Build()
}

// Encode emits the <device> element in schema order.
func (d *Device) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "device"}
	if d.SchemaVersion != nil {
		n.SetAttribute("schemaVersion", *d.SchemaVersion)
	}
	n.Append(xmltree.New("name", d.Name))
	if d.Version != nil {
		n.Append(xmltree.New("version", *d.Version))
	}
	if d.Description != nil {
		n.Append(xmltree.New("description", *d.Description))
	}
	if d.Cpu != nil {
		c, err := d.Cpu.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	if d.AddressUnitBits != nil {
		n.Append(xmltree.New("addressUnitBits", dec(*d.AddressUnitBits)))
	}
	if d.Width != nil {
		n.Append(xmltree.New("width", dec(*d.Width)))
	}
	d.DefaultRegisterProperties.encodeInto(n)
	peripherals := &xmltree.Node{Name: "peripherals"}
	for _, p := range d.Peripherals {
		c, err := p.Encode()
		if err != nil {
			return nil, err
		}
		peripherals.Append(c)
	}
	n.Append(peripherals)
	return n, nil
}

// Peripheral returns the named peripheral, or nil.
func (d *Device) Peripheral(name string) *Peripheral {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}
