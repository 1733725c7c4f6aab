package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Peripheral is a named, addressable hardware unit. It exclusively owns
// its address block, interrupts, and register tree.
type Peripheral struct {
	// Name identifies the peripheral; names are unique within a device.
	Name string

	Version     *string
	DisplayName *string
	GroupName   *string
	Description *string

	// BaseAddress is the lowest address reserved or used by the
	// peripheral. It is nil only on a derived peripheral between parse
	// and derivation resolution.
	BaseAddress *uint32

	AddressBlock *AddressBlock
	Interrupts   []Interrupt

	// DefaultRegisterProperties seed the property cascade for contained
	// registers.
	DefaultRegisterProperties RegisterProperties

	// Registers is nil when the <registers> node is absent, and empty
	// but non-nil when it is present with no children. The two
	// re-encode differently.
	Registers []RegisterCluster

	// DerivedFrom names the peripheral to inherit unset fields from.
	// It is a name reference resolved after the whole document has
	// parsed, not an ownership link.
	DerivedFrom *string
}

type peripheralBuilder struct {
	name        *string
	baseAddress *uint32
	derivedFrom *string
	rest        Peripheral
}

func (b *peripheralBuilder) Build() (*Peripheral, error) {
	p := b.rest
	var err error
	if p.Name, err = need("name", b.name); err != nil {
		return nil, err
	}
	// A deriving peripheral may leave baseAddress to its source.
	if b.derivedFrom == nil {
		if _, err = need("baseAddress", b.baseAddress); err != nil {
			return nil, err
		}
	}
	p.BaseAddress = b.baseAddress
	p.DerivedFrom = b.derivedFrom
	return &p, nil
}

// ParsePeripheral parses a <peripheral> element. Nested failures are
// wrapped with the peripheral's name.
func ParsePeripheral(n *xmltree.Node) (*Peripheral, error) {
	if n.Name != "peripheral" {
		return nil, &TagError{Kind: NotExpectedTag, Node: n, Tag: "peripheral"}
	}
	name, err := childText(n, "name")
	if err != nil {
		return nil, err
	}
	p, err := parsePeripheralNamed(n, name)
	if err != nil {
		return nil, fmt.Errorf("in peripheral `%s`: %w", name, err)
	}
	return p, nil
}

func parsePeripheralNamed(n *xmltree.Node, name string) (*Peripheral, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	b := peripheralBuilder{name: &name}
	if v, ok := n.Attribute("derivedFrom"); ok {
		b.derivedFrom = &v
	}
	b.rest.Version = childTextOpt(n, "version")
	b.rest.DisplayName = childTextOpt(n, "displayName")
	b.rest.GroupName = childTextOpt(n, "groupName")
	b.rest.Description = childTextOpt(n, "description")

	var err error
	if b.baseAddress, err = childNumOpt(n, "baseAddress"); err != nil {
		return nil, err
	}
	if ab := n.Child("addressBlock"); ab != nil {
		block, err := ParseAddressBlock(ab)
		if err != nil {
			return nil, err
		}
		b.rest.AddressBlock = &block
	}
	i := 0
	for _, c := range n.Children {
		if c.Name != "interrupt" {
			continue
		}
		it, err := ParseInterrupt(c)
		if err != nil {
			return nil, fmt.Errorf("parsing interrupt #%d: %w", i, err)
		}
		b.rest.Interrupts = append(b.rest.Interrupts, it)
		i++
	}
	if b.rest.DefaultRegisterProperties, err = parseRegisterProperties(n); err != nil {
		return nil, err
	}
	if registers := n.Child("registers"); registers != nil {
		b.rest.Registers = make([]RegisterCluster, 0, len(registers.Children))
		for _, c := range registers.Children {
			rc, err := ParseRegisterCluster(c)
			if err != nil {
				return nil, err
			}
			b.rest.Registers = append(b.rest.Registers, rc)
		}
	}
	return b.Build()
}

// Encode emits the <peripheral> element in schema order. The base address
// is canonicalized to eight hex digits regardless of the source literal.
func (p *Peripheral) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "peripheral"}
	if p.DerivedFrom != nil {
		n.SetAttribute("derivedFrom", *p.DerivedFrom)
	}
	n.Append(xmltree.New("name", p.Name))
	if p.Version != nil {
		n.Append(xmltree.New("version", *p.Version))
	}
	if p.DisplayName != nil {
		n.Append(xmltree.New("displayName", *p.DisplayName))
	}
	if p.GroupName != nil {
		n.Append(xmltree.New("groupName", *p.GroupName))
	}
	if p.Description != nil {
		n.Append(xmltree.New("description", *p.Description))
	}
	if p.BaseAddress == nil {
		return nil, &BuildError{Field: "baseAddress"}
	}
	n.Append(xmltree.New("baseAddress", hex8(*p.BaseAddress)))
	p.DefaultRegisterProperties.encodeInto(n)
	if p.AddressBlock != nil {
		c, err := p.AddressBlock.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	for _, it := range p.Interrupts {
		c, err := it.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	if p.Registers != nil {
		registers := &xmltree.Node{Name: "registers"}
		for _, rc := range p.Registers {
			c, err := rc.Encode()
			if err != nil {
				return nil, err
			}
			registers.Append(c)
		}
		n.Append(registers)
	}
	return n, nil
}
