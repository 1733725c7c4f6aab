package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Cpu describes the processor core a device is built around.
type Cpu struct {
	Name             string
	Revision         string
	Endian           Endian
	MpuPresent       bool
	FpuPresent       bool
	NvicPriorityBits uint32
	HasVendorSystick bool
}

type cpuBuilder struct {
	name             *string
	revision         *string
	endian           *Endian
	mpuPresent       *bool
	fpuPresent       *bool
	nvicPriorityBits *uint32
	hasVendorSystick *bool
}

func (b *cpuBuilder) Build() (Cpu, error) {
	var c Cpu
	var err error
	if c.Name, err = need("name", b.name); err != nil {
		return Cpu{}, err
	}
	if c.Revision, err = need("revision", b.revision); err != nil {
		return Cpu{}, err
	}
	if c.Endian, err = need("endian", b.endian); err != nil {
		return Cpu{}, err
	}
	if c.MpuPresent, err = need("mpuPresent", b.mpuPresent); err != nil {
		return Cpu{}, err
	}
	if c.FpuPresent, err = need("fpuPresent", b.fpuPresent); err != nil {
		return Cpu{}, err
	}
	if c.NvicPriorityBits, err = need("nvicPrioBits", b.nvicPriorityBits); err != nil {
		return Cpu{}, err
	}
	if c.HasVendorSystick, err = need("vendorSystickConfig", b.hasVendorSystick); err != nil {
		return Cpu{}, err
	}
	return c, nil
}

// ParseCpu parses a <cpu> element. CPU names ("CM0+", "CA9") are vendor
// strings, not schema identifiers, so they are not grammar-checked.
func ParseCpu(n *xmltree.Node) (Cpu, error) {
	if n.Name != "cpu" {
		return Cpu{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "cpu"}
	}
	c, err := parseCpu(n)
	if err != nil {
		return Cpu{}, fmt.Errorf("in cpu: %w", err)
	}
	return c, nil
}

func parseCpu(n *xmltree.Node) (Cpu, error) {
	var b cpuBuilder
	name, err := childText(n, "name")
	if err != nil {
		return Cpu{}, err
	}
	b.name = &name
	revision, err := childText(n, "revision")
	if err != nil {
		return Cpu{}, err
	}
	b.revision = &revision
	endianText, err := childText(n, "endian")
	if err != nil {
		return Cpu{}, err
	}
	endian, err := ParseEndian(endianText, n)
	if err != nil {
		return Cpu{}, err
	}
	b.endian = &endian
	mpu, err := childBool(n, "mpuPresent")
	if err != nil {
		return Cpu{}, err
	}
	b.mpuPresent = &mpu
	fpu, err := childBool(n, "fpuPresent")
	if err != nil {
		return Cpu{}, err
	}
	b.fpuPresent = &fpu
	bits, err := childNum(n, "nvicPrioBits")
	if err != nil {
		return Cpu{}, err
	}
	b.nvicPriorityBits = &bits
	systick, err := childBool(n, "vendorSystickConfig")
	if err != nil {
		return Cpu{}, err
	}
	b.hasVendorSystick = &systick
	return b.Build()
}

// Encode emits the <cpu> element.
func (c Cpu) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "cpu"}
	n.Append(
		xmltree.New("name", c.Name),
		xmltree.New("revision", c.Revision),
		xmltree.New("endian", c.Endian.String()),
		xmltree.New("mpuPresent", boolText(c.MpuPresent)),
		xmltree.New("fpuPresent", boolText(c.FpuPresent)),
		xmltree.New("nvicPrioBits", dec(c.NvicPriorityBits)),
		xmltree.New("vendorSystickConfig", boolText(c.HasVendorSystick)),
	)
	return n, nil
}
