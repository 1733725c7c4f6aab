package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// Cluster is a named grouping of registers and nested clusters at a
// common address offset.
type Cluster struct {
	Name             string
	Description      *string
	HeaderStructName *string
	AddressOffset    uint32

	// DefaultRegisterProperties apply to contained registers that do
	// not override them.
	DefaultRegisterProperties RegisterProperties

	// Children holds the contained registers and clusters in document
	// order.
	Children []RegisterCluster
}

type clusterBuilder struct {
	name             *string
	description      *string
	headerStructName *string
	addressOffset    *uint32
	defaults         RegisterProperties
	children         []RegisterCluster
}

func (b *clusterBuilder) Build() (*Cluster, error) {
	var c Cluster
	var err error
	if c.Name, err = need("name", b.name); err != nil {
		return nil, err
	}
	c.Description = b.description
	c.HeaderStructName = b.headerStructName
	if c.AddressOffset, err = need("addressOffset", b.addressOffset); err != nil {
		return nil, err
	}
	c.DefaultRegisterProperties = b.defaults
	c.Children = b.children
	return &c, nil
}

// ParseCluster parses a <cluster> element, recursing into nested
// registers and clusters.
func ParseCluster(n *xmltree.Node) (*Cluster, error) {
	if n.Name != "cluster" {
		return nil, &TagError{Kind: NotExpectedTag, Node: n, Tag: "cluster"}
	}
	name, err := childText(n, "name")
	if err != nil {
		return nil, err
	}
	c, err := parseClusterNamed(n, name)
	if err != nil {
		return nil, fmt.Errorf("in cluster `%s`: %w", name, err)
	}
	return c, nil
}

func parseClusterNamed(n *xmltree.Node, name string) (*Cluster, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	b := clusterBuilder{name: &name}
	b.description = childTextOpt(n, "description")
	b.headerStructName = childTextOpt(n, "headerStructName")
	offset, err := childNum(n, "addressOffset")
	if err != nil {
		return nil, err
	}
	b.addressOffset = &offset
	if b.defaults, err = parseRegisterProperties(n); err != nil {
		return nil, err
	}
	for _, child := range n.Children {
		if child.Name != "register" && child.Name != "cluster" {
			continue
		}
		rc, err := ParseRegisterCluster(child)
		if err != nil {
			return nil, err
		}
		b.children = append(b.children, rc)
	}
	return b.Build()
}

// Encode emits the <cluster> element, recursing into children.
func (c *Cluster) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "cluster"}
	n.Append(xmltree.New("name", c.Name))
	if c.Description != nil {
		n.Append(xmltree.New("description", *c.Description))
	}
	if c.HeaderStructName != nil {
		n.Append(xmltree.New("headerStructName", *c.HeaderStructName))
	}
	n.Append(xmltree.New("addressOffset", hex(c.AddressOffset)))
	c.DefaultRegisterProperties.encodeInto(n)
	for _, rc := range c.Children {
		child, err := rc.Encode()
		if err != nil {
			return nil, err
		}
		n.Append(child)
	}
	return n, nil
}

func (c *Cluster) clone() *Cluster {
	out := &Cluster{
		Name:                      c.Name,
		Description:               cp(c.Description),
		HeaderStructName:          cp(c.HeaderStructName),
		AddressOffset:             c.AddressOffset,
		DefaultRegisterProperties: c.DefaultRegisterProperties.clone(),
	}
	for _, rc := range c.Children {
		out.Children = append(out.Children, cloneRegisterCluster(rc))
	}
	return out
}
