package svd

import "github.com/golangsvd/gosvd/xmltree"

// RegisterProperties are the cascading register attributes. Every field is
// independently optional; an entity that leaves one nil inherits it from
// the nearest enclosing scope at the point of use (see Resolve), never by
// copying at parse time.
//
// The schema attaches these as direct children of the owning element
// (device, peripheral, cluster, register), so parsing reads from the
// parent's own node rather than a wrapper child.
type RegisterProperties struct {
	Size       *uint32
	Access     *Access
	Protection *string
	ResetValue *uint32
	ResetMask  *uint32
}

// parseRegisterProperties reads the property children present on n.
func parseRegisterProperties(n *xmltree.Node) (RegisterProperties, error) {
	var p RegisterProperties
	var err error
	if p.Size, err = childNumOpt(n, "size"); err != nil {
		return RegisterProperties{}, err
	}
	if p.Access, err = childAccessOpt(n, "access"); err != nil {
		return RegisterProperties{}, err
	}
	p.Protection = childTextOpt(n, "protection")
	if p.ResetValue, err = childNumOpt(n, "resetValue"); err != nil {
		return RegisterProperties{}, err
	}
	if p.ResetMask, err = childNumOpt(n, "resetMask"); err != nil {
		return RegisterProperties{}, err
	}
	return p, nil
}

// encodeInto appends the present properties to the owning element in
// schema order.
func (p RegisterProperties) encodeInto(parent *xmltree.Node) {
	if p.Size != nil {
		parent.Append(xmltree.New("size", dec(*p.Size)))
	}
	if p.Access != nil {
		parent.Append(xmltree.New("access", p.Access.String()))
	}
	if p.Protection != nil {
		parent.Append(xmltree.New("protection", *p.Protection))
	}
	if p.ResetValue != nil {
		parent.Append(xmltree.New("resetValue", hex8(*p.ResetValue)))
	}
	if p.ResetMask != nil {
		parent.Append(xmltree.New("resetMask", hex8(*p.ResetMask)))
	}
}

// Resolve returns these properties with every nil field filled from the
// enclosing defaults, outermost last. First non-nil wins per field.
func (p RegisterProperties) Resolve(defaults ...RegisterProperties) RegisterProperties {
	out := p
	for _, d := range defaults {
		if out.Size == nil {
			out.Size = d.Size
		}
		if out.Access == nil {
			out.Access = d.Access
		}
		if out.Protection == nil {
			out.Protection = d.Protection
		}
		if out.ResetValue == nil {
			out.ResetValue = d.ResetValue
		}
		if out.ResetMask == nil {
			out.ResetMask = d.ResetMask
		}
	}
	return out
}

// clone deep-copies the properties.
func (p RegisterProperties) clone() RegisterProperties {
	return RegisterProperties{
		Size:       cp(p.Size),
		Access:     cp(p.Access),
		Protection: cp(p.Protection),
		ResetValue: cp(p.ResetValue),
		ResetMask:  cp(p.ResetMask),
	}
}

// merge fills nil fields in place from src, used by derivation.
func (p *RegisterProperties) merge(src RegisterProperties) {
	if p.Size == nil {
		p.Size = cp(src.Size)
	}
	if p.Access == nil {
		p.Access = cp(src.Access)
	}
	if p.Protection == nil {
		p.Protection = cp(src.Protection)
	}
	if p.ResetValue == nil {
		p.ResetValue = cp(src.ResetValue)
	}
	if p.ResetMask == nil {
		p.ResetMask = cp(src.ResetMask)
	}
}
