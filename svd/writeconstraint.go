package svd

import "github.com/golangsvd/gosvd/xmltree"

// WriteConstraint restricts the values that may be written to a register
// or field. It is a closed sum: exactly one of WriteAsRead,
// UseEnumeratedValues, or *WriteConstraintRange.
type WriteConstraint interface {
	writeConstraint() *xmltree.Node
}

// WriteAsRead means only values previously read may be written back.
type WriteAsRead bool

// UseEnumeratedValues means only the field's enumerated values may be
// written.
type UseEnumeratedValues bool

// WriteConstraintRange bounds writable values to [Min, Max].
type WriteConstraintRange struct {
	Min uint32
	Max uint32
}

func (v WriteAsRead) writeConstraint() *xmltree.Node {
	return xmltree.New("writeAsRead", boolText(bool(v)))
}

func (v UseEnumeratedValues) writeConstraint() *xmltree.Node {
	return xmltree.New("useEnumeratedValues", boolText(bool(v)))
}

func (v *WriteConstraintRange) writeConstraint() *xmltree.Node {
	n := &xmltree.Node{Name: "range"}
	n.Append(
		xmltree.New("minimum", dec(v.Min)),
		xmltree.New("maximum", dec(v.Max)),
	)
	return n
}

// ParseWriteConstraint parses a <writeConstraint> element. At most one
// constraint-kind child is allowed; none is an error, more than one is a
// ConstraintError.
func ParseWriteConstraint(n *xmltree.Node) (WriteConstraint, error) {
	if n.Name != "writeConstraint" {
		return nil, &TagError{Kind: NotExpectedTag, Node: n, Tag: "writeConstraint"}
	}

	var found []WriteConstraint
	for _, c := range n.Children {
		switch c.Name {
		case "writeAsRead":
			v, err := childBool(n, "writeAsRead")
			if err != nil {
				return nil, err
			}
			found = append(found, WriteAsRead(v))
		case "useEnumeratedValues":
			v, err := childBool(n, "useEnumeratedValues")
			if err != nil {
				return nil, err
			}
			found = append(found, UseEnumeratedValues(v))
		case "range":
			min, err := childNum(c, "minimum")
			if err != nil {
				return nil, err
			}
			max, err := childNum(c, "maximum")
			if err != nil {
				return nil, err
			}
			found = append(found, &WriteConstraintRange{Min: min, Max: max})
		}
	}

	switch len(found) {
	case 0:
		return nil, &EnumError{Set: "writeConstraint", Value: "", Node: n}
	case 1:
		return found[0], nil
	default:
		return nil, &ConstraintError{Node: n}
	}
}

func cloneWriteConstraint(wc WriteConstraint) WriteConstraint {
	if r, ok := wc.(*WriteConstraintRange); ok {
		c := *r
		return &c
	}
	return wc
}

func childWriteConstraintOpt(n *xmltree.Node) (WriteConstraint, error) {
	c := n.Child("writeConstraint")
	if c == nil {
		return nil, nil
	}
	return ParseWriteConstraint(c)
}

func encodeWriteConstraint(wc WriteConstraint) *xmltree.Node {
	n := &xmltree.Node{Name: "writeConstraint"}
	n.Append(wc.writeConstraint())
	return n
}
