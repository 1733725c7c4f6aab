package svd

import "github.com/golangsvd/gosvd/xmltree"

// Access is the schema's closed set of register/field access types.
type Access int

const (
	AccessReadOnly Access = iota
	AccessWriteOnly
	AccessReadWrite
	AccessWriteOnce
	AccessReadWriteOnce
)

func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessWriteOnly:
		return "write-only"
	case AccessReadWrite:
		return "read-write"
	case AccessWriteOnce:
		return "writeOnce"
	case AccessReadWriteOnce:
		return "read-writeOnce"
	default:
		return "Access(?)"
	}
}

// ParseAccess converts a schema literal to an Access. Anything outside the
// closed set is an EnumError; node is carried for diagnostics.
func ParseAccess(s string, node *xmltree.Node) (Access, error) {
	switch s {
	case "read-only":
		return AccessReadOnly, nil
	case "write-only":
		return AccessWriteOnly, nil
	case "read-write":
		return AccessReadWrite, nil
	case "writeOnce":
		return AccessWriteOnce, nil
	case "read-writeOnce":
		return AccessReadWriteOnce, nil
	default:
		return 0, &EnumError{Set: "access", Value: s, Node: node}
	}
}

func childAccessOpt(n *xmltree.Node, tag string) (*Access, error) {
	c := n.Child(tag)
	if c == nil {
		return nil, nil
	}
	a, err := ParseAccess(c.Text, n)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
