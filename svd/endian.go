package svd

import "github.com/golangsvd/gosvd/xmltree"

// Endian is the schema's closed set of processor endianness values.
type Endian int

const (
	EndianLittle Endian = iota
	EndianBig
	EndianSelectable
	EndianOther
)

func (e Endian) String() string {
	switch e {
	case EndianLittle:
		return "little"
	case EndianBig:
		return "big"
	case EndianSelectable:
		return "selectable"
	case EndianOther:
		return "other"
	default:
		return "Endian(?)"
	}
}

// ParseEndian converts a schema literal to an Endian.
func ParseEndian(s string, node *xmltree.Node) (Endian, error) {
	switch s {
	case "little":
		return EndianLittle, nil
	case "big":
		return EndianBig, nil
	case "selectable":
		return EndianSelectable, nil
	case "other":
		return EndianOther, nil
	default:
		return 0, &EnumError{Set: "endian", Value: s, Node: node}
	}
}
