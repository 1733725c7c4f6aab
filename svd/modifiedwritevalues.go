package svd

import "github.com/golangsvd/gosvd/xmltree"

// ModifiedWriteValues describes the side effect a write has on register
// or field contents beyond storing the written value.
type ModifiedWriteValues int

const (
	MwvOneToClear ModifiedWriteValues = iota
	MwvOneToSet
	MwvOneToToggle
	MwvZeroToClear
	MwvZeroToSet
	MwvZeroToToggle
	MwvClear
	MwvSet
	MwvModify
)

func (m ModifiedWriteValues) String() string {
	switch m {
	case MwvOneToClear:
		return "oneToClear"
	case MwvOneToSet:
		return "oneToSet"
	case MwvOneToToggle:
		return "oneToToggle"
	case MwvZeroToClear:
		return "zeroToClear"
	case MwvZeroToSet:
		return "zeroToSet"
	case MwvZeroToToggle:
		return "zeroToToggle"
	case MwvClear:
		return "clear"
	case MwvSet:
		return "set"
	case MwvModify:
		return "modify"
	default:
		return "ModifiedWriteValues(?)"
	}
}

// ParseModifiedWriteValues converts a schema literal to a
// ModifiedWriteValues.
func ParseModifiedWriteValues(s string, node *xmltree.Node) (ModifiedWriteValues, error) {
	switch s {
	case "oneToClear":
		return MwvOneToClear, nil
	case "oneToSet":
		return MwvOneToSet, nil
	case "oneToToggle":
		return MwvOneToToggle, nil
	case "zeroToClear":
		return MwvZeroToClear, nil
	case "zeroToSet":
		return MwvZeroToSet, nil
	case "zeroToToggle":
		return MwvZeroToToggle, nil
	case "clear":
		return MwvClear, nil
	case "set":
		return MwvSet, nil
	case "modify":
		return MwvModify, nil
	default:
		return 0, &EnumError{Set: "modifiedWriteValues", Value: s, Node: node}
	}
}

func childMwvOpt(n *xmltree.Node, tag string) (*ModifiedWriteValues, error) {
	c := n.Child(tag)
	if c == nil {
		return nil, nil
	}
	m, err := ParseModifiedWriteValues(c.Text, n)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
