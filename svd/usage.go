package svd

import "github.com/golangsvd/gosvd/xmltree"

// Usage says whether an enumerated-values set applies to reads, writes,
// or both.
type Usage int

const (
	UsageRead Usage = iota
	UsageWrite
	UsageReadWrite
)

func (u Usage) String() string {
	switch u {
	case UsageRead:
		return "read"
	case UsageWrite:
		return "write"
	case UsageReadWrite:
		return "read-write"
	default:
		return "Usage(?)"
	}
}

// ParseUsage converts a schema literal to a Usage.
func ParseUsage(s string, node *xmltree.Node) (Usage, error) {
	switch s {
	case "read":
		return UsageRead, nil
	case "write":
		return UsageWrite, nil
	case "read-write":
		return UsageReadWrite, nil
	default:
		return 0, &EnumError{Set: "usage", Value: s, Node: node}
	}
}
