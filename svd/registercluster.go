package svd

import "github.com/golangsvd/gosvd/xmltree"

// RegisterCluster is the closed union of the two things a <registers>
// node (or a cluster) may contain: a *Register or a *Cluster. The variant
// set is fixed by the schema.
type RegisterCluster interface {
	// Encode emits the element for this variant.
	Encode() (*xmltree.Node, error)

	registerCluster()
}

func (*Register) registerCluster() {}
func (*Cluster) registerCluster()  {}

// ParseRegisterCluster classifies a child node by tag name alone and
// parses the matching variant. Any other tag is a RegisterClusterError.
func ParseRegisterCluster(n *xmltree.Node) (RegisterCluster, error) {
	switch n.Name {
	case "register":
		return ParseRegister(n)
	case "cluster":
		return ParseCluster(n)
	default:
		return nil, &RegisterClusterError{Node: n, Tag: n.Name}
	}
}

func cloneRegisterCluster(rc RegisterCluster) RegisterCluster {
	switch v := rc.(type) {
	case *Register:
		return v.clone()
	case *Cluster:
		return v.clone()
	default:
		return rc
	}
}

func cloneRegisters(rcs []RegisterCluster) []RegisterCluster {
	if rcs == nil {
		return nil
	}
	out := make([]RegisterCluster, 0, len(rcs))
	for _, rc := range rcs {
		out = append(out, cloneRegisterCluster(rc))
	}
	return out
}
