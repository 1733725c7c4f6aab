package svd

import "github.com/golangsvd/gosvd/xmltree"

// AddressBlock is an address range mapped exclusively to a peripheral.
type AddressBlock struct {
	Offset uint32
	Size   uint32
	Usage  string
}

type addressBlockBuilder struct {
	offset *uint32
	size   *uint32
	usage  *string
}

func (b *addressBlockBuilder) Build() (AddressBlock, error) {
	var ab AddressBlock
	var err error
	if ab.Offset, err = need("offset", b.offset); err != nil {
		return AddressBlock{}, err
	}
	if ab.Size, err = need("size", b.size); err != nil {
		return AddressBlock{}, err
	}
	if ab.Usage, err = need("usage", b.usage); err != nil {
		return AddressBlock{}, err
	}
	return ab, nil
}

// ParseAddressBlock parses an <addressBlock> element.
func ParseAddressBlock(n *xmltree.Node) (AddressBlock, error) {
	if n.Name != "addressBlock" {
		return AddressBlock{}, &TagError{Kind: NotExpectedTag, Node: n, Tag: "addressBlock"}
	}
	var b addressBlockBuilder
	offset, err := childNum(n, "offset")
	if err != nil {
		return AddressBlock{}, err
	}
	b.offset = &offset
	size, err := childNum(n, "size")
	if err != nil {
		return AddressBlock{}, err
	}
	b.size = &size
	usage, err := childText(n, "usage")
	if err != nil {
		return AddressBlock{}, err
	}
	b.usage = &usage
	return b.Build()
}

// Encode emits the <addressBlock> element.
func (ab AddressBlock) Encode() (*xmltree.Node, error) {
	n := &xmltree.Node{Name: "addressBlock"}
	n.Append(
		xmltree.New("offset", hex(ab.Offset)),
		xmltree.New("size", hex(ab.Size)),
		xmltree.New("usage", ab.Usage),
	)
	return n, nil
}
