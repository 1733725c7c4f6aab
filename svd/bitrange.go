package svd

import (
	"strconv"
	"strings"

	"github.com/golangsvd/gosvd/xmltree"
)

// BitRange locates a field inside a register's bit layout. It is the
// canonical form of the schema's three equivalent encodings: a
// "[msb:lsb]" string, msb/lsb child elements, or bitOffset/bitWidth
// child elements. Construct it through parseBitRange only.
type BitRange struct {
	Offset uint32
	Width  uint32
}

// Msb returns the most significant bit position covered by the range.
func (r BitRange) Msb() uint32 { return r.Offset + r.Width - 1 }

// Lsb returns the least significant bit position covered by the range.
func (r BitRange) Lsb() uint32 { return r.Offset }

// parseBitRange resolves whichever encoding is present on a field
// element. Exactly one encoding is consulted, in the order bitRange
// string, bitOffset/bitWidth, msb/lsb.
func parseBitRange(n *xmltree.Node) (BitRange, error) {
	if c := n.Child("bitRange"); c != nil {
		return parseBitRangeText(n, c.Text)
	}
	if n.Child("bitOffset") != nil {
		offset, err := childNum(n, "bitOffset")
		if err != nil {
			return BitRange{}, err
		}
		width, err := childNum(n, "bitWidth")
		if err != nil {
			return BitRange{}, err
		}
		return BitRange{Offset: offset, Width: width}, nil
	}
	if n.Child("msb") != nil || n.Child("lsb") != nil {
		msb, err := childNum(n, "msb")
		if err != nil {
			return BitRange{}, err
		}
		lsb, err := childNum(n, "lsb")
		if err != nil {
			return BitRange{}, err
		}
		if msb < lsb {
			return BitRange{}, &BitRangeError{Kind: BitRangeMsbLsb, Node: n}
		}
		return BitRange{Offset: lsb, Width: msb - lsb + 1}, nil
	}
	return BitRange{}, &TagError{Kind: MissingTag, Node: n, Tag: "bitRange"}
}

// parseBitRangeText parses the literal "[msb:lsb]" form. The bracket and
// colon shape is checked before any numeric parsing.
func parseBitRangeText(n *xmltree.Node, s string) (BitRange, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return BitRange{}, &BitRangeError{Kind: BitRangeSyntax, Node: n}
	}
	inner := s[1 : len(s)-1]
	msbText, lsbText, ok := strings.Cut(inner, ":")
	if !ok {
		return BitRange{}, &BitRangeError{Kind: BitRangeSyntax, Node: n}
	}
	msb, err := strconv.ParseUint(msbText, 10, 32)
	if err != nil {
		return BitRange{}, &BitRangeError{Kind: BitRangeParseError, Node: n}
	}
	lsb, err := strconv.ParseUint(lsbText, 10, 32)
	if err != nil {
		return BitRange{}, &BitRangeError{Kind: BitRangeParseError, Node: n}
	}
	if msb < lsb {
		return BitRange{}, &BitRangeError{Kind: BitRangeMsbLsb, Node: n}
	}
	return BitRange{Offset: uint32(lsb), Width: uint32(msb - lsb + 1)}, nil
}

// encodeInto appends the canonical bitOffset/bitWidth form. Sources
// authored as msb/lsb or bitRange strings round-trip to this form by
// design.
func (r BitRange) encodeInto(parent *xmltree.Node) {
	parent.Append(
		xmltree.New("bitOffset", dec(r.Offset)),
		xmltree.New("bitWidth", dec(r.Width)),
	)
}
