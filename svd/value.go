package svd

import (
	"strconv"
	"strings"

	"github.com/golangsvd/gosvd/xmltree"
)

// ParseNum parses the schema's numeric literal grammar: decimal, 0x/0X
// prefixed hexadecimal (case-insensitive digits), or #-prefixed binary.
// Values must fit in 32 bits; overflow is an error, never a truncation.
func ParseNum(s string) (uint32, error) {
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case strings.HasPrefix(s, "#"):
		v, err = strconv.ParseUint(s[1:], 2, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// childText returns the text of the named child, failing with MissingTag
// when the child is absent and EmptyTag when it is blank.
func childText(n *xmltree.Node, tag string) (string, error) {
	c := n.Child(tag)
	if c == nil {
		return "", &TagError{Kind: MissingTag, Node: n, Tag: tag}
	}
	if c.Text == "" {
		return "", &TagError{Kind: EmptyTag, Node: n, Tag: tag}
	}
	return c.Text, nil
}

// childTextOpt returns the text of the named child, or nil when the child
// is absent. A present but blank child yields a pointer to the empty
// string.
func childTextOpt(n *xmltree.Node, tag string) *string {
	c := n.Child(tag)
	if c == nil {
		return nil
	}
	text := c.Text
	return &text
}

func childNum(n *xmltree.Node, tag string) (uint32, error) {
	text, err := childText(n, tag)
	if err != nil {
		return 0, err
	}
	v, err := ParseNum(text)
	if err != nil {
		return 0, &ValueError{Node: n, Tag: tag, Text: text, Err: err}
	}
	return v, nil
}

func childNumOpt(n *xmltree.Node, tag string) (*uint32, error) {
	if n.Child(tag) == nil {
		return nil, nil
	}
	v, err := childNum(n, tag)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func childBool(n *xmltree.Node, tag string) (bool, error) {
	text, err := childText(n, tag)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, &BoolError{Node: n, Tag: tag, Text: text, Err: err}
	}
	return v, nil
}

func childBoolOpt(n *xmltree.Node, tag string) (*bool, error) {
	if n.Child(tag) == nil {
		return nil, nil
	}
	v, err := childBool(n, tag)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Canonical literal forms used on encode. Addresses and reset values are
// eight hex digits, offsets bare hex, everything else decimal.
func hex8(v uint32) string { return "0x" + leftPad(strconv.FormatUint(uint64(v), 16), 8) }
func hex(v uint32) string  { return "0x" + strconv.FormatUint(uint64(v), 16) }
func dec(v uint32) string  { return strconv.FormatUint(uint64(v), 10) }

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func boolText(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
