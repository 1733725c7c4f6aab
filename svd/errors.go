package svd

import (
	"fmt"

	"github.com/golangsvd/gosvd/xmltree"
)

// TagErrorKind classifies structural element errors.
type TagErrorKind int

const (
	NotExpectedTag TagErrorKind = iota // element has the wrong tag name
	MissingTag                         // required child element absent
	EmptyTag                           // required child element has no text
	NameMismatch                       // element name disagrees with context
)

func (k TagErrorKind) String() string {
	switch k {
	case NotExpectedTag:
		return "unexpected tag"
	case MissingTag:
		return "missing tag"
	case EmptyTag:
		return "empty tag"
	case NameMismatch:
		return "name mismatch"
	default:
		return fmt.Sprintf("TagErrorKind(%d)", k)
	}
}

// TagError reports a structural problem with an element: wrong tag name,
// or a required child that is absent or blank. Node is the element being
// parsed when the problem was found.
type TagError struct {
	Kind TagErrorKind
	Node *xmltree.Node
	Tag  string // the expected or missing tag name
}

func (e *TagError) Error() string {
	switch e.Kind {
	case NotExpectedTag:
		return fmt.Sprintf("expected a <%s> tag, found <%s>", e.Tag, e.Node.Name)
	case MissingTag:
		return fmt.Sprintf("expected a <%s> tag, found none", e.Tag)
	case EmptyTag:
		return fmt.Sprintf("expected content in <%s> tag, found none", e.Tag)
	case NameMismatch:
		return fmt.Sprintf("name mismatch in <%s>", e.Node.Name)
	default:
		return e.Kind.String()
	}
}

// ValueError reports a child element whose text does not satisfy the
// numeric literal grammar (decimal, 0x hex, # binary).
type ValueError struct {
	Node *xmltree.Node
	Tag  string
	Text string
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q in <%s>: %v", e.Text, e.Tag, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// BoolError reports a child element whose text is not a boolean literal.
type BoolError struct {
	Node *xmltree.Node
	Tag  string
	Text string
	Err  error
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("content of <%s> could not be parsed to a boolean value %q: %v",
		e.Tag, e.Text, e.Err)
}

func (e *BoolError) Unwrap() error { return e.Err }

// NameError reports an identifier that violates the schema's symbol rules.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q contains unexpected symbol", e.Name)
}

// BuildError reports a required field that was never set before Build.
type BuildError struct {
	Field string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("`%s` must be initialized", e.Field)
}

// BitRangeErrorKind classifies bit-range resolution failures.
type BitRangeErrorKind int

const (
	BitRangeSyntax     BitRangeErrorKind = iota // bitRange string is not of the form [msb:lsb]
	BitRangeParseError                          // msb/lsb are not numeric
	BitRangeMsbLsb                              // msb < lsb
)

func (k BitRangeErrorKind) String() string {
	switch k {
	case BitRangeSyntax:
		return "syntax"
	case BitRangeParseError:
		return "parse error"
	case BitRangeMsbLsb:
		return "msb < lsb"
	default:
		return fmt.Sprintf("BitRangeErrorKind(%d)", k)
	}
}

// BitRangeError reports an invalid bit-range encoding on a field element.
type BitRangeError struct {
	Kind BitRangeErrorKind
	Node *xmltree.Node
}

func (e *BitRangeError) Error() string {
	return fmt.Sprintf("bit range invalid: %s", e.Kind)
}

// EnumError reports a string outside one of the schema's closed
// enumerations. Set names the enumeration ("access", "endian", "usage",
// "modifiedWriteValues", "writeConstraint").
type EnumError struct {
	Set   string
	Value string
	Node  *xmltree.Node
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Set, e.Value)
}

// ConstraintError reports a <writeConstraint> element holding more than
// one constraint kind.
type ConstraintError struct {
	Node *xmltree.Node
}

func (e *ConstraintError) Error() string {
	return "multiple write constraints found"
}

// RegisterClusterError reports a <registers> or <cluster> child that is
// neither a register nor a cluster.
type RegisterClusterError struct {
	Node *xmltree.Node
	Tag  string
}

func (e *RegisterClusterError) Error() string {
	return fmt.Sprintf("invalid register/cluster child, found <%s>", e.Tag)
}

// DeriveErrorKind classifies derivation-resolution failures.
type DeriveErrorKind int

const (
	DeriveUnknownSource DeriveErrorKind = iota // derivedFrom names no peripheral
	DeriveCycle                                // derivedFrom chain is cyclic
)

func (k DeriveErrorKind) String() string {
	switch k {
	case DeriveUnknownSource:
		return "unknown source"
	case DeriveCycle:
		return "cycle"
	default:
		return fmt.Sprintf("DeriveErrorKind(%d)", k)
	}
}

// DeriveError reports a failure while resolving derivedFrom references.
// It is produced at document level, after all peripherals have parsed.
type DeriveError struct {
	Kind       DeriveErrorKind
	Peripheral string // the deriving peripheral
	Source     string // the derivedFrom value
}

func (e *DeriveError) Error() string {
	switch e.Kind {
	case DeriveUnknownSource:
		return fmt.Sprintf("peripheral %q derives from unknown peripheral %q",
			e.Peripheral, e.Source)
	case DeriveCycle:
		return fmt.Sprintf("cyclic derivedFrom chain through peripheral %q",
			e.Peripheral)
	default:
		return e.Kind.String()
	}
}
