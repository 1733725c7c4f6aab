package svd

import (
	"errors"
	"strings"
	"testing"
)

const registerXML = `<register>
	<name>CTRL</name>
	<description>Control register</description>
	<addressOffset>0x0</addressOffset>
	<size>32</size>
	<access>read-write</access>
	<resetValue>0x00000000</resetValue>
	<fields>
		<field>
			<name>EN</name>
			<bitOffset>0</bitOffset>
			<bitWidth>1</bitWidth>
		</field>
		<field>
			<name>MODE</name>
			<bitRange>[3:1]</bitRange>
		</field>
	</fields>
</register>`

func TestParseRegister(t *testing.T) {
	r, err := ParseRegister(parseXML(t, registerXML))
	if err != nil {
		t.Fatalf("ParseRegister: %v", err)
	}
	if r.Name != "CTRL" || r.AddressOffset != 0 {
		t.Errorf("got %q @ %#x", r.Name, r.AddressOffset)
	}
	if r.Properties.Size == nil || *r.Properties.Size != 32 {
		t.Errorf("Size = %v", r.Properties.Size)
	}
	if len(r.Fields) != 2 {
		t.Fatalf("fields = %d", len(r.Fields))
	}
	if (r.Fields[1].BitRange != BitRange{Offset: 1, Width: 3}) {
		t.Errorf("MODE bit range = %+v", r.Fields[1].BitRange)
	}
}

func TestRegisterFieldsAbsentVsEmpty(t *testing.T) {
	r, err := ParseRegister(parseXML(t,
		"<register><name>A</name><addressOffset>0</addressOffset></register>"))
	if err != nil {
		t.Fatalf("absent fields: %v", err)
	}
	if r.Fields != nil {
		t.Error("absent <fields> should parse as nil")
	}

	r, err = ParseRegister(parseXML(t,
		"<register><name>A</name><addressOffset>0</addressOffset><fields></fields></register>"))
	if err != nil {
		t.Fatalf("empty fields: %v", err)
	}
	if r.Fields == nil || len(r.Fields) != 0 {
		t.Errorf("empty <fields> should parse as empty non-nil, got %v", r.Fields)
	}

	// The distinction survives encode.
	node, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if node.Child("fields") == nil {
		t.Error("empty fields list should re-encode the <fields> tag")
	}
	r.Fields = nil
	node, err = r.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if node.Child("fields") != nil {
		t.Error("nil fields should omit the <fields> tag")
	}
}

func TestRegisterFieldContext(t *testing.T) {
	src := `<register><name>CTRL</name><addressOffset>0</addressOffset><fields>
		<field><name>OK</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field>
		<field><name>BAD</name></field>
	</fields></register>`
	_, err := ParseRegister(parseXML(t, src))
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "in register `CTRL`") || !strings.Contains(msg, "field #1") {
		t.Errorf("error %q lacks positional context", msg)
	}
	var tagErr *TagError
	if !errors.As(err, &tagErr) || tagErr.Kind != MissingTag {
		t.Errorf("wrapped kind = %v, want MissingTag", err)
	}
}

func TestRegisterClusterDispatch(t *testing.T) {
	rc, err := ParseRegisterCluster(parseXML(t,
		"<register><name>R</name><addressOffset>0</addressOffset></register>"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := rc.(*Register); !ok {
		t.Errorf("got %T, want *Register", rc)
	}

	rc, err = ParseRegisterCluster(parseXML(t,
		"<cluster><name>C</name><addressOffset>0x100</addressOffset></cluster>"))
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if _, ok := rc.(*Cluster); !ok {
		t.Errorf("got %T, want *Cluster", rc)
	}

	_, err = ParseRegisterCluster(parseXML(t, "<dimArray><name>X</name></dimArray>"))
	var rcErr *RegisterClusterError
	if !errors.As(err, &rcErr) {
		t.Fatalf("got %v, want *RegisterClusterError", err)
	}
	if rcErr.Tag != "dimArray" {
		t.Errorf("Tag = %q", rcErr.Tag)
	}
}

func TestClusterNesting(t *testing.T) {
	src := `<cluster>
		<name>OUTER</name>
		<addressOffset>0x0</addressOffset>
		<size>16</size>
		<cluster>
			<name>INNER</name>
			<addressOffset>0x10</addressOffset>
			<register><name>DATA</name><addressOffset>0x0</addressOffset></register>
		</cluster>
		<register><name>STAT</name><addressOffset>0x20</addressOffset></register>
	</cluster>`
	c, err := ParseCluster(parseXML(t, src))
	if err != nil {
		t.Fatalf("ParseCluster: %v", err)
	}
	if len(c.Children) != 2 {
		t.Fatalf("children = %d", len(c.Children))
	}
	inner, ok := c.Children[0].(*Cluster)
	if !ok {
		t.Fatalf("child #0 = %T, want *Cluster", c.Children[0])
	}
	if len(inner.Children) != 1 {
		t.Fatalf("inner children = %d", len(inner.Children))
	}
	if reg, ok := inner.Children[0].(*Register); !ok || reg.Name != "DATA" {
		t.Errorf("inner register = %+v", inner.Children[0])
	}
	if c.DefaultRegisterProperties.Size == nil || *c.DefaultRegisterProperties.Size != 16 {
		t.Errorf("cluster defaults = %+v", c.DefaultRegisterProperties)
	}

	// Document order of mixed register/cluster children survives
	// round-trip.
	node, err := c.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := ParseCluster(node)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if _, ok := again.Children[0].(*Cluster); !ok {
		t.Error("cluster-before-register order lost on round-trip")
	}
	if _, ok := again.Children[1].(*Register); !ok {
		t.Error("trailing register lost on round-trip")
	}
}

func TestRegisterWrongTag(t *testing.T) {
	_, err := ParseRegister(parseXML(t, "<cluster><name>C</name></cluster>"))
	var tagErr *TagError
	if !errors.As(err, &tagErr) || tagErr.Kind != NotExpectedTag {
		t.Errorf("got %v, want NotExpectedTag", err)
	}
}
