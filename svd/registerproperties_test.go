package svd

import "testing"

func TestParseRegisterProperties(t *testing.T) {
	n := parseXML(t, `<peripheral>
		<size>32</size>
		<access>read-write</access>
		<resetValue>0x00000000</resetValue>
		<resetMask>0xFFFFFFFF</resetMask>
	</peripheral>`)
	p, err := parseRegisterProperties(n)
	if err != nil {
		t.Fatalf("parseRegisterProperties: %v", err)
	}
	if p.Size == nil || *p.Size != 32 {
		t.Errorf("Size = %v", p.Size)
	}
	if p.Access == nil || *p.Access != AccessReadWrite {
		t.Errorf("Access = %v", p.Access)
	}
	if p.Protection != nil {
		t.Errorf("Protection = %v, want nil", p.Protection)
	}
	if p.ResetMask == nil || *p.ResetMask != 0xFFFFFFFF {
		t.Errorf("ResetMask = %v", p.ResetMask)
	}
}

func TestRegisterPropertiesAllOptional(t *testing.T) {
	p, err := parseRegisterProperties(parseXML(t, "<register><name>R</name></register>"))
	if err != nil {
		t.Fatalf("parseRegisterProperties: %v", err)
	}
	if p != (RegisterProperties{}) {
		t.Errorf("got %+v, want all nil", p)
	}
}

func TestRegisterPropertiesResolve(t *testing.T) {
	peripheralDefaults := RegisterProperties{
		Size:       ptr(uint32(32)),
		Access:     ptr(AccessReadWrite),
		ResetValue: ptr(uint32(0)),
	}
	clusterDefaults := RegisterProperties{
		Access: ptr(AccessReadOnly),
	}
	register := RegisterProperties{
		Size: ptr(uint32(16)),
	}

	// Nearest enclosing scope wins per field: register -> cluster ->
	// peripheral.
	got := register.Resolve(clusterDefaults, peripheralDefaults)
	if *got.Size != 16 {
		t.Errorf("Size = %d, want the register's own 16", *got.Size)
	}
	if *got.Access != AccessReadOnly {
		t.Errorf("Access = %v, want the cluster's read-only", *got.Access)
	}
	if *got.ResetValue != 0 {
		t.Errorf("ResetValue = %d, want the peripheral default", *got.ResetValue)
	}
	if got.Protection != nil {
		t.Errorf("Protection = %v, want nil everywhere", got.Protection)
	}
}

func TestRegisterPropertiesResolveDoesNotMutate(t *testing.T) {
	register := RegisterProperties{}
	defaults := RegisterProperties{Size: ptr(uint32(8))}
	register.Resolve(defaults)
	if register.Size != nil {
		t.Error("Resolve must not copy into the receiver at parse time")
	}
}

func TestRegisterPropertiesEncodeOrder(t *testing.T) {
	p := RegisterProperties{
		Size:       ptr(uint32(32)),
		Access:     ptr(AccessReadOnly),
		Protection: ptr("s"),
		ResetValue: ptr(uint32(0x1234)),
		ResetMask:  ptr(uint32(0xFFFF)),
	}
	n := parseXML(t, "<register></register>")
	p.encodeInto(n)
	var names []string
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	want := []string{"size", "access", "protection", "resetValue", "resetMask"}
	for i := range want {
		if i >= len(names) || names[i] != want[i] {
			t.Fatalf("child order = %v, want %v", names, want)
		}
	}
	if got := n.Child("resetValue").Text; got != "0x00001234" {
		t.Errorf("resetValue = %q, want eight hex digits", got)
	}
}
