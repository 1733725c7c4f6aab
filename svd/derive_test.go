package svd

import (
	"errors"
	"testing"
)

func parseDevice(t *testing.T, src string) *Device {
	t.Helper()
	d, err := ParseDevice(parseXML(t, src))
	if err != nil {
		t.Fatalf("ParseDevice: %v", err)
	}
	return d
}

const derivedXML = `<device><name>D</name><peripherals>
	<peripheral>
		<name>TIMER0</name>
		<version>1.0</version>
		<description>Timer</description>
		<baseAddress>0x40010000</baseAddress>
		<size>32</size>
		<interrupt><name>TIMER0_IRQ</name><value>3</value></interrupt>
		<registers>
			<register><name>CTRL</name><addressOffset>0x0</addressOffset></register>
		</registers>
	</peripheral>
	<peripheral derivedFrom="TIMER0">
		<name>TIMER1</name>
		<baseAddress>0x40011000</baseAddress>
	</peripheral>
	<peripheral derivedFrom="TIMER1">
		<name>TIMER2</name>
	</peripheral>
</peripherals></device>`

func TestResolveDerivedCopiesUnsetFields(t *testing.T) {
	d := parseDevice(t, derivedXML)
	if err := d.ResolveDerived(); err != nil {
		t.Fatalf("ResolveDerived: %v", err)
	}

	t1 := d.Peripheral("TIMER1")
	// Explicitly set fields are never overwritten.
	if *t1.BaseAddress != 0x40011000 {
		t.Errorf("TIMER1 baseAddress = %#x, own value overwritten", *t1.BaseAddress)
	}
	// Unset fields are copied from the source.
	if t1.Version == nil || *t1.Version != "1.0" {
		t.Errorf("TIMER1 version = %v, want inherited 1.0", t1.Version)
	}
	if t1.Description == nil || *t1.Description != "Timer" {
		t.Errorf("TIMER1 description = %v", t1.Description)
	}
	if len(t1.Interrupts) != 1 || t1.Interrupts[0].Value != 3 {
		t.Errorf("TIMER1 interrupts = %+v", t1.Interrupts)
	}
	if t1.DefaultRegisterProperties.Size == nil || *t1.DefaultRegisterProperties.Size != 32 {
		t.Errorf("TIMER1 defaults = %+v", t1.DefaultRegisterProperties)
	}
	if len(t1.Registers) != 1 {
		t.Fatalf("TIMER1 registers = %v", t1.Registers)
	}

	// Chains resolve transitively, including the missing baseAddress.
	t2 := d.Peripheral("TIMER2")
	if t2.BaseAddress == nil || *t2.BaseAddress != 0x40011000 {
		t.Errorf("TIMER2 baseAddress = %v, want TIMER1's", t2.BaseAddress)
	}
	if t2.Version == nil || *t2.Version != "1.0" {
		t.Errorf("TIMER2 version = %v", t2.Version)
	}
}

func TestResolveDerivedDeepCopies(t *testing.T) {
	d := parseDevice(t, derivedXML)
	if err := d.ResolveDerived(); err != nil {
		t.Fatalf("ResolveDerived: %v", err)
	}
	t0 := d.Peripheral("TIMER0")
	t1 := d.Peripheral("TIMER1")

	t1.Registers[0].(*Register).Name = "MUTATED"
	if t0.Registers[0].(*Register).Name != "CTRL" {
		t.Error("derived register tree aliases the source")
	}
	*t1.Version = "2.0"
	if *t0.Version != "1.0" {
		t.Error("derived version aliases the source")
	}
	t1.Interrupts[0].Value = 99
	if t0.Interrupts[0].Value != 3 {
		t.Error("derived interrupts alias the source")
	}
}

func TestResolveDerivedIdempotent(t *testing.T) {
	d := parseDevice(t, derivedXML)
	if err := d.ResolveDerived(); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	t1 := *d.Peripheral("TIMER1")
	if err := d.ResolveDerived(); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if *d.Peripheral("TIMER1").BaseAddress != *t1.BaseAddress ||
		len(d.Peripheral("TIMER1").Interrupts) != len(t1.Interrupts) {
		t.Error("second pass changed the model")
	}
}

func TestResolveDerivedUnknownSource(t *testing.T) {
	d := parseDevice(t, `<device><name>D</name><peripherals>
		<peripheral derivedFrom="GHOST"><name>P</name></peripheral>
	</peripherals></device>`)
	err := d.ResolveDerived()
	var deriveErr *DeriveError
	if !errors.As(err, &deriveErr) || deriveErr.Kind != DeriveUnknownSource {
		t.Fatalf("got %v, want DeriveUnknownSource", err)
	}
	if deriveErr.Peripheral != "P" || deriveErr.Source != "GHOST" {
		t.Errorf("DeriveError = %+v", deriveErr)
	}
}

func TestResolveDerivedCycle(t *testing.T) {
	d := parseDevice(t, `<device><name>D</name><peripherals>
		<peripheral derivedFrom="B"><name>A</name></peripheral>
		<peripheral derivedFrom="A"><name>B</name></peripheral>
	</peripherals></device>`)
	err := d.ResolveDerived()
	var deriveErr *DeriveError
	if !errors.As(err, &deriveErr) || deriveErr.Kind != DeriveCycle {
		t.Fatalf("got %v, want DeriveCycle", err)
	}
	// Document-order walk makes the report deterministic.
	if deriveErr.Peripheral != "A" {
		t.Errorf("cycle reported at %q, want A", deriveErr.Peripheral)
	}

	// Self-derivation is the smallest cycle.
	d = parseDevice(t, `<device><name>D</name><peripherals>
		<peripheral derivedFrom="SELF"><name>SELF</name></peripheral>
	</peripherals></device>`)
	err = d.ResolveDerived()
	if !errors.As(err, &deriveErr) || deriveErr.Kind != DeriveCycle {
		t.Errorf("self-derivation: got %v, want DeriveCycle", err)
	}
}

func TestResolveDerivedRegistersStayDistinct(t *testing.T) {
	// An explicitly empty <registers/> on the deriving peripheral is a
	// set value and must not be replaced by the source's registers.
	d := parseDevice(t, `<device><name>D</name><peripherals>
		<peripheral>
			<name>SRC</name>
			<baseAddress>0x0</baseAddress>
			<registers>
				<register><name>R</name><addressOffset>0x0</addressOffset></register>
			</registers>
		</peripheral>
		<peripheral derivedFrom="SRC">
			<name>DST</name>
			<baseAddress>0x1000</baseAddress>
			<registers></registers>
		</peripheral>
	</peripherals></device>`)
	if err := d.ResolveDerived(); err != nil {
		t.Fatalf("ResolveDerived: %v", err)
	}
	dst := d.Peripheral("DST")
	if dst.Registers == nil || len(dst.Registers) != 0 {
		t.Errorf("explicit empty registers overwritten: %v", dst.Registers)
	}
}
