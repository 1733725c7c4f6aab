package gosvd

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/golangsvd/gosvd/svd"
)

const doc = `<?xml version="1.0" encoding="utf-8"?>
<device schemaVersion="1.1">
  <name>ARM_Example</name>
  <version>1.2</version>
  <peripherals>
    <peripheral>
      <name>TIMER0</name>
      <baseAddress>0x40010000</baseAddress>
      <registers>
        <register>
          <name>CTRL</name>
          <addressOffset>0x0</addressOffset>
          <fields>
            <field>
              <name>EN</name>
              <msb>0</msb>
              <lsb>0</lsb>
            </field>
          </fields>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="TIMER0">
      <name>TIMER1</name>
      <baseAddress>0x40011000</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

func TestParseResolvesDerived(t *testing.T) {
	dev, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t1 := dev.Peripheral("TIMER1")
	if t1 == nil {
		t.Fatal("TIMER1 missing")
	}
	if len(t1.Registers) != 1 {
		t.Errorf("TIMER1 registers = %v, want inherited tree", t1.Registers)
	}
	if *t1.BaseAddress != 0x40011000 {
		t.Errorf("TIMER1 baseAddress = %#x, own value overwritten", *t1.BaseAddress)
	}
}

func TestParseWithoutDeriveResolution(t *testing.T) {
	dev, err := Parse([]byte(doc), WithoutDeriveResolution())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if dev.Peripheral("TIMER1").Registers != nil {
		t.Error("unresolved parse should leave derived fields unset")
	}
}

func TestParseWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	if _, err := Parse([]byte(doc), WithLogger(logger)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "parsed device") {
		t.Errorf("log output %q lacks parse record", out)
	}
	if !strings.Contains(out, "derived peripheral") {
		t.Errorf("log output %q lacks derive trace", out)
	}
}

func TestParseErrorCarriesContext(t *testing.T) {
	bad := strings.Replace(doc, "<msb>0</msb>", "<msb>x</msb>", 1)
	_, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("expected failure")
	}
	msg := err.Error()
	for _, want := range []string{"peripheral #0", "in peripheral `TIMER0`", "in register `CTRL`", "field #0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q lacks %q", msg, want)
		}
	}
	var valErr *svd.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("wrapped kind lost: %T", err)
	}
}

func TestEncodeCanonicalizesBitRange(t *testing.T) {
	dev, err := Parse([]byte(doc), WithoutDeriveResolution())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Encode(dev)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "<msb>") {
		t.Error("msb/lsb source should re-encode as bitOffset/bitWidth")
	}
	if !strings.Contains(s, "<bitOffset>0</bitOffset>") || !strings.Contains(s, "<bitWidth>1</bitWidth>") {
		t.Errorf("canonical bit range missing:\n%s", s)
	}
	if !strings.Contains(s, `derivedFrom="TIMER0"`) {
		t.Error("derivedFrom attribute lost")
	}
}

func TestParseEncodeParseEquivalence(t *testing.T) {
	dev, err := Parse([]byte(doc), WithoutDeriveResolution())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Encode(dev)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := Parse(out, WithoutDeriveResolution())
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if again.Name != dev.Name || len(again.Peripherals) != len(dev.Peripherals) {
		t.Fatalf("document identity lost")
	}
	r0 := dev.Peripherals[0].Registers[0].(*svd.Register)
	r1 := again.Peripherals[0].Registers[0].(*svd.Register)
	if r0.Name != r1.Name || r0.Fields[0].BitRange != r1.Fields[0].BitRange {
		t.Errorf("register content changed: %+v vs %+v", r0, r1)
	}
}
