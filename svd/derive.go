package svd

// ResolveDerived runs the document-level derivation pass: every
// peripheral with a derivedFrom reference receives copies of the fields
// it left unset from its source peripheral. Fields explicitly set on the
// deriving peripheral are never overwritten, and copies are deep so the
// deriving peripheral owns its register tree.
//
// Chains resolve transitively in document order; the pass is idempotent.
// A reference to a name not in the device is a DeriveError with
// DeriveUnknownSource, a cyclic chain is rejected with DeriveCycle.
func (d *Device) ResolveDerived() error {
	byName := make(map[string]*Peripheral, len(d.Peripherals))
	for _, p := range d.Peripherals {
		byName[p.Name] = p
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(d.Peripherals))

	var resolve func(p *Peripheral) error
	resolve = func(p *Peripheral) error {
		switch state[p.Name] {
		case done:
			return nil
		case visiting:
			return &DeriveError{Kind: DeriveCycle, Peripheral: p.Name}
		}
		state[p.Name] = visiting
		if p.DerivedFrom != nil {
			src, ok := byName[*p.DerivedFrom]
			if !ok {
				return &DeriveError{
					Kind:       DeriveUnknownSource,
					Peripheral: p.Name,
					Source:     *p.DerivedFrom,
				}
			}
			if err := resolve(src); err != nil {
				return err
			}
			p.deriveFrom(src)
		}
		state[p.Name] = done
		return nil
	}

	for _, p := range d.Peripherals {
		if err := resolve(p); err != nil {
			return err
		}
	}
	return nil
}

// deriveFrom copies src's value into every field p left unset.
func (p *Peripheral) deriveFrom(src *Peripheral) {
	if p.Version == nil {
		p.Version = cp(src.Version)
	}
	if p.DisplayName == nil {
		p.DisplayName = cp(src.DisplayName)
	}
	if p.GroupName == nil {
		p.GroupName = cp(src.GroupName)
	}
	if p.Description == nil {
		p.Description = cp(src.Description)
	}
	if p.BaseAddress == nil {
		p.BaseAddress = cp(src.BaseAddress)
	}
	if p.AddressBlock == nil {
		p.AddressBlock = cp(src.AddressBlock)
	}
	if len(p.Interrupts) == 0 {
		for _, it := range src.Interrupts {
			p.Interrupts = append(p.Interrupts, Interrupt{
				Name:        it.Name,
				Description: cp(it.Description),
				Value:       it.Value,
			})
		}
	}
	p.DefaultRegisterProperties.merge(src.DefaultRegisterProperties)
	if p.Registers == nil {
		p.Registers = cloneRegisters(src.Registers)
	}
}
