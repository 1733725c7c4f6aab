package svd

// need returns the value behind a builder slot, or a BuildError naming the
// field when the slot was never set. Entity builders call it once per
// required field, in schema declaration order, so the first omission in
// the source document is the one reported.
func need[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &BuildError{Field: field}
	}
	return *v, nil
}

// ptr is a convenience for filling optional slots and building literals
// in tests.
func ptr[T any](v T) *T { return &v }

// cp returns a copy of an optional field, so derived peripherals never
// alias their source.
func cp[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
