package svd

// IsValidName reports whether s satisfies the schema's identifier grammar:
// an ASCII letter or underscore followed by ASCII alphanumerics or
// underscores. The empty string is invalid.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// CheckName returns a NameError if s is not a valid identifier.
func CheckName(s string) error {
	if !IsValidName(s) {
		return &NameError{Name: s}
	}
	return nil
}
