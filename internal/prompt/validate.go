package prompt

import "regexp"

// Field character classes. Name fields allow common accented Latin letters
// plus spaces, apostrophes, hyphens and periods; phone fields allow digits
// plus the usual separators.
var (
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern   = regexp.MustCompile(`^[0-9\s+\-()]*$`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
	decimalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	intPattern     = regexp.MustCompile(`^-?\d+$`)
	namePattern    = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ'.\-\s]+$`)
)

// IsValidEmail reports whether s has the local@domain.tld shape: no '@' or
// whitespace inside the parts and at least one '.' in the domain.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidName reports whether s contains only name characters.
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

// IsValidPhone reports whether s contains only phone characters. The empty
// string is valid; phone fields are optional.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsDigits reports whether s is one or more decimal digits.
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// IsDecimal reports whether s is a non-negative decimal literal: digits
// with an optional single fraction part, no sign, no exponent.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(s)
}

// IsInteger reports whether s is an optionally-signed integer literal.
func IsInteger(s string) bool {
	return intPattern.MatchString(s)
}
