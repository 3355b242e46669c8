// Package validate holds pure input predicates.
package validate

import "regexp"

// local@domain.tld: exactly one @, at least one dot after it, no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a well-formed email address. Purely
// syntactic; uniqueness and deliverability are the identity provider's
// problem.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}
