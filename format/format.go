// Package format holds the pluggable string format predicates the dsl
// schemas invoke. Each predicate is a pure func(string) bool; any conforming
// implementation is interchangeable with the ones here.
package format

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// E.164 with optional separators, 7-15 digits.
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)
)

// Email reports whether s looks like an email address. Deliberately
// simplified; swap in a stricter predicate for production address handling.
func Email(s string) bool { return emailRe.MatchString(s) }

// UUID reports whether s parses as a canonical RFC 4122 UUID.
func UUID(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	// uuid.Parse also accepts urn: and braced forms; require the plain form.
	return len(s) == 36 && u.String() == strings.ToLower(s)
}

// URL reports whether s is an absolute URL with a scheme and host.
func URL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Phone reports whether s is a plausible international phone number. Spaces,
// dashes, dots, and parentheses are ignored before matching.
func Phone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, s)
	return phoneRe.MatchString(cleaned)
}

// CreditCard reports whether s passes the Luhn checksum with a plausible
// length. Spaces and dashes are ignored.
func CreditCard(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
	if len(cleaned) < 12 || len(cleaned) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// postalRes maps ISO 3166-1 alpha-2 country codes to postal code patterns.
var postalRes = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`),
	"CA": regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z] ?[0-9][A-Za-z][0-9]$`),
	"GB": regexp.MustCompile(`^[A-Za-z]{1,2}[0-9][A-Za-z0-9]? ?[0-9][A-Za-z]{2}$`),
	"JP": regexp.MustCompile(`^[0-9]{3}-?[0-9]{4}$`),
	"DE": regexp.MustCompile(`^[0-9]{5}$`),
	"FR": regexp.MustCompile(`^[0-9]{5}$`),
	"NL": regexp.MustCompile(`^[0-9]{4} ?[A-Za-z]{2}$`),
	"AU": regexp.MustCompile(`^[0-9]{4}$`),
	"BR": regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`),
	"IN": regexp.MustCompile(`^[1-9][0-9]{5}$`),
}

// PostalCode reports whether s is a valid postal code for the given country
// (ISO alpha-2, case-insensitive). Unknown countries fail closed.
func PostalCode(s, country string) bool {
	re, ok := postalRes[strings.ToUpper(country)]
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// PostalCountries lists the country codes PostalCode understands.
func PostalCountries() []string {
	out := make([]string, 0, len(postalRes))
	for c := range postalRes {
		out = append(out, c)
	}
	return out
}
