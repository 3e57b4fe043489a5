package contact

import (
	"slices"
	"strings"
)

// MaxPhones is the number of phone numbers a contact keeps.
const MaxPhones = 3

// normalizePhones trims entries, drops blanks and duplicates (keeping the
// first, most recent occurrence) and caps the list at MaxPhones.
func normalizePhones(phones []string) []string {
	out := make([]string, 0, min(len(phones), MaxPhones))
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if p == "" || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxPhones {
			break
		}
	}
	return out
}

// prependPhone puts phone in front of phones, dropping the oldest entry
// when the list is full. Blank or already known numbers leave the list as is.
func prependPhone(phones []string, phone string) []string {
	phone = strings.TrimSpace(phone)
	if phone == "" || slices.Contains(phones, phone) {
		return phones
	}
	return normalizePhones(append([]string{phone}, phones...))
}
