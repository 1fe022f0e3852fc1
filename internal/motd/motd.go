// Package motd strips Minecraft legacy formatting codes from MOTD strings.
//
// An MOTD may embed marker+code pairs controlling color and style: the
// section sign U+00A7 followed by one code character. Modern servers emit
// hex colors as §x followed by six §-prefixed hex digits; those decompose
// into ordinary pairs and need no special casing.
package motd

import "strings"

// Marker is the reserved formatting marker character (U+00A7).
const Marker = '§'

// isCode reports whether r is a valid formatting code character.
// Color codes 0-9a-f, style codes k-o, reset r, and the hex introducer x.
func isCode(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	case r >= 'k' && r <= 'o', r >= 'K' && r <= 'O':
		return true
	case r == 'r' || r == 'R' || r == 'x' || r == 'X':
		return true
	}
	return false
}

// Strip removes every marker+code pair from raw, leaving all other
// characters untouched and in order. A marker with no following code
// character (a trailing lone §, or § before a non-code rune) is dropped
// alone. The marker never survives into the output, which makes Strip
// idempotent. Never fails; any string, including empty, is valid input.
func Strip(raw string) string {
	if !strings.ContainsRune(raw, Marker) {
		return raw
	}

	runes := []rune(raw)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != Marker {
			out = append(out, runes[i])
			continue
		}
		if i+1 < len(runes) && isCode(runes[i+1]) {
			i++ // skip the code character too
		}
	}
	return string(out)
}

// Clean strips formatting codes, including the ampersand marker variant
// some servers leak into MOTDs, then collapses runs of whitespace to a
// single space and trims the ends. Display helper for single-line output;
// Strip is the contract, Clean is cosmetic.
func Clean(raw string) string {
	s := Strip(raw)

	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) && isCode(runes[i+1]) {
			i++
			continue
		}
		out = append(out, runes[i])
	}

	return strings.Join(strings.Fields(string(out)), " ")
}
