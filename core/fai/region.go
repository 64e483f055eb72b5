// core/fai/region.go
package fai

import "strings"

// MaxEnd is the open-end sentinel for region intervals: a region with no
// explicit end bound extends to MaxEnd and is clamped to the sequence
// length at fetch time.
const MaxEnd = 1 << 29

// ParseRegion splits a region token into a sequence name and a 0-based
// half-open interval. The token grammar is name[:start[-end]] with 1-based
// inclusive coordinates; commas in coordinates are ignored. A token whose
// suffix is not a parsable interval names a whole sequence: the entire
// token is the name, the interval is [0, MaxEnd) and ok is false.
func ParseRegion(tok string) (name string, beg, end int, ok bool) {
	name, beg, end = tok, 0, MaxEnd

	i := strings.LastIndexByte(tok, ':')
	if i < 0 {
		return name, beg, end, false
	}
	b, e, ok := parseInterval(tok[i+1:])
	if !ok || b > e {
		return tok, 0, MaxEnd, false
	}
	return tok[:i], b, e, true
}

// parseInterval reads "start", "start-", or "start-end" with optional
// comma separators. Coordinates are 1-based inclusive on input and
// 0-based half-open on output; a missing end bound maps to MaxEnd.
func parseInterval(s string) (beg, end int, ok bool) {
	hyphens := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9' || s[i] == ',':
		case s[i] == '-':
			hyphens++
		default:
			return 0, 0, false
		}
	}
	if hyphens > 1 {
		return 0, 0, false
	}

	s = strings.ReplaceAll(s, ",", "")
	first, rest := s, ""
	if i := strings.IndexByte(s, '-'); i >= 0 {
		first, rest = s[:i], s[i+1:]
	}

	beg = atoi(first) - 1
	if beg < 0 {
		beg = 0
	}
	end = MaxEnd
	if rest != "" {
		end = atoi(rest)
	}
	return beg, end, true
}

// atoi parses a plain decimal string, saturating at MaxEnd. Inputs have
// already been vetted as digits-only; an empty string parses as 0.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
		if n > MaxEnd {
			return MaxEnd
		}
	}
	return n
}
