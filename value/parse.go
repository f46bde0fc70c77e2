package value

import (
	"strconv"
	"strings"
)

// ParseInt parses the leading decimal integer of raw. Leading whitespace and
// one sign are accepted; parsing stops at the first non-digit. It fails when
// no digit is present or the number does not fit in 64 bits.
func ParseInt(raw string) (int64, bool) {
	start := skipSpace(raw, 0)
	pos := skipSign(raw, start)
	end := skipDigits(raw, pos, isDigit)
	if end == pos {
		return 0, false
	}

	i, err := strconv.ParseInt(raw[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ParseFloat parses the leading floating-point number of raw. It accepts a
// decimal mantissa with optional fraction and exponent, a 0x hexadecimal
// mantissa with optional p exponent, and inf, infinity or nan in any case.
// It fails when no number is present or the value overflows float64.
func ParseFloat(raw string) (float64, bool) {
	start := skipSpace(raw, 0)
	pos := skipSign(raw, start)

	if n := special(raw[pos:]); n > 0 {
		return parseLiteral(raw[start : pos+n])
	}

	if end, ok := scanHex(raw, pos); ok {
		lit := raw[start:end]
		if !strings.ContainsAny(lit, "pP") {
			lit += "p0"
		}
		return parseLiteral(lit)
	}

	end, ok := scanDecimal(raw, pos)
	if !ok {
		return 0, false
	}
	return parseLiteral(raw[start:end])
}

func parseLiteral(lit string) (float64, bool) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// special reports the length of a leading inf, infinity or nan token.
func special(s string) int {
	lower := strings.ToLower(s[:min(len(s), 8)])
	switch {
	case strings.HasPrefix(lower, "infinity"):
		return 8
	case strings.HasPrefix(lower, "inf"), strings.HasPrefix(lower, "nan"):
		return 3
	}
	return 0
}

func scanDecimal(s string, pos int) (int, bool) {
	end := skipDigits(s, pos, isDigit)
	sawDigits := end > pos

	if end < len(s) && s[end] == '.' {
		frac := skipDigits(s, end+1, isDigit)
		if sawDigits || frac > end+1 {
			sawDigits = true
			end = frac
		}
	}
	if !sawDigits {
		return pos, false
	}
	return scanExponent(s, end, 'e', 'E'), true
}

func scanHex(s string, pos int) (int, bool) {
	if pos+1 >= len(s) || s[pos] != '0' || (s[pos+1] != 'x' && s[pos+1] != 'X') {
		return pos, false
	}

	mant := pos + 2
	end := skipDigits(s, mant, isHexDigit)
	sawDigits := end > mant

	if end < len(s) && s[end] == '.' {
		frac := skipDigits(s, end+1, isHexDigit)
		if sawDigits || frac > end+1 {
			sawDigits = true
			end = frac
		}
	}
	if !sawDigits {
		return pos, false
	}
	return scanExponent(s, end, 'p', 'P'), true
}

// scanExponent consumes an exponent marker, optional sign and digits. The
// marker is left unconsumed when no digit follows it.
func scanExponent(s string, pos int, lower, upper byte) int {
	if pos >= len(s) || (s[pos] != lower && s[pos] != upper) {
		return pos
	}
	digits := skipSign(s, pos+1)
	end := skipDigits(s, digits, isDigit)
	if end == digits {
		return pos
	}
	return end
}

func skipSpace(s string, pos int) int {
	for pos < len(s) {
		switch s[pos] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func skipSign(s string, pos int) int {
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		return pos + 1
	}
	return pos
}

func skipDigits(s string, pos int, accept func(byte) bool) int {
	for pos < len(s) && accept(s[pos]) {
		pos++
	}
	return pos
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
