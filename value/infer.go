package value

// Infer classifies raw text as an integer, a float or text.
//
// Both prefix parses must succeed for a numeric result; if either fails the
// whole input is kept as Text. When both succeed the value is a Float only if
// the parsed float is strictly greater than the parsed integer, otherwise it
// is the Integer. This means "3.0" and "-5.5" infer as Integer(3) and
// Integer(-5).
func Infer(raw string) Value {
	i, ok := ParseInt(raw)
	if !ok {
		return Text(raw)
	}
	f, ok := ParseFloat(raw)
	if !ok {
		return Text(raw)
	}

	if f > float64(i) {
		return Float(f)
	}
	return Int(i)
}
