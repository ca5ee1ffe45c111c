package minijson

import (
	"math"
	"strconv"
)

// Format renders v as canonical text. Object keys are written in ascending
// order. Text is written between quotes with no escaping, so text holding a
// quote does not parse back to the same value. A nil v renders as null.
func Format(v Value) string {
	return string(AppendFormat(nil, v))
}

// AppendFormat appends the canonical text of v to dst and returns the
// extended buffer.
func AppendFormat(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case Text:
		dst = append(dst, '"')
		dst = append(dst, v...)
		return append(dst, '"')
	case Number:
		switch {
		case math.IsInf(float64(v), 1):
			return append(dst, "inf"...)
		case math.IsInf(float64(v), -1):
			return append(dst, "-inf"...)
		}
		return strconv.AppendFloat(dst, float64(v), 'f', -1, 64)
	case Boolean:
		return strconv.AppendBool(dst, bool(v))
	case Object:
		dst = append(dst, '{')
		i := 0
		for k, ev := range v.All() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, k...)
			dst = append(dst, '"', ':')
			dst = AppendFormat(dst, ev)
			i++
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

func (t Text) String() string    { return Format(t) }
func (n Number) String() string  { return Format(n) }
func (b Boolean) String() string { return Format(b) }
func (Null) String() string      { return "null" }
func (o Object) String() string  { return Format(o) }
