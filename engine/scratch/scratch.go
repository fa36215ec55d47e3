// Package scratch is a reusable byte buffer for formatting short strings
// without going through fmt. A Buffer is owned by one goroutine; reset it
// once per frame and format into it freely.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

type Buffer struct {
	buf []byte
}

// New returns a buffer with the given starting capacity. Call once at
// startup; appends past the capacity grow it like any slice.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Cap() int { return cap(b.buf) }
func (b *Buffer) Len() int { return len(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// BytesFrom returns the bytes produced since mark.
func (b *Buffer) BytesFrom(mark int) []byte { return b.buf[mark:] }

// StringFrom copies the range since mark into a new string.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

// StringViewFrom is a zero-copy view of the range since mark. It is valid
// until the next Reset; do not keep it across frames.
func (b *Buffer) StringViewFrom(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

func (b *Buffer) Bytes() []byte  { return b.buf }
func (b *Buffer) String() string { return string(b.buf) }

// ----- chainable append primitives -----

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F64 appends v with prec digits after the decimal point.
// Example: F64(3.14159, 2) -> "3.14"
func (b *Buffer) F64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// G64 appends v with prec significant digits, choosing between plain and
// exponent notation the way %g does.
func (b *Buffer) G64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'g', prec, 64)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
	return b
}

// Hex appends v in upper-case hexadecimal, zero padded to digits.
func (b *Buffer) Hex(v uint64, digits int) *Buffer {
	const hexDigits = "0123456789ABCDEF"
	var tmp [16]byte
	i := len(tmp)
	for v != 0 || i == len(tmp) {
		i--
		tmp[i] = hexDigits[v&0xf]
		v >>= 4
	}
	b.Pad(digits-(len(tmp)-i), '0')
	b.buf = append(b.buf, tmp[i:]...)
	return b
}

// ----- minimal % formatter -----
// Supports %s %d %f %g (with optional .prec) and %%. Unknown verbs are
// written literally; missing arguments stop formatting.
//
//	buf.Reset()
//	s := buf.Sprintf("pos %d,%d  %.2f ms", x, y, dt)
//
// The result is a view into the buffer, see StringViewFrom.
func (b *Buffer) Sprintf(format string, args ...any) string {
	mark := len(b.buf)
	ai := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.buf = append(b.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.buf = append(b.buf, '%')
			i++
			continue
		}
		var prec int
		i, prec = parsePrec(format, i+1)
		if i >= len(format) || ai >= len(args) {
			break
		}
		b.verb(format[i], prec, args[ai])
		ai++
	}
	return b.StringViewFrom(mark)
}

// Float formats a single float64 with a one-verb format such as "%.2f" or
// "%.3g". Unlike Sprintf it does not box its argument.
func (b *Buffer) Float(format string, v float64) string {
	mark := len(b.buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.buf = append(b.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.buf = append(b.buf, '%')
			i++
			continue
		}
		var prec int
		i, prec = parsePrec(format, i+1)
		if i >= len(format) {
			break
		}
		b.float(format[i], prec, v)
	}
	return b.StringViewFrom(mark)
}

func (b *Buffer) verb(v byte, prec int, arg any) {
	switch v {
	case 's':
		switch x := arg.(type) {
		case string:
			b.buf = append(b.buf, x...)
		case []byte:
			b.buf = append(b.buf, x...)
		default:
			b.buf = append(b.buf, "<unsupported>"...)
		}
	case 'd':
		b.buf = strconv.AppendInt(b.buf, toInt64(arg), 10)
	case 'f', 'g':
		b.float(v, prec, toFloat64(arg))
	default:
		b.buf = append(b.buf, '%', v)
	}
}

func (b *Buffer) float(v byte, prec int, x float64) {
	switch v {
	case 'f':
		if prec < 0 {
			prec = 6
		}
		b.F64(x, prec)
	case 'g':
		switch {
		case prec < 0:
			prec = 6
		case prec == 0:
			prec = 1
		}
		b.G64(x, prec)
	case 'd':
		b.buf = strconv.AppendInt(b.buf, int64(x), 10)
	default:
		b.buf = append(b.buf, '%', v)
	}
}

// parsePrec reads an optional ".<digits>" at format[i:]. It returns the
// index of the verb and the precision, or -1 when none was given.
func parsePrec(format string, i int) (int, int) {
	if i >= len(format) || format[i] != '.' {
		return i, -1
	}
	i++
	n := 0
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		n = n*10 + int(format[i]-'0')
		i++
	}
	return i, n
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int:
		return float64(x)
	default:
		return 0
	}
}
