// Package snbt renders binary NBT tag trees in the game's stringified NBT
// syntax: compounds as { key: value }, lists as [ a, b ], numeric suffixes
// b/s/L/f/d, and typed array prefixes [B; ...], [I; ...], [L; ...].
package snbt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/nbtkit/nbt"
)

// Encode writes the SNBT rendering of t's payload to w. The tag's name is
// not part of the output; a named root renders the same as an unnamed one.
func Encode(w io.Writer, t nbt.Tag) error {
	if t == nil {
		return fmt.Errorf("snbt: cannot encode nil tag")
	}
	return encodeValue(w, t)
}

// EncodeString renders t's payload as a string.
func EncodeString(t nbt.Tag) (string, error) {
	var b strings.Builder
	if err := Encode(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeValue(w io.Writer, t nbt.Tag) error {
	switch x := t.(type) {
	case *nbt.Byte:
		io.WriteString(w, strconv.FormatInt(int64(x.Value), 10)+"b")
	case *nbt.Short:
		io.WriteString(w, strconv.FormatInt(int64(x.Value), 10)+"s")
	case *nbt.Int:
		io.WriteString(w, strconv.FormatInt(int64(x.Value), 10))
	case *nbt.Long:
		io.WriteString(w, strconv.FormatInt(x.Value, 10)+"L")
	case *nbt.Float:
		encodeFloat(w, float64(x.Value), 32)
		io.WriteString(w, "f")
	case *nbt.Double:
		encodeFloat(w, x.Value, 64)
		io.WriteString(w, "d")
	case *nbt.String:
		encodeString(w, x.Value)
	case *nbt.ByteArray:
		io.WriteString(w, "[B;")
		for i, v := range x.Value {
			if i > 0 {
				io.WriteString(w, ",")
			}
			io.WriteString(w, " "+strconv.FormatInt(int64(v), 10)+"b")
		}
		io.WriteString(w, "]")
	case *nbt.IntArray:
		io.WriteString(w, "[I;")
		for i, v := range x.Value {
			if i > 0 {
				io.WriteString(w, ",")
			}
			io.WriteString(w, " "+strconv.FormatInt(int64(v), 10))
		}
		io.WriteString(w, "]")
	case *nbt.LongArray:
		io.WriteString(w, "[L;")
		for i, v := range x.Value {
			if i > 0 {
				io.WriteString(w, ",")
			}
			io.WriteString(w, " "+strconv.FormatInt(v, 10)+"L")
		}
		io.WriteString(w, "]")
	case *nbt.List:
		return encodeList(w, x)
	case *nbt.Compound:
		return encodeCompound(w, x)
	default:
		return fmt.Errorf("snbt: unsupported tag %T", t)
	}
	return nil
}

func encodeList(w io.Writer, l *nbt.List) error {
	io.WriteString(w, "[")
	for i, it := range l.Items() {
		if i > 0 {
			io.WriteString(w, ", ")
		} else {
			io.WriteString(w, " ")
		}
		if err := encodeValue(w, it); err != nil {
			return err
		}
	}
	if l.Len() > 0 {
		io.WriteString(w, " ")
	}
	io.WriteString(w, "]")
	return nil
}

func encodeCompound(w io.Writer, c *nbt.Compound) error {
	io.WriteString(w, "{")
	for i, k := range c.Keys() {
		if i > 0 {
			io.WriteString(w, ", ")
		} else {
			io.WriteString(w, " ")
		}
		encodeKey(w, k)
		io.WriteString(w, ": ")
		ch, _ := c.Get(k)
		if err := encodeValue(w, ch); err != nil {
			return err
		}
	}
	if c.Len() > 0 {
		io.WriteString(w, " ")
	}
	io.WriteString(w, "}")
	return nil
}

func encodeKey(w io.Writer, k string) {
	if isIdent(k) {
		io.WriteString(w, k)
		return
	}
	encodeString(w, k)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_') {
		return false
	}
	for _, r := range s[size:] {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			continue
		}
		return false
	}
	return true
}

func encodeString(w io.Writer, s string) {
	io.WriteString(w, "\"")
	for _, r := range s {
		switch r {
		case '\\':
			io.WriteString(w, "\\\\")
		case '"':
			io.WriteString(w, "\\\"")
		case '\n':
			io.WriteString(w, "\\n")
		case '\r':
			io.WriteString(w, "\\r")
		case '\t':
			io.WriteString(w, "\\t")
		default:
			if r < 0x20 {
				hex := strconv.FormatInt(int64(r), 16)
				io.WriteString(w, "\\u"+strings.Repeat("0", 4-len(hex))+hex)
			} else {
				io.WriteString(w, string(r))
			}
		}
	}
	io.WriteString(w, "\"")
}

// encodeFloat uses the compact 'g' form and appends ".0" when that form has
// neither a decimal point nor an exponent, so the suffix reads as part of a
// number.
func encodeFloat(w io.Writer, f float64, bits int) {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	hasDot := false
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			hasDot = true
			break
		}
	}
	if !hasDot {
		s = s + ".0"
	}
	io.WriteString(w, s)
}
