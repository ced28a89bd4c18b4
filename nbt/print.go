package nbt

import (
	"strconv"
	"strings"
)

// DefaultIndent is the indentation width used by Print.
const DefaultIndent = 4

// Print renders t in the classic human-readable layout with the default
// indentation width.
func Print(t Tag) string { return PrintIndent(t, DefaultIndent) }

// PrintIndent renders t, indenting each nesting level by space columns.
// Primitives render as Type('name'): value; lists and compounds render an
// entry count followed by a brace block one level deeper.
func PrintIndent(t Tag, space int) string {
	var b strings.Builder
	printTag(&b, t, 0, space)
	return b.String()
}

func printTag(b *strings.Builder, t Tag, depth, space int) {
	b.WriteString(t.ID().String())
	b.WriteString("('")
	b.WriteString(t.Name())
	b.WriteString("'): ")
	t.printValue(b, depth, space)
}

func indent(b *strings.Builder, depth, space int) {
	for i := 0; i < depth*space; i++ {
		b.WriteByte(' ')
	}
}

func (t *Byte) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatInt(int64(t.Value), 10))
}

func (t *Short) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatInt(int64(t.Value), 10))
}

func (t *Int) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatInt(int64(t.Value), 10))
}

func (t *Long) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatInt(t.Value, 10))
}

func (t *Float) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatFloat(float64(t.Value), 'g', -1, 32))
}

func (t *Double) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.FormatFloat(t.Value, 'g', -1, 64))
}

func (t *ByteArray) printValue(b *strings.Builder, depth, space int) {
	b.WriteByte('[')
	for i, v := range t.Value {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
}

func (t *String) printValue(b *strings.Builder, depth, space int) {
	b.WriteByte('\'')
	b.WriteString(t.Value)
	b.WriteByte('\'')
}

func (t *IntArray) printValue(b *strings.Builder, depth, space int) {
	b.WriteByte('[')
	for i, v := range t.Value {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
}

func (t *LongArray) printValue(b *strings.Builder, depth, space int) {
	b.WriteByte('[')
	for i, v := range t.Value {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(']')
}

func (t *List) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.Itoa(len(t.items)))
	b.WriteString(" entries\n")
	indent(b, depth, space)
	b.WriteString("{\n")
	for _, it := range t.items {
		indent(b, depth+1, space)
		// list elements are unnamed; show the bare values
		it.printValue(b, depth+1, space)
		b.WriteByte('\n')
	}
	indent(b, depth, space)
	b.WriteByte('}')
}

func (t *Compound) printValue(b *strings.Builder, depth, space int) {
	b.WriteString(strconv.Itoa(len(t.keys)))
	b.WriteString(" entries\n")
	indent(b, depth, space)
	b.WriteString("{\n")
	for _, key := range t.keys {
		indent(b, depth+1, space)
		printTag(b, t.children[key], depth+1, space)
		b.WriteByte('\n')
	}
	indent(b, depth, space)
	b.WriteByte('}')
}
