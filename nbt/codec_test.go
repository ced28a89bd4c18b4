package nbt

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// the canonical 33-byte hello world file: a compound named "hello world"
// holding one string "name" = "Bananrama"
var helloWorld = []byte{
	0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
	0x00,
}

func TestDecodeHelloWorld(t *testing.T) {
	tag, err := Decode(helloWorld)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, ok := tag.(*Compound)
	if !ok {
		t.Fatalf("root is %T, want *Compound", tag)
	}
	if c.Name() != "hello world" {
		t.Fatalf("root name %q", c.Name())
	}
	if c.Len() != 1 {
		t.Fatalf("root has %d children", c.Len())
	}
	ch, ok := c.Get("name")
	if !ok {
		t.Fatalf("no child %q", "name")
	}
	s, ok := ch.(*String)
	if !ok {
		t.Fatalf("child is %T, want *String", ch)
	}
	if s.Value != "Bananrama" {
		t.Fatalf("child value %q", s.Value)
	}
}

func TestEncodeHelloWorldRoundTrip(t *testing.T) {
	tag, err := Decode(helloWorld)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := Encode(tag)
	if !bytes.Equal(got, helloWorld) {
		t.Fatalf("re-encode mismatch:\n got %x\nwant %x", got, helloWorld)
	}
	if Size(tag) != len(helloWorld) {
		t.Fatalf("Size = %d, want %d", Size(tag), len(helloWorld))
	}
}

func TestDecodeEmptyList(t *testing.T) {
	// list named "x", element type End, count 0
	data := []byte{0x09, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x00, 0x00}
	tag, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	l, ok := tag.(*List)
	if !ok {
		t.Fatalf("root is %T, want *List", tag)
	}
	if l.ElemType() != TagEnd || l.Len() != 0 {
		t.Fatalf("got elem %s len %d", l.ElemType(), l.Len())
	}
	if got := Encode(tag); !bytes.Equal(got, data) {
		t.Fatalf("re-encode mismatch:\n got %x\nwant %x", got, data)
	}
}

func TestDecodeUnknownTagID(t *testing.T) {
	if _, err := Decode([]byte{0x0D, 0x00, 0x00}); !errors.Is(err, ErrUnknownTagID) {
		t.Fatalf("got %v, want ErrUnknownTagID", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	for n := 1; n < len(helloWorld); n++ {
		_, err := Decode(helloWorld[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix of %d bytes: got %v, want ErrTruncated", n, err)
		}
	}
	if _, err := Decode(nil); !errors.Is(err, ErrTruncated) {
		t.Fatalf("empty input: got %v, want ErrTruncated", err)
	}
}

func TestDecodeTrailingData(t *testing.T) {
	data := append(append([]byte{}, helloWorld...), 0x00)
	if _, err := Decode(data); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("got %v, want ErrTrailingData", err)
	}
}

func TestDecodeDuplicateKey(t *testing.T) {
	// compound "x" holding two bytes both named "a"
	data := []byte{
		0x0A, 0x00, 0x01, 'x',
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'a', 0x02,
		0x00,
	}
	if _, err := Decode(data); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

func TestDecodeTopLevelEnd(t *testing.T) {
	if _, err := Decode([]byte{0x00}); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("got %v, want ErrInvalidTag", err)
	}
}

func TestDecodeNonEmptyEndList(t *testing.T) {
	// a list claiming element type End with one element is undecodable
	data := []byte{0x09, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x00, 0x01}
	if _, err := Decode(data); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("got %v, want ErrInvalidTag", err)
	}
}

func TestDecodeBadListElemType(t *testing.T) {
	data := []byte{0x09, 0x00, 0x01, 'x', 0x0D, 0x00, 0x00, 0x00, 0x00}
	if _, err := Decode(data); !errors.Is(err, ErrUnknownTagID) {
		t.Fatalf("got %v, want ErrUnknownTagID", err)
	}
}

// buildTree assembles a tree exercising every variant.
func buildTree(t *testing.T) Tag {
	t.Helper()
	m := must(t)
	inner1 := m(NewCompound("", []Tag{m(NewInt("v", 1))}))
	inner2 := m(NewCompound("", []Tag{m(NewInt("v", 2))}))
	compounds := m(NewList("compounds", TagCompound, []Tag{inner1, inner2}))
	nested := m(NewList("", TagInt, []Tag{m(NewInt("", 10)), m(NewInt("", 20))}))
	listOfLists := m(NewList("lists", TagList, []Tag{nested}))
	children := []Tag{
		m(NewByte("byte", -7)),
		m(NewShort("short", -32000)),
		m(NewInt("int", 123456789)),
		m(NewLong("long", -1234567890123456789)),
		m(NewFloat("float", 1.5)),
		m(NewDouble("double", -0.25)),
		m(NewByteArray("bytes", []int8{-1, 0, 1, 127, -128})),
		m(NewString("string", "steve §acolored")),
		m(NewIntArray("ints", []int32{1, -2, 3})),
		m(NewLongArray("longs", []int64{4, -5, 6})),
		compounds,
		listOfLists,
		m(NewList("empty", TagEnd, nil)),
	}
	return m(NewCompound("root", children))
}

func TestRoundTripTree(t *testing.T) {
	tree := buildTree(t)
	data := Encode(tree)
	if len(data) != Size(tree) {
		t.Fatalf("encoded %d bytes, Size says %d", len(data), Size(tree))
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(tree, back) {
		t.Fatalf("round trip changed the tree:\n%s\nvs\n%s", Print(tree), Print(back))
	}
	// byte-level stability through a second cycle
	if again := Encode(back); !bytes.Equal(again, data) {
		t.Fatalf("second encode differs")
	}
}

func TestNestedListOfCompoundsRoundTrip(t *testing.T) {
	m := must(t)
	a := m(NewCompound("", []Tag{m(NewInt("n", 7))}))
	b := m(NewCompound("", []Tag{m(NewInt("n", 8))}))
	l := m(NewList("pair", TagCompound, []Tag{a, b}))
	data := Encode(l)
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(Encode(back), data) {
		t.Fatalf("round trip not byte-identical")
	}
	if !reflect.DeepEqual(l, back) {
		t.Fatalf("round trip changed the list")
	}
}

func TestSizeIdentity(t *testing.T) {
	m := must(t)
	tags := []Tag{
		m(NewByte("b", 1)),
		m(NewShort("s", 2)),
		m(NewInt("i", 3)),
		m(NewLong("l", 4)),
		m(NewFloat("f", 5)),
		m(NewDouble("d", 6)),
		m(NewByteArray("ba", []int8{1, 2})),
		m(NewString("st", "abc")),
		m(NewIntArray("ia", []int32{1})),
		m(NewLongArray("la", []int64{1, 2, 3})),
		m(NewList("el", TagEnd, nil)),
		m(NewCompound("c", nil)),
		buildTree(t),
	}
	for _, tag := range tags {
		if got := len(Encode(tag)); got != Size(tag) {
			t.Fatalf("%s(%q): encoded %d bytes, Size says %d", tag.ID(), tag.Name(), got, Size(tag))
		}
	}
}

func TestScalarPayloads(t *testing.T) {
	m := must(t)
	cases := []struct {
		tag  Tag
		want []byte
	}{
		{m(NewByte("", -1)), []byte{0x01, 0x00, 0x00, 0xFF}},
		{m(NewShort("", 0x0102)), []byte{0x02, 0x00, 0x00, 0x01, 0x02}},
		{m(NewInt("", 0x01020304)), []byte{0x03, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04}},
		{m(NewLong("", 0x0102030405060708)), []byte{0x04, 0x00, 0x00, 1, 2, 3, 4, 5, 6, 7, 8}},
		{m(NewFloat("", 1.0)), []byte{0x05, 0x00, 0x00, 0x3F, 0x80, 0x00, 0x00}},
		{m(NewDouble("", 1.0)), []byte{0x06, 0x00, 0x00, 0x3F, 0xF0, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		got := Encode(c.tag)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("%s: got %x, want %x", c.tag.ID(), got, c.want)
		}
		back, err := Decode(c.want)
		if err != nil {
			t.Fatalf("%s decode: %v", c.tag.ID(), err)
		}
		if !reflect.DeepEqual(back, c.tag) {
			t.Fatalf("%s: decode mismatch", c.tag.ID())
		}
	}
}
