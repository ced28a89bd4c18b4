package nbt

// PayloadSize returns the number of bytes t's payload occupies on the wire.
func PayloadSize(t Tag) int { return t.payloadSize() }

// Size returns the number of bytes the full named tag occupies on the wire:
// a 1-byte id, a 2-byte name length, the name, and the payload.
func Size(t Tag) int { return 3 + len(t.Name()) + t.payloadSize() }

// Encode serializes t as a named tag. The tree is not modified.
func Encode(t Tag) []byte {
	buf := make([]byte, Size(t))
	writeTag(buf, t)
	return buf
}

// writeTag writes the id, name length, name, and payload of t into p and
// returns the number of bytes written.
func writeTag(p []byte, t Tag) int {
	name := t.Name()
	p[0] = byte(t.ID())
	writeI16(p[1:], int16(uint16(len(name))))
	copy(p[3:], name)
	return 3 + len(name) + t.writePayload(p[3+len(name):])
}

func (t *Byte) payloadSize() int { return 1 }
func (t *Byte) writePayload(p []byte) int {
	p[0] = byte(t.Value)
	return 1
}

func (t *Short) payloadSize() int { return 2 }
func (t *Short) writePayload(p []byte) int {
	writeI16(p, t.Value)
	return 2
}

func (t *Int) payloadSize() int { return 4 }
func (t *Int) writePayload(p []byte) int {
	writeI32(p, t.Value)
	return 4
}

func (t *Long) payloadSize() int { return 8 }
func (t *Long) writePayload(p []byte) int {
	writeI64(p, t.Value)
	return 8
}

func (t *Float) payloadSize() int { return 4 }
func (t *Float) writePayload(p []byte) int {
	writeF32(p, t.Value)
	return 4
}

func (t *Double) payloadSize() int { return 8 }
func (t *Double) writePayload(p []byte) int {
	writeF64(p, t.Value)
	return 8
}

func (t *ByteArray) payloadSize() int { return 4 + len(t.Value) }
func (t *ByteArray) writePayload(p []byte) int {
	writeI32(p, int32(len(t.Value)))
	for i, v := range t.Value {
		p[4+i] = byte(v)
	}
	return 4 + len(t.Value)
}

func (t *String) payloadSize() int { return 2 + len(t.Value) }
func (t *String) writePayload(p []byte) int {
	writeI16(p, int16(uint16(len(t.Value))))
	copy(p[2:], t.Value)
	return 2 + len(t.Value)
}

func (t *IntArray) payloadSize() int { return 4 + 4*len(t.Value) }
func (t *IntArray) writePayload(p []byte) int {
	writeI32(p, int32(len(t.Value)))
	for i, v := range t.Value {
		writeI32(p[4+4*i:], v)
	}
	return 4 + 4*len(t.Value)
}

func (t *LongArray) payloadSize() int { return 4 + 8*len(t.Value) }
func (t *LongArray) writePayload(p []byte) int {
	writeI32(p, int32(len(t.Value)))
	for i, v := range t.Value {
		writeI64(p[4+8*i:], v)
	}
	return 4 + 8*len(t.Value)
}

// A list payload is the element type id, a 4-byte count, then the bare
// payloads of the elements (no per-element ids or names).
func (t *List) payloadSize() int {
	n := 5
	for _, it := range t.items {
		n += it.payloadSize()
	}
	return n
}

func (t *List) writePayload(p []byte) int {
	p[0] = byte(t.elem)
	writeI32(p[1:], int32(len(t.items)))
	n := 5
	for _, it := range t.items {
		n += it.writePayload(p[n:])
	}
	return n
}

// A compound payload is its children as full named tags in insertion order,
// terminated by an End byte.
func (t *Compound) payloadSize() int {
	n := 1
	for _, key := range t.keys {
		n += Size(t.children[key])
	}
	return n
}

func (t *Compound) writePayload(p []byte) int {
	n := 0
	for _, key := range t.keys {
		n += writeTag(p[n:], t.children[key])
	}
	p[n] = byte(TagEnd)
	return n + 1
}
