package nbt

// Generic converts t's payload into plain Go values suitable for
// encoding/json: map[string]any for compounds, []any for lists, and the
// primitive payloads otherwise. The tag's own name is not included; wrap
// the result under t.Name() if the distinction matters.
func Generic(t Tag) any {
	switch x := t.(type) {
	case *Byte:
		return x.Value
	case *Short:
		return x.Value
	case *Int:
		return x.Value
	case *Long:
		return x.Value
	case *Float:
		return x.Value
	case *Double:
		return x.Value
	case *ByteArray:
		return x.Value
	case *String:
		return x.Value
	case *IntArray:
		return x.Value
	case *LongArray:
		return x.Value
	case *List:
		items := make([]any, len(x.items))
		for i, it := range x.items {
			items[i] = Generic(it)
		}
		return items
	case *Compound:
		m := make(map[string]any, len(x.keys))
		for _, key := range x.keys {
			m[key] = Generic(x.children[key])
		}
		return m
	}
	return nil
}
