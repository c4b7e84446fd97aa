package value

// Map is a persistent array-map: a flat [k0 v0 k1 v1 …] slice searched
// linearly with a pointer-equality fast path for interned keys. Iteration
// order is insertion order. Expected sizes are small; the interpreter
// keeps its namespace tables in hashed storage instead.
type Map struct {
	entries   []Value // flat key/value pairs, len is always even
	transient bool
	Meta      *Map
}

// EmptyMap is the shared empty persistent map.
var EmptyMap = Value{kind: KindMap, obj: &Map{}}

// NewMap builds a persistent map from a flat key/value slice, which must
// have even length. Later duplicates of a key overwrite earlier ones.
func NewMap(entries []Value) (Value, error) {
	if len(entries)%2 != 0 {
		return Nil, NewExceptionf(ExcIllegalArgument, "map literal must contain an even number of forms")
	}
	if len(entries) == 0 {
		return EmptyMap, nil
	}
	m := &Map{transient: true}
	for i := 0; i < len(entries); i += 2 {
		m.Assoc(entries[i], entries[i+1])
	}
	m.transient = false
	return Value{kind: KindMap, obj: m}, nil
}

// MapValue wraps a map heap object as a value.
func MapValue(m *Map) Value { return Value{kind: KindMap, obj: m} }

// Count returns the number of entries.
func (m *Map) Count() int { return len(m.entries) / 2 }

// EntryAt returns the i-th key/value pair in insertion order.
func (m *Map) EntryAt(i int) (Value, Value) {
	return m.entries[2*i], m.entries[2*i+1]
}

// indexOf returns the entry slot of key, or -1. Identity comparison runs
// first so interned keys never pay for structural equality.
func (m *Map) indexOf(key Value) int {
	for i := 0; i < len(m.entries); i += 2 {
		if identical(m.entries[i], key) {
			return i
		}
	}
	for i := 0; i < len(m.entries); i += 2 {
		if Equals(m.entries[i], key) {
			return i
		}
	}
	return -1
}

// Get returns the value for key, or nil when absent.
func (m *Map) Get(key Value) Value {
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i+1]
	}
	return Nil
}

// Contains reports whether key is present.
func (m *Map) Contains(key Value) bool { return m.indexOf(key) >= 0 }

// Assoc returns a map with key bound to val. On a transient it mutates in
// place; on a persistent map it copies with the replacement or append.
func (m *Map) Assoc(key, val Value) *Map {
	i := m.indexOf(key)
	if m.transient {
		if i >= 0 {
			m.entries[i+1] = val
		} else {
			m.entries = append(m.entries, key, val)
		}
		return m
	}
	if i >= 0 {
		entries := make([]Value, len(m.entries))
		copy(entries, m.entries)
		entries[i+1] = val
		return &Map{entries: entries, Meta: m.Meta}
	}
	entries := make([]Value, len(m.entries)+2)
	copy(entries, m.entries)
	entries[len(m.entries)] = key
	entries[len(m.entries)+1] = val
	return &Map{entries: entries, Meta: m.Meta}
}

// Dissoc returns a map without key. Absent keys return the receiver.
func (m *Map) Dissoc(key Value) *Map {
	i := m.indexOf(key)
	if i < 0 {
		return m
	}
	if m.transient {
		m.entries = append(m.entries[:i], m.entries[i+2:]...)
		return m
	}
	entries := make([]Value, 0, len(m.entries)-2)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, m.entries[i+2:]...)
	return &Map{entries: entries, Meta: m.Meta}
}

// Keys returns the keys as a vector, in insertion order.
func (m *Map) Keys() Value {
	items := make([]Value, 0, m.Count())
	for i := 0; i < len(m.entries); i += 2 {
		items = append(items, m.entries[i])
	}
	return NewVector(items)
}

// Vals returns the values as a vector, in insertion order.
func (m *Map) Vals() Value {
	items := make([]Value, 0, m.Count())
	for i := 1; i < len(m.entries); i += 2 {
		items = append(items, m.entries[i])
	}
	return NewVector(items)
}

// Transient returns a mutable single-owner copy with the same contents.
func (m *Map) Transient() *Map {
	entries := make([]Value, len(m.entries))
	copy(entries, m.entries)
	return &Map{entries: entries, transient: true}
}

// Persistent seals a transient into a persistent map and invalidates the
// transient.
func (m *Map) Persistent() *Map {
	entries := m.entries
	m.entries = nil
	return &Map{entries: entries, Meta: m.Meta}
}

// IsTransient reports whether this map is a transient view.
func (m *Map) IsTransient() bool { return m.transient }

// WithMeta returns a copy of the map carrying the given metadata map.
func (m *Map) WithMeta(meta *Map) *Map {
	return &Map{entries: m.entries, Meta: meta}
}
