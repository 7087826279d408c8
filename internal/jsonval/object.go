package jsonval

// Obj is a parsed JSON object. Member order is preserved exactly as it
// appeared in the input so re-serialization is deterministic. The structure
// is read-only after parsing.
type Obj struct {
	keys   []string
	values map[string]Value
}

// Len returns the number of members.
func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in parse order. The slice is a copy.
func (o *Obj) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the member value for name and whether it exists. A nil object
// behaves as an empty one.
func (o *Obj) Get(name string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[name]
	return v, ok
}

// Value returns the member value for name, or the zero Value when absent.
func (o *Obj) Value(name string) Value {
	v, _ := o.Get(name)
	return v
}

// Str returns the string member for name, or "" when the member is absent
// or not a string.
func (o *Obj) Str(name string) string {
	return o.Value(name).Str()
}

// Range calls fn for each member in parse order until fn returns false.
func (o *Obj) Range(fn func(name string, value Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Compact returns the canonical compact JSON text of the object.
func (o *Obj) Compact() string {
	if o == nil {
		return "{}"
	}
	return string(o.appendCompact(nil))
}

func (o *Obj) appendCompact(dst []byte) []byte {
	dst = append(dst, '{')
	for i, k := range o.keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, k)
		dst = append(dst, ':')
		dst = o.values[k].appendCompact(dst)
	}
	return append(dst, '}')
}

func (o *Obj) set(name string, v Value) {
	if _, exists := o.values[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.values[name] = v
}
