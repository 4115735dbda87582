package jsonvalue

// Member is one key of a Node. A member holding more than one value
// serializes as a JSON array.
type Member struct {
	Name   string
	Values []Value
}

// IsArray reports whether the member serializes as an array.
func (m Member) IsArray() bool {
	return len(m.Values) > 1
}

// Node is an ordered mapping from names to values or arrays of values.
// The zero value is an empty node ready for use.
type Node struct {
	index   map[string]int
	members []Member
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Kind returns KindNode.
func (*Node) Kind() Kind { return KindNode }

func (*Node) isValue() {}

// Len returns the number of distinct keys.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.members)
}

// Keys returns the keys in first-seen order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	keys := make([]string, len(n.members))
	for i, m := range n.members {
		keys[i] = m.Name
	}
	return keys
}

// Members returns a shallow copy of the members in first-seen order.
func (n *Node) Members() []Member {
	if n == nil {
		return nil
	}
	out := make([]Member, len(n.members))
	for i, m := range n.members {
		out[i] = Member{Name: m.Name, Values: append([]Value(nil), m.Values...)}
	}
	return out
}

// Lookup returns every value stored under name.
func (n *Node) Lookup(name string) ([]Value, bool) {
	i, ok := n.position(name)
	if !ok {
		return nil, false
	}
	return append([]Value(nil), n.members[i].Values...), true
}

// Get returns the value stored under name when it is not an array.
func (n *Node) Get(name string) (Value, bool) {
	i, ok := n.position(name)
	if !ok || n.members[i].IsArray() {
		return nil, false
	}
	return n.members[i].Values[0], true
}

// Has reports whether name is a key of the node.
func (n *Node) Has(name string) bool {
	_, ok := n.position(name)
	return ok
}

// Set stores v under name, replacing any previous value or array.
// A replaced key keeps its original position.
func (n *Node) Set(name string, v Value) {
	if i, ok := n.position(name); ok {
		n.members[i].Values = []Value{v}
		return
	}
	n.add(name, v)
}

// Merge stores v under name using array promotion: a new key holds v,
// a second occurrence turns the key into [existing, v], and later
// occurrences append.
func (n *Node) Merge(name string, v Value) {
	if i, ok := n.position(name); ok {
		n.members[i].Values = append(n.members[i].Values, v)
		return
	}
	n.add(name, v)
}

// Equal reports whether n and o hold the same keys in the same order with
// structurally equal values.
func (n *Node) Equal(o *Node) bool {
	if n.Len() != o.Len() {
		return false
	}
	for i := range n.Len() {
		a, b := n.members[i], o.members[i]
		if a.Name != b.Name || len(a.Values) != len(b.Values) {
			return false
		}
		for j := range a.Values {
			if !Equal(a.Values[j], b.Values[j]) {
				return false
			}
		}
	}
	return true
}

// Interface returns the node as a map[string]any. Arrays become []any.
// Key order is not preserved by the result.
func (n *Node) Interface() any {
	out := make(map[string]any, n.Len())
	if n == nil {
		return out
	}
	for _, m := range n.members {
		if !m.IsArray() {
			out[m.Name] = m.Values[0].Interface()
			continue
		}
		items := make([]any, len(m.Values))
		for i, v := range m.Values {
			items[i] = v.Interface()
		}
		out[m.Name] = items
	}
	return out
}

func (n *Node) position(name string) (int, bool) {
	if n == nil || n.index == nil {
		return 0, false
	}
	i, ok := n.index[name]
	return i, ok
}

func (n *Node) add(name string, v Value) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	n.index[name] = len(n.members)
	n.members = append(n.members, Member{Name: name, Values: []Value{v}})
}
