package dataset

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Summarize maps a field to the aggregate operations computed over it. Fields
// and their operations keep registration order; the engine derives output
// names from that order, so it must be stable across compiles.
type Summarize struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewSummarize returns an empty Summarize.
func NewSummarize() *Summarize {
	return &Summarize{m: orderedmap.New[string, []string]()}
}

// Add registers ops for field. Operations already registered for the field
// are not repeated.
func (s *Summarize) Add(field string, ops ...string) {
	cur, _ := s.m.Get(field)
	for _, op := range ops {
		if !slices.Contains(cur, op) {
			cur = append(cur, op)
		}
	}
	s.m.Set(field, cur)
}

// Len returns the number of fields registered.
func (s *Summarize) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Fields returns the registered fields in registration order.
func (s *Summarize) Fields() []string {
	if s.Len() == 0 {
		return nil
	}
	out := make([]string, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Ops returns the operations registered for field.
func (s *Summarize) Ops(field string) []string {
	if s.Len() == 0 {
		return nil
	}
	ops, _ := s.m.Get(field)
	return ops
}

// Equal reports whether s and o register the same fields and operations in
// the same order.
func (s *Summarize) Equal(o *Summarize) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	a, b := s.m.Oldest(), o.m.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !slices.Equal(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes s as a JSON object in registration order.
func (s *Summarize) MarshalJSON() ([]byte, error) {
	if s.Len() == 0 {
		return []byte("{}"), nil
	}
	return s.m.MarshalJSON()
}
