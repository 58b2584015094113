package set

// Ordered is a string set that remembers first-insertion order. The parse
// is a single synchronous pass, so no locking is carried here.
type Ordered struct {
	m     map[string]struct{}
	items []string
}

func New() *Ordered {
	return &Ordered{
		m: make(map[string]struct{}),
	}
}

// Add inserts val and reports whether it was newly added.
func (s *Ordered) Add(val string) bool {
	if _, ok := s.m[val]; ok {
		return false
	}
	s.m[val] = struct{}{}
	s.items = append(s.items, val)
	return true
}

func (s *Ordered) Contains(val string) bool {
	_, ok := s.m[val]
	return ok
}

func (s *Ordered) Len() int {
	return len(s.items)
}

// Values returns the members in first-insertion order.
func (s *Ordered) Values() []string {
	values := make([]string, len(s.items))
	copy(values, s.items)
	return values
}
