package scene

// Set is an in-memory Graph that keeps nodes in insertion order.
type Set struct {
	nodes []Node

	adds    int
	removes int
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(nodes ...Node) {
	if s == nil {
		return
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		s.adds++
		if s.index(n) >= 0 {
			continue
		}
		s.nodes = append(s.nodes, n)
	}
}

func (s *Set) Remove(nodes ...Node) {
	if s == nil {
		return
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		s.removes++
		if i := s.index(n); i >= 0 {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
		}
	}
}

// Nodes returns a copy of the attached nodes.
func (s *Set) Nodes() []Node {
	if s == nil {
		return nil
	}
	return append([]Node(nil), s.nodes...)
}

func (s *Set) Contains(n Node) bool {
	return s != nil && s.index(n) >= 0
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Counts reports how many nodes have been passed to Add and Remove.
func (s *Set) Counts() (adds, removes int) {
	if s == nil {
		return 0, 0
	}
	return s.adds, s.removes
}

func (s *Set) index(n Node) int {
	for i, existing := range s.nodes {
		if existing == n {
			return i
		}
	}
	return -1
}
