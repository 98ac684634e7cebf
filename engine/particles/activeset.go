package particles

// activeSet is a sparse set of pool slot indices. dense holds the members in
// iteration order; sparse maps a slot to its index in dense, or -1.
type activeSet struct {
	dense  []int
	sparse []int
}

func newActiveSet(capacity int) activeSet {
	s := activeSet{
		dense:  make([]int, 0, capacity),
		sparse: make([]int, capacity),
	}
	for i := range s.sparse {
		s.sparse[i] = -1
	}
	return s
}

func (s *activeSet) has(slot int) bool { return s.sparse[slot] >= 0 }
func (s *activeSet) len() int          { return len(s.dense) }

func (s *activeSet) insert(slot int) {
	if s.has(slot) {
		return
	}
	s.sparse[slot] = len(s.dense)
	s.dense = append(s.dense, slot)
}

// remove swaps the last member into the hole, so it must not be called while
// ranging over dense
func (s *activeSet) remove(slot int) {
	i := s.sparse[slot]
	if i < 0 {
		return
	}
	last := s.dense[len(s.dense)-1]
	s.dense[i] = last
	s.sparse[last] = i
	s.dense = s.dense[:len(s.dense)-1]
	s.sparse[slot] = -1
}

func (s *activeSet) clear() {
	for _, slot := range s.dense {
		s.sparse[slot] = -1
	}
	s.dense = s.dense[:0]
}
