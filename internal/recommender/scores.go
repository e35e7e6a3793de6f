package recommender

// Scores accumulates candidate scores and remembers the order in which each
// candidate was first discovered. Discovery order is the tie break used when
// ranking, so two runs over identical input rank identically.
type Scores struct {
	values map[string]float64
	order  []string
}

// NewScores returns an empty score table.
func NewScores() *Scores {
	return &Scores{values: make(map[string]float64)}
}

// Add increases the score of item by delta, creating the entry if needed.
func (s *Scores) Add(item string, delta float64) {
	if _, ok := s.values[item]; !ok {
		s.order = append(s.order, item)
	}
	s.values[item] += delta
}

// Get returns the score of item and whether it has an entry.
func (s *Scores) Get(item string) (float64, bool) {
	v, ok := s.values[item]
	return v, ok
}

// Len returns the number of candidates.
func (s *Scores) Len() int {
	return len(s.order)
}

// Items returns the candidates in discovery order.
func (s *Scores) Items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Map returns a copy of the scores keyed by item.
func (s *Scores) Map() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (s *Scores) Clone() *Scores {
	c := &Scores{
		values: s.Map(),
		order:  s.Items(),
	}
	return c
}

// Merge adds every entry of other into s. Entries new to s are appended in
// other's discovery order.
func (s *Scores) Merge(other *Scores) {
	for _, item := range other.order {
		s.Add(item, other.values[item])
	}
}
