package polyfill

// FeatureSet is a set of feature names that iterates in first-insertion order
type FeatureSet struct {
	order []string
	seen  map[string]struct{}
}

// NewFeatureSet creates a set holding features
func NewFeatureSet(features ...string) *FeatureSet {
	s := &FeatureSet{seen: make(map[string]struct{})}
	s.Add(features...)
	return s
}

// Add appends features not already present
func (s *FeatureSet) Add(features ...string) {
	for _, f := range features {
		if _, ok := s.seen[f]; ok {
			continue
		}
		s.seen[f] = struct{}{}
		s.order = append(s.order, f)
	}
}

// Contains reports whether feature is in the set
func (s *FeatureSet) Contains(feature string) bool {
	_, ok := s.seen[feature]
	return ok
}

// Len returns the number of features
func (s *FeatureSet) Len() int {
	return len(s.order)
}

// Items returns a copy of the features in insertion order
func (s *FeatureSet) Items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
