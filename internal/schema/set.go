package schema

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	set := make(nameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// orderedSet keeps first-seen order so resolved lists are deterministic.
type orderedSet struct {
	index nameSet
	order []string
}

func newOrderedSet(names []string) *orderedSet {
	s := &orderedSet{index: make(nameSet, len(names))}
	s.add(names...)
	return s
}

func (s *orderedSet) add(names ...string) {
	for _, name := range names {
		if s.index.has(name) {
			continue
		}
		s.index[name] = struct{}{}
		s.order = append(s.order, name)
	}
}

func (s *orderedSet) has(name string) bool {
	return s != nil && s.index.has(name)
}

func (s *orderedSet) size() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func (s *orderedSet) list() []string {
	if s == nil || len(s.order) == 0 {
		return nil
	}
	return append([]string(nil), s.order...)
}
