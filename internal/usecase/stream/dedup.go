package stream

import "container/list"

// idSet is a fixed-capacity set of confirmed entity ids, evicting the oldest
// id once full so a long-lived session cannot grow it without bound. Not safe
// for concurrent use; the Reconciler serializes access.
type idSet struct {
	cap   int
	order *list.List
	items map[int64]*list.Element
}

func newIDSet(capacity int) *idSet {
	if capacity <= 0 {
		capacity = 1024
	}
	return &idSet{cap: capacity, order: list.New(), items: make(map[int64]*list.Element)}
}

func (s *idSet) Add(id int64) {
	if _, ok := s.items[id]; ok {
		return
	}
	if s.order.Len() >= s.cap {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(int64))
	}
	s.items[id] = s.order.PushFront(id)
}

func (s *idSet) Contains(id int64) bool {
	_, ok := s.items[id]
	return ok
}

func (s *idSet) Remove(id int64) {
	if el, ok := s.items[id]; ok {
		s.order.Remove(el)
		delete(s.items, id)
	}
}
