package grid

// ResizeSignal is an in-process ResizeSource. Hosts call Notify whenever the
// observed container changes size.
type ResizeSignal struct {
	next int
	subs map[int]func()
}

// OnResize subscribes fn and returns a function that removes the subscription.
func (s *ResizeSignal) OnResize(fn func()) func() {
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Notify delivers a resize notification to every subscriber.
func (s *ResizeSignal) Notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Subscribers returns the number of live subscriptions.
func (s *ResizeSignal) Subscribers() int {
	return len(s.subs)
}

// ScrollSignal is an in-process ScrollSource carrying the new scroll offset.
type ScrollSignal struct {
	next int
	subs map[int]func(int)
}

// OnScroll subscribes fn and returns a function that removes the subscription.
func (s *ScrollSignal) OnScroll(fn func(offset int)) func() {
	if s.subs == nil {
		s.subs = make(map[int]func(int))
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Notify delivers offset to every subscriber.
func (s *ScrollSignal) Notify(offset int) {
	for _, fn := range s.subs {
		fn(offset)
	}
}

// Subscribers returns the number of live subscriptions.
func (s *ScrollSignal) Subscribers() int {
	return len(s.subs)
}
