package grid

// FrameScheduler queues work for the read phase of a frame.
//
// Geometry must be read after a frame has been painted and never interleaved
// with writes to layout state in the same pass. Callers queue reads while
// handling notifications or rendering, and the host runs them with Flush once
// the frame is on screen. Tasks queued with the same key collapse into the most
// recent one, so a burst of notifications costs a single read.
type FrameScheduler struct {
	tasks []readTask
}

type readTask struct {
	key string
	fn  func()
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// ReadTask queues fn for the next read phase. An empty key never coalesces.
func (s *FrameScheduler) ReadTask(key string, fn func()) {
	if key != "" {
		for i := range s.tasks {
			if s.tasks[i].key == key {
				s.tasks[i].fn = fn
				return
			}
		}
	}
	s.tasks = append(s.tasks, readTask{key: key, fn: fn})
}

// Pending reports whether a read phase is due.
func (s *FrameScheduler) Pending() bool {
	return len(s.tasks) > 0
}

// Flush runs the queued tasks in order and returns how many ran. Tasks queued
// while flushing belong to the next frame.
func (s *FrameScheduler) Flush() int {
	tasks := s.tasks
	s.tasks = nil
	for _, t := range tasks {
		t.fn()
	}
	return len(tasks)
}
