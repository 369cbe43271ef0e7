package repository

import "sync"

// WriteQueue runs read-modify-write cycles of one namespace one at a time.
// A disabled or nil queue runs them immediately, which leaves concurrent
// writers of a whole-collection document open to lost updates.
type WriteQueue struct {
	enabled bool
	mu      sync.Mutex
	slots   map[string]*sync.Mutex
}

func NewWriteQueue(enabled bool) *WriteQueue {
	return &WriteQueue{
		enabled: enabled,
		slots:   make(map[string]*sync.Mutex),
	}
}

func (q *WriteQueue) Enabled() bool {
	return q != nil && q.enabled
}

func (q *WriteQueue) Do(namespace string, fn func() error) error {
	if !q.Enabled() {
		return fn()
	}
	slot := q.slot(namespace)
	slot.Lock()
	defer slot.Unlock()
	return fn()
}

func (q *WriteQueue) slot(namespace string) *sync.Mutex {
	q.mu.Lock()
	defer q.mu.Unlock()
	s, ok := q.slots[namespace]
	if !ok {
		s = &sync.Mutex{}
		q.slots[namespace] = s
	}
	return s
}
