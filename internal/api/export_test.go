package api

import "time"

func (m *Middleware) SetClock(now func() time.Time) {
	m.now = now
}

func (m *Middleware) Limiters() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.limiters)
}
