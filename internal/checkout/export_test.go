package checkout

import "time"

func (b *Bridge) SetClock(now func() time.Time) {
	b.now = now
}

func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}
