package voice

import (
	"sync"
	"time"
)

// Clock is the playback timeline, measured from the start of the client's audio output.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// Sink is where scheduled buffers are played, in practice the browser on the far end of
// the websocket.
type Sink interface {
	Play(id uint64, at time.Duration, pcm []byte) error
	Stop(id uint64) error
}

type scheduled struct {
	start time.Duration
	end   time.Duration
}

// Player schedules reply audio back to back on the timeline so chunks play gaplessly.
type Player struct {
	mu     sync.Mutex
	clock  Clock
	sink   Sink
	rate   int
	cursor time.Duration
	nextID uint64
	active map[uint64]scheduled
}

func NewPlayer(clock Clock, sink Sink) *Player {
	return &Player{
		clock:  clock,
		sink:   sink,
		rate:   OutputSampleRate,
		active: make(map[uint64]scheduled),
	}
}

// Enqueue schedules pcm at max(cursor, now) and advances the cursor by its duration.
func (p *Player) Enqueue(pcm []byte) (uint64, time.Duration, error) {
	p.mu.Lock()
	now := p.clock.Now()
	p.pruneLocked(now)

	start := max(p.cursor, now)
	p.cursor = start + PCMDuration(pcm, p.rate)
	p.nextID++
	id := p.nextID
	p.active[id] = scheduled{start: start, end: p.cursor}
	p.mu.Unlock()

	return id, start, p.sink.Play(id, start, pcm)
}

// Ended is reported by the sink when a buffer finished on its own.
func (p *Player) Ended(id uint64) {
	p.mu.Lock()
	delete(p.active, id)
	p.mu.Unlock()
}

// Interrupt stops every scheduled buffer and restarts the timeline at now.
func (p *Player) Interrupt() {
	p.mu.Lock()
	ids := p.drainLocked()
	p.cursor = p.clock.Now()
	p.mu.Unlock()

	p.stopAll(ids)
}

// Close stops playback and forgets the timeline.
func (p *Player) Close() {
	p.mu.Lock()
	ids := p.drainLocked()
	p.cursor = 0
	p.mu.Unlock()

	p.stopAll(ids)
}

func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

func (p *Player) Cursor() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

func (p *Player) drainLocked() []uint64 {
	ids := make([]uint64, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	p.active = make(map[uint64]scheduled)
	return ids
}

// pruneLocked forgets buffers whose end has passed but whose ended report never came.
func (p *Player) pruneLocked(now time.Duration) {
	for id, s := range p.active {
		if s.end <= now {
			delete(p.active, id)
		}
	}
}

func (p *Player) stopAll(ids []uint64) {
	for _, id := range ids {
		_ = p.sink.Stop(id)
	}
}
