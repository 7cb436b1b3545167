package voice

import "sync"

const (
	historyBars    = 30
	historyInitial = 5
)

// AmplitudeHistory is the rolling window of visualiser bars, oldest first.
type AmplitudeHistory struct {
	mu   sync.Mutex
	bars []float64
}

func NewAmplitudeHistory() *AmplitudeHistory {
	h := &AmplitudeHistory{}
	h.Reset()
	return h
}

// Push drops the oldest bar, appends v and returns a copy of the window.
func (h *AmplitudeHistory) Push(v float64) []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.bars, h.bars[1:])
	h.bars[len(h.bars)-1] = v
	return append([]float64(nil), h.bars...)
}

func (h *AmplitudeHistory) Bars() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]float64(nil), h.bars...)
}

func (h *AmplitudeHistory) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bars = make([]float64, historyBars)
	for i := range h.bars {
		h.bars[i] = historyInitial
	}
}

// Transcript accumulates the spoken reply of the current model turn.
type Transcript struct {
	mu   sync.Mutex
	text string
}

func (t *Transcript) Append(s string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text += s
	return t.text
}

func (t *Transcript) Clear() {
	t.mu.Lock()
	t.text = ""
	t.mu.Unlock()
}

func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}
