package voice

import (
	"context"
	"errors"
	"sync"

	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/metrics"
	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusConnecting Status = "connecting"
	StatusActive     Status = "active"
)

var (
	ErrAlreadyStarted = errors.New("voice session already started")
	ErrStopped        = errors.New("voice session stopped while connecting")
)

const defaultCaptureQueue = 32

// Observer receives the state a client renders.
type Observer interface {
	OnStatus(Status)
	OnMode(companion.BehaviorMode)
	OnTranscript(string)
	OnLevels([]float64)
}

type run struct {
	conn    LiveConn
	cancel  context.CancelFunc
	capture chan []float32
	done    chan struct{}
}

// Session bridges one learner's microphone to the live model and the model's audio back.
type Session struct {
	userID     string
	dialer     Dialer
	modes      companion.ModeStore
	observer   Observer
	player     *Player
	levels     *AmplitudeHistory
	transcript *Transcript
	queueSize  int

	// dispatchMu orders message dispatch against teardown: once stop holds it, no message
	// of the stopped run reaches the player or the observer.
	dispatchMu sync.Mutex

	mu     sync.Mutex
	status Status
	mode   companion.BehaviorMode
	cur    *run
}

func NewSession(userID string, dialer Dialer, modes companion.ModeStore, observer Observer, player *Player) *Session {
	return &Session{
		userID:     userID,
		dialer:     dialer,
		modes:      modes,
		observer:   observer,
		player:     player,
		levels:     NewAmplitudeHistory(),
		transcript: &Transcript{},
		queueSize:  defaultCaptureQueue,
		status:     StatusIdle,
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Mode() companion.BehaviorMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Player() *Player { return s.player }

func (s *Session) Levels() []float64 { return s.levels.Bars() }

func (s *Session) Transcript() string { return s.transcript.String() }

// Start connects to the live model with the learner's current mode and runs the capture
// sender and the receive loop until Stop or a transport failure.
func (s *Session) Start(ctx context.Context) error {
	log := config.WithContext(ctx).WithField("user_id", s.userID)

	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.status = StatusConnecting
	s.mu.Unlock()
	s.observer.OnStatus(StatusConnecting)

	mode := s.modes.Mode(ctx, s.userID)
	conn, err := s.dialer.Dial(ctx, mode)
	if err != nil {
		log.WithError(err).Error("Failed to start voice session")
		metrics.VoiceSessions.WithLabelValues("failed").Inc()
		s.stop(nil)
		return err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r := &run{
		conn:    conn,
		cancel:  cancel,
		capture: make(chan []float32, s.queueSize),
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	if s.status != StatusConnecting {
		s.mu.Unlock()
		cancel()
		_ = conn.Close()
		return ErrStopped
	}
	s.cur = r
	s.mode = mode
	s.status = StatusActive
	s.mu.Unlock()

	metrics.VoiceSessions.WithLabelValues("started").Inc()
	log.Infof("Voice session active in %s mode", mode)
	s.observer.OnMode(mode)
	s.observer.OnStatus(StatusActive)

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return s.sendLoop(gctx, r) })
	g.Go(func() error { return s.receiveLoop(gctx, r) })
	g.Go(func() error {
		// Receive does not watch the context; closing the stream unblocks it.
		<-gctx.Done()
		_ = r.conn.Close()
		return nil
	})

	go func() {
		defer close(r.done)
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Info("Voice stream ended")
		}
		s.stop(r)
	}()
	return nil
}

// PushCapture hands one mic block to the sender. It never blocks: when the queue is full
// or the session is not active the block is dropped and false is returned.
func (s *Session) PushCapture(samples []float32) bool {
	s.mu.Lock()
	r := s.cur
	active := s.status == StatusActive
	s.mu.Unlock()
	if !active || r == nil {
		return false
	}

	s.observer.OnLevels(s.levels.Push(Amplitude(samples)))

	select {
	case r.capture <- samples:
		return true
	default:
		metrics.VoiceSessions.WithLabelValues("capture_dropped").Inc()
		return false
	}
}

// Stop tears the session down. It is safe to call any number of times.
func (s *Session) Stop() {
	s.stop(nil)
}

// Done is closed once the loops of the current run have exited and it was torn down.
// With no run in progress the returned channel is already closed.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.cur.done
}

// stop tears down r, or whatever is current when r is nil. A stale r is ignored so a
// finished run cannot stop its successor.
func (s *Session) stop(r *run) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	if r != nil && s.cur != r {
		s.mu.Unlock()
		return
	}
	cur := s.cur
	wasIdle := s.status == StatusIdle
	s.cur = nil
	s.status = StatusIdle
	s.mu.Unlock()

	if cur == nil && wasIdle {
		return
	}
	if cur != nil {
		cur.cancel()
		_ = cur.conn.Close()
		metrics.VoiceSessions.WithLabelValues("stopped").Inc()
	}

	s.player.Close()
	s.levels.Reset()
	s.transcript.Clear()

	s.observer.OnStatus(StatusIdle)
	s.observer.OnLevels(s.levels.Bars())
	s.observer.OnTranscript("")
}

func (s *Session) sendLoop(ctx context.Context, r *run) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case samples := <-r.capture:
			if err := r.conn.SendAudio(EncodePCM16(samples)); err != nil {
				return err
			}
		}
	}
}

func (s *Session) receiveLoop(ctx context.Context, r *run) error {
	for {
		msg, err := r.conn.Receive()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.dispatch(ctx, r, msg)
	}
}

// dispatch applies msg for run r. Messages of a run that is no longer current are dropped.
func (s *Session) dispatch(ctx context.Context, r *run, msg *ServerMessage) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	current := s.cur == r
	s.mu.Unlock()
	if !current {
		return
	}

	if msg.InputTranscript != "" {
		if mode, ok := companion.DetectModeSwitch(msg.InputTranscript); ok {
			s.switchMode(ctx, mode)
		}
	}

	if msg.OutputTranscript != "" {
		s.observer.OnTranscript(s.transcript.Append(msg.OutputTranscript))
	}

	for _, pcm := range msg.Audio {
		if _, _, err := s.player.Enqueue(pcm); err != nil {
			config.WithContext(ctx).WithError(err).Debug("Playback sink rejected buffer")
		}
	}

	if msg.Interrupted {
		s.player.Interrupt()
	}

	if msg.TurnComplete {
		s.transcript.Clear()
		s.observer.OnTranscript("")
	}
}

// switchMode records the new mode for the UI and for the next session; the running
// stream keeps the instruction it was opened with.
func (s *Session) switchMode(ctx context.Context, mode companion.BehaviorMode) {
	s.mu.Lock()
	changed := s.mode != mode
	s.mode = mode
	s.mu.Unlock()
	if !changed {
		return
	}

	s.modes.SetMode(ctx, s.userID, mode)
	config.WithContext(ctx).WithField("user_id", s.userID).Infof("Behavior mode switched to %s by voice", mode)
	s.observer.OnMode(mode)
}
