package voice_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/store"
	"github.com/neet-mastery/mastery-lambda/internal/voice"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Duration
}

func (c *fakeClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(d time.Duration) {
	c.mu.Lock()
	c.now = d
	c.mu.Unlock()
}

type playCall struct {
	id uint64
	at time.Duration
}

type fakeSink struct {
	mu      sync.Mutex
	played  []playCall
	stopped []uint64
}

func (s *fakeSink) Play(id uint64, at time.Duration, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, playCall{id: id, at: at})
	return nil
}

func (s *fakeSink) Stop(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = append(s.stopped, id)
	return nil
}

func (s *fakeSink) Stopped() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint64(nil), s.stopped...)
}

type fakeConn struct {
	incoming  chan *voice.ServerMessage
	closed    chan struct{}
	closeOnce sync.Once

	mu   sync.Mutex
	sent [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan *voice.ServerMessage, 16),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) SendAudio(pcm []byte) error {
	select {
	case <-c.closed:
		return errors.New("closed")
	default:
	}
	c.mu.Lock()
	c.sent = append(c.sent, pcm)
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) Receive() (*voice.ServerMessage, error) {
	select {
	case msg := <-c.incoming:
		return msg, nil
	case <-c.closed:
		return nil, errors.New("closed")
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) Sent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

type fakeDialer struct {
	conn  *fakeConn
	err   error
	modes []companion.BehaviorMode
}

func (d *fakeDialer) Dial(_ context.Context, mode companion.BehaviorMode) (voice.LiveConn, error) {
	d.modes = append(d.modes, mode)
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}

type recordingObserver struct {
	mu          sync.Mutex
	statuses    []voice.Status
	modes       []companion.BehaviorMode
	transcripts []string
}

func (o *recordingObserver) OnStatus(s voice.Status) {
	o.mu.Lock()
	o.statuses = append(o.statuses, s)
	o.mu.Unlock()
}

func (o *recordingObserver) OnMode(m companion.BehaviorMode) {
	o.mu.Lock()
	o.modes = append(o.modes, m)
	o.mu.Unlock()
}

func (o *recordingObserver) OnTranscript(t string) {
	o.mu.Lock()
	o.transcripts = append(o.transcripts, t)
	o.mu.Unlock()
}

func (o *recordingObserver) OnLevels([]float64) {}

func (o *recordingObserver) Modes() []companion.BehaviorMode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]companion.BehaviorMode(nil), o.modes...)
}

func (o *recordingObserver) Transcripts() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.transcripts...)
}

// pcmOf returns d of silence at the output rate.
func pcmOf(d time.Duration) []byte {
	samples := int(d * voice.OutputSampleRate / time.Second)
	return make([]byte, 2*samples)
}

// eventually polls cond until it holds or a second passes.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestPlayerSchedulesBackToBack(t *testing.T) {
	clock := &fakeClock{now: time.Second}
	sink := &fakeSink{}
	p := voice.NewPlayer(clock, sink)

	_, at1, _ := p.Enqueue(pcmOf(500 * time.Millisecond))
	_, at2, _ := p.Enqueue(pcmOf(500 * time.Millisecond))
	if at1 != time.Second || at2 != 1500*time.Millisecond {
		t.Fatalf("expected 1s and 1.5s, got %s and %s", at1, at2)
	}

	// after a gap playback restarts at now, not at the stale cursor
	clock.Set(5 * time.Second)
	_, at3, _ := p.Enqueue(pcmOf(100 * time.Millisecond))
	if at3 != 5*time.Second {
		t.Fatalf("expected 5s, got %s", at3)
	}
}

func TestPlayerInterrupt(t *testing.T) {
	clock := &fakeClock{now: 2 * time.Second}
	sink := &fakeSink{}
	p := voice.NewPlayer(clock, sink)

	id1, _, _ := p.Enqueue(pcmOf(time.Second))
	id2, _, _ := p.Enqueue(pcmOf(time.Second))
	if p.Pending() != 2 {
		t.Fatalf("expected 2 scheduled buffers, got %d", p.Pending())
	}

	clock.Set(2500 * time.Millisecond)
	p.Interrupt()

	stopped := sink.Stopped()
	if len(stopped) != 2 || !containsID(stopped, id1) || !containsID(stopped, id2) {
		t.Fatalf("both buffers must be stopped, got %v", stopped)
	}
	if p.Pending() != 0 {
		t.Fatalf("no buffers should remain, got %d", p.Pending())
	}
	if p.Cursor() != 2500*time.Millisecond {
		t.Fatalf("cursor should restart at now, got %s", p.Cursor())
	}

	_, at, _ := p.Enqueue(pcmOf(time.Second))
	if at != 2500*time.Millisecond {
		t.Fatalf("next buffer should start at now, got %s", at)
	}
}

func containsID(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func newTestSession(t *testing.T, dialer voice.Dialer) (*voice.Session, *recordingObserver, *fakeSink, companion.ModeStore) {
	t.Helper()
	modes := companion.NewModeStore(store.NewLocal(store.NewMemoryKV()))
	obs := &recordingObserver{}
	sink := &fakeSink{}
	player := voice.NewPlayer(&fakeClock{}, sink)
	return voice.NewSession("u1", dialer, modes, obs, player), obs, sink, modes
}

func TestSessionLifecycle(t *testing.T) {
	conn := newFakeConn()
	sess, _, _, _ := newTestSession(t, &fakeDialer{conn: conn})

	if err := sess.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Status() != voice.StatusActive {
		t.Fatalf("expected active, got %s", sess.Status())
	}
	if err := sess.Start(context.Background()); !errors.Is(err, voice.ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}

	block := make([]float32, voice.BlockSize)
	for i := 0; i < 3; i++ {
		sess.PushCapture(block)
	}
	eventually(t, func() bool { return conn.Sent() == 3 }, "capture blocks were not sent")

	done := sess.Done()
	sess.Stop()
	sess.Stop()
	<-done

	if sess.Status() != voice.StatusIdle {
		t.Fatalf("expected idle after stop, got %s", sess.Status())
	}
	if sess.PushCapture(block) {
		t.Fatal("capture after stop must be dropped")
	}
	if bars := sess.Levels(); bars[29] != 5 {
		t.Fatalf("levels should reset after stop, got %v", bars)
	}
}

func TestSessionDialFailure(t *testing.T) {
	sess, _, _, _ := newTestSession(t, &fakeDialer{err: errors.New("permission denied")})

	if err := sess.Start(context.Background()); err == nil {
		t.Fatal("expected dial error")
	}
	if sess.Status() != voice.StatusIdle {
		t.Fatalf("failed start should return to idle, got %s", sess.Status())
	}
}

func TestSessionRemoteCloseTearsDown(t *testing.T) {
	conn := newFakeConn()
	sess, _, _, _ := newTestSession(t, &fakeDialer{conn: conn})
	_ = sess.Start(context.Background())

	done := sess.Done()
	_ = conn.Close()
	<-done

	if sess.Status() != voice.StatusIdle {
		t.Fatalf("remote close should leave the session idle, got %s", sess.Status())
	}
}

func TestSessionDispatch(t *testing.T) {
	conn := newFakeConn()
	dialer := &fakeDialer{conn: conn}
	sess, obs, sink, modes := newTestSession(t, dialer)
	ctx := context.Background()
	_ = sess.Start(ctx)
	defer sess.Stop()

	conn.incoming <- &voice.ServerMessage{InputTranscript: "Okay, Study mode on"}
	eventually(t, func() bool { return sess.Mode() == companion.ModeStudy }, "mode switch not applied")
	if got := modes.Mode(ctx, "u1"); got != companion.ModeStudy {
		t.Fatalf("mode not persisted, got %s", got)
	}
	if m := obs.Modes(); m[len(m)-1] != companion.ModeStudy {
		t.Fatalf("observer not told about mode, got %v", m)
	}

	conn.incoming <- &voice.ServerMessage{OutputTranscript: "Let's plan "}
	conn.incoming <- &voice.ServerMessage{OutputTranscript: "your week."}
	eventually(t, func() bool { return sess.Transcript() == "Let's plan your week." }, "transcript not accumulated")

	conn.incoming <- &voice.ServerMessage{Audio: [][]byte{pcmOf(time.Second), pcmOf(time.Second)}}
	eventually(t, func() bool { return sess.Player().Pending() == 2 }, "audio not scheduled")

	conn.incoming <- &voice.ServerMessage{Interrupted: true}
	eventually(t, func() bool { return len(sink.Stopped()) == 2 }, "interrupt did not stop playback")
	if sess.Player().Pending() != 0 {
		t.Fatal("interrupt must clear scheduled buffers")
	}

	conn.incoming <- &voice.ServerMessage{TurnComplete: true}
	eventually(t, func() bool { return sess.Transcript() == "" }, "turn complete did not clear transcript")
	if ts := obs.Transcripts(); ts[len(ts)-1] != "" {
		t.Fatalf("observer should see the cleared transcript, got %q", ts[len(ts)-1])
	}
}

func TestSessionUsesStoredMode(t *testing.T) {
	conn := newFakeConn()
	dialer := &fakeDialer{conn: conn}
	sess, _, _, modes := newTestSession(t, dialer)
	modes.SetMode(context.Background(), "u1", companion.ModeDark)

	_ = sess.Start(context.Background())
	defer sess.Stop()

	if len(dialer.modes) != 1 || dialer.modes[0] != companion.ModeDark {
		t.Fatalf("dial should use the stored mode, got %v", dialer.modes)
	}
}
