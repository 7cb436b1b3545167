package voice_test

import (
	"math"
	"testing"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/voice"
)

func TestPCM16RoundTrip(t *testing.T) {
	in := []float32{0, 0.5, -0.5, 0.25, -1, 0.999}
	out := voice.DecodePCM16(voice.EncodePCM16(in))

	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > 1.0/32768 {
			t.Errorf("sample %d: got %f want %f", i, out[i], in[i])
		}
	}
}

func TestEncodePCM16Clamps(t *testing.T) {
	enc := voice.EncodePCM16([]float32{1, -2, 3})
	dec := voice.DecodePCM16(enc)
	if dec[0] != float32(math.MaxInt16)/32768 || dec[2] != float32(math.MaxInt16)/32768 {
		t.Fatalf("positive overflow must clamp, got %v", dec)
	}
	if dec[1] != -1 {
		t.Fatalf("negative overflow must clamp to -1, got %f", dec[1])
	}
}

func TestAmplitude(t *testing.T) {
	if got := voice.Amplitude(make([]float32, 4096)); got != 8 {
		t.Fatalf("silence should floor at 8, got %f", got)
	}
	loud := []float32{0.2, -0.2, 0.2, -0.2}
	if got := voice.Amplitude(loud); math.Abs(got-30) > 1e-6 {
		t.Fatalf("expected 30, got %f", got)
	}
}

func TestPCMDuration(t *testing.T) {
	oneSecond := make([]byte, 2*voice.OutputSampleRate)
	if got := voice.PCMDuration(oneSecond, voice.OutputSampleRate); got != time.Second {
		t.Fatalf("expected 1s, got %s", got)
	}
}

func TestAmplitudeHistory(t *testing.T) {
	h := voice.NewAmplitudeHistory()
	bars := h.Bars()
	if len(bars) != 30 || bars[0] != 5 || bars[29] != 5 {
		t.Fatalf("unexpected initial bars %v", bars)
	}

	bars = h.Push(42)
	if len(bars) != 30 || bars[29] != 42 || bars[28] != 5 {
		t.Fatalf("push should append at the end: %v", bars)
	}

	h.Reset()
	if h.Bars()[29] != 5 {
		t.Fatal("reset should restore initial bars")
	}
}
