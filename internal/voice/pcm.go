package voice

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
	// BlockSize is the number of mic samples per capture block.
	BlockSize = 4096

	CaptureMIME = "audio/pcm;rate=16000"
)

// EncodePCM16 converts float samples in [-1, 1] to 16-bit little-endian PCM.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		v := float64(s) * 32768
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v)))
	}
	return out
}

// DecodePCM16 converts 16-bit little-endian PCM to floats. A trailing odd byte is ignored.
func DecodePCM16(data []byte) []float32 {
	out := make([]float32, len(data)/2)
	for i := range out {
		out[i] = float32(int16(binary.LittleEndian.Uint16(data[2*i:]))) / 32768
	}
	return out
}

// DecodeFloat32LE reads the raw mic frames the browser sends.
func DecodeFloat32LE(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out
}

const (
	amplitudeGain  = 150
	amplitudeFloor = 8
)

// Amplitude is the visualiser bar height of one capture block.
func Amplitude(samples []float32) float64 {
	if len(samples) == 0 {
		return amplitudeFloor
	}
	var sum float64
	for _, s := range samples {
		sum += math.Abs(float64(s))
	}
	return math.Max(amplitudeFloor, sum/float64(len(samples))*amplitudeGain)
}

// PCMDuration is the play time of 16-bit mono PCM at rate.
func PCMDuration(data []byte, rate int) time.Duration {
	samples := len(data) / 2
	return time.Duration(samples) * time.Second / time.Duration(rate)
}
