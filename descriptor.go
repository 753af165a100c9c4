package codec

import "time"

// FrameTime is the codec frame time base. Frame-size math in this
// package assumes one frame carries FrameTime worth of audio.
const FrameTime = 10 * time.Millisecond

// DynamicPayloadTypeStart is the first dynamic RTP payload type.
// Payload types below it have well-known static assignments.
const DynamicPayloadTypeStart = 96

// Attributes holds the static, per-type properties of a codec. One
// Attributes value per codec type, immutable, shared by all instances.
type Attributes struct {
	Name          string   // encoding name, e.g. "PCMU"
	BitsPerSample int      // bits per raw sample
	ClockRates    []uint32 // supported clock rates in Hz
}

// Supports reports whether the codec type supports the given clock rate.
func (a *Attributes) Supports(rate uint32) bool {
	for _, r := range a.ClockRates {
		if r == rate {
			return true
		}
	}
	return false
}

// Descriptor describes one concrete codec format: the shape a session
// negotiates. The codec core treats descriptors as opaque values; only
// a codec type's MatchFormats interprets them in full.
type Descriptor struct {
	PayloadType uint8             // RTP payload type
	Name        string            // encoding name
	ClockRate   uint32            // clock rate in Hz
	Channels    int               // number of channels
	Params      map[string]string // fmtp-style format parameters
}

// IsStatic reports whether the descriptor carries a static payload-type
// assignment.
func (d *Descriptor) IsStatic() bool {
	return d.PayloadType < DynamicPayloadTypeStart
}

// SamplesPerFrame returns the number of samples, across all channels,
// in one FrameTime frame of this format.
func (d *Descriptor) SamplesPerFrame() int {
	return int(d.ClockRate) * frameTimeMs / 1000 * d.Channels
}

// LinearFrameSize returns the byte size of one FrameTime frame of raw
// audio in this format at the given sample width.
func (d *Descriptor) LinearFrameSize(bitsPerSample int) int {
	return d.SamplesPerFrame() * bitsPerSample / 8
}

const frameTimeMs = int(FrameTime / time.Millisecond)
