// Core frame value type used across the codec package.
package codec

// Frame is one codec-native unit of audio: a payload buffer whose
// length is the frame size. The buffer is caller-owned; callers
// provision it with the codec's frame size (for compressed frames) or
// linear frame size (for raw PCM) before handing it to per-frame
// operations. Operations never write past len(Data).
type Frame struct {
	Data []byte
}

// NewFrame returns a frame backed by a fresh buffer of size bytes.
func NewFrame(size int) *Frame {
	return &Frame{Data: make([]byte, size)}
}

// Size returns the frame size in bytes.
func (f *Frame) Size() int {
	return len(f.Data)
}

// Clone creates a deep copy of the frame.
// Use this when frame data must outlive the buffer it was extracted into.
func (f *Frame) Clone() *Frame {
	clone := &Frame{}
	if f.Data != nil {
		clone.Data = make([]byte, len(f.Data))
		copy(clone.Data, f.Data)
	}
	return clone
}
