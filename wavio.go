package codec

import (
	"encoding/binary"
	"errors"
	"io"

	ga "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
)

// Common errors
var (
	ErrInvalidWAV     = errors.New("invalid WAV file")
	ErrSampleWidth    = errors.New("unsupported sample width")
	ErrBufferTooSmall = errors.New("buffer too small")
)

// WAVSource reads frame-sized chunks of 16-bit little-endian linear
// PCM from a WAV stream, the shape the encode path consumes. A partial
// final frame is zero-padded to the full frame size.
type WAVSource struct {
	dec       *wav.Decoder
	buf       *ga.IntBuffer
	frameSize int
}

// NewWAVSource creates a source delivering frames of frameSize bytes.
// Only 16-bit PCM input is supported.
func NewWAVSource(r io.ReadSeeker, frameSize int) (*WAVSource, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	if dec.BitDepth != 16 {
		return nil, ErrSampleWidth
	}
	return &WAVSource{
		dec: dec,
		buf: &ga.IntBuffer{
			Data:           make([]int, frameSize/2),
			Format:         dec.Format(),
			SourceBitDepth: 16,
		},
		frameSize: frameSize,
	}, nil
}

// SampleRate returns the stream's sample rate in Hz.
func (s *WAVSource) SampleRate() int {
	return s.buf.Format.SampleRate
}

// Channels returns the stream's channel count.
func (s *WAVSource) Channels() int {
	return s.buf.Format.NumChannels
}

// ReadFrame fills f with the next frame of samples. It returns io.EOF
// once the stream is exhausted and ErrBufferTooSmall if f cannot hold
// one full frame.
func (s *WAVSource) ReadFrame(f *Frame) error {
	if len(f.Data) < s.frameSize {
		return ErrBufferTooSmall
	}
	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return err
	}
	if n == 0 {
		return io.EOF
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(f.Data[2*i:], uint16(int16(s.buf.Data[i])))
	}
	for i := 2 * n; i < s.frameSize; i++ {
		f.Data[i] = 0
	}
	return nil
}

// WAVSink writes 16-bit little-endian linear PCM frames, the shape the
// decode path produces, into a WAV stream. Close must be called to
// finalize the WAV header.
type WAVSink struct {
	enc *wav.Encoder
	buf *ga.IntBuffer
}

// NewWAVSink creates a sink writing 16-bit PCM at the given sample
// rate and channel count.
func NewWAVSink(ws io.WriteSeeker, sampleRate, channels int) *WAVSink {
	return &WAVSink{
		enc: wav.NewEncoder(ws, sampleRate, 16, channels, 1),
		buf: &ga.IntBuffer{
			Format:         &ga.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// WriteFrame appends one frame of samples to the stream.
func (s *WAVSink) WriteFrame(f *Frame) error {
	samples := len(f.Data) / 2
	if cap(s.buf.Data) < samples {
		s.buf.Data = make([]int, samples)
	}
	s.buf.Data = s.buf.Data[:samples]
	for i := 0; i < samples; i++ {
		s.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(f.Data[2*i:])))
	}
	return s.enc.Write(s.buf)
}

// Close finalizes the WAV header. The underlying writer is left open.
func (s *WAVSink) Close() error {
	return s.enc.Close()
}
