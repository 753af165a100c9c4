package codec

// Codec is a per-session codec instance. It binds the shared, immutable
// description of a codec type (capabilities, attributes, optional
// static descriptor) to private per-direction state owned by this
// instance alone.
//
// The zero value is not usable; construct instances with New or Clone.
type Codec struct {
	caps   Capabilities
	ops    ops
	attrs  *Attributes
	static *Descriptor

	encoderState any
	decoderState any
}

// New creates a codec instance of the type described by caps and
// attrs. static is the codec's static format descriptor for codecs
// with a well-known payload-type assignment (payload type below 96),
// nil otherwise. Encoder and decoder state start absent.
func New(caps Capabilities, attrs *Attributes, static *Descriptor) *Codec {
	return &Codec{
		caps:   caps,
		ops:    resolveOps(caps),
		attrs:  attrs,
		static: static,
	}
}

// Clone derives a fresh instance of the same codec type, typically a
// per-session instance from a registered template. The clone shares
// capabilities, attributes, and the static descriptor with its source
// and starts with absent encoder/decoder state regardless of whether
// the source's sides are open. Clone is not a state copy.
func (c *Codec) Clone() *Codec {
	return &Codec{
		caps:   c.caps,
		ops:    c.ops,
		attrs:  c.attrs,
		static: c.static,
	}
}

// Capabilities returns the shared capability table of this codec type.
func (c *Codec) Capabilities() Capabilities {
	return c.caps
}

// Attributes returns the shared static attributes of this codec type.
func (c *Codec) Attributes() *Attributes {
	return c.attrs
}

// StaticDescriptor returns the codec's static format descriptor, or
// nil for codecs without a well-known payload-type assignment.
func (c *Codec) StaticDescriptor() *Descriptor {
	return c.static
}

// EncoderState returns the opaque encoder state stored by the codec's
// OpenEncoder, or nil if the encoder side is not open.
func (c *Codec) EncoderState() any {
	return c.encoderState
}

// SetEncoderState stores opaque encoder state on the instance. For use
// by concrete codec implementations from their open/close slots.
func (c *Codec) SetEncoderState(state any) {
	c.encoderState = state
}

// DecoderState returns the opaque decoder state stored by the codec's
// OpenDecoder, or nil if the decoder side is not open.
func (c *Codec) DecoderState() any {
	return c.decoderState
}

// SetDecoderState stores opaque decoder state on the instance.
func (c *Codec) SetDecoderState(state any) {
	c.decoderState = state
}

// OpenEncoder prepares the encode direction. Codec types without
// encoder setup succeed trivially.
func (c *Codec) OpenEncoder() bool {
	if c.ops.openEncoder != nil {
		return c.ops.openEncoder.OpenEncoder(c)
	}
	return true
}

// CloseEncoder releases the encode direction. Safe to call without a
// prior successful OpenEncoder.
func (c *Codec) CloseEncoder() bool {
	if c.ops.closeEncoder != nil {
		return c.ops.closeEncoder.CloseEncoder(c)
	}
	return true
}

// OpenDecoder prepares the decode direction. Codec types without
// decoder setup succeed trivially.
func (c *Codec) OpenDecoder() bool {
	if c.ops.openDecoder != nil {
		return c.ops.openDecoder.OpenDecoder(c)
	}
	return true
}

// CloseDecoder releases the decode direction. Safe to call without a
// prior successful OpenDecoder.
func (c *Codec) CloseDecoder() bool {
	if c.ops.closeDecoder != nil {
		return c.ops.closeDecoder.CloseDecoder(c)
	}
	return true
}

// Encode transforms one raw frame into one compressed frame. If the
// codec type does not encode, Encode reports success without touching
// out; callers must not assume out is populated.
func (c *Codec) Encode(in, out *Frame) bool {
	if c.ops.encoder != nil {
		return c.ops.encoder.Encode(c, in, out)
	}
	return true
}

// Decode transforms one compressed frame into one raw frame, with the
// same no-op contract as Encode when the codec type does not decode.
func (c *Codec) Decode(in, out *Frame) bool {
	if c.ops.decoder != nil {
		return c.ops.decoder.Decode(c, in, out)
	}
	return true
}

// Dissect extracts the next frame from buf into frame and returns the
// remaining bytes. Driving Dissect in a loop until ok is false or rest
// is empty demultiplexes a buffer that batches several frames.
//
// Codec types with bitstream-implicit frame sizes supply their own
// dissector. The default applies to fixed-frame-size codecs: it copies
// exactly len(frame.Data) bytes and advances past them. It fails,
// leaving frame untouched and rest equal to buf, when frame.Data is
// empty or buf holds fewer bytes than one full frame.
func (c *Codec) Dissect(buf []byte, frame *Frame) (rest []byte, ok bool) {
	if c.ops.dissector != nil {
		// custom dissector for codecs like G.729, G.723
		return c.ops.dissector.Dissect(c, buf, frame)
	}
	n := len(frame.Data)
	if n == 0 || len(buf) < n {
		return buf, false
	}
	copy(frame.Data, buf[:n])
	return buf[n:], true
}

// Fill writes one frame of silence into out. The default, for codecs
// where silence is plain zero samples, zeroes out.Data and always
// succeeds. Codec types with a dedicated silence codeword supply their
// own filler.
func (c *Codec) Fill(out *Frame) bool {
	if c.ops.filler != nil {
		return c.ops.filler.Fill(c, out)
	}
	for i := range out.Data {
		out.Data[i] = 0
	}
	return true
}

// MatchFormats reports whether two descriptors are equivalent for this
// codec type. It delegates to the capability table's predicate.
func (c *Codec) MatchFormats(a, b *Descriptor) bool {
	return c.caps.MatchFormats(a, b)
}
