package codec

// Capabilities is the one behavior every codec type must supply: a
// format-compatibility predicate used during negotiation. A single
// Capabilities value describes a codec type and is shared, immutable,
// by every instance of that type.
//
// A codec type opts into further behavior by additionally implementing
// any of the optional capability interfaces below. The optional set is
// inspected once, when an instance is created; implementing an
// interface after that point has no effect on existing instances.
type Capabilities interface {
	// MatchFormats reports whether two format descriptors are
	// equivalent for this codec's purposes (sample rate, channels,
	// codec-specific parameters). It must be pure: no side effects,
	// and in practice symmetric in its arguments.
	MatchFormats(a, b *Descriptor) bool
}

// EncoderOpener is implemented by codec types whose encoder needs
// per-instance setup. OpenEncoder allocates whatever encoder state the
// codec needs and stores it on the instance via SetEncoderState. On
// failure it returns false; any partially-allocated state is the
// codec's own responsibility, the dispatcher performs no rollback.
type EncoderOpener interface {
	OpenEncoder(c *Codec) bool
}

// EncoderCloser is implemented by codec types whose encoder holds
// state to release. CloseEncoder must release the state its open
// allocated and leave the instance's encoder state absent. It must be
// safe to call without a prior successful open.
type EncoderCloser interface {
	CloseEncoder(c *Codec) bool
}

// DecoderOpener mirrors EncoderOpener for the decode direction.
type DecoderOpener interface {
	OpenDecoder(c *Codec) bool
}

// DecoderCloser mirrors EncoderCloser for the decode direction.
type DecoderCloser interface {
	CloseDecoder(c *Codec) bool
}

// Encoder is implemented by codec types that can encode. Encode
// transforms one raw frame into one compressed frame, writing into
// out.Data and returning false if the input is rejected.
//
// There is no default encode: a codec type that does not implement
// Encoder is decode-only, and Codec.Encode is a no-op success that
// leaves out untouched.
type Encoder interface {
	Encode(c *Codec, in, out *Frame) bool
}

// Decoder is the decode-direction counterpart of Encoder, with the
// same no-op contract when absent.
type Decoder interface {
	Decode(c *Codec, in, out *Frame) bool
}

// Dissector is implemented by codec types whose frame boundaries are
// not at a fixed byte stride (the frame size is implicit in the
// bitstream, as with G.729 or G.723). Dissect extracts the next frame
// from buf into frame and returns the remaining bytes. Codec types
// with a fixed frame size should not implement Dissector; the default
// fixed-stride dissector applies.
type Dissector interface {
	Dissect(c *Codec, buf []byte, frame *Frame) (rest []byte, ok bool)
}

// Filler is implemented by codec types for which silence is not
// all-zero bytes (compressed formats with a dedicated silence
// codeword). Fill writes one frame of silence into out.Data.
type Filler interface {
	Fill(c *Codec, out *Frame) bool
}

// ops caches the result of the optional-interface inspection so the
// per-frame paths dispatch without repeated type assertions. One ops
// value per codec type, shared by clones.
type ops struct {
	openEncoder  EncoderOpener
	closeEncoder EncoderCloser
	openDecoder  DecoderOpener
	closeDecoder DecoderCloser
	encoder      Encoder
	decoder      Decoder
	dissector    Dissector
	filler       Filler
}

func resolveOps(caps Capabilities) ops {
	var o ops
	o.openEncoder, _ = caps.(EncoderOpener)
	o.closeEncoder, _ = caps.(EncoderCloser)
	o.openDecoder, _ = caps.(DecoderOpener)
	o.closeDecoder, _ = caps.(DecoderCloser)
	o.encoder, _ = caps.(Encoder)
	o.decoder, _ = caps.(Decoder)
	o.dissector, _ = caps.(Dissector)
	o.filler, _ = caps.(Filler)
	return o
}
