// Package codec defines a pluggable audio-codec contract for media
// pipelines: a uniform way to encode, decode, and navigate compressed
// frames without knowing the concrete codec.
//
// Key pieces include:
//   - Capabilities and the optional capability interfaces a codec type
//     may implement (open/close per direction, encode, decode, dissect,
//     fill)
//   - Codec, the per-session instance binding shared codec behavior to
//     private encoder/decoder state
//   - Default dissect (fixed-stride frame extraction) and default fill
//     (all-zero silence) for codecs that do not supply their own
//   - Attributes and Descriptor value types used by negotiation code
//   - RTP payload helpers (Packetizer, DissectPayload) and WAV
//     source/sink adapters for linear PCM
//
// # Architecture
//
//	Encode: WAVSource -> Codec.Encode -> Packetizer -> transport
//	Decode: transport -> DissectPayload -> Codec.Decode -> WAVSink
//	Loss:   Codec.Fill synthesizes silence frames for concealment
//
// A codec type registers one immutable Capabilities value. Sessions
// derive per-session instances from a template with Clone, open the
// encoder and/or decoder side they need, run per-frame calls, and close
// what they opened. Operations a codec does not implement fall back to
// a documented default, except encode/decode which are no-op successes.
//
// # Concurrency
//
// A Codec instance is not safe for concurrent per-frame calls; the
// encoder and decoder state is mutated in place. Capabilities,
// Attributes, and Descriptors are immutable after construction and may
// be shared freely across instances and goroutines.
package codec
