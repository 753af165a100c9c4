package codec

import (
	"sync"

	"github.com/pion/rtp"
)

// Re-export pion/rtp types for convenience
type (
	// RTPPacket is an alias to pion's rtp.Packet
	RTPPacket = rtp.Packet

	// RTPHeader is an alias to pion's rtp.Header
	RTPHeader = rtp.Header
)

// Static payload-type assignments (RFC 3551) for the codecs this
// package computes descriptors for. G.722's clock rate is 8000 in RTP
// even though it samples at 16 kHz.
var staticDescriptors = map[uint8]Descriptor{
	0:  {PayloadType: 0, Name: "PCMU", ClockRate: 8000, Channels: 1},
	3:  {PayloadType: 3, Name: "GSM", ClockRate: 8000, Channels: 1},
	4:  {PayloadType: 4, Name: "G723", ClockRate: 8000, Channels: 1},
	8:  {PayloadType: 8, Name: "PCMA", ClockRate: 8000, Channels: 1},
	9:  {PayloadType: 9, Name: "G722", ClockRate: 8000, Channels: 1},
	10: {PayloadType: 10, Name: "L16", ClockRate: 44100, Channels: 2},
	11: {PayloadType: 11, Name: "L16", ClockRate: 44100, Channels: 1},
	18: {PayloadType: 18, Name: "G729", ClockRate: 8000, Channels: 1},
}

// StaticDescriptor returns the descriptor for a static payload type.
// The returned descriptor is a copy; callers may adjust it.
func StaticDescriptor(pt uint8) (*Descriptor, bool) {
	d, ok := staticDescriptors[pt]
	if !ok {
		return nil, false
	}
	return &d, true
}

// Packetizer batches codec frames into RTP packets, the transport-side
// inverse of frame dissection. One packet carries the concatenation of
// the frames handed to a single Packetize call; the RTP timestamp
// advances by one FrameTime worth of clock ticks per frame.
type Packetizer struct {
	ssrc      uint32
	desc      *Descriptor
	sequencer rtp.Sequencer
	timestamp uint32
	mu        sync.Mutex
}

// NewPacketizer creates a packetizer for the given stream SSRC and
// negotiated format.
func NewPacketizer(ssrc uint32, desc *Descriptor) *Packetizer {
	return &Packetizer{
		ssrc:      ssrc,
		desc:      desc,
		sequencer: rtp.NewRandomSequencer(),
	}
}

// Packetize builds one RTP packet carrying the given frames in order.
// It returns nil when frames is empty. marker is set on the packet
// header; audio senders typically set it on the first packet of a
// talkspurt.
func (p *Packetizer) Packetize(frames []*Frame, marker bool) *RTPPacket {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(frames) == 0 {
		return nil
	}

	total := 0
	for _, f := range frames {
		total += len(f.Data)
	}
	payload := make([]byte, 0, total)
	for _, f := range frames {
		payload = append(payload, f.Data...)
	}

	pkt := &RTPPacket{
		Header: rtp.Header{
			Version:        2,
			Marker:         marker,
			PayloadType:    p.desc.PayloadType,
			SequenceNumber: p.sequencer.NextSequenceNumber(),
			Timestamp:      p.timestamp,
			SSRC:           p.ssrc,
		},
		Payload: payload,
	}

	// Timestamp ticks count samples per channel.
	ticksPerFrame := uint32(int(p.desc.ClockRate) * frameTimeMs / 1000)
	p.timestamp += ticksPerFrame * uint32(len(frames))
	return pkt
}

// DissectPayload demultiplexes an RTP payload that batches several
// codec frames, driving the codec's dissector until the payload is
// exhausted. frameSize is the buffer size provisioned per frame: the
// codec's frame size for fixed-stride codecs, the maximum frame size
// for codecs with a custom dissector.
//
// On a dissect failure mid-payload (trailing bytes shorter than one
// frame, or a malformed bitstream) the frames extracted so far are
// returned together with ok == false.
func DissectPayload(c *Codec, pkt *RTPPacket, frameSize int) (frames []*Frame, ok bool) {
	rest := pkt.Payload
	for len(rest) > 0 {
		f := NewFrame(frameSize)
		rest, ok = c.Dissect(rest, f)
		if !ok {
			return frames, false
		}
		frames = append(frames, f)
	}
	return frames, true
}
