package codec

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	ga "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
)

func writeTestWAV(t *testing.T, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	buf := &ga.IntBuffer{
		Data:           samples,
		Format:         &ga.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWAVSource(t *testing.T) {
	// 200 samples at a 160-byte (80-sample) frame: two full frames and
	// a zero-padded partial.
	samples := make([]int, 200)
	for i := range samples {
		samples[i] = i - 100
	}
	path := writeTestWAV(t, samples)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := NewWAVSource(f, 160)
	if err != nil {
		t.Fatalf("NewWAVSource failed: %v", err)
	}
	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Fatalf("format = %d Hz / %d ch, want 8000 Hz / 1 ch", src.SampleRate(), src.Channels())
	}

	var got []int
	frames := 0
	for {
		frame := NewFrame(160)
		err := src.ReadFrame(frame)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrame failed: %v", err)
		}
		frames++
		for i := 0; i < len(frame.Data); i += 2 {
			got = append(got, int(int16(binary.LittleEndian.Uint16(frame.Data[i:]))))
		}
	}

	if frames != 3 {
		t.Fatalf("frames = %d, want 3", frames)
	}
	for i, s := range samples {
		if got[i] != s {
			t.Fatalf("sample %d = %d, want %d", i, got[i], s)
		}
	}
	for i := len(samples); i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("padding sample %d = %d, want 0", i, got[i])
		}
	}
}

func TestWAVSource_ShortFrameBuffer(t *testing.T) {
	path := writeTestWAV(t, make([]int, 80))

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := NewWAVSource(f, 160)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.ReadFrame(NewFrame(100)); err != ErrBufferTooSmall {
		t.Errorf("ReadFrame with short buffer = %v, want ErrBufferTooSmall", err)
	}
}

func TestWAVSink_RoundTrip(t *testing.T) {
	samples := make([]int, 80)
	for i := range samples {
		samples[i] = (i - 40) * 100
	}
	srcPath := writeTestWAV(t, samples)

	in, err := os.Open(srcPath)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	src, err := NewWAVSource(in, 160)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "out.wav")
	out, err := os.Create(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	sink := NewWAVSink(out, 8000, 1)
	for {
		frame := NewFrame(160)
		err := src.ReadFrame(frame)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if err := sink.WriteFrame(frame); err != nil {
			t.Fatal(err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	check, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer check.Close()

	again, err := NewWAVSource(check, 160)
	if err != nil {
		t.Fatalf("round-tripped file rejected: %v", err)
	}
	frame := NewFrame(160)
	if err := again.ReadFrame(frame); err != nil {
		t.Fatal(err)
	}
	for i := range samples {
		got := int(int16(binary.LittleEndian.Uint16(frame.Data[2*i:])))
		if got != samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestNewWAVSource_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := NewWAVSource(f, 160); err != ErrInvalidWAV {
		t.Errorf("NewWAVSource on garbage = %v, want ErrInvalidWAV", err)
	}
}
