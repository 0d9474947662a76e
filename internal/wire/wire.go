package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

const (
	// WindowSize is the number of id slots in a model input window.
	WindowSize = 10
	// SlotSize is the byte width of one int32/float32 slot.
	SlotSize = 4
	// InputSize is the fixed byte length of an encoded window.
	InputSize = WindowSize * SlotSize

	version   byte = 1
	kindEntry byte = 1
)

var (
	ErrCorrupt    = errors.New("recwindow: corrupt entry")
	ErrMisaligned = errors.New("recwindow: tensor length not a multiple of 4")
	magic4        = [...]byte{'R', 'W', 'N', 'D'}
)

// EncodeWindow writes the first WindowSize ids as little-endian int32 slots.
// Unused slots stay zero so the result is always InputSize bytes.
func EncodeWindow(ids []int32) []byte {
	buf := make([]byte, InputSize)
	n := min(len(ids), WindowSize)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[i*SlotSize:], uint32(ids[i]))
	}
	return buf
}

func EncodeInt32s(v []int32) []byte {
	buf := make([]byte, len(v)*SlotSize)
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[i*SlotSize:], uint32(x))
	}
	return buf
}

func EncodeFloat32s(v []float32) []byte {
	buf := make([]byte, len(v)*SlotSize)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*SlotSize:], math.Float32bits(f))
	}
	return buf
}

func DecodeInt32s(b []byte) ([]int32, error) {
	if len(b)%SlotSize != 0 {
		return nil, ErrMisaligned
	}
	v := make([]int32, len(b)/SlotSize)
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(b[i*SlotSize:]))
	}
	return v, nil
}

func DecodeFloat32s(b []byte) ([]float32, error) {
	if len(b)%SlotSize != 0 {
		return nil, ErrMisaligned
	}
	v := make([]float32, len(b)/SlotSize)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*SlotSize:]))
	}
	return v, nil
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=entry) | gen(u64 be) | vlen(u32 be) | payload(vlen)
func EncodeEntry(gen uint64, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 8 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], gen)
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry returns the generation and a payload slice aliasing b.
// Trailing bytes after the payload are treated as corruption.
func DecodeEntry(b []byte) (gen uint64, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 8 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return 0, nil, ErrCorrupt
	}

	off := 6
	gen = binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off {
		return 0, nil, ErrCorrupt
	}

	return gen, b[off : off+vlen], nil
}
