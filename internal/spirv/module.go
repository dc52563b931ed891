package spirv

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
)

// Module is a binary SPIR-V module decoded into host-order words.
type Module struct {
	Path      string
	Words     []uint32
	Header    Header
	ByteOrder binary.ByteOrder
}

// Open maps path read-only and decodes it.
func Open(path string) (*Module, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%s: %w: empty file", path, ErrStreamCorrupt)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap file: %w", err)
	}
	defer syscall.Munmap(data)

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Decode converts raw module bytes to words. The byte order is taken from
// the magic word; a stream that matches neither order is still decoded
// little-endian so the disassembler can report the mismatch.
func Decode(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrStreamCorrupt, len(data))
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: no magic word", ErrStreamCorrupt)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if binary.BigEndian.Uint32(data) == MagicNumber {
		order = binary.BigEndian
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}

	m := &Module{Words: words, ByteOrder: order}
	if h, err := ParseHeader(words); err == nil {
		m.Header = h
	}
	return m, nil
}

// Encode is the inverse of Decode for little-endian output.
func Encode(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
