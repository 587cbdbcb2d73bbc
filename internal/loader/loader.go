// Package loader reads a flat file of big-endian 32-bit words into the
// initial program image the engine is constructed from. It is an external
// collaborator to the core: the engine itself only ever consumes a []uint32.
package loader

import (
	"encoding/binary"
	"io"
)

// Load reads r fully and returns its contents as a sequence of big-endian
// uint32s. The byte length need not be a multiple of four: a trailing 1-3
// bytes are silently dropped, per the program file format. An empty input
// yields an empty, zero-length program.
func Load(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	n := len(raw) / 4
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return words, nil
}
