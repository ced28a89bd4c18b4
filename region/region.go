// Package region reads the Anvil region container format (.mca files): a
// 32x32 grid of chunks stored in 4 KiB sectors behind an offset table, each
// chunk payload a gzip- or zlib-compressed NBT document.
package region

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/jmoiron/nbtkit/nbt"
)

const (
	sectorSize = 4096
	chunkCount = 1024 // 32 * 32
	headerSize = 2 * sectorSize
)

// Chunk payload compression ids.
const (
	CompressionGzip = 1
	CompressionZlib = 2
)

var (
	// ErrBadHeader is returned by Load for a malformed offset or chunk table.
	ErrBadHeader = errors.New("bad region header")

	// ErrNoChunk is returned when the requested chunk is not present.
	ErrNoChunk = errors.New("chunk not present")

	// ErrCompression is returned for an unknown chunk compression id.
	ErrCompression = errors.New("unknown compression")
)

// Region is a parsed region file held fully in memory.
type Region struct {
	data []byte

	offsets     [chunkCount]int32 // first sector of each chunk, 0 = absent
	sectors     [chunkCount]int8  // allocated sector count
	timestamps  [chunkCount]int32
	lengths     [chunkCount]int32 // payload byte length + 1
	compression [chunkCount]int8
}

// Load parses data as a region file. The chunk table is validated up front:
// every present chunk must start past the header, declare a positive length,
// carry a known compression id, and fit inside data.
func Load(data []byte) (*Region, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrBadHeader, len(data))
	}
	r := &Region{data: data}
	for c := 0; c < chunkCount; c++ {
		loc := data[4*c : 4*c+4]
		r.offsets[c] = int32(loc[0])<<16 | int32(loc[1])<<8 | int32(loc[2])
		r.sectors[c] = int8(loc[3])
		ts := data[sectorSize+4*c : sectorSize+4*c+4]
		r.timestamps[c] = int32(ts[0])<<24 | int32(ts[1])<<16 | int32(ts[2])<<8 | int32(ts[3])

		offset := int64(r.offsets[c])
		if offset == 0 {
			continue
		}
		if offset < 2 {
			return nil, fmt.Errorf("%w: chunk %d overlaps header", ErrBadHeader, c)
		}
		start := sectorSize * offset
		if start+5 > int64(len(data)) {
			return nil, fmt.Errorf("%w: chunk %d starts past end", ErrBadHeader, c)
		}
		h := data[start : start+5]
		length := int32(h[0])<<24 | int32(h[1])<<16 | int32(h[2])<<8 | int32(h[3])
		if length <= 0 {
			return nil, fmt.Errorf("%w: chunk %d length %d", ErrBadHeader, c, length)
		}
		if start+4+int64(length) > int64(len(data)) {
			return nil, fmt.Errorf("%w: chunk %d runs past end", ErrBadHeader, c)
		}
		comp := int8(h[4])
		if comp != CompressionGzip && comp != CompressionZlib {
			return nil, fmt.Errorf("%w: chunk %d id %d", ErrCompression, c, comp)
		}
		r.lengths[c] = length
		r.compression[c] = comp
	}
	return r, nil
}

func index(x, z int) int { return 32*z + x }

func checkCoords(x, z int) error {
	if x < 0 || x >= 32 || z < 0 || z >= 32 {
		return fmt.Errorf("chunk coords out of range: %d,%d", x, z)
	}
	return nil
}

// Exists reports whether chunk (x, z) is present. Coordinates are local to
// the region, in [0, 32).
func (r *Region) Exists(x, z int) bool {
	if checkCoords(x, z) != nil {
		return false
	}
	return r.offsets[index(x, z)] != 0
}

// Timestamp returns the chunk's last-modified epoch seconds, 0 if absent.
func (r *Region) Timestamp(x, z int) int32 {
	if checkCoords(x, z) != nil {
		return 0
	}
	c := index(x, z)
	if r.offsets[c] == 0 {
		return 0
	}
	return r.timestamps[c]
}

// ChunkNBT returns the decompressed NBT payload of chunk (x, z).
func (r *Region) ChunkNBT(x, z int) ([]byte, error) {
	if err := checkCoords(x, z); err != nil {
		return nil, err
	}
	c := index(x, z)
	if r.offsets[c] == 0 {
		return nil, fmt.Errorf("%w: %d,%d", ErrNoChunk, x, z)
	}
	start := sectorSize * int64(r.offsets[c])
	compressed := r.data[start+5 : start+4+int64(r.lengths[c])]

	var (
		zr  io.ReadCloser
		err error
	)
	switch r.compression[c] {
	case CompressionGzip:
		zr, err = gzip.NewReader(bytes.NewReader(compressed))
	case CompressionZlib:
		zr, err = zlib.NewReader(bytes.NewReader(compressed))
	}
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", x, z, err)
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", x, z, err)
	}
	return b, nil
}

// ChunkTag decodes chunk (x, z) into a tag tree.
func (r *Region) ChunkTag(x, z int) (nbt.Tag, error) {
	b, err := r.ChunkNBT(x, z)
	if err != nil {
		return nil, err
	}
	t, err := nbt.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", x, z, err)
	}
	return t, nil
}
