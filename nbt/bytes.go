package nbt

import (
	"encoding/binary"
	"math"
)

// Big-endian primitives shared by the decoder and encoder. Bounds are the
// caller's responsibility; the decoder checks lengths before reading.

func readI16(p []byte) int16 { return int16(binary.BigEndian.Uint16(p)) }
func readI32(p []byte) int32 { return int32(binary.BigEndian.Uint32(p)) }
func readI64(p []byte) int64 { return int64(binary.BigEndian.Uint64(p)) }

func readF32(p []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(p)) }
func readF64(p []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(p)) }

func writeI16(p []byte, n int16) { binary.BigEndian.PutUint16(p, uint16(n)) }
func writeI32(p []byte, n int32) { binary.BigEndian.PutUint32(p, uint32(n)) }
func writeI64(p []byte, n int64) { binary.BigEndian.PutUint64(p, uint64(n)) }

func writeF32(p []byte, x float32) { binary.BigEndian.PutUint32(p, math.Float32bits(x)) }
func writeF64(p []byte, x float64) { binary.BigEndian.PutUint64(p, math.Float64bits(x)) }
