// Package worldgen holds deterministic world-generation helpers driven by
// the javarand generator: the slime chunk predicate, noise fields, and
// block-aligned shape masks.
package worldgen

import "github.com/jmoiron/nbtkit/javarand"

// SlimeChunk reports whether chunk (x, z) of the world with the given seed
// spawns slimes. The per-chunk seed mixes the coordinates with 32-bit
// wrapping products before widening, matching the game's arithmetic exactly.
func SlimeChunk(worldSeed int64, x, z int32) bool {
	seed := worldSeed +
		int64(x*x*0x4c1906) +
		int64(x*0x5ac0db) +
		int64(z*z)*0x4307a7 +
		int64(z*0x5f24f)
	seed ^= 0x3ad8025f
	r := javarand.NewSeed(seed)
	n, _ := r.NextIntn(10)
	return n == 0
}
