package worldgen

import "testing"

func TestSlimeChunkSeed42(t *testing.T) {
	// reference slime chunks for seed 42 within the 8x8 origin square
	want := map[[2]int32]bool{
		{0, 6}: true, {2, 0}: true, {2, 7}: true,
		{6, 1}: true, {6, 4}: true, {7, 5}: true,
	}
	for x := int32(0); x < 8; x++ {
		for z := int32(0); z < 8; z++ {
			got := SlimeChunk(42, x, z)
			if got != want[[2]int32{x, z}] {
				t.Fatalf("chunk %d,%d: got %v, want %v", x, z, got, !got)
			}
		}
	}
}

func TestSlimeChunkSeed0(t *testing.T) {
	for x := int32(0); x < 4; x++ {
		for z := int32(0); z < 4; z++ {
			want := x == 2 && z == 2
			if got := SlimeChunk(0, x, z); got != want {
				t.Fatalf("chunk %d,%d: got %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestSlimeChunkDeterministic(t *testing.T) {
	// negative coordinates exercise the wrapping products
	for _, c := range [][2]int32{{-1, -1}, {-100000, 100000}, {1 << 20, -(1 << 20)}} {
		a := SlimeChunk(-987654321, c[0], c[1])
		b := SlimeChunk(-987654321, c[0], c[1])
		if a != b {
			t.Fatalf("chunk %v not deterministic", c)
		}
	}
}
