// SPDX-License-Identifier: MIT

package fixture

import "time"

// splitmix64 finalizer constants.
const (
	mixGamma = 0x9e3779b97f4a7c15
	mixMul1  = 0xbf58476d1ce4e5b9
	mixMul2  = 0x94d049bb133111eb
)

// mix64 is the splitmix64 output function: a bijective avalanche on 64 bits.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * mixMul1
	x = (x ^ (x >> 27)) * mixMul2

	return x ^ (x >> 31)
}

// CellSeed derives the RNG seed of one grid cell from the run's base seed.
// With pinned set the scalar exponent is ignored, so every cell of a
// size-exponent row replays the same draw and differs only by its scale.
func CellSeed(base int64, sizeExp, scalarExp int, pinned bool) int64 {
	if pinned {
		scalarExp = -1
	}
	x := mix64(uint64(base) + mixGamma)
	x = mix64(x + uint64(sizeExp+1)*mixGamma)
	x = mix64(x + uint64(scalarExp+2)*mixGamma)

	return int64(x >> 1) // non-negative
}

// resolveSeed returns base, or a clock-derived non-zero seed when base is 0.
func resolveSeed(base int64) int64 {
	if base != 0 {
		return base
	}
	if s := int64(mix64(uint64(time.Now().UnixNano())) >> 1); s != 0 {
		return s
	}

	return 1
}
