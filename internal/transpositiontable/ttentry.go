//
// Ravenfish - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 the Ravenfish contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	. "github.com/mkessler/ravenfish/internal/types"
)

const (
	// depthOffset shifts a signed search depth (which can be slightly
	// negative inside quiescence/extensions) into the unsigned depth8 field
	// so that zero is unambiguously "vacant".
	depthOffset = 8

	// entriesPerCluster entries share one cache-line sized cluster.
	entriesPerCluster = 3

	generationDelta = 0b0000_1000
	generationCycle = 0xFF + generationDelta
	generationMask  = 0b1111_1000
	pvBit           = 0b0000_0100
	boundMask       = 0b0000_0011
)

// TtEntry is one 10-byte slot of a cluster: a partial zobrist key, an
// offset-encoded depth, a packed generation/pv/bound byte, a packed move,
// the search value and the static eval - exactly the fields spec.md's data
// model names for a cluster entry.
type TtEntry struct {
	key16     uint16
	depth8    uint8
	genBound8 uint8
	move16    Move16
	value     int16
	eval      int16
}

// TtEntrySize is the logical size in bytes of one entry (2+1+1+2+2+2).
const TtEntrySize = 10

// ttCluster holds three entries plus two bytes of padding, for a 32-byte
// cache-line-friendly cluster as spec.md's data model targets.
type ttCluster struct {
	entries [entriesPerCluster]TtEntry
	_       [2]byte
}

// clusterSize is the logical size in bytes of one cluster.
const clusterSize = entriesPerCluster*TtEntrySize + 2

// IsVacant reports an entry that has never been written (or was cleared).
func (e *TtEntry) IsVacant() bool {
	return e.depth8 == 0
}

// Key16 returns the stored partial zobrist key.
func (e *TtEntry) Key16() uint16 {
	return e.key16
}

// Depth returns the decoded search depth this entry was stored at.
func (e *TtEntry) Depth() int {
	return int(e.depth8) - depthOffset
}

// Move returns the packed hash move, or Move16None if none was stored.
func (e *TtEntry) Move() Move16 {
	return e.move16
}

// Value returns the stored search value (already mate-rescaled relative to
// the position it was stored from; callers rescale relative to their ply).
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the stored static evaluation, or ValueNA if none was stored.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Bound returns the bound type of the stored value.
func (e *TtEntry) Bound() Bound {
	return Bound(e.genBound8 & boundMask)
}

// IsPV reports whether this entry was written by a PV node.
func (e *TtEntry) IsPV() bool {
	return e.genBound8&pvBit != 0
}

func (e *TtEntry) generation() uint8 {
	return e.genBound8 & generationMask
}

// relativeAge returns how many generations old this entry is relative to
// currentGeneration, using a cyclic distance so the 5-bit counter wrapping
// around does not make old entries look young again.
func (e *TtEntry) relativeAge(currentGeneration uint8) uint8 {
	return uint8((uint16(generationCycle) + uint16(currentGeneration) - uint16(e.generation())) & generationMask)
}

// replacementWeight is the key used to pick an eviction candidate on a
// cluster probe miss: depth plus relative age, so shallower entries and
// entries of the current generation sort first.
func (e *TtEntry) replacementWeight(currentGeneration uint8) int {
	return int(e.depth8) + int(e.relativeAge(currentGeneration))
}

// save writes (depth, bound, move, value, eval, pv) into this entry,
// following spec.md §4.2's overwrite contract: always accept an exact
// result, a different position (new key always wins the slot it was
// routed to), a depth (plus 2 for a PV node) greater than the stored depth
// minus 4, or anything from an older generation. A supplied move overwrites the
// stored one; an absent move for the same key preserves the one already
// there, since a shallower re-probe of the same position has no better
// hash move to offer.
func (e *TtEntry) save(key16 uint16, depth int, bound Bound, move Move16, value Value, eval Value, isPV bool, currentGeneration uint8) {
	if move == Move16None && key16 == e.key16 {
		move = e.move16
	}

	depth8 := uint8(clampDepth8(depth + depthOffset))

	pvBonus := 0
	if isPV {
		pvBonus = 2
	}

	shouldReplace := bound == BoundExact ||
		key16 != e.key16 ||
		int(depth8)+pvBonus > int(e.depth8)-4 ||
		e.relativeAge(currentGeneration) > 0

	if !shouldReplace {
		return
	}

	e.key16 = key16
	e.depth8 = depth8
	e.move16 = move
	e.value = int16(value)
	e.eval = int16(eval)
	genBound := currentGeneration & generationMask
	if isPV {
		genBound |= pvBit
	}
	genBound |= uint8(bound) & boundMask
	e.genBound8 = genBound
}

func clampDepth8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
