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

// Package transpositiontable implements the engine's hash table: a
// Stockfish-style array of small clusters, each holding a handful of
// 10-byte entries, with generation-based aging instead of a clock sweep.
package transpositiontable

import (
	"math/bits"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mkessler/ravenfish/internal/logging"
	"github.com/mkessler/ravenfish/internal/position"
	. "github.com/mkessler/ravenfish/internal/types"
)

var out = message.NewPrinter(language.German)

var log *logging.Logger

const bytesPerMb = 1024 * 1024

// TtTable is the shared hash table probed and updated by every node of the
// search. It is not safe for concurrent writers; the engine is
// single-threaded per spec, so no locking is attempted.
type TtTable struct {
	clusters   []ttCluster
	sizeInMb   int
	generation uint8

	numberOfEntries uint64
	numberOfPuts    uint64
	numberOfProbes  uint64
	numberOfHits    uint64
	numberOfUpdates uint64
	numberOfCollisions uint64
}

// NewTtTable creates a table sized to approximately sizeInMb megabytes.
func NewTtTable(sizeInMb int) *TtTable {
	log = myLogging.GetLog()
	tt := &TtTable{}
	tt.Resize(sizeInMb)
	return tt
}

// Resize reallocates the table for a new size, discarding all entries.
func (tt *TtTable) Resize(sizeInMb int) {
	if sizeInMb < 1 {
		sizeInMb = 1
	}
	numberOfClusters := (sizeInMb * bytesPerMb) / clusterSize
	if numberOfClusters < 1 {
		numberOfClusters = 1
	}
	tt.clusters = make([]ttCluster, numberOfClusters)
	tt.sizeInMb = sizeInMb
	tt.generation = 0
	tt.numberOfEntries = 0
	log.Info(out.Sprintf("Resized tt table to %d MB (%d clusters, %d entries)",
		sizeInMb, numberOfClusters, numberOfClusters*entriesPerCluster))
}

// Clear zeroes every entry without reallocating the backing array.
func (tt *TtTable) Clear() {
	for i := range tt.clusters {
		tt.clusters[i] = ttCluster{}
	}
	tt.generation = 0
	tt.numberOfEntries = 0
	tt.numberOfPuts = 0
	tt.numberOfProbes = 0
	tt.numberOfHits = 0
	tt.numberOfUpdates = 0
	tt.numberOfCollisions = 0
}

// NewSearch bumps the generation counter so entries from the previous
// search are deprioritized (but not erased) for replacement purposes.
func (tt *TtTable) NewSearch() {
	tt.generation += generationDelta
}

// clusterIndex maps a 64-bit zobrist key to a cluster using the high bits
// of a 128-bit product, the same technique the original probe uses to
// avoid a modulo and to spread keys evenly regardless of table size.
func (tt *TtTable) clusterIndex(key position.Key) uint64 {
	hi, _ := bits.Mul64(uint64(key), uint64(len(tt.clusters)))
	return hi
}

func key16Of(key position.Key) uint16 {
	return uint16(uint64(key) >> 48)
}

// Probe looks up key and returns the matching entry (nil on a miss) along
// with a pointer to the slot Save should write through - either the
// matching entry (to refresh it in place) or the weakest entry in the
// cluster (the natural eviction candidate on a miss).
func (tt *TtTable) Probe(key position.Key) (hit *TtEntry, slot *TtEntry) {
	tt.numberOfProbes++
	cluster := &tt.clusters[tt.clusterIndex(key)]
	k16 := key16Of(key)

	var weakest *TtEntry
	weakestWeight := int(^uint(0) >> 1)

	for i := range cluster.entries {
		e := &cluster.entries[i]
		if e.IsVacant() {
			if weakest == nil {
				weakest = e
			}
			continue
		}
		if e.key16 == k16 {
			tt.numberOfHits++
			// refresh generation on every hit so a move still being
			// explored never looks stale to the replacement scheme
			e.genBound8 = (e.genBound8 & ^uint8(generationMask)) | (tt.generation & generationMask)
			return e, e
		}
		w := e.replacementWeight(tt.generation)
		if w < weakestWeight {
			weakestWeight = w
			weakest = e
		}
	}
	if weakest != nil && !weakest.IsVacant() {
		tt.numberOfCollisions++
	}
	return nil, weakest
}

// Save writes a search result into slot (as returned by Probe for the same
// key). value is rescaled for mate distance relative to ply before being
// stored, so that a later probe from a different ply along a different
// path to the same position still reports a meaningful mate count after
// ValueFromTT rescales it back. eval is stored as given.
func (tt *TtTable) Save(slot *TtEntry, key position.Key, depth int, bound Bound, move Move16, value Value, eval Value, ply int, isPV bool) {
	if slot == nil {
		return
	}
	tt.numberOfPuts++
	if !slot.IsVacant() {
		tt.numberOfUpdates++
	} else {
		tt.numberOfEntries++
	}
	stored := valueToTT(value, ply)
	slot.save(key16Of(key), depth, bound, move, stored, eval, isPV, tt.generation)
}

// valueToTT rescales a mate/loss score found at ply plies from the root
// into one relative to the position itself, so it means the same thing
// however this position is later reached.
func valueToTT(v Value, ply int) Value {
	if v == ValueNA {
		return v
	}
	if v.IsWinningCheckMate() {
		return v + Value(ply)
	}
	if v.IsLosingCheckMate() {
		return v - Value(ply)
	}
	return v
}

// ValueFromTT is the inverse of valueToTT: it turns a stored, position-
// relative mate score back into one relative to ply plies from the root.
func ValueFromTT(v Value, ply int) Value {
	if v == ValueNA {
		return v
	}
	if v.IsWinningCheckMate() {
		return v - Value(ply)
	}
	if v.IsLosingCheckMate() {
		return v + Value(ply)
	}
	return v
}

// Hashfull estimates occupancy in permille as the share of the first 1000
// clusters holding at least one entry of the current generation, matching the cheap
// approximation used for the UCI "hashfull" info field.
func (tt *TtTable) Hashfull() int {
	sample := 1000
	if len(tt.clusters) < sample {
		sample = len(tt.clusters)
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		for j := range tt.clusters[i].entries {
			e := &tt.clusters[i].entries[j]
			if !e.IsVacant() && e.generation() == tt.generation&generationMask {
				used++
				break
			}
		}
	}
	return used * 1000 / sample
}

// Len returns the number of entry slots in the table (clusters * 3).
func (tt *TtTable) Len() uint64 {
	return uint64(len(tt.clusters)) * entriesPerCluster
}

// SizeInMb returns the configured size of the table.
func (tt *TtTable) SizeInMb() int {
	return tt.sizeInMb
}

func (tt *TtTable) String() string {
	return out.Sprintf(
		"tt size=%d MB entries=%d/%d probes=%d hits=%d puts=%d updates=%d collisions=%d hashfull=%d",
		tt.sizeInMb, tt.numberOfEntries, tt.Len(), tt.numberOfProbes, tt.numberOfHits,
		tt.numberOfPuts, tt.numberOfUpdates, tt.numberOfCollisions, tt.Hashfull())
}
