/*
 * Ravenfish - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 the Ravenfish contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/mkessler/ravenfish/internal/position"
	. "github.com/mkessler/ravenfish/internal/types"
)

// StackState is the per-ply scratch record a search keeps while it
// recurses: the static evaluation at this ply, the two killer-move slots,
// the halfmove clock and Zobrist hash of the position at this ply, and
// whether the move that led here was a null move. One stack is owned by
// the Search and reused across iterations. The search writes Eval and the
// killers at its own ply and WasNullMove of the next ply before descending;
// nothing restores an entry on the way back. HalfmoveClock and ZobristKey
// are not written by the search.
type StackState struct {
	Eval          Value
	Killers       [2]Move
	HalfmoveClock int
	ZobristKey    position.Key
	WasNullMove   bool
}

// newStackStates allocates a per-search stack of MaxDepth+1 ply records.
func newStackStates() []StackState {
	return make([]StackState, MaxDepth+1)
}

// updateKillers records mv as the most recent cutoff-causing quiet move at
// this ply, keeping the two slots de-duplicated: mv moves into slot 0 and
// the previous slot 0 shifts to slot 1, unless mv is already slot 0.
func (ss *StackState) updateKillers(mv Move) {
	if mv == MoveNone || mv == ss.Killers[0] {
		return
	}
	ss.Killers[1] = ss.Killers[0]
	ss.Killers[0] = mv
}
