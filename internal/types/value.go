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

package types

import "fmt"

// Value is a centipawn score packed into a 16-bit signed integer. The bottom of
// the range is reserved as a niche sentinel (ValueNA) so an optional score
// fits in the same 16 bits used everywhere else - the transposition table in
// particular relies on this to keep its entries small.
type Value int16

// MaxPly bounds how deep a mate score needs to express distance-to-mate.
const MaxPly = 255

const (
	// ValueZero / ValueDraw are the neutral score.
	ValueZero Value = 0
	ValueDraw Value = 0

	// ValueInf is larger than any legitimate evaluation; used as a search
	// window bound, never stored as a result.
	ValueInf Value = 32001

	// ValueNA is the reserved niche sentinel - "no value here".
	ValueNA Value = -32002

	// ValueCheckMate is the score of delivering mate on the current move.
	// Actual mate scores count down from here as mate recedes in ply.
	ValueCheckMate Value = 30000

	// ValueCheckMateThreshold is the boundary above (below, negated) which a
	// value is considered a forced mate rather than a won/lost position.
	ValueCheckMateThreshold = ValueCheckMate - MaxPly

	// ValueKnownWin is one below the mate threshold: a position that is a
	// provable win (e.g. by tablebase) but not a forced mate in the window.
	ValueKnownWin = ValueCheckMateThreshold - 1

	// ValueKnownWinThreshold is the boundary for "known win" scores.
	ValueKnownWinThreshold = ValueKnownWin - MaxPly

	// ValueMax / ValueMin retained for callers that want a finite saturation
	// bound distinct from ValueInf (e.g. aspiration window seeding).
	ValueMax Value = ValueCheckMate
	ValueMin Value = -ValueCheckMate
)

// MateIn returns the score for delivering checkmate in `ply` plies from the
// current node (ply counted from root, i.e. higher ply = score recedes).
func MateIn(ply int) Value {
	return ValueCheckMate - Value(ply)
}

// MatedIn returns the score for being checkmated in `ply` plies.
func MatedIn(ply int) Value {
	return -ValueCheckMate + Value(ply)
}

// KnownWinIn returns the score for a known, non-mate forced win at `ply`.
func KnownWinIn(ply int) Value {
	return ValueKnownWin - Value(ply)
}

// KnownLossIn returns the score for a known, non-mate forced loss at `ply`.
func KnownLossIn(ply int) Value {
	return -ValueKnownWin + Value(ply)
}

// IsValid reports whether v is inside the representable, non-sentinel range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsCheckMateValue reports whether |v| denotes a forced mate of either side.
func (v Value) IsCheckMateValue() bool {
	return v >= ValueCheckMateThreshold || v <= -ValueCheckMateThreshold
}

// IsWinningCheckMate reports a mate score in this side's favor.
func (v Value) IsWinningCheckMate() bool {
	return v >= ValueCheckMateThreshold
}

// IsLosingCheckMate reports a mate score against this side.
func (v Value) IsLosingCheckMate() bool {
	return v <= -ValueCheckMateThreshold
}

// IsKnownWin reports a forced, non-mate win (e.g. tablebase win).
func (v Value) IsKnownWin() bool {
	return v >= ValueKnownWinThreshold && v < ValueCheckMateThreshold
}

// IsKnownLoss reports a forced, non-mate loss.
func (v Value) IsKnownLoss() bool {
	return v <= -ValueKnownWinThreshold && v > -ValueCheckMateThreshold
}

// MateDepth returns the signed number of full moves to mate from the
// current side's point of view (positive = this side mates, negative =
// this side gets mated), or 0 if v is not a mate score.
func (v Value) MateDepth() int {
	if !v.IsCheckMateValue() {
		return 0
	}
	if v > 0 {
		return (int(ValueCheckMate-v) + 1) / 2
	}
	return -((int(ValueCheckMate+v) + 1) / 2)
}

// Neg returns -v, saturating instead of overflowing on the one value that
// cannot be negated in range (ValueNA has no valid counterpart).
func (v Value) Neg() Value {
	if v == ValueNA {
		return ValueNA
	}
	return -v
}

func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	if v.IsCheckMateValue() {
		return fmt.Sprintf("mate %d", v.MateDepth())
	}
	return fmt.Sprintf("cp %d", int(v))
}
