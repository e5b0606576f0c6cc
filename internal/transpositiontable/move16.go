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

// Move16 is the 16-bit packed form of a move stored in a tt entry: 6 bits
// destination, 6 bits source, 3 bits promotion piece. The promotion field
// uses a permuted mapping (none=0, queen=1, bishop=2, rook=3, knight=4) so
// that a packed move is never the all-zero bit pattern, which is reserved
// to mean "no move" in an entry.
type Move16 uint16

// Move16None is the "no move" sentinel - an all-zero bit pattern.
const Move16None Move16 = 0

const (
	move16ToMask    = 0x3F
	move16FromShift = 6
	move16FromMask  = 0x3F << move16FromShift
	move16PromShift = 12
)

// promotion piece permutation - chosen so it never collides with the
// "none" value of zero and is densely packed into 3 bits.
func promoToBits(pt PieceType) uint16 {
	switch pt {
	case Queen:
		return 1
	case Bishop:
		return 2
	case Rook:
		return 3
	case Knight:
		return 4
	default:
		return 0
	}
}

func bitsToPromo(b uint16) PieceType {
	switch b {
	case 1:
		return Queen
	case 2:
		return Bishop
	case 3:
		return Rook
	case 4:
		return Knight
	default:
		return PtNone
	}
}

// PackMove16 converts an engine Move into its compact tt representation.
// MoveNone packs to Move16None.
func PackMove16(m Move) Move16 {
	if m == MoveNone {
		return Move16None
	}
	var prom uint16
	if m.MoveType() == Promotion {
		prom = promoToBits(m.PromotionType())
	}
	return Move16(uint16(m.To()) | uint16(m.From())<<move16FromShift | prom<<move16PromShift)
}

// Unpack reconstructs a from/to/promotion triple from a Move16. The move
// type (normal/promotion/en passant/castling) cannot be recovered from the
// packed form alone - callers reconcile the unpacked (from, to, promotion)
// against the position's pseudo-legal moves to find the matching Move,
// exactly as the rest of the move ordering pipeline already must do for a
// hash move pulled from an earlier, different search path.
func (m16 Move16) Unpack() (from, to Square, promotion PieceType) {
	to = Square(uint16(m16) & move16ToMask)
	from = Square((uint16(m16) & move16FromMask) >> move16FromShift)
	promotion = bitsToPromo(uint16(m16) >> move16PromShift)
	return
}

// IsNone reports whether this is the "no move" sentinel.
func (m16 Move16) IsNone() bool {
	return m16 == Move16None
}
