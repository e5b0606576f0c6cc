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

// Bound classifies what a stored tt value means relative to the window it
// was computed in. Bit-encoded so that `a & b != 0` tests for overlap
// between a stored bound and the direction a probing node needs.
type Bound uint8

const (
	// BoundNone marks a vacant or not-yet-classified entry.
	BoundNone Bound = 0
	// BoundLower means the true value is >= the stored value (a beta cutoff).
	BoundLower Bound = 1
	// BoundUpper means the true value is <= the stored value (failed low).
	BoundUpper Bound = 2
	// BoundExact is both bounds at once: the true value was pinned by a PV search.
	BoundExact Bound = BoundLower | BoundUpper
)

// Overlaps reports whether the stored bound is usable for a probe that
// needs `want` (e.g. BoundLower to satisfy a fail-high cutoff).
func (b Bound) Overlaps(want Bound) bool {
	return b&want != 0
}
