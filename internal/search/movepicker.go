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
	"github.com/mkessler/ravenfish/internal/history"
	"github.com/mkessler/ravenfish/internal/movegen"
	"github.com/mkessler/ravenfish/internal/position"
	"github.com/mkessler/ravenfish/internal/transpositiontable"
	. "github.com/mkessler/ravenfish/internal/types"
)

// pickStage is one phase of the staged move order.
type pickStage int

const (
	stageHash pickStage = iota
	stageGoodCaptures
	stageKillers
	stageCounter
	stageQuiets
	stageBadCaptures
	stageDone
)

// MovePicker produces legal-move candidates in the order most
// likely to cause alpha-beta cutoffs: hash move, good captures/
// promotions, killers, counter move, remaining quiets ordered by history
// bonus, then bad captures. All moves are generated, scored and sorted
// when the picker is built; Next then yields them one per call. Ordering
// work is therefore not saved when a search aborts early.
type MovePicker struct {
	p    *position.Position
	hist *history.History

	hashMove Move
	killers  [2]Move
	counter  Move

	capturesOnly bool

	goodCaptures []Move
	badCaptures  []Move
	quiets       []Move

	stage    pickStage
	capIdx   int
	badIdx   int
	quietIdx int

	yielded map[Move]bool
}

// NewMovePicker builds a move picker for the given position. hash16 is the
// packed hash move reported by a TT probe (or Move16None); since Move16
// cannot reconstruct a move's type bits on its own, it is resolved against
// the position's own generated moves by matching from/to/promotion - a
// stale or colliding hash move that matches nothing is simply dropped.
// killers and counter come from the StackState at the current ply;
// capturesOnly restricts generation to captures (including capturing
// promotions and en passant), as used by quiescence search's non-check
// move loop; non-capturing promotions are not generated in that mode.
func NewMovePicker(p *position.Position, mg *movegen.Movegen, hist *history.History, hash16 transpositiontable.Move16, killers [2]Move, counter Move, capturesOnly bool) *MovePicker {
	mp := &MovePicker{
		p:            p,
		hist:         hist,
		killers:      killers,
		counter:      counter,
		capturesOnly: capturesOnly,
		yielded:      make(map[Move]bool, 8),
	}
	mp.generate(mg, hash16)
	return mp
}

func (mp *MovePicker) generate(mg *movegen.Movegen, hash16 transpositiontable.Move16) {
	mode := movegen.GenAll
	if mp.capturesOnly {
		mode = movegen.GenCap
	}
	all := mg.GeneratePseudoLegalMoves(mp.p, mode)

	hasHash := !hash16.IsNone()
	var hashFrom, hashTo Square
	var hashProm PieceType
	if hasHash {
		hashFrom, hashTo, hashProm = hash16.Unpack()
	}

	var captures []Move
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if mp.hashMove == MoveNone && hasHash && m.From() == hashFrom && m.To() == hashTo &&
			(m.MoveType() != Promotion || m.PromotionType() == hashProm) {
			mp.hashMove = m.MoveOf()
			continue
		}
		if mp.p.IsCapturingMove(m) || m.MoveType() == Promotion {
			captures = append(captures, m.SetValue(mvvLva(mp.p, m)))
		} else if !mp.capturesOnly {
			mp.quiets = append(mp.quiets, m)
		}
	}

	for _, m := range captures {
		if m.ValueOf() >= 0 {
			mp.goodCaptures = append(mp.goodCaptures, m)
		} else {
			mp.badCaptures = append(mp.badCaptures, m)
		}
	}
	sortByValueDesc(mp.goodCaptures)
	sortByValueDesc(mp.badCaptures)

	if !mp.capturesOnly {
		mp.scoreQuiets()
	}
}

// mvvLva scores a capture/promotion as 10*value(victim) - value(attacker),
// with a bonus for the material gained by a promotion.
func mvvLva(p *position.Position, m Move) Value {
	attacker := p.GetPiece(m.From()).ValueOf()
	var victim Value
	if m.MoveType() == EnPassant {
		victim = Pawn.ValueOf()
	} else {
		victim = p.GetPiece(m.To()).ValueOf()
	}
	score := 10*victim - attacker
	if m.MoveType() == Promotion {
		score += 10 * (m.PromotionType().ValueOf() - Pawn.ValueOf())
	}
	return score
}

func sortByValueDesc(moves []Move) {
	for i := 1; i < len(moves); i++ {
		v := moves[i]
		j := i - 1
		for j >= 0 && moves[j].ValueOf() < v.ValueOf() {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = v
	}
}

// scoreQuiets assigns each quiet move a history-stat bonus and sorts the
// quiets by it, highest first. Killers and the counter move stay in the
// pool here; Next removes them when it yields them in their own stages.
func (mp *MovePicker) scoreQuiets() {
	if mp.hist == nil {
		return
	}
	us := mp.p.NextPlayer()
	var maxStat int64 = 1
	for _, m := range mp.quiets {
		if c := mp.hist.HistoryCount[us][m.From()][m.To()]; c > maxStat {
			maxStat = c
		}
	}
	const maxBonus = 10
	for i, m := range mp.quiets {
		bonus := mp.hist.HistoryCount[us][m.From()][m.To()] * maxBonus / maxStat
		mp.quiets[i] = m.SetValue(Value(bonus))
	}
	sortByValueDesc(mp.quiets)
}

func (mp *MovePicker) alreadyYielded(m Move) bool {
	return mp.yielded[m]
}

func (mp *MovePicker) markYielded(m Move) {
	mp.yielded[m] = true
}

// Next returns the next candidate move, or MoveNone once every stage has
// been exhausted.
func (mp *MovePicker) Next() Move {
	for {
		switch mp.stage {
		case stageHash:
			mp.stage = stageGoodCaptures
			if mp.hashMove != MoveNone {
				mp.markYielded(mp.hashMove.MoveOf())
				return mp.hashMove
			}
		case stageGoodCaptures:
			if mp.capIdx < len(mp.goodCaptures) {
				m := mp.goodCaptures[mp.capIdx]
				mp.capIdx++
				mp.markYielded(m.MoveOf())
				return m
			}
			mp.stage = stageKillers
			mp.capIdx = 0
		case stageKillers:
			mp.stage = stageCounter
			for _, k := range mp.killers {
				if k == MoveNone || mp.alreadyYielded(k.MoveOf()) {
					continue
				}
				if removeQuiet(&mp.quiets, k) {
					mp.markYielded(k.MoveOf())
					return k
				}
			}
		case stageCounter:
			mp.stage = stageQuiets
			if mp.counter != MoveNone && !mp.alreadyYielded(mp.counter.MoveOf()) {
				if removeQuiet(&mp.quiets, mp.counter) {
					mp.markYielded(mp.counter.MoveOf())
					return mp.counter
				}
			}
		case stageQuiets:
			if mp.capturesOnly {
				mp.stage = stageBadCaptures
				continue
			}
			if mp.quietIdx < len(mp.quiets) {
				m := mp.quiets[mp.quietIdx]
				mp.quietIdx++
				mp.markYielded(m.MoveOf())
				return m
			}
			mp.stage = stageBadCaptures
		case stageBadCaptures:
			if mp.badIdx < len(mp.badCaptures) {
				m := mp.badCaptures[mp.badIdx]
				mp.badIdx++
				mp.markYielded(m.MoveOf())
				return m
			}
			mp.stage = stageDone
		case stageDone:
			return MoveNone
		}
	}
}

// removeQuiet pulls the first occurrence of m (compared move-of-only, so
// sort value doesn't matter) out of quiets, reporting whether it was found.
func removeQuiet(quiets *[]Move, m Move) bool {
	for i, q := range *quiets {
		if q.MoveOf() == m.MoveOf() {
			*quiets = append((*quiets)[:i], (*quiets)[i+1:]...)
			return true
		}
	}
	return false
}
