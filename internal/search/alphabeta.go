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
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	. "github.com/mkessler/ravenfish/internal/config"
	"github.com/mkessler/ravenfish/internal/movegen"
	"github.com/mkessler/ravenfish/internal/moveslice"
	"github.com/mkessler/ravenfish/internal/position"
	"github.com/mkessler/ravenfish/internal/tablebase"
	"github.com/mkessler/ravenfish/internal/transpositiontable"
	. "github.com/mkessler/ravenfish/internal/types"
	"github.com/mkessler/ravenfish/internal/util"
)

var trace = false

// rootSearch starts the actual recursive alpha beta search with the root moves for the first ply.
// As root moves are treated a little different this separate function supports readability
// as mixing it with the normal search would require quite some "if ply==0" statements.
func (s *Search) rootSearch(position *position.Position, depth int, alpha Value, beta Value) {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	// In root search we search all moves and store the value
	// into the root moves themselves for sorting in the
	// next iteration
	// best move is stored in pv[0][0]
	// best value is stored in pv[0][0].value
	bestNodeValue := ValueNA
	var value Value

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i, m := range *s.rootMoves {

		position.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		// check repetition and 50 moves
		if s.checkDrawRepAnd50(position, 2) {
			value = ValueDraw
		} else {
			// ///////////////////////////////////////////////////////////////////
			// PVS
			// First move in a node is an assumed PV and searched with full search window
			if !Settings.Search.UsePVS || i == 0 {
				value = -s.search(position, depth-1, 1, -beta, -alpha, true, true)
			} else {
				// Null window search after the initial PV search.
				value = -s.search(position, depth-1, 1, -alpha-1, -alpha, false, true)
				// If this move improved alpha without exceeding beta we do a proper full window
				// search to get an accurate score.
				if value > alpha && value < beta && !s.stopConditions() {
					s.statistics.RootPvsResearches++
					value = -s.search(position, depth-1, 1, -beta, -alpha, true, true)
				}
			}
			// ///////////////////////////////////////////////////////////////////
		}

		s.statistics.CurrentVariation.PopBack()
		position.UndoMove()

		// we want to do at least one complete search with depth 1
		// After that we can stop any time - any new best moves will
		// have been stored in pv[0]
		if s.stopConditions() && depth > 1 {
			return
		}

		// set the value into the root move to later be able to sort
		// root moves according to value
		s.rootMoves.Set(i, m.SetValue(value))

		// Did we find a better move for this node (not ply)?
		// For the first move this is always the case.
		if value > bestNodeValue {
			// new best value
			bestNodeValue = value
			// we have a new pv[0][0] - store pv+1 to pv
			savePV(m, s.pv[1], s.pv[0])
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////
}

// search is the normal alpha beta search after the root move ply (ply > 0).
// It will be called recursively until the remaining depth == 0 and we would
// enter quiescence search. isPV distinguishes PV nodes (alpha < beta-1
// possible, full-window re-searches allowed) from non-PV nodes (null
// window, alpha == beta-1).
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool, doNull bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	// Leaf guards
	if s.stopConditions() {
		return ValueNA
	}
	if ply >= MaxDepth {
		return s.evaluate(p, ply)
	}
	if s.isDraw(p, ply) {
		return ValueDraw
	}

	// Mate Distance Pruning
	// Did we already find a shorter mate then ignore this one.
	if Settings.Search.UseMDP {
		worst := MatedIn(ply)
		best := MateIn(ply + 1)
		if alpha < worst {
			alpha = worst
		}
		if beta > best {
			beta = best
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	// TT Lookup
	// Results of searches are stored in the TT to be used to avoid
	// searching positions several times. hit is nil on a miss; slot is
	// always a usable write target for storeTT below.
	var hit, slot *transpositiontable.TtEntry
	ttMove16 := transpositiontable.Move16None
	if Settings.Search.UseTT {
		hit, slot = s.tt.Probe(p.ZobristKey())
		if hit != nil {
			s.statistics.TTHit++
			ttMove16 = hit.Move()
			requiredDepth := depth
			ttValue := transpositiontable.ValueFromTT(hit.Value(), ply)
			if ttValue <= beta {
				requiredDepth--
			}
			if !isPV && hit.Depth() > requiredDepth && p.HalfMoveClock() < 90 {
				want := transpositiontable.BoundExact
				switch {
				case ttValue >= beta:
					want = transpositiontable.BoundLower
				case ttValue <= alpha:
					want = transpositiontable.BoundUpper
				}
				if hit.Bound().Overlaps(want) {
					s.statistics.TTCuts++
					return ttValue
				}
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	} else {
		_, slot = (*transpositiontable.TtTable)(nil), (*transpositiontable.TtEntry)(nil)
	}

	// Tablebase probe
	if s.tb != nil {
		if wdl, ok := s.tb.ProbeWDL(p, p.HalfMoveClock()); ok {
			if value, found := tablebase.ValueFromWDL(wdl, ply); found {
				s.statistics.TbHits++
				bound := transpositiontable.BoundExact
				switch {
				case value > ValueDraw:
					bound = transpositiontable.BoundLower
				case value < ValueDraw:
					bound = transpositiontable.BoundUpper
				}
				if Settings.Search.UseTT {
					s.tt.Save(slot, p.ZobristKey(), depth+5, bound, transpositiontable.Move16None, value, value, ply, isPV)
				}
				return value
			}
		}
	}

	// Horizon
	if depth <= 0 {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// Check extension
	hasCheck := p.HasCheck()
	if hasCheck {
		depth++
	}

	// prepare node search
	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone // used to store in the TT
	bound := transpositiontable.BoundUpper
	matethreat := false
	stack := &s.stack[ply]

	// Evaluate the position into the stack state (non-check nodes only).
	// Speculative pruning below depends on this static evaluation.
	if !hasCheck {
		stack.Eval = s.evaluate(p, ply)
	}

	// ///////////////////////////////////////////////////////
	// Speculative pruning: razoring -> futility -> null-move.
	// Only attempted on non-PV, non-check nodes; never applied when the
	// result would depend on a mate-range score.
	if !isPV && !hasCheck {
		eval := stack.Eval

		if Settings.Search.UseRazoring && depth <= 3 {
			razorMargin := Value(Settings.Search.RazorMarginBase + Settings.Search.RazorMarginPerDepth*depth*depth)
			if eval+razorMargin < alpha {
				razorValue := s.qsearch(p, ply, alpha-1, alpha, false)
				if razorValue < alpha && !razorValue.IsCheckMateValue() {
					s.statistics.RfpPrunings++
					return razorValue
				}
			}
		}

		if Settings.Search.UseFutility && depth <= Settings.Search.FutilityMarginMaxDepth {
			futMargin := Value(Settings.Search.FutilityMarginBase + Settings.Search.FutilityMarginPerDepth*(depth-1))
			if eval-futMargin >= beta && !beta.IsCheckMateValue() {
				s.statistics.FpPrunings++
				return beta
			}
		}

		if Settings.Search.UseNullMove &&
			doNull &&
			!beta.IsCheckMateValue() &&
			eval >= beta &&
			p.MaterialNonPawn(us) > 0 &&
			!stack.WasNullMove {

			newDepth := depth - Settings.Search.NmpReduction
			if newDepth < 0 {
				newDepth = 0
			}

			p.DoNullMove()
			s.nodesVisited++
			s.stack[ply+1].WasNullMove = true
			nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
			s.stack[ply+1].WasNullMove = false
			p.UndoNullMove()

			if s.stopConditions() {
				return ValueNA
			}

			if nValue > ValueCheckMateThreshold {
				s.statistics.NMPMateBeta++
				nValue = ValueCheckMateThreshold
			} else if nValue < -ValueCheckMateThreshold {
				s.statistics.NMPMateAlpha++
				matethreat = true
			}

			if nValue >= beta && !nValue.IsKnownWin() {
				s.statistics.NullMoveCuts++
				if Settings.Search.UseTT {
					s.storeTT(slot, p, depth, ply, MoveNone, nValue, transpositiontable.BoundLower, isPV)
				}
				return nValue
			}
		}
	}
	// ///////////////////////////////////////////////////////

	// Internal Iterative Deepening (IID)
	// Used when no best move from the tt is available for a PV node deep
	// enough to make the extra work worthwhile. Re-probes the TT after
	// the reduced search to pick up a pseudo-hash move.
	if Settings.Search.UseIID &&
		isPV &&
		doNull &&
		ttMove16.IsNone() &&
		depth >= Settings.Search.IidDepthLowerBound {

		newDepth := depth - Settings.Search.IidDepthReduction
		if newDepth < 0 {
			newDepth = 0
		}
		s.search(p, newDepth, ply, alpha, beta, isPV, true)
		s.statistics.IIDsearches++

		if s.stopConditions() {
			return ValueNA
		}

		if Settings.Search.UseTT {
			if iidHit, _ := s.tt.Probe(p.ZobristKey()); iidHit != nil {
				s.statistics.IIDmoves++
				ttMove16 = iidHit.Move()
			}
		}
	}

	// reset search state for this ply
	s.pv[ply].Clear()
	myMg := s.mg[ply]
	counter := MoveNone
	if lastMove := p.LastMove(); lastMove != MoveNone {
		counter = s.history.CounterMoves[lastMove.From()][lastMove.To()]
	}
	picker := NewMovePicker(p, myMg, s.history, ttMove16, stack.Killers, counter, false)
	if !ttMove16.IsNone() {
		s.statistics.TTMoveUsed++
	} else {
		s.statistics.NoTTMove++
	}

	// prepare move loop
	var value Value
	movesSearched := 0

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := picker.Next(); move != MoveNone; move = picker.Next() {
		from := move.From()
		to := move.To()

		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0

		givesCheck := p.GivesCheck(move)

		if Settings.Search.UseExt {
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}
			if Settings.Search.UseThreatExt && matethreat {
				s.statistics.ThreatExtension++
				extension = 1
			}
			newDepth += extension
		}

		isQuiet := move.MoveType() != Promotion && !p.IsCapturingMove(move)

		// ///////////////////////////////////////////////////////
		// Forward Pruning - only for quiet, non-extended moves away
		// from check and mate threats.
		if !isPV &&
			extension == 0 &&
			isQuiet &&
			!hasCheck &&
			!givesCheck &&
			!matethreat {

			// Late Move Pruning
			if Settings.Search.UseLmp && movesSearched >= LmpMovesSearched(depth) {
				s.statistics.LmpCuts++
				continue
			}

			// Late Move Reduction
			if Settings.Search.UseLmr &&
				depth >= Settings.Search.LmrDepth &&
				movesSearched >= Settings.Search.LmrMovesSearched {
				lmrDepth -= LmrReduction(depth, movesSearched)
				s.statistics.LmrReductions++
				if lmrDepth < 0 {
					lmrDepth = 0
				}
			}
		}
		// ///////////////////////////////////////////////////////

		// ///////////////////////////////////////////////////////
		// DO MOVE
		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			// ///////////////////////////////////////////////////////
			// PVS
			if !Settings.Search.UsePVS || movesSearched == 0 {
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
			} else {
				value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
				if value > alpha && !s.stopConditions() {
					if lmrDepth < newDepth {
						s.statistics.LmrResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
					} else if value < beta {
						s.statistics.PvsResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
					}
				}
			}
			// ///////////////////////////////////////////////////////
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()
		// UNDO MOVE
		// ///////////////////////////////////////////////////////

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseKiller && isQuiet {
						stack.updateKillers(move.MoveOf())
					}
					if Settings.Search.UseHistory && isQuiet {
						s.history.HistoryCount[us][from][to] += int64(1) << depth
						if s.history.HistoryCount[us][from][to] > int64(Settings.Search.MaxHistoryStatsImpact)<<depth {
							s.history.HistoryCount[us][from][to] = int64(Settings.Search.MaxHistoryStatsImpact) << depth
						}
					}
					if Settings.Search.UseCounterMove && isQuiet {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.CounterMoves[lastMove.From()][lastMove.To()] = move.MoveOf()
						}
					}
					bound = transpositiontable.BoundLower
					break
				}
				alpha = value
				bound = transpositiontable.BoundExact
			}
		}
		if Settings.Search.UseHistory && isQuiet && value < beta {
			s.history.HistoryCount[us][from][to] -= int64(1) << depth
			if s.history.HistoryCount[us][from][to] < 0 {
				s.history.HistoryCount[us][from][to] = 0
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	// Terminal check
	if movesSearched == 0 && !s.stopConditions() {
		if hasCheck {
			s.statistics.Checkmates++
			bestNodeValue = MatedIn(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		bound = transpositiontable.BoundExact
	}

	// Store TT
	if Settings.Search.UseTT {
		s.storeTT(slot, p, depth, ply, bestNodeMove, bestNodeValue, bound, isPV)
	}

	return bestNodeValue
}

// qsearch is a simplified search to counter the horizon effect in depth based
// searches. It continues the search into deeper branches as long as there are
// so called non quiet moves (usually captures, checks, promotions). Only if
// the position is relatively quiet will it compute an evaluation of the
// position to return to the previous depth.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	if s.isDraw(p, ply) {
		return ValueDraw
	}

	// Mate Distance Pruning
	if Settings.Search.UseMDP {
		worst := MatedIn(ply)
		best := MateIn(ply + 1)
		if alpha < worst {
			alpha = worst
		}
		if beta > best {
			beta = best
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	// TT Lookup
	var hit, slot *transpositiontable.TtEntry
	ttMove16 := transpositiontable.Move16None
	if Settings.Search.UseQSTT {
		hit, slot = s.tt.Probe(p.ZobristKey())
		if hit != nil {
			s.statistics.TTHit++
			ttMove16 = hit.Move()
			if !isPV && hit.Depth() >= 0 {
				ttValue := transpositiontable.ValueFromTT(hit.Value(), ply)
				want := transpositiontable.BoundExact
				switch {
				case ttValue >= beta:
					want = transpositiontable.BoundLower
				case ttValue <= alpha:
					want = transpositiontable.BoundUpper
				}
				if hit.Bound().Overlaps(want) {
					s.statistics.TTCuts++
					return ttValue
				}
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	hasCheck := p.HasCheck()
	bestNodeValue := ValueNA
	bound := transpositiontable.BoundUpper
	bestNodeMove := MoveNone

	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		if hit != nil {
			tightened := transpositiontable.ValueFromTT(hit.Value(), ply)
			if hit.Bound().Overlaps(transpositiontable.BoundLower) && tightened > staticEval && !tightened.IsCheckMateValue() {
				staticEval = tightened
			}
		}
		if Settings.Search.UseQSStandpat {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				if Settings.Search.UseQSTT {
					s.storeTT(slot, p, 0, ply, MoveNone, staticEval, transpositiontable.BoundLower, isPV)
				}
				return staticEval
			}
			if staticEval > alpha {
				alpha = staticEval
			}
		}
		bestNodeValue = staticEval

		// Full delta pruning (pre move-gen)
		if !Settings.Search.UseSEE {
			// keep behaviour deterministic even with SEE disabled
		}
		queenPawnSpan := Queen.ValueOf()*2 - Pawn.ValueOf()
		if staticEval+queenPawnSpan <= alpha {
			return alpha
		}
	}

	if hasCheck {
		s.statistics.CheckInQS++
	}

	myMg := s.mg[ply]
	s.pv[ply].Clear()
	picker := NewMovePicker(p, myMg, s.history, ttMove16, [2]Move{MoveNone, MoveNone}, MoveNone, !hasCheck)

	var value Value
	movesSearched := 0

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := picker.Next(); move != MoveNone; move = picker.Next() {
		// Per-move delta pruning: skip moves that cannot possibly raise
		// alpha even after capturing, unless in check or a promotion.
		if !hasCheck && move.MoveType() != Promotion {
			captured := p.GetPiece(move.To()).ValueOf()
			if bestNodeValue+captured+Value(Settings.Search.DeltaMargin) <= alpha {
				continue
			}
			if !s.goodCapture(p, move) {
				continue
			}
		}

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()
		// UNDO MOVE
		// ///////////////////////////////////////////////////////

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					bound = transpositiontable.BoundLower
					break
				}
				alpha = value
				bound = transpositiontable.BoundExact
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	if movesSearched == 0 && !s.stopConditions() && hasCheck {
		s.statistics.Checkmates++
		bestNodeValue = MatedIn(ply)
		bound = transpositiontable.BoundExact
	}

	if Settings.Search.UseQSTT {
		s.storeTT(slot, p, 0, ply, bestNodeMove, bestNodeValue, bound, isPV)
	}

	return bestNodeValue
}

// isDraw reports whether p is a draw by the fifty-move rule or by
// repetition within the search tree, per the engine's draw contract.
func (s *Search) isDraw(p *position.Position, ply int) bool {
	return s.checkDrawRepAnd50(p, 2)
}

// call evaluation on the position
func (s *Search) evaluate(position *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++
	s.statistics.Evaluations++
	return s.eval.Evaluate(position)
}

// reduce the number of moves searched in quiescence search by trying
// to only look at good captures. Uses SEE when UseSEE is set, otherwise
// a piece value, recapture and undefended-target test
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if Settings.Search.UseSEE {
		// Check SEE score of higher value pieces to low value pieces
		return see(p, move) > 0
	}
	// Lower value piece captures higher value piece
	// With a margin to also look at Bishop x Knight
	return p.GetPiece(move.From()).ValueOf()+50 < p.GetPiece(move.To()).ValueOf() ||
		// all recaptures should be looked at
		(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
		// undefended pieces captures are good
		!p.IsAttacked(move.To(), p.NextPlayer().Flip())
}

// savePV adds the given move as first move to a cleared dest and then
// appends all src moves to dest
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores a position into the TT through the slot handle a Probe
// call for the same key already returned.
func (s *Search) storeTT(slot *transpositiontable.TtEntry, p *position.Position, depth int, ply int, move Move, value Value, bound transpositiontable.Bound, isPV bool) {
	s.tt.Save(slot, p.ZobristKey(), depth, bound, transpositiontable.PackMove16(move), value, value, ply, isPV)
}

// getPVLine fills the given pv move list with the pv move starting from the given
// depth as long as these positions are in the TT as Exact entries.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	counter := 0
	mg := movegen.NewMoveGen()
	for counter < depth {
		hit, _ := s.tt.Probe(p.ZobristKey())
		if hit == nil || hit.Bound() != transpositiontable.BoundExact || hit.Move().IsNone() {
			break
		}
		from, to, promo := hit.Move().Unpack()
		move := resolveMove(mg, p, from, to, promo)
		if move == MoveNone {
			break
		}
		pv.PushBack(move)
		p.DoMove(move)
		counter++
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// resolveMove finds the full, typed Move among p's pseudo-legal moves
// matching the given from/to/promotion triple, the same resolution a
// Move16 hash move needs everywhere it is read back from the TT.
func resolveMove(mg *movegen.Movegen, p *position.Position, from, to Square, promo PieceType) Move {
	all := mg.GeneratePseudoLegalMoves(p, movegen.GenAll)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.From() == from && m.To() == to && (m.MoveType() != Promotion || m.PromotionType() == promo) {
			return m.MoveOf()
		}
	}
	return MoveNone
}

// getSearchTraceLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
// for usage in the search itself. When the log folder and log file can be
// opened, the stdout backend is replaced by a file backend at DEBUG level.
func getSearchTraceLog() *logging.Logger {
	searchLog := logging.MustGetLogger("search")

	searchLogFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, searchLogFormat)
	searchBackEnd := logging.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(logging.Level(SearchLogLevel), "")
	searchLog.SetBackend(searchBackEnd)

	// File backend
	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	// find log path
	logPath, err := util.ResolveFolder(Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return searchLog
	}
	searchLogFilePath := filepath.Join(logPath, exeName+"_search.log")

	// create file backend
	searchLogFile, err := os.OpenFile(searchLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return searchLog
	}
	backend2 := logging.NewLogBackend(searchLogFile, "", golog.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, searchLogFormat)
	searchBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	searchBackEnd2.SetLevel(logging.DEBUG, "")
	searchLog.SetBackend(searchBackEnd2)
	searchLog.Infof("Log %s started at %s:", searchLogFile.Name(), time.Now().String())
	return searchLog
}
