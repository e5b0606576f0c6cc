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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search. Field names match the UCI option names this
// engine advertises (CamelCase equivalents of the snake_case option
// names) so setoption handling can map one to the other mechanically.
type searchConfiguration struct {
	// Transposition table
	HashSizeMb int
	UseTT      bool
	UseQSTT    bool

	// Tablebase
	SyzygyPath string

	// Threads - hard-capped at 1; single-threaded cooperative search only.
	Threads int

	// Time control
	TcDefaultMovesToGo     int
	TcTimeBufferPercentage int
	TcMinSearchTimeMs      int

	// Ponder - accepted and acknowledged on the UCI wire but never acted on.
	UsePonder bool

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool
	DeltaMargin   int

	// Move ordering
	UsePVS                bool
	UseKiller             bool
	UseCounterMove        bool
	UseHistory            bool
	MaxHistoryStatsImpact int
	LmrMoveThreshold      int

	UseIID             bool
	IidDepthReduction  int
	IidDepthLowerBound int

	// Speculative pruning pre move gen
	UseMDP                  bool
	UseRazoring             bool
	RazorMarginBase         int
	RazorMarginPerDepth     int
	UseNullMove             bool
	NmpReduction            int
	UseFutility             bool
	FutilityMarginMaxDepth  int
	FutilityMarginBase      int
	FutilityMarginPerDepth  int

	// extensions of search depth
	UseExt       bool
	UseCheckExt  bool
	UseThreatExt bool

	// prunings after move generation but before making move
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.HashSizeMb = 16
	Settings.Search.UseTT = true
	Settings.Search.UseQSTT = true

	Settings.Search.SyzygyPath = ""

	Settings.Search.Threads = 1

	Settings.Search.TcDefaultMovesToGo = 40
	Settings.Search.TcTimeBufferPercentage = 95
	Settings.Search.TcMinSearchTimeMs = 25

	Settings.Search.UsePonder = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true
	Settings.Search.DeltaMargin = 12

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.UseCounterMove = true
	Settings.Search.UseHistory = true
	Settings.Search.MaxHistoryStatsImpact = 10
	Settings.Search.LmrMoveThreshold = 3

	Settings.Search.UseIID = false
	Settings.Search.IidDepthReduction = 2
	Settings.Search.IidDepthLowerBound = 5

	Settings.Search.UseMDP = true
	Settings.Search.UseRazoring = true
	Settings.Search.RazorMarginBase = 323
	Settings.Search.RazorMarginPerDepth = 249
	Settings.Search.UseNullMove = true
	Settings.Search.NmpReduction = 5
	Settings.Search.UseFutility = true
	Settings.Search.FutilityMarginMaxDepth = 5
	Settings.Search.FutilityMarginBase = 17
	Settings.Search.FutilityMarginPerDepth = 100

	Settings.Search.UseExt = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UseThreatExt = false

	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.HashSizeMb <= 0 {
		Settings.Search.HashSizeMb = 16
	}
	if Settings.Search.Threads < 1 {
		Settings.Search.Threads = 1
	}
	if Settings.Search.Threads > 1 {
		// single-threaded cooperative search only - see search package
		Settings.Search.Threads = 1
	}
	if Settings.Search.TcDefaultMovesToGo <= 0 {
		Settings.Search.TcDefaultMovesToGo = 40
	}
}
