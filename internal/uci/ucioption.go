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

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/mkessler/ravenfish/internal/config"
)

// init will define all available uci options and store them into the uciOption map.
// Names and ranges for the tunable search parameters follow the engine's
// documented UCI option table; the Use_* checks are this engine's own
// switches for turning a technique fully on or off during testing.
func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Hash":       {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.HashSizeMb), CurrentValue: strconv.Itoa(Settings.Search.HashSizeMb), MinValue: "1", MaxValue: "33554432"},
		"SyzygyPath": {NameID: "SyzygyPath", HandlerFunc: setSyzygyPath, OptionType: String, DefaultValue: Settings.Search.SyzygyPath, CurrentValue: Settings.Search.SyzygyPath},
		"Threads":    {NameID: "Threads", HandlerFunc: setThreads, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.Threads), CurrentValue: strconv.Itoa(Settings.Search.Threads), MinValue: "1", MaxValue: "1"},

		"tc_default_moves_to_go":    {NameID: "tc_default_moves_to_go", HandlerFunc: setTcDefaultMovesToGo, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TcDefaultMovesToGo), CurrentValue: strconv.Itoa(Settings.Search.TcDefaultMovesToGo), MinValue: "1", MaxValue: "100"},
		"tc_time_buffer_percentage": {NameID: "tc_time_buffer_percentage", HandlerFunc: setTcTimeBufferPercentage, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TcTimeBufferPercentage), CurrentValue: strconv.Itoa(Settings.Search.TcTimeBufferPercentage), MinValue: "1", MaxValue: "100"},
		"tc_min_search_time_ms":     {NameID: "tc_min_search_time_ms", HandlerFunc: setTcMinSearchTimeMs, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TcMinSearchTimeMs), CurrentValue: strconv.Itoa(Settings.Search.TcMinSearchTimeMs), MinValue: "0", MaxValue: "1000"},

		"futility_margin_max_depth": {NameID: "futility_margin_max_depth", HandlerFunc: setFutilityMarginMaxDepth, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.FutilityMarginMaxDepth), CurrentValue: strconv.Itoa(Settings.Search.FutilityMarginMaxDepth), MinValue: "1", MaxValue: "5"},
		"futility_margin_base":      {NameID: "futility_margin_base", HandlerFunc: setFutilityMarginBase, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.FutilityMarginBase), CurrentValue: strconv.Itoa(Settings.Search.FutilityMarginBase), MinValue: "0", MaxValue: "1000"},
		"futility_margin_per_depth": {NameID: "futility_margin_per_depth", HandlerFunc: setFutilityMarginPerDepth, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.FutilityMarginPerDepth), CurrentValue: strconv.Itoa(Settings.Search.FutilityMarginPerDepth), MinValue: "0", MaxValue: "1000"},
		"razor_margin_base":         {NameID: "razor_margin_base", HandlerFunc: setRazorMarginBase, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.RazorMarginBase), CurrentValue: strconv.Itoa(Settings.Search.RazorMarginBase), MinValue: "0", MaxValue: "1000"},
		"razor_margin_per_depth":    {NameID: "razor_margin_per_depth", HandlerFunc: setRazorMarginPerDepth, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.RazorMarginPerDepth), CurrentValue: strconv.Itoa(Settings.Search.RazorMarginPerDepth), MinValue: "0", MaxValue: "1000"},
		"delta_margin":              {NameID: "delta_margin", HandlerFunc: setDeltaMargin, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.DeltaMargin), CurrentValue: strconv.Itoa(Settings.Search.DeltaMargin), MinValue: "0", MaxValue: "1000"},
		"iid_depth_reduction":       {NameID: "iid_depth_reduction", HandlerFunc: setIidDepthReduction, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.IidDepthReduction), CurrentValue: strconv.Itoa(Settings.Search.IidDepthReduction), MinValue: "1", MaxValue: "5"},
		"iid_depth_lower_bound":     {NameID: "iid_depth_lower_bound", HandlerFunc: setIidDepthLowerBound, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.IidDepthLowerBound), CurrentValue: strconv.Itoa(Settings.Search.IidDepthLowerBound), MinValue: "5", MaxValue: "10"},
		"lmr_move_threshold":        {NameID: "lmr_move_threshold", HandlerFunc: setLmrMoveThreshold, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.LmrMoveThreshold), CurrentValue: strconv.Itoa(Settings.Search.LmrMoveThreshold), MinValue: "1", MaxValue: "256"},

		"Ponder": {NameID: "Ponder", HandlerFunc: usePonder, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePonder), CurrentValue: strconv.FormatBool(Settings.Search.UsePonder)},

		"Use_Quiescence": {NameID: "Use_Quiescence", HandlerFunc: useQuiescence, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence)},
		"Use_QHash":      {NameID: "Use_QHash", HandlerFunc: useQSHash, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQSTT), CurrentValue: strconv.FormatBool(Settings.Search.UseQSTT)},
		"Use_SEE":        {NameID: "Use_SEE", HandlerFunc: useSee, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseSEE), CurrentValue: strconv.FormatBool(Settings.Search.UseSEE)},

		"Use_IID":         {NameID: "Use_IID", HandlerFunc: useIID, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseIID), CurrentValue: strconv.FormatBool(Settings.Search.UseIID)},
		"Use_PVS":         {NameID: "Use_PVS", HandlerFunc: usePvs, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePVS), CurrentValue: strconv.FormatBool(Settings.Search.UsePVS)},
		"Use_Killer":      {NameID: "Use_Killer", HandlerFunc: useKiller, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseKiller), CurrentValue: strconv.FormatBool(Settings.Search.UseKiller)},
		"Use_History":     {NameID: "Use_History", HandlerFunc: useHistory, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseHistory), CurrentValue: strconv.FormatBool(Settings.Search.UseHistory)},
		"Use_CounterMove": {NameID: "Use_CounterMove", HandlerFunc: useCM, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCounterMove), CurrentValue: strconv.FormatBool(Settings.Search.UseCounterMove)},

		"Use_Mdp":      {NameID: "Use_Mdp", HandlerFunc: useMdp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseMDP), CurrentValue: strconv.FormatBool(Settings.Search.UseMDP)},
		"Use_Razoring": {NameID: "Use_Razoring", HandlerFunc: useRazoring, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseRazoring), CurrentValue: strconv.FormatBool(Settings.Search.UseRazoring)},
		"Use_NullMove": {NameID: "Use_NullMove", HandlerFunc: useNullMove, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseNullMove), CurrentValue: strconv.FormatBool(Settings.Search.UseNullMove)},
		"Use_Futility": {NameID: "Use_Futility", HandlerFunc: useFutility, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseFutility), CurrentValue: strconv.FormatBool(Settings.Search.UseFutility)},
		"Use_Lmr":      {NameID: "Use_Lmr", HandlerFunc: useLmr, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLmr), CurrentValue: strconv.FormatBool(Settings.Search.UseLmr)},
		"Use_Lmp":      {NameID: "Use_Lmp", HandlerFunc: useLmp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLmp), CurrentValue: strconv.FormatBool(Settings.Search.UseLmp)},

		"Use_Ext":       {NameID: "Use_Ext", HandlerFunc: useExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseExt), CurrentValue: strconv.FormatBool(Settings.Search.UseExt)},
		"Use_CheckExt":  {NameID: "Use_CheckExt", HandlerFunc: useCheckExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCheckExt), CurrentValue: strconv.FormatBool(Settings.Search.UseCheckExt)},
		"Use_ThreatExt": {NameID: "Use_ThreatExt", HandlerFunc: useThreatExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseThreatExt), CurrentValue: strconv.FormatBool(Settings.Search.UseThreatExt)},

		"Eval_Lazy":     {NameID: "Eval_Lazy", HandlerFunc: evalLazy, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseLazyEval), CurrentValue: strconv.FormatBool(Settings.Eval.UseLazyEval)},
		"Eval_Mobility": {NameID: "Eval_Mobility", HandlerFunc: evalMob, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseMobility), CurrentValue: strconv.FormatBool(Settings.Eval.UseMobility)},
		"Eval_AdvPiece": {NameID: "Eval_AdvPiece", HandlerFunc: evalAdv, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseAdvancedPieceEval), CurrentValue: strconv.FormatBool(Settings.Eval.UseAdvancedPieceEval)},

		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
	}
	sortOrderUciOptions = []string{
		"Hash",
		"Clear Hash",
		"SyzygyPath",
		"Threads",

		"tc_default_moves_to_go",
		"tc_time_buffer_percentage",
		"tc_min_search_time_ms",

		"futility_margin_max_depth",
		"futility_margin_base",
		"futility_margin_per_depth",
		"razor_margin_base",
		"razor_margin_per_depth",
		"delta_margin",
		"iid_depth_reduction",
		"iid_depth_lower_bound",
		"lmr_move_threshold",

		"Ponder",

		"Use_Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_History",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Razoring",
		"Use_NullMove",
		"Use_Futility",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_CheckExt",
		"Use_ThreatExt",

		"Eval_Lazy",
		"Eval_Mobility",
		"Eval_AdvPiece",

		"Print Config",
	}
}

// GetOptions returns all available uci options a slice of strings
// to be send to the UCI user interface during the initialization
// phase of the UCI protocol
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption will return a representation of the uci option as required by
// the UCI protocol during the initialization phase of the UCI protocol
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Combo:
		os.WriteString("combo ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" var ")
		os.WriteString(o.VarValue)
	case Button:
		os.WriteString("button")
	case String:
		os.WriteString("string ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	}

	return os.String()
}

// uciOptionType is a enum representing the different UCI Option types
type uciOptionType int

// uci option types constants
const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is a function type to by used as function pointer
// in each uci option defined. This is called when the uci option
// is changed by the "setoption" command
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines UCI Options as described in the UCI protocol.
// Each options has a function pointer to a handler which will be
// called when the "setoption" command changes the option.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap convenience type for a map of pointers to uci options
type optionMap map[string]*uciOption

// uciOptions stores all available uci options
var uciOptions optionMap

// to control the sort order of all options
var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uci options changes
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, option *uciOption) {
	s := reflect.ValueOf(&Settings.Eval).Elem()
	typeOfT := s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Evaluation Config:\n")
	s = reflect.ValueOf(&Settings.Search).Elem()
	typeOfT = s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Search Config:\n")
	log.Debug(Settings.String())

}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.HashSizeMb = v
	u.mySearch.ResizeCache()
}

func setSyzygyPath(u *UciHandler, o *uciOption) {
	Settings.Search.SyzygyPath = o.CurrentValue
	u.mySearch.LoadTablebase(o.CurrentValue)
	log.Debugf("Set SyzygyPath to %v", Settings.Search.SyzygyPath)
}

func setThreads(u *UciHandler, o *uciOption) {
	// hard-capped at 1 - single-threaded cooperative search only
	log.Debug("Threads is fixed at 1")
}

func setTcDefaultMovesToGo(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TcDefaultMovesToGo = v
}

func setTcTimeBufferPercentage(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TcTimeBufferPercentage = v
}

func setTcMinSearchTimeMs(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TcMinSearchTimeMs = v
}

func setFutilityMarginMaxDepth(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.FutilityMarginMaxDepth = v
}

func setFutilityMarginBase(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.FutilityMarginBase = v
}

func setFutilityMarginPerDepth(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.FutilityMarginPerDepth = v
}

func setRazorMarginBase(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.RazorMarginBase = v
}

func setRazorMarginPerDepth(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.RazorMarginPerDepth = v
}

func setDeltaMargin(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.DeltaMargin = v
}

func setIidDepthReduction(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.IidDepthReduction = v
}

func setIidDepthLowerBound(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.IidDepthLowerBound = v
}

func setLmrMoveThreshold(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.LmrMoveThreshold = v
}

func usePonder(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePonder = v
	log.Debugf("Set Use Ponder to %v", Settings.Search.UsePonder)
}

func useQuiescence(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQuiescence = v
	log.Debugf("Set Use Quiescence to %v", Settings.Search.UseQuiescence)
}

func useQSHash(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQSTT = v
	log.Debugf("Set Use Hash in Quiescence to %v", Settings.Search.UseQSTT)
}

func usePvs(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePVS = v
	log.Debugf("Set Use PVS to %v", Settings.Search.UsePVS)
}

func useMdp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseMDP = v
	log.Debugf("Set Use MDP to %v", Settings.Search.UseMDP)
}

func useKiller(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseKiller = v
	log.Debugf("Set Use Killer Moves to %v", Settings.Search.UseKiller)
}

func useHistory(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseHistory = v
	log.Debugf("Set Use History to %v", Settings.Search.UseHistory)
}

func useCM(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseCounterMove = v
	log.Debugf("Set Use Counter Move to %v", Settings.Search.UseCounterMove)
}

func useNullMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseNullMove = v
	log.Debugf("Set Use Null Move Pruning to %v", Settings.Search.UseNullMove)
}

func useIID(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseIID = v
	log.Debugf("Set Use IID to %v", Settings.Search.UseIID)
}

func useLmr(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLmr = v
	log.Debugf("Set use Late Move Reduction to %v", Settings.Search.UseLmr)
}

func useLmp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLmp = v
	log.Debugf("Set use Late Move Pruning to %v", Settings.Search.UseLmp)
}

func useSee(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseSEE = v
	log.Debugf("Set use SEE to %v", Settings.Search.UseSEE)
}

func useExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseExt = v
	log.Debugf("Set use Extensions to %v", Settings.Search.UseExt)
}

func useCheckExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseCheckExt = v
	log.Debugf("Set use Check Extension to %v", Settings.Search.UseCheckExt)
}

func useThreatExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseThreatExt = v
	log.Debugf("Set use Threat Extension to %v", Settings.Search.UseThreatExt)
}

func useRazoring(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseRazoring = v
	log.Debugf("Set use Razoring to %v", Settings.Search.UseRazoring)
}

func useFutility(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseFutility = v
	log.Debugf("Set use Futility Pruning to %v", Settings.Search.UseFutility)
}

func evalLazy(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseLazyEval = v
	log.Debugf("Set use Lazy Eval to %v", Settings.Eval.UseLazyEval)
}

func evalMob(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseMobility = v
	log.Debugf("Set use Eval Mobility to %v", Settings.Eval.UseMobility)
}

func evalAdv(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseAdvancedPieceEval = v
	log.Debugf("Set use Adv Piece Eval to %v", Settings.Eval.UseAdvancedPieceEval)
}
