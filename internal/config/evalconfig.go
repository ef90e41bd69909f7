//
// Asymptote - a chess engine core in GO
//
// MIT License
//
// Copyright (c) 2019-2020 Ren Wild
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

package config

type evalConfiguration struct {

	// material
	BishopPairBonus int16
	TradeThreshold  int16
	TradePawnBonus  int16

	// mobility
	UseMobility       bool
	PawnMobilityBonus int16

	// rooks
	RookOpenFileBonus     int16
	RookHalfOpenFileBonus int16

	// pawn structure
	UsePawnEval          bool
	UsePawnCache         bool
	IsolatedPawnMidMalus int16
	IsolatedPawnEndMalus int16

	// king safety
	UseKingSafety           bool
	KingCenterDistanceMalus int16
}

// sets defaults which might be overwritten by the config file.
func init() {

	Settings.Eval.BishopPairBonus = 40
	Settings.Eval.TradeThreshold = 50
	Settings.Eval.TradePawnBonus = 4 // per pawn once ahead by more than TradeThreshold

	Settings.Eval.UseMobility = true
	Settings.Eval.PawnMobilityBonus = 6 // per reachable pawn target square

	Settings.Eval.RookOpenFileBonus = 15    // per rook on a file without pawns
	Settings.Eval.RookHalfOpenFileBonus = 5 // per rook on a file without own pawns

	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.IsolatedPawnMidMalus = 10
	Settings.Eval.IsolatedPawnEndMalus = 10 // only applied when the pawn is not passed

	Settings.Eval.UseKingSafety = true
	Settings.Eval.KingCenterDistanceMalus = 5 // end game, per centre distance step
}
