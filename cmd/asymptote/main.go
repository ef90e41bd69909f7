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

// The asymptote command is the perft driver of the engine core. It
// runs perft or perft divide on an arbitrary position to verify and
// benchmark move generation, make/unmake and the legality filter.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/RenWild/asymptote/internal/config"
	"github.com/RenWild/asymptote/internal/logging"
	"github.com/RenWild/asymptote/internal/movegen"
	"github.com/RenWild/asymptote/internal/moveslice"
	"github.com/RenWild/asymptote/internal/position"
	"github.com/RenWild/asymptote/internal/types"
	"github.com/RenWild/asymptote/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for the perft position")
	perftDepth := flag.Int("perft", 0, "runs perft from depth 1 up to the given depth")
	divideDepth := flag.Int("divide", 0, "runs perft divide for the given depth")
	parallel := flag.Bool("parallel", false, "split the divide root moves over all cores")
	profileMode := flag.String("profile", "", "write a profile (cpu|mem)")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file - this needs to be set before config.Setup() is
	// called, otherwise the default will be used
	config.ConfFile = *configFile
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level of the standard log - required as packages
	// include the standard logger as a global var even before main()
	// is called
	logging.GetLog()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	switch {
	case *perftDepth > 0:
		perft := movegen.NewPerft()
		for depth := 1; depth <= *perftDepth; depth++ {
			perft.StartPerft(*fen, depth, true)
		}
	case *divideDepth > 0:
		divide(*fen, *divideDepth, *parallel)
	default:
		flag.Usage()
	}
}

// divide prints the perft node count behind every legal root move of
// the position. With parallel=true the root moves are split over all
// cores - every goroutine drives its own Position instance as the
// core provides no thread safety.
func divide(fen string, depth int, parallel bool) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Divide aborted. Invalid fen: %s\n", fen)
		os.Exit(1)
	}

	mg := movegen.NewMoveGen()
	moves := moveslice.NewMoveSlice(types.AllMovesCap)
	mg.AllMoves(p, moves)
	moves.Filter(func(i int) bool { return p.MoveIsLegal(moves.At(i)) })

	out.Printf("Perft divide depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	type rootResult struct {
		move  types.Move
		nodes uint64
	}
	results := make([]rootResult, moves.Len())

	start := time.Now()

	if parallel {
		// every root move gets its own goroutine and its own Position
		// instance - the core provides no thread safety
		var g errgroup.Group
		for i := 0; i < moves.Len(); i++ {
			i := i
			m := moves.At(i)
			g.Go(func() error {
				root := p.Copy()
				root.MakeMove(m)
				results[i] = rootResult{move: m, nodes: movegen.NewPerft().Perft(root, depth-1)}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			details := p.Details()
			p.MakeMove(m)
			results[i] = rootResult{move: m, nodes: movegen.NewPerft().Perft(p, depth-1)}
			p.UnmakeMove(m, details)
		}
	}

	elapsed := time.Since(start)

	sort.Slice(results, func(a, b int) bool {
		return results[a].move.Algebraic() < results[b].move.Algebraic()
	})

	total := uint64(0)
	for _, r := range results {
		out.Printf("%-6s : %d\n", r.move.Algebraic(), r.nodes)
		total += r.nodes
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("Moves: %d  Nodes: %d  Time: %d ms  NPS: %d\n",
		len(results), total, elapsed.Milliseconds(), util.Nps(total, elapsed))
}

func printVersionInfo() {
	out.Printf("Asymptote core\n")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	fmt.Printf("  Working directory: %s\n", cwd)
}
