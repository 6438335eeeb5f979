// Analyze a strategic-form game: dominance, maxmin, and pure and mixed
// Nash equilibria.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"

	"github.com/golang/glog"

	"github.com/timpalpant/nashgame/gamefile"
	"github.com/timpalpant/nashgame/matrixgame"
	"github.com/timpalpant/nashgame/report"
)

func main() {
	var params report.Params
	gameFile := flag.String("game", "", "Game definition (.yaml, .yaml.gz or .npz)")
	format := flag.String("format", "text", "Output format: text or yaml")
	pprofAddr := flag.String("pprof_addr", "", "Serve pprof and expvar on this address if set")
	flag.IntVar(&params.Search.MaxSupportSize, "max_support", 0,
		"Largest support size explored in the mixed search (0 for all)")
	flag.IntVar(&params.Search.NumWorkers, "workers", runtime.NumCPU(),
		"Number of goroutines solving support candidates")
	flag.IntVar(&params.Search.CacheSize, "cache_size", matrixgame.DefaultCacheSize,
		"Number of candidate outcomes cached across stages (-1 disables)")
	flag.IntVar(&params.Search.MaxSweeps, "max_sweeps", matrixgame.DefaultMaxSweeps,
		"Passes over the players when solving games with more than two players")
	flag.IntVar(&params.SimulateRounds, "simulate", 0,
		"Rounds of sampled play per mixed equilibrium (0 to skip)")
	flag.Uint64Var(&params.Seed, "seed", 123, "Random seed for simulation")
	flag.Set("logtostderr", "true")
	flag.Parse()

	if *pprofAddr != "" {
		go http.ListenAndServe(*pprofAddr, nil)
	}

	if *gameFile == "" {
		glog.Fatal("-game is required")
	}

	def, err := gamefile.Load(*gameFile)
	if err != nil {
		glog.Fatal(err)
	}

	g, err := def.Game()
	if err != nil {
		glog.Fatalf("Invalid game %v: %v", *gameFile, err)
	}

	glog.Infof("Analyzing %q with action counts %v", def.Name, g.ActionCounts())
	r := report.Build(def, g, params)
	switch *format {
	case "text":
		err = r.WriteText(os.Stdout)
	case "yaml":
		err = r.WriteYAML(os.Stdout)
	default:
		glog.Fatalf("Unknown format: %v", *format)
	}
	if err != nil {
		glog.Fatal(err)
	}
}
