// Print the number of candidate support profiles in each stage of the
// mixed equilibrium search, to help choose -max_support.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/timpalpant/nashgame/gamefile"
	"github.com/timpalpant/nashgame/matrixgame"
)

func main() {
	gameFile := flag.String("game", "", "Game definition to size")
	actions := flag.String("actions", "", "Comma-separated action counts, used if -game is empty")
	flag.Set("logtostderr", "true")
	flag.Parse()

	var actionCounts []int
	if *gameFile != "" {
		def, err := gamefile.Load(*gameFile)
		if err != nil {
			glog.Fatal(err)
		}
		g, err := def.Game()
		if err != nil {
			glog.Fatal(err)
		}
		actionCounts = g.ActionCounts()
	} else {
		for _, field := range strings.Split(*actions, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n <= 0 {
				glog.Fatalf("Invalid action count %q", field)
			}
			actionCounts = append(actionCounts, n)
		}
	}

	maxActions := 0
	for _, n := range actionCounts {
		if n > maxActions {
			maxActions = n
		}
	}

	total := 0
	for k := 1; k <= maxActions; k++ {
		n := matrixgame.StageSize(actionCounts, k)
		total += n
		fmt.Printf("Stage %d: %d candidates (%d cumulative)\n", k, n, total)
	}
}
