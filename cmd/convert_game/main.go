// Convert game definitions between YAML, gzipped YAML and NPZ.
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/timpalpant/nashgame/gamefile"
)

func main() {
	input := flag.String("input", "", "Game definition to read")
	output := flag.String("output", "", "Game definition to write")
	flag.Set("logtostderr", "true")
	flag.Parse()

	def, err := gamefile.Load(*input)
	if err != nil {
		glog.Fatal(err)
	}

	// Validate before writing so that broken definitions are not propagated.
	g, err := def.Game()
	if err != nil {
		glog.Fatalf("Invalid game %v: %v", *input, err)
	}

	if err := gamefile.Save(*output, def); err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Wrote %d-player game %v to %v", g.NumPlayers(), g.ActionCounts(), *output)
}
