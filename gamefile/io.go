package gamefile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/nashgame"
	"github.com/timpalpant/nashgame/gamefile/npyio"
)

const payoffPrefix = "payoff_"

// Load reads a game definition, choosing the format by extension.
func Load(filename string) (*Definition, error) {
	glog.V(1).Infof("Loading game from: %v", filename)
	switch {
	case strings.HasSuffix(filename, ".npz"):
		return loadNPZ(filename)
	case strings.HasSuffix(filename, ".gz"):
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %v", filename)
		}
		defer r.Close()
		return Decode(r)
	default:
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(bufio.NewReader(f))
	}
}

// Save writes def to filename, choosing the format by extension.
func Save(filename string, def *Definition) error {
	glog.V(1).Infof("Saving game to: %v", filename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	b := bufio.NewWriter(f)
	switch {
	case strings.HasSuffix(filename, ".npz"):
		tensors, err := def.Tensors()
		if err != nil {
			return err
		}
		arrays := make(map[string]*nashgame.Tensor, len(tensors))
		for player, t := range tensors {
			arrays[fmt.Sprintf("%s%d", payoffPrefix, player)] = t
		}
		if err := npyio.WriteNPZ(b, arrays); err != nil {
			return err
		}
	case strings.HasSuffix(filename, ".gz"):
		z := gzip.NewWriter(b)
		if err := Encode(z, def); err != nil {
			return err
		}
		if err := z.Close(); err != nil {
			return err
		}
	default:
		if err := Encode(b, def); err != nil {
			return err
		}
	}

	return b.Flush()
}

func loadNPZ(filename string) (*Definition, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	arrays, err := npyio.ReadNPZBytes(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}

	tensors := make([]*nashgame.Tensor, len(arrays))
	for name, t := range arrays {
		player, err := strconv.Atoi(strings.TrimPrefix(name, payoffPrefix))
		if !strings.HasPrefix(name, payoffPrefix) || err != nil || player < 0 || player >= len(tensors) {
			return nil, errors.Wrapf(ErrFormat, "unexpected array %q in %v", name, filename)
		}
		tensors[player] = t
	}
	if len(tensors) == 0 {
		return nil, errors.Wrapf(ErrFormat, "no payoff arrays in %v", filename)
	}
	for player, t := range tensors {
		if t == nil {
			return nil, errors.Wrapf(ErrFormat, "missing %s%d in %v", payoffPrefix, player, filename)
		}
	}

	g, err := nashgame.NewGame(tensors, tensors[0].Shape())
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(filename), ".npz")
	return FromGame(name, g), nil
}
