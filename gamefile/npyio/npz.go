package npyio

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"

	"github.com/timpalpant/nashgame"
)

const npyExt = ".npy"

// WriteNPZ writes each tensor as <name>.npy into a zip archive, in
// sorted name order.
func WriteNPZ(w io.Writer, arrays map[string]*nashgame.Tensor) error {
	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	z := zip.NewWriter(w)
	for _, name := range names {
		f, err := z.Create(name + npyExt)
		if err != nil {
			return err
		}

		if err := Write(f, arrays[name]); err != nil {
			return errors.Wrapf(err, "writing %v", name)
		}
	}

	return z.Close()
}

// ReadNPZ reads every .npy entry of a zip archive, keyed by name without
// the .npy extension.
func ReadNPZ(r io.ReaderAt, size int64) (map[string]*nashgame.Tensor, error) {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "opening npz")
	}

	result := make(map[string]*nashgame.Tensor, len(z.File))
	for _, f := range z.File {
		if !strings.HasSuffix(f.Name, npyExt) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		t, err := Read(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "reading %v", f.Name)
		}

		result[strings.TrimSuffix(f.Name, npyExt)] = t
	}

	return result, nil
}

// ReadNPZBytes is ReadNPZ over an in-memory archive.
func ReadNPZBytes(buf []byte) (map[string]*nashgame.Tensor, error) {
	return ReadNPZ(bytes.NewReader(buf), int64(len(buf)))
}
