// Package npyio reads and writes payoff tensors in NumPy's .npy format and
// bundles them into .npz archives.
package npyio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/nashgame"
)

// ErrFormat is returned for malformed or unsupported .npy data.
var ErrFormat = errors.New("npyio: unsupported or malformed npy data")

var order = binary.LittleEndian

// The following is adapted from: github.com/sbinet/npyio
var magic = [6]byte{'\x93', 'N', 'U', 'M', 'P', 'Y'}

const (
	majorVersion = byte(1)
	minorVersion = byte(0)
	// Header (magic, version, length, dict) is padded to a multiple of this.
	headerAlign = 64
	// Largest array accepted on read.
	maxElements = 1 << 28
)

var (
	descrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	fortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	shapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// Write encodes t as a little-endian float64 C-order array.
func Write(w io.Writer, t *nashgame.Tensor) error {
	if err := writeHeader(w, t.Shape()); err != nil {
		return err
	}

	var buf [8]byte
	for _, x := range t.Data() {
		order.PutUint64(buf[:], math.Float64bits(x))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(w io.Writer, shape []int) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{majorVersion, minorVersion}); err != nil {
		return err
	}

	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.Itoa(d)
	}
	shapeStr := strings.Join(dims, ", ")
	if len(shape) == 1 {
		shapeStr += ","
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "{'descr': '<f8', 'fortran_order': False, 'shape': (%s), }", shapeStr)

	prefix := len(magic) + 2 + 2
	padding := (headerAlign - (prefix+buf.Len()+1)%headerAlign) % headerAlign
	buf.Write(bytes.Repeat([]byte{'\x20'}, padding))
	buf.WriteByte('\n')

	if err := binary.Write(w, order, uint16(buf.Len())); err != nil {
		return err
	}

	buflen := int64(buf.Len())
	if n, err := io.Copy(w, buf); err != nil {
		return err
	} else if n < buflen {
		return io.ErrShortWrite
	}

	return nil
}

// Read decodes a C-order array of dtype <f8, <f4, <i8 or <i4 as a tensor.
func Read(r io.Reader) (*nashgame.Tensor, error) {
	descr, shape, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	size := 1
	for _, d := range shape {
		size *= d
	}

	data := make([]float64, size)
	switch descr {
	case "<f8":
		err = binary.Read(r, order, data)
	case "<f4":
		v := make([]float32, size)
		err = binary.Read(r, order, v)
		for i, x := range v {
			data[i] = float64(x)
		}
	case "<i8":
		v := make([]int64, size)
		err = binary.Read(r, order, v)
		for i, x := range v {
			data[i] = float64(x)
		}
	case "<i4":
		v := make([]int32, size)
		err = binary.Read(r, order, v)
		for i, x := range v {
			data[i] = float64(x)
		}
	default:
		return nil, errors.Wrapf(ErrFormat, "dtype %q", descr)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading npy data")
	}

	return nashgame.NewTensor(shape, data)
}

func readHeader(r io.Reader) (string, []int, error) {
	var prefix [8]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return "", nil, errors.Wrap(err, "reading npy magic")
	}
	if !bytes.Equal(prefix[:6], magic[:]) {
		return "", nil, errors.Wrap(ErrFormat, "bad magic")
	}

	var headerLen int
	switch prefix[6] {
	case 1:
		var n uint16
		if err := binary.Read(r, order, &n); err != nil {
			return "", nil, err
		}
		headerLen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, order, &n); err != nil {
			return "", nil, err
		}
		headerLen = int(n)
	default:
		return "", nil, errors.Wrapf(ErrFormat, "version %d.%d", prefix[6], prefix[7])
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return "", nil, errors.Wrap(err, "reading npy header")
	}

	return parseHeader(string(header))
}

func parseHeader(header string) (string, []int, error) {
	descr := descrRe.FindStringSubmatch(header)
	fortran := fortranRe.FindStringSubmatch(header)
	shape := shapeRe.FindStringSubmatch(header)
	if descr == nil || fortran == nil || shape == nil {
		return "", nil, errors.Wrapf(ErrFormat, "header %q", header)
	}
	if fortran[1] == "True" {
		return "", nil, errors.Wrap(ErrFormat, "fortran order arrays are not supported")
	}

	var dims []int
	size := 1
	for _, field := range strings.Split(shape[1], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.Atoi(field)
		if err != nil || d <= 0 {
			return "", nil, errors.Wrapf(ErrFormat, "shape %q", shape[1])
		}
		if size > maxElements/d {
			return "", nil, errors.Wrapf(ErrFormat, "shape %q exceeds %d elements", shape[1], maxElements)
		}
		size *= d
		dims = append(dims, d)
	}
	if len(dims) == 0 {
		return "", nil, errors.Wrap(ErrFormat, "scalar arrays are not supported")
	}

	return descr[1], dims, nil
}
