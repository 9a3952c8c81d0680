package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// File layout: 4-byte magic, uint16 version, uint32 dimension,
// uint32 vector count, then count*dimension little-endian float32 values.
var fileMagic = [4]byte{'R', 'R', 'I', 'X'}

const fileVersion uint16 = 1

// Sanity bounds for header fields; real corpora sit far below these.
const (
	maxFileDim   = 1 << 16
	maxFileCount = 1 << 24
)

// ErrInvalidFormat is returned when a persisted index or vector file does
// not match the expected binary layout.
var ErrInvalidFormat = fmt.Errorf("invalid index file format")

// WriteFile persists the index to path.
func (x *Flat) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	if err := writeHeader(w, uint32(x.dim), uint32(len(x.vectors))); err != nil {
		return err
	}
	for _, v := range x.vectors {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to write index vectors: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	return f.Close()
}

// ReadFile loads an index previously written by WriteFile. Missing files
// surface the underlying os error; structurally invalid files wrap
// ErrInvalidFormat.
func ReadFile(path string) (*Flat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	dim, count, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	x := &Flat{dim: int(dim), vectors: make([][]float32, 0, count)}
	for i := uint32(0); i < count; i++ {
		v := make([]float32, dim)
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: truncated vector data: %w", ErrInvalidFormat, err)
		}
		x.vectors = append(x.vectors, v)
	}

	return x, nil
}

// WriteVector persists a single vector using the index file layout with a
// count of one. It backs the job-description embedding artifact.
func WriteVector(path string, v []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create vector file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	if err := writeHeader(w, uint32(len(v)), 1); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("failed to write vector data: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write vector file: %w", err)
	}

	return f.Close()
}

// ReadVector loads a single-vector file written by WriteVector.
func ReadVector(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	dim, count, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: expected a single vector, found %d", ErrInvalidFormat, count)
	}

	v := make([]float32, dim)
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return nil, fmt.Errorf("%w: truncated vector data: %w", ErrInvalidFormat, err)
	}

	return v, nil
}

func writeHeader(w *bufio.Writer, dim, count uint32) error {
	if _, err := w.Write(fileMagic[:]); err != nil {
		return fmt.Errorf("failed to write file header: %w", err)
	}
	for _, field := range []any{fileVersion, dim, count} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("failed to write file header: %w", err)
		}
	}
	return nil
}

func readHeader(r *bufio.Reader) (dim, count uint32, err error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: missing header: %w", ErrInvalidFormat, err)
	}
	if magic != fileMagic {
		return 0, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, magic[:])
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return 0, 0, fmt.Errorf("%w: missing version: %w", ErrInvalidFormat, err)
	}
	if version != fileVersion {
		return 0, 0, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, version)
	}

	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return 0, 0, fmt.Errorf("%w: missing dimension: %w", ErrInvalidFormat, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: missing vector count: %w", ErrInvalidFormat, err)
	}
	if dim == 0 || dim > maxFileDim || count > maxFileCount {
		return 0, 0, fmt.Errorf("%w: implausible header (dim=%d count=%d)", ErrInvalidFormat, dim, count)
	}

	return dim, count, nil
}
