package vfs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/pierrec/lz4/v4"
)

// Archive layout, little endian:
//
//	magic   [4]byte "SDPK"
//	version uint32
//	count   uint32
//	count × { nameLen uint32, name, flags uint32, offset uint32, size uint32, rawSize uint32 }
//	data
//
// Offsets are relative to the start of the data block. Entries flagged
// flagLZ4 hold a single lz4 block that expands to rawSize bytes.
const (
	pakMagic   = "SDPK"
	pakVersion = 1

	flagLZ4 uint32 = 1 << 0

	maxNameLen = 4096

	// smallest possible table entry: empty name plus the four fields
	minEntryLen = 4 + 16

	// lz4 blocks expand at most about 255:1
	maxLZ4Ratio = 255

	// maxEntrySize bounds a single decompressed entry
	maxEntrySize = 256 << 20
)

// ErrBadArchive is wrapped when an archive header cannot be parsed
var ErrBadArchive = errors.New("malformed archive")

type pakEntry struct {
	Flags   uint32
	Offset  uint32
	Size    uint32
	RawSize uint32
}

// Archive is a mounted .pak file
type Archive struct {
	r       io.ReaderAt
	closer  io.Closer
	dataPos int64
	entries map[string]pakEntry
}

// OpenArchive opens and indexes a .pak file on disk
func OpenArchive(file string) (*Archive, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	a, err := NewArchive(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

// NewArchive indexes an archive of size bytes held by r. Every table entry
// is checked against size so a corrupt header fails here rather than in
// ReadFile.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	sr := io.NewSectionReader(r, 0, size)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(sr, magic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArchive, err)
	}
	if string(magic) != pakMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadArchive, magic)
	}

	var hdr struct{ Version, Count uint32 }
	if err := binary.Read(sr, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArchive, err)
	}
	if hdr.Version != pakVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadArchive, hdr.Version)
	}

	if int64(hdr.Count)*minEntryLen > size-int64(len(pakMagic))-8 {
		return nil, fmt.Errorf("%w: %d entries in %d bytes", ErrBadArchive, hdr.Count, size)
	}

	a := &Archive{r: r, entries: make(map[string]pakEntry, min(hdr.Count, 1024))}
	for i := uint32(0); i < hdr.Count; i++ {
		name, err := readPakString(sr)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrBadArchive, i, err)
		}
		var e pakEntry
		if err := binary.Read(sr, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrBadArchive, name, err)
		}
		a.entries[name] = e
	}
	pos, _ := sr.Seek(0, io.SeekCurrent)
	a.dataPos = pos

	for name, e := range a.entries {
		if err := e.check(size - pos); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrBadArchive, name, err)
		}
	}
	return a, nil
}

// check validates an entry against the length of the data block
func (e pakEntry) check(dataLen int64) error {
	if end := int64(e.Offset) + int64(e.Size); end > dataLen {
		return fmt.Errorf("data %d..%d past end %d", e.Offset, end, dataLen)
	}
	if e.RawSize > maxEntrySize {
		return fmt.Errorf("size %d over limit", e.RawSize)
	}
	if e.Flags&flagLZ4 == 0 {
		if e.RawSize != e.Size {
			return fmt.Errorf("stored entry size %d, raw %d", e.Size, e.RawSize)
		}
		return nil
	}
	if uint64(e.RawSize) > uint64(e.Size)*maxLZ4Ratio {
		return fmt.Errorf("lz4 size %d cannot expand to %d", e.Size, e.RawSize)
	}
	return nil
}

func readPakString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n > maxNameLen {
		return "", fmt.Errorf("name length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (a *Archive) ReadFile(name string) ([]byte, error) {
	e, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if e.Size == 0 {
		return []byte{}, nil
	}
	stored := make([]byte, e.Size)
	if _, err := a.r.ReadAt(stored, a.dataPos+int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if e.Flags&flagLZ4 == 0 {
		return stored, nil
	}
	raw := make([]byte, e.RawSize)
	n, err := lz4.UncompressBlock(stored, raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", name, err)
	}
	if n != int(e.RawSize) {
		return nil, fmt.Errorf("decompress %s: got %d bytes, want %d", name, n, e.RawSize)
	}
	return raw, nil
}

func (a *Archive) Exists(name string) bool {
	_, ok := a.entries[name]
	return ok
}

func (a *Archive) List(dir string) []string {
	var names []string
	for name := range a.entries {
		if path.Dir(name) == dir {
			names = append(names, path.Base(name))
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of files in the archive
func (a *Archive) Len() int { return len(a.entries) }

func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// ---- writer ----

type pendingEntry struct {
	name string
	pakEntry
	data []byte
}

// Writer builds an archive. Entries are compressed as they are added and
// the whole archive is written by Close.
type Writer struct {
	w       io.Writer
	entries []pendingEntry
	names   map[string]bool
	size    uint32
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, names: make(map[string]bool)}
}

// Add stores data under name. Data that lz4 cannot shrink is stored raw.
func (pw *Writer) Add(name string, data []byte) error {
	clean, ok := cleanName(name)
	if !ok || clean == "." {
		return fmt.Errorf("invalid archive name %q", name)
	}
	if len(clean) > maxNameLen {
		return fmt.Errorf("archive name too long: %q", name)
	}
	if len(data) > maxEntrySize {
		return fmt.Errorf("%s: %d bytes over entry limit", clean, len(data))
	}
	if pw.names[clean] {
		return fmt.Errorf("duplicate archive entry %q", clean)
	}

	stored, flags := data, uint32(0)
	if len(data) > 0 {
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return fmt.Errorf("compress %s: %w", clean, err)
		}
		if n > 0 && n < len(data) {
			stored, flags = buf[:n], flagLZ4
		}
	}

	pw.names[clean] = true
	pw.entries = append(pw.entries, pendingEntry{
		name: clean,
		pakEntry: pakEntry{
			Flags:   flags,
			Offset:  pw.size,
			Size:    uint32(len(stored)),
			RawSize: uint32(len(data)),
		},
		data: stored,
	})
	pw.size += uint32(len(stored))
	return nil
}

// AddDir adds every regular file under root, named by its slash separated
// path relative to root
func (pw *Writer) AddDir(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return pw.Add(filepath.ToSlash(rel), data)
	})
}

// Len returns the number of entries added so far
func (pw *Writer) Len() int { return len(pw.entries) }

// Close writes the header and data. It does not close the underlying
// writer.
func (pw *Writer) Close() error {
	le := binary.LittleEndian
	hdr := []byte(pakMagic)
	hdr = le.AppendUint32(hdr, pakVersion)
	hdr = le.AppendUint32(hdr, uint32(len(pw.entries)))
	for _, e := range pw.entries {
		hdr = le.AppendUint32(hdr, uint32(len(e.name)))
		hdr = append(hdr, e.name...)
		hdr = le.AppendUint32(hdr, e.Flags)
		hdr = le.AppendUint32(hdr, e.Offset)
		hdr = le.AppendUint32(hdr, e.Size)
		hdr = le.AppendUint32(hdr, e.RawSize)
	}
	if _, err := pw.w.Write(hdr); err != nil {
		return err
	}
	for _, e := range pw.entries {
		if _, err := pw.w.Write(e.data); err != nil {
			return fmt.Errorf("write %s: %w", e.name, err)
		}
	}
	return nil
}
