package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrStaleSymlink marks a child that points (possibly through a chain
	// of links) to a target that no longer exists. This is the only
	// per-entry error a scan is allowed to recover from.
	ErrStaleSymlink = errors.New("symlink to a non-existent target")

	// ErrInvalidName marks a child whose raw name is not valid UTF-8.
	ErrInvalidName = errors.New("invalid file name")
)

// ResolveEntry turns one raw directory entry into an Entry.
//
// Metadata is fetched with symlinks followed. Since the child was just
// enumerated by its parent, a not-exist failure here can only mean the
// entry is a symlink whose target is gone.
func ResolveEntry(dirpath string, dent os.DirEntry) (*Entry, error) {
	fpath := filepath.Join(dirpath, dent.Name())

	info, err := os.Stat(fpath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStaleSymlink, fpath)
		}
		return nil, err
	}

	name := dent.Name()
	if !utf8.ValidString(name) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidName, fpath)
	}

	e := Entry{Name: name, MTime: info.ModTime()}

	if info.IsDir() {
		e.Kind = KindDirectory
	} else {
		e.Kind = KindFile
		e.Size = uint64(info.Size())
	}

	return &e, nil
}

// CompareEntries is the total order of a listing: all directories before
// all files, then byte-wise by name. Not locale-aware on purpose.
func CompareEntries(a, b Entry) int {
	if a.Kind != b.Kind {
		if a.Kind == KindDirectory {
			return -1
		}
		return 1
	}

	return strings.Compare(a.Name, b.Name)
}

// Sort orders the list in place. It runs exactly once per scan, right
// before serialization.
func (ee EntryList) Sort() {
	slices.SortFunc(ee, CompareEntries)
}
