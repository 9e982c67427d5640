package core

import "time"

type EntryKind int

const (
	KindDirectory EntryKind = iota
	KindFile
)

// Entry describes one immediate child of a listed directory.
// Size is meaningful only when Kind is KindFile.
type Entry struct {
	Kind  EntryKind
	Name  string
	MTime time.Time
	Size  uint64
}

type EntryList []Entry

type QueryStatus int

const (
	QuerySuccess QueryStatus = iota
	QueryPathNotFound
	QueryNotDirectory
)

// QueryResult is what the HTTP boundary gets back for one request.
// Body is set only on QuerySuccess.
type QueryResult struct {
	Status QueryStatus
	Body   []byte
}
