package core

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// httpTimeLayout is the RFC 7231 IMF-fixdate format. The exact textual
// form is part of the wire contract with autoindex consumers.
const httpTimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type entryJSON struct {
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	MTime string  `json:"mtime"`
	Size  *uint64 `json:"size,omitempty"`
}

// MarshalJSON renders the variant-dependent wire object: "size" appears
// on every file (zero included) and never on a directory.
func (e Entry) MarshalJSON() ([]byte, error) {
	v := entryJSON{
		Name:  e.Name,
		MTime: e.MTime.UTC().Format(httpTimeLayout),
	}

	switch e.Kind {
	case KindDirectory:
		v.Type = "directory"
	case KindFile:
		v.Type = "file"
		size := e.Size
		v.Size = &size
	default:
		return nil, fmt.Errorf("unknown entry kind: %d", e.Kind)
	}

	return json.Marshal(v)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var v entryJSON

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	mtime, err := time.Parse(httpTimeLayout, v.MTime)
	if err != nil {
		return fmt.Errorf("invalid mtime %q: %w", v.MTime, err)
	}

	switch v.Type {
	case "directory":
		*e = Entry{Kind: KindDirectory, Name: v.Name, MTime: mtime}
	case "file":
		if v.Size == nil {
			return fmt.Errorf("file entry %q without a size", v.Name)
		}
		*e = Entry{Kind: KindFile, Name: v.Name, MTime: mtime, Size: *v.Size}
	default:
		return fmt.Errorf("unknown entry type: %q", v.Type)
	}

	return nil
}

// Encode serializes the list in its current order. An empty scan is a
// valid listing and encodes as "[]", never "null".
func (ee EntryList) Encode() ([]byte, error) {
	if len(ee) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(ee)
}
