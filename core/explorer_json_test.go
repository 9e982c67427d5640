package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryMarshalJSON(t *testing.T) {
	mtime := time.Date(1994, time.November, 15, 8, 12, 31, 0, time.UTC)

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "directory has no size key",
			entry: Entry{Kind: KindDirectory, Name: "src", MTime: mtime},
			want:  `{"type":"directory","name":"src","mtime":"Tue, 15 Nov 1994 08:12:31 GMT"}`,
		},
		{
			name:  "file carries its size",
			entry: Entry{Kind: KindFile, Name: "a.txt", MTime: mtime, Size: 10},
			want:  `{"type":"file","name":"a.txt","mtime":"Tue, 15 Nov 1994 08:12:31 GMT","size":10}`,
		},
		{
			name:  "zero size is still present on a file",
			entry: Entry{Kind: KindFile, Name: "empty", MTime: mtime},
			want:  `{"type":"file","name":"empty","mtime":"Tue, 15 Nov 1994 08:12:31 GMT","size":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.entry)
			require.NoError(t, err)

			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestEntryListEncodeEmpty(t *testing.T) {
	body, err := EntryList{}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "[]", string(body))

	body, err = EntryList(nil).Encode()
	require.NoError(t, err)

	assert.Equal(t, "[]", string(body))
}

func TestEntryListRoundTrip(t *testing.T) {
	entries := EntryList{
		{Kind: KindDirectory, Name: "b", MTime: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)},
		{Kind: KindFile, Name: "a.txt", MTime: time.Date(1994, time.November, 15, 8, 12, 31, 0, time.UTC), Size: 10},
		{Kind: KindFile, Name: "c.txt", MTime: time.Date(2001, time.January, 2, 3, 4, 5, 0, time.UTC)},
	}

	body, err := entries.Encode()
	require.NoError(t, err)

	var decoded EntryList
	require.NoError(t, json.Unmarshal(body, &decoded))

	require.Len(t, decoded, len(entries))

	// Same variants, names, sizes and timestamps, in the same order
	for i := range entries {
		assert.Equal(t, entries[i].Kind, decoded[i].Kind)
		assert.Equal(t, entries[i].Name, decoded[i].Name)
		assert.Equal(t, entries[i].Size, decoded[i].Size)
		assert.True(t, entries[i].MTime.Equal(decoded[i].MTime),
			"mtime mismatch at %d: %s != %s", i, entries[i].MTime, decoded[i].MTime)
	}
}

func TestEntryUnmarshalJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type", `{"type":"socket","name":"s","mtime":"Tue, 15 Nov 1994 08:12:31 GMT"}`},
		{"file without size", `{"type":"file","name":"a","mtime":"Tue, 15 Nov 1994 08:12:31 GMT"}`},
		{"bad mtime", `{"type":"file","name":"a","mtime":"1994-11-15T08:12:31Z","size":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			assert.Error(t, json.Unmarshal([]byte(tt.data), &e))
		})
	}
}
