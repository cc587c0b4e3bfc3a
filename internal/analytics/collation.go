package analytics

import (
	"bytes"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByName orders items by display name with case-insensitive English
// collation. Equal names fall back to the category id, NoCategory first.
// A Collator is not safe for concurrent use, so one is built per call.
func sortByName[T any](items []T, name func(T) string, ref func(T) CategoryRef) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if c := col.CompareString(name(items[i]), name(items[j])); c != 0 {
			return c < 0
		}
		return refLess(ref(items[i]), ref(items[j]))
	})
}

func refLess(a, b CategoryRef) bool {
	if a.valid != b.valid {
		return !a.valid
	}
	return bytes.Compare(a.id.Bytes(), b.id.Bytes()) < 0
}
