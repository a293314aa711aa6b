package domain

import (
	"encoding/json"
	"sort"
)

// StringSet is an unordered set of strings. It marshals as a sorted JSON array.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// TagFilterSet restricts results by OSM tags. Inclusions are OR-ed inside
// one category and categories are AND-ed; every exclusion must hold.
type TagFilterSet struct {
	IncludeKeys      StringSet            `json:"include_keys,omitempty"`
	ExcludeKeys      StringSet            `json:"exclude_keys,omitempty"`
	IncludeValues    StringSet            `json:"include_values,omitempty"`
	ExcludeValues    StringSet            `json:"exclude_values,omitempty"`
	IncludeTags      map[string]StringSet `json:"include_tags,omitempty"`
	ExcludeTagsByKey map[string]StringSet `json:"exclude_tags_by_key,omitempty"`
}

func NewTagFilterSet() *TagFilterSet {
	return &TagFilterSet{
		IncludeKeys:      StringSet{},
		ExcludeKeys:      StringSet{},
		IncludeValues:    StringSet{},
		ExcludeValues:    StringSet{},
		IncludeTags:      map[string]StringSet{},
		ExcludeTagsByKey: map[string]StringSet{},
	}
}

func (f *TagFilterSet) IncludeKey(key string) { f.IncludeKeys.Add(key) }

func (f *TagFilterSet) ExcludeKey(key string) { f.ExcludeKeys.Add(key) }

func (f *TagFilterSet) IncludeValue(value string) { f.IncludeValues.Add(value) }

func (f *TagFilterSet) ExcludeValue(value string) { f.ExcludeValues.Add(value) }

// IncludeTag unions value into the accepted values of key.
func (f *TagFilterSet) IncludeTag(key, value string) {
	addToKeyedSet(f.IncludeTags, key, value)
}

// ExcludeTag unions value into the rejected values of key.
func (f *TagFilterSet) ExcludeTag(key, value string) {
	addToKeyedSet(f.ExcludeTagsByKey, key, value)
}

// IsEmpty reports whether no rule was recorded.
func (f *TagFilterSet) IsEmpty() bool {
	return len(f.IncludeKeys) == 0 && len(f.ExcludeKeys) == 0 &&
		len(f.IncludeValues) == 0 && len(f.ExcludeValues) == 0 &&
		len(f.IncludeTags) == 0 && len(f.ExcludeTagsByKey) == 0
}

func addToKeyedSet(m map[string]StringSet, key, value string) {
	set, ok := m[key]
	if !ok {
		set = StringSet{}
		m[key] = set
	}
	set.Add(value)
}
