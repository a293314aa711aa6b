package query

import (
	"sort"
	"strings"
)

// Param is one key=value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Params keeps query arguments in the order the client sent them.
// Repeated keys are allowed (osm_tag).
type Params []Param

// Lookup returns the first value of key.
func (p Params) Lookup(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

func (p Params) Get(key string) string {
	v, _ := p.Lookup(key)
	return v
}

func (p Params) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// All returns every value of key in input order.
func (p Params) All(key string) []string {
	var out []string
	for _, kv := range p {
		if kv.Key == key {
			out = append(out, kv.Value)
		}
	}
	return out
}

// Keys returns distinct keys in first-occurrence order.
func (p Params) Keys() []string {
	seen := make(map[string]struct{}, len(p))
	keys := make([]string, 0, len(p))
	for _, kv := range p {
		if _, ok := seen[kv.Key]; ok {
			continue
		}
		seen[kv.Key] = struct{}{}
		keys = append(keys, kv.Key)
	}
	return keys
}

// AllowList is the fixed set of query parameter names an endpoint accepts.
type AllowList struct {
	names []string
	set   map[string]struct{}
}

func NewAllowList(names ...string) AllowList {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return AllowList{names: sorted, set: set}
}

func (a AllowList) Contains(name string) bool {
	_, ok := a.set[name]
	return ok
}

func (a AllowList) String() string {
	return "[" + strings.Join(a.names, ", ") + "]"
}

var (
	// SearchParams is accepted by the search and bulk search endpoints.
	SearchParams = NewAllowList("lang", "q", "lon", "lat", "limit", "osm_tag", "location_bias_scale", "bbox", "debug")
	// ReverseParams is accepted by the reverse and bulk reverse endpoints.
	ReverseParams = NewAllowList("lang", "lon", "lat", "radius", "query_string_filter", "distance_sort", "limit", "debug")
)

// LanguageSet is the read-only set of languages a deployment serves.
type LanguageSet struct {
	AllowList
}

func NewLanguageSet(codes ...string) LanguageSet {
	return LanguageSet{AllowList: NewAllowList(codes...)}
}
