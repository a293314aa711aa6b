package domain

// RequestKind discriminates the normalized request variants.
type RequestKind int

const (
	KindPlainSearch RequestKind = iota
	KindFilteredSearch
	KindReverse
	KindBulkSearch
	KindBulkReverse
)

func (k RequestKind) String() string {
	switch k {
	case KindPlainSearch:
		return "search"
	case KindFilteredSearch:
		return "filtered_search"
	case KindReverse:
		return "reverse"
	case KindBulkSearch:
		return "bulk_search"
	case KindBulkReverse:
		return "bulk_reverse"
	default:
		return "unknown"
	}
}

// Request is a fully validated request descriptor. The set of
// implementations is closed: SearchRequest, FilteredSearchRequest,
// ReverseRequest, BulkSearchRequest and BulkReverseRequest.
type Request interface {
	Kind() RequestKind
	isRequest()
}

// SearchVariant is a single forward-geocoding descriptor, with or without tag filters.
type SearchVariant interface {
	Request
	Base() SearchRequest
}

// SearchRequest is an unfiltered forward-geocoding request.
type SearchRequest struct {
	Query        string       `json:"query"`
	Limit        int          `json:"limit"`
	BiasLocation *Point       `json:"bias_location,omitempty"`
	BiasScale    float64      `json:"bias_scale"`
	BoundingBox  *BoundingBox `json:"bbox,omitempty"`
	Language     string       `json:"lang"`
}

func (SearchRequest) Kind() RequestKind { return KindPlainSearch }

func (SearchRequest) isRequest() {}

func (r SearchRequest) Base() SearchRequest { return r }

// FilteredSearchRequest is a forward-geocoding request restricted by tag filters.
// Filters is never nil.
type FilteredSearchRequest struct {
	SearchRequest
	Filters *TagFilterSet `json:"filters"`
}

func (FilteredSearchRequest) Kind() RequestKind { return KindFilteredSearch }

type ReverseRequest struct {
	Location          Point   `json:"location"`
	Radius            float64 `json:"radius"`
	Limit             int     `json:"limit"`
	Language          string  `json:"lang"`
	QueryStringFilter string  `json:"query_string_filter,omitempty"`
	SortByDistance    bool    `json:"distance_sort"`
}

func (ReverseRequest) Kind() RequestKind { return KindReverse }

func (ReverseRequest) isRequest() {}

// BulkSearchRequest holds one descriptor per input query, in input order.
// All of them share the same common parameters and tag filters.
type BulkSearchRequest struct {
	Requests []SearchVariant `json:"requests"`
}

func (BulkSearchRequest) Kind() RequestKind { return KindBulkSearch }

func (BulkSearchRequest) isRequest() {}

// BulkReverseRequest holds one descriptor per input location, in input order.
type BulkReverseRequest struct {
	Requests []ReverseRequest `json:"requests"`
}

func (BulkReverseRequest) Kind() RequestKind { return KindBulkReverse }

func (BulkReverseRequest) isRequest() {}
