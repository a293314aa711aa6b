package query

import (
	"strings"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
)

const (
	tagSeparator = ":"
	tagNegation  = "!"
)

// CompileTagFilters folds osm_tag tokens into one TagFilterSet.
//
//	key           include key          !key          exclude key
//	:value        include value        :!value       exclude value
//	!:value       exclude value
//	key:value     include tag          key:!value    exclude tag
//	!key:value    exclude tag          !key:!value   exclude tag
//
// Repeated keys accumulate. An empty token list yields nil: the request is
// unfiltered, which differs from a filter that matches nothing.
func CompileTagFilters(tokens []string) (*domain.TagFilterSet, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	filters := domain.NewTagFilterSet()
	for _, token := range tokens {
		if err := compileToken(filters, token); err != nil {
			return nil, err
		}
	}
	return filters, nil
}

func compileToken(f *domain.TagFilterSet, token string) error {
	if token == "" {
		return invalidFilter(token, "empty filter")
	}
	if strings.Count(token, tagSeparator) > 1 {
		return invalidFilter(token, "at most one ':' is allowed")
	}

	if !strings.Contains(token, tagSeparator) {
		if key, ok := strings.CutPrefix(token, tagNegation); ok {
			return apply(token, f.ExcludeKey, key)
		}
		return apply(token, f.IncludeKey, token)
	}

	if rest, ok := strings.CutPrefix(token, tagNegation); ok {
		if value, ok := strings.CutPrefix(rest, tagSeparator); ok {
			return apply(token, f.ExcludeValue, value)
		}
		key, value, _ := strings.Cut(rest, tagSeparator)
		// "!key:!value" means the same as "!key:value".
		value = strings.TrimPrefix(value, tagNegation)
		return applyTag(token, f.ExcludeTag, key, value)
	}

	if value, ok := strings.CutPrefix(token, tagSeparator); ok {
		if excluded, ok := strings.CutPrefix(value, tagNegation); ok {
			return apply(token, f.ExcludeValue, excluded)
		}
		return apply(token, f.IncludeValue, value)
	}

	key, value, _ := strings.Cut(token, tagSeparator)
	if excluded, ok := strings.CutPrefix(value, tagNegation); ok {
		return applyTag(token, f.ExcludeTag, key, excluded)
	}
	return applyTag(token, f.IncludeTag, key, value)
}

func apply(token string, add func(string), s string) error {
	if s == "" {
		return invalidFilter(token, "missing key or value")
	}
	add(s)
	return nil
}

func applyTag(token string, add func(key, value string), key, value string) error {
	if key == "" {
		return invalidFilter(token, "missing key")
	}
	if value == "" {
		return invalidFilter(token, "missing value")
	}
	add(key, value)
	return nil
}

func invalidFilter(token, reason string) error {
	return errors.ErrInvalidFilterSyntax.
		Newf("invalid parameter 'osm_tag' value '%s': %s", token, reason).
		WithDetails(map[string]interface{}{"osm_tag": token})
}
