package errors

import "net/http"

// Request normalization failures. All of them are client errors.
var (
	ErrUnknownParameter = New(
		"UNKNOWN_PARAMETER",
		"Unknown query parameter",
		http.StatusBadRequest,
	)

	ErrMissingRequiredField = New(
		"MISSING_REQUIRED_FIELD",
		"Missing required field",
		http.StatusBadRequest,
	)

	ErrInvalidNumber = New(
		"INVALID_NUMBER",
		"Parameter is not a valid number",
		http.StatusBadRequest,
	)

	ErrInvalidParameter = New(
		"INVALID_PARAMETER",
		"Invalid parameter value",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinate = New(
		"INVALID_COORDINATE",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrOutOfRange = New(
		"OUT_OF_RANGE",
		"Value out of range",
		http.StatusBadRequest,
	)

	ErrInvalidBoundingBox = New(
		"INVALID_BOUNDING_BOX",
		"Invalid bounding box",
		http.StatusBadRequest,
	)

	ErrUnsupportedLanguage = New(
		"UNSUPPORTED_LANGUAGE",
		"Language is not supported",
		http.StatusBadRequest,
	)

	ErrInvalidFilterSyntax = New(
		"INVALID_FILTER_SYNTAX",
		"Malformed tag filter",
		http.StatusBadRequest,
	)

	ErrCardinalityMismatch = New(
		"CARDINALITY_MISMATCH",
		"Number of longitudes and latitudes don't match",
		http.StatusBadRequest,
	)

	ErrInvalidBody = New(
		"INVALID_BODY",
		"Invalid request body",
		http.StatusBadRequest,
	)
)

var (
	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
