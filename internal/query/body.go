package query

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
	"github.com/geocoder-api/internal/pkg/validator"
	"github.com/geocoder-api/internal/usecase/dto"
)

const unknownFieldPrefix = "json: unknown field "

// DecodeBody strictly decodes one JSON document into dst and validates it.
// Unknown fields are rejected like unknown query parameters.
func DecodeBody(data []byte, dst interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.ErrInvalidBody.Newf("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.ErrInvalidBody.Newf("request body must contain a single JSON object")
	}

	return validator.Validate(dst)
}

func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if isCoordinateField(field) {
			return errors.ErrInvalidCoordinate.Newf("invalid param '%s', expected a number", field)
		}
		if isNumeric(typeErr.Type) {
			return errors.ErrInvalidNumber.Newf("invalid param '%s', expected a number", field)
		}
		return errors.ErrInvalidBody.Newf("invalid param '%s', unexpected %s", field, typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.ErrInvalidBody.Newf("malformed JSON body at offset %d", syntaxErr.Offset)
	}

	if name, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		return errors.ErrUnknownParameter.
			Newf("unknown parameter '%s'", name).
			WithDetails(map[string]interface{}{"parameter": name})
	}

	return errors.ErrInvalidBody.Newf("invalid request body: %v", err)
}

func isCoordinateField(field string) bool {
	return field == "lon" || field == "lat" ||
		strings.HasSuffix(field, ".lon") || strings.HasSuffix(field, ".lat")
}

func isNumeric(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// bodyLocation resolves either the nested "location" object or the flat lon/lat pair.
func bodyLocation(lon, lat *float64, loc *dto.Location, mandatory bool) (*domain.Point, error) {
	if loc != nil {
		if lon != nil || lat != nil {
			return nil, errors.ErrInvalidParameter.Newf("either 'location' or 'lon' and 'lat' may be given, not both")
		}
		lon, lat = loc.Lon, loc.Lat
	}

	if lon == nil && lat == nil {
		if mandatory {
			return nil, errors.ErrMissingRequiredField.Newf("missing param 'lat' and 'lon', try instead {\"lat\": 51.5, \"lon\": 8.0}")
		}
		return nil, nil
	}
	if lon == nil || lat == nil {
		return nil, errors.ErrInvalidCoordinate.Newf("missing param 'lat' or 'lon', try instead {\"lat\": 51.5, \"lon\": 8.0}")
	}

	p := domain.Point{Lat: *lat, Lon: *lon}
	if err := CheckLocation(p); err != nil {
		return nil, err
	}
	return &p, nil
}

func checkBulkSize(n, max int, what string) error {
	if max > 0 && n > max {
		return errors.ErrInvalidParameter.
			Newf("too many %s: %d, at most %d are allowed per request", what, n, max).
			WithDetails(map[string]interface{}{"count": n, "max": max})
	}
	return nil
}

func errMissingLocations() error {
	return errors.ErrMissingRequiredField.Newf("missing locations")
}
