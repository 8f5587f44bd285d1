package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/liftlog/workout-server-go/internal/errors"
	"github.com/liftlog/workout-server-go/internal/httputil"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

// pathID parses the named URL parameter as an integer id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput(name, "must be an integer")
	}
	return id, nil
}

// decodeBody decodes a single JSON value from the request body into dst. An
// empty body leaves dst untouched so callers can report missing fields;
// anything after the value is rejected.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return bodyError(err)
	}

	err = dec.Decode(&struct{}{})
	if errors.Is(err, io.EOF) {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperrors.PayloadTooLarge().WithCause(err)
	}
	return apperrors.ValidationError("Invalid request body").
		WithDetails(map[string]any{"offset": dec.InputOffset()}).
		WithCause(err)
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperrors.PayloadTooLarge().WithCause(err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.InvalidInput(typeErr.Field, "must be "+jsonKind(typeErr.Type.Kind().String()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.ValidationError("Invalid request body").
			WithDetails(map[string]any{"offset": syntaxErr.Offset}).
			WithCause(err)
	}
	return apperrors.ValidationError("Invalid request body").WithCause(err)
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64":
		return "an integer"
	case "string":
		return "a string"
	default:
		return "a " + goKind
	}
}
