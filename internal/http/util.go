package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// paginationParams parses limit/offset with the directory defaults: limit 50
// capped by maxLimit, offset 0. On a bad value it writes the 422 itself and
// returns ok=false.
func paginationParams(w http.ResponseWriter, r *http.Request, maxLimit int) (limit, offset int, ok bool) {
	limit = 50
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxLimit {
			writeError(w, http.StatusUnprocessableEntity,
				fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit))
			return 0, 0, false
		}
		limit = v
	}
	offset = 0
	if s := r.URL.Query().Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(w, http.StatusUnprocessableEntity, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}

// positiveIDParam parses a required positive integer query parameter.
// Writes the 422 itself and returns ok=false on absence or a bad value.
func positiveIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	s := r.URL.Query().Get(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		writeError(w, http.StatusUnprocessableEntity, name+" must be a positive integer")
		return 0, false
	}
	return v, true
}

// optionalPositiveIDParam parses an optional positive integer query
// parameter, nil when absent.
func optionalPositiveIDParam(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		writeError(w, http.StatusUnprocessableEntity, name+" must be a positive integer")
		return nil, false
	}
	return &v, true
}

// optionalFloatParam parses an optional float query parameter, nil when absent.
func optionalFloatParam(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, name+" must be a number")
		return nil, false
	}
	return &v, true
}
