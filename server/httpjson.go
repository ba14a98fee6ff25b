package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// errorResponse is the wire shape for all API errors. Field is set when the
// error relates to a specific input field so the SPA can highlight it.
type errorResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("[writeJSON] encoding response")
	}
}

func writeError(w http.ResponseWriter, statusCode int, field, message string) {
	writeJSON(w, statusCode, errorResponse{Field: field, Message: message})
}

// decodeAndValidate decodes the request body into v and runs struct
// validation. On failure it writes the error response and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "", "invalid request body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := jsonFieldName(verrs[0].Field())
			writeError(w, http.StatusBadRequest, field, "invalid value for "+field)
			return false
		}
		writeError(w, http.StatusBadRequest, "", "validation failed")
		return false
	}
	return true
}

// paginationParams reads offset/limit query parameters. Zero limit means
// "no limit" at the repo layer.
func paginationParams(r *http.Request) (offset, limit int) {
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		offset = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return offset, limit
}

// jsonFieldName lowercases the leading rune of a Go struct field name so the
// error response points at the JSON key the SPA sent.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
