package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// CashFlowHandler answers the period summary. Accepts optional "from" and
// "to" query parameters in RFC 3339 or plain date form.
func (s *Server) CashFlowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		from, ok := parseDateParam(w, q.Get("from"), "from")
		if !ok {
			return
		}
		to, ok := parseDateParam(w, q.Get("to"), "to")
		if !ok {
			return
		}

		report, err := s.reports.CashFlow(from, to)
		if err != nil {
			log.Error().Err(err).Msg("[CashFlowHandler] computing cash flow")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func parseDateParam(w http.ResponseWriter, value, field string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	writeError(w, http.StatusBadRequest, field, "invalid date")
	return time.Time{}, false
}
