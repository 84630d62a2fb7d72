package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MikeSquared-Agency/Moora/internal/ranking"
	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeBody reads a JSON body of at most maxBytes into v and runs struct
// validation on it. It writes the error response itself and reports whether
// the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, v interface{}) bool {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
		case scoring.Kind(err) != "":
			// An unrecognized direction label fails while decoding.
			writeScoringError(w, err)
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

// writeScoringError maps engine and service errors onto HTTP responses.
func writeScoringError(w http.ResponseWriter, err error) {
	if kind := scoring.Kind(err); kind != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "kind": kind})
		return
	}
	if errors.Is(err, ranking.ErrInvalidRequest) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
