package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Envelope map[string]interface{}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	js, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("error marshaling JSON")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	js = append(js, '\n')
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(js); err != nil {
		log.Error().Err(err).Msg("error writing JSON response")
	}
}
