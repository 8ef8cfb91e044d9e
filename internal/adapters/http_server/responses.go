package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"dealerhub/internal/domain"
)

// Gateway operations carry their logical outcome code in the body (the front
// end switches on it); the transport status mirrors it.

type dealersResponse struct {
	Status  int                 `json:"status"`
	Dealers []domain.Dealership `json:"dealers"`
}

type dealerResponse struct {
	Status int               `json:"status"`
	Dealer domain.Dealership `json:"dealer"`
}

type reviewsResponse struct {
	Status  int             `json:"status"`
	Reviews []domain.Review `json:"reviews"`
}

type submitResponse struct {
	Status   int            `json:"status"`
	Response map[string]any `json:"response"`
}

type carsResponse struct {
	CarModels []domain.CarEntry `json:"CarModels"`
}

type outcomeError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// add_review reports failures under "message", matching the front end
type outcomeMessage struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type authResponse struct {
	Username string `json:"userName"`
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeOutcomeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, outcomeError{Status: status, Error: msg})
}
