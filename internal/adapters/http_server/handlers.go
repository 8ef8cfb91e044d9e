// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"dealerhub/internal/app"
	"dealerhub/internal/domain"
)

type Handlers struct {
	GW         *app.GatewayService
	Auth       *app.AuthService
	SessionTTL time.Duration
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/dealers", h.listDealers)
	s.mux.Get("/dealer/{id}", h.getDealer)
	s.mux.Get("/reviews/dealer/{id}", h.listReviews)
	s.mux.Post("/add_review", h.addReview)
	s.mux.Get("/cars", h.listCars)
	s.mux.Post("/register", h.register)
	s.mux.Post("/login", h.login)
	s.mux.Post("/logout", h.logout)
}

// credential resolves the caller's session cookie, if any. A missing or
// expired session is not an error here; handlers decide whether it matters.
func (h *Handlers) credential(r *http.Request) (*domain.Credential, error) {
	ck, err := r.Cookie(domain.SessionCookie)
	if err != nil {
		return nil, nil
	}
	return h.Auth.Authenticate(r.Context(), ck.Value)
}

func (h *Handlers) listDealers(w http.ResponseWriter, r *http.Request) {
	cred, err := h.credential(r)
	if err != nil {
		writeOutcomeError(w, http.StatusInternalServerError, "Session lookup failed")
		return
	}
	state := r.URL.Query().Get("state")
	dealers, err := h.GW.ListDealers(r.Context(), state, cred)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			writeOutcomeError(w, http.StatusForbidden, "Unauthorized")
			return
		}
		writeOutcomeError(w, http.StatusInternalServerError, "No dealerships found or backend API failed.")
		return
	}
	writeJSON(w, http.StatusOK, dealersResponse{Status: 200, Dealers: dealers})
}

func (h *Handlers) getDealer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeOutcomeError(w, http.StatusBadRequest, "Dealer id must be a number")
		return
	}
	dealer, err := h.GW.GetDealer(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeOutcomeError(w, http.StatusNotFound, "Dealer not found")
			return
		}
		writeOutcomeError(w, http.StatusInternalServerError, "Failed to retrieve dealer details")
		return
	}
	writeJSON(w, http.StatusOK, dealerResponse{Status: 200, Dealer: dealer})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeOutcomeError(w, http.StatusBadRequest, "Dealer id must be a number")
		return
	}
	reviews, err := h.GW.ListDealerReviews(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeOutcomeError(w, http.StatusNotFound, "No reviews found for this dealer")
			return
		}
		writeOutcomeError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviewsResponse{Status: 200, Reviews: reviews})
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	cred, err := h.credential(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, outcomeMessage{Status: 500, Message: "Session lookup failed"})
		return
	}
	if cred == nil {
		writeJSON(w, http.StatusForbidden, outcomeMessage{Status: 403, Message: "Unauthorized"})
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil || !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, outcomeMessage{Status: 400, Message: "Invalid JSON payload"})
		return
	}
	resp, err := h.GW.SubmitReview(r.Context(), cred, body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, outcomeMessage{Status: 500, Message: "Failed to submit review"})
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Status: 200, Response: resp})
}

func (h *Handlers) listCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.GW.ListCars(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list cars failed")
		writeOutcomeError(w, http.StatusInternalServerError, "Failed to retrieve cars")
		return
	}
	writeJSON(w, http.StatusOK, carsResponse{CarModels: cars})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var in app.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Error: "Invalid JSON payload"})
		return
	}
	token, err := h.Auth.Register(r.Context(), in)
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, authResponse{Error: "Missing username or password"})
	case errors.Is(err, domain.ErrDuplicateUser):
		writeJSON(w, http.StatusConflict, authResponse{Username: in.Username, Error: "Already Registered"})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, authResponse{Error: "An error occurred while registering"})
	default:
		h.setSession(w, token)
		writeJSON(w, http.StatusOK, authResponse{Username: in.Username, Status: "Authenticated"})
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"userName"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Error: "Invalid JSON payload"})
		return
	}
	token, err := h.Auth.Login(r.Context(), in.Username, in.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, authResponse{Username: in.Username, Error: "Invalid credentials"})
	case err != nil:
		log.Error().Err(err).Str("user", in.Username).Msg("login failed")
		writeJSON(w, http.StatusInternalServerError, authResponse{Error: "An error occurred while logging in"})
	default:
		h.setSession(w, token)
		writeJSON(w, http.StatusOK, authResponse{Username: in.Username, Status: "Authenticated"})
	}
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(domain.SessionCookie); err == nil {
		h.Auth.Logout(r.Context(), ck.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: domain.SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	writeJSON(w, http.StatusOK, authResponse{Username: ""})
}

func (h *Handlers) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     domain.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
