package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/tripplanner/internal/common"
	"github.com/dmitrijs2005/tripplanner/internal/itinerary"
	"github.com/go-playground/validator/v10"
)

const (
	msgUserExists         = "User exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUnauthorized       = "unauthorized"
	msgInternal           = "internal error"
)

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 1 << 20

	// maxGenerateDays bounds the response size of /generate.
	maxGenerateDays = 10000
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decode reads a JSON body into dst and checks its required fields.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("missing field: %s", jsonFieldName(verrs[0].Field()))
		}
		return err
	}
	return nil
}

func jsonFieldName(field string) string {
	switch field {
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Destination":
		return "destination"
	}
	return field
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.Register(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, msgUserExists)
	case err != nil:
		s.logger.Error(r.Context(), "register failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	default:
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
	case err != nil:
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	default:
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	days := itinerary.CoerceDays(string(req.Days))
	if days > maxGenerateDays {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("days must not exceed %d", maxGenerateDays))
		return
	}
	userID, _ := r.Context().Value(userIDKey).(string)
	s.logger.Debug(r.Context(), "generating itinerary", "user_id", userID, "destination", req.Destination, "days", days)

	writeJSON(w, http.StatusOK, itineraryResponse{Itinerary: itinerary.Build(req.Destination, days)})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
