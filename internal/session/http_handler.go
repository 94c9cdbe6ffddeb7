package session

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"librarycatalog/internal/httpx"
	"librarycatalog/internal/logger"
)

type HTTPHandler struct {
	service      *Service
	auth         Authenticator
	log          logrus.FieldLogger
	secureCookie bool
}

func NewHTTPHandler(service *Service, auth Authenticator, log logrus.FieldLogger, secureCookie bool) *HTTPHandler {
	return &HTTPHandler{
		service:      service,
		auth:         auth,
		log:          log,
		secureCookie: secureCookie,
	}
}

type loginReq struct {
	Email string `json:"email" validate:"required"`
}

// Login handles POST /api/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	s, err := h.auth.Login(r.Context(), req.Email)
	if err != nil {
		httpx.JSONCatalogError(w, r, err)
		return
	}
	s, err = h.service.Start(r.Context(), s)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if prev := httpx.SessionIDFrom(r); prev != "" {
		if err := h.service.End(r.Context(), prev); err != nil {
			logger.For(r.Context(), h.log).WithError(err).Warn("ending previous session failed")
		}
	}

	http.SetCookie(w, Cookie(s.ID, h.secureCookie))
	httpx.JSONSuccess(w, r, s, nil)
}

// Current handles GET /api/session
func (h *HTTPHandler) Current(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context(), httpx.SessionIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No active session", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, s, nil)
}
