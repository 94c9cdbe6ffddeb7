package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"librarycatalog/internal/httpx"
	"librarycatalog/internal/logger"
	"librarycatalog/internal/session"
	"librarycatalog/internal/view"
)

// PageHandler drives the login and search sections of the catalog page.
type PageHandler struct {
	facade       Facade
	sessions     Sessions
	renderer     *view.Renderer
	log          logrus.FieldLogger
	secureCookie bool
}

func NewPageHandler(facade Facade, sessions Sessions, renderer *view.Renderer, log logrus.FieldLogger, secureCookie bool) *PageHandler {
	return &PageHandler{
		facade:       facade,
		sessions:     sessions,
		renderer:     renderer,
		log:          log,
		secureCookie: secureCookie,
	}
}

type loginForm struct {
	Email string `validate:"required"`
}

type searchForm struct {
	Query string `validate:"required"`
}

// current returns the session for this request, or nil when logged out.
func (h *PageHandler) current(r *http.Request) *session.Session {
	id := httpx.SessionIDFrom(r)
	if id == "" {
		return nil
	}
	s, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			logger.For(r.Context(), h.log).WithError(err).Warn("session lookup failed")
		}
		return nil
	}
	return &s
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.NewPage(h.current(r)))
}

// Login handles POST /login
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	form := loginForm{Email: r.PostForm.Get("email")}
	prev := h.current(r)
	page := view.NewPage(prev)
	page.Email = form.Email

	if details := httpx.ValidateStruct(form); len(details) > 0 {
		page.Alert = view.AlertEmailMissing
		h.render(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	s, err := h.facade.Login(r.Context(), form.Email)
	if err != nil {
		h.unavailable(w, r, page, err)
		return
	}
	s, err = h.sessions.Start(r.Context(), s)
	if err != nil {
		h.unavailable(w, r, page, err)
		return
	}
	if prev != nil {
		if err := h.sessions.End(r.Context(), prev.ID); err != nil {
			logger.For(r.Context(), h.log).WithError(err).Warn("ending previous session failed")
		}
	}

	logger.For(r.Context(), h.log).WithField("email", s.Email).Info("user logged in")
	http.SetCookie(w, session.Cookie(s.ID, h.secureCookie))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register handles POST /register. The button is present on the page but
// registration does nothing.
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if id := httpx.SessionIDFrom(r); id != "" {
		if err := h.sessions.End(r.Context(), id); err != nil {
			logger.For(r.Context(), h.log).WithError(err).Warn("logout failed")
		}
	}
	http.SetCookie(w, session.ExpiredCookie(h.secureCookie))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Search handles GET /search?q= and renders the full page.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	s := h.current(r)
	if s == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := searchForm{Query: r.URL.Query().Get("q")}
	page := view.NewPage(s)
	page.Query = form.Query

	if details := httpx.ValidateStruct(form); len(details) > 0 {
		page.Alert = view.AlertQueryMissing
		h.render(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	books, err := h.facade.SearchBooks(r.Context(), form.Query)
	if err != nil {
		h.unavailable(w, r, page, err)
		return
	}
	page.Results = view.ResultsFor(form.Query, books)
	h.render(w, r, http.StatusOK, page)
}

// SearchResults handles GET /search/results?q= and renders only the
// contents of the results container.
func (h *PageHandler) SearchResults(w http.ResponseWriter, r *http.Request) {
	if h.current(r) == nil {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}

	form := searchForm{Query: r.URL.Query().Get("q")}
	if details := httpx.ValidateStruct(form); len(details) > 0 {
		http.Error(w, view.AlertQueryMissing, http.StatusUnprocessableEntity)
		return
	}

	books, err := h.facade.SearchBooks(r.Context(), form.Query)
	if err != nil {
		logger.For(r.Context(), h.log).WithError(err).Warn("search failed")
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Results(&buf, view.ResultsFor(form.Query, books)); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// unavailable re-renders page, keeping what the user typed.
func (h *PageHandler) unavailable(w http.ResponseWriter, r *http.Request, page view.Page, err error) {
	logger.For(r.Context(), h.log).WithError(err).Warn("catalog call failed")
	page.Alert = "The catalog is unavailable, please try again"
	h.render(w, r, http.StatusServiceUnavailable, page)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page view.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger.For(r.Context(), h.log).WithError(err).Error("render failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}
