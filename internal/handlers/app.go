// Package handlers wires the HTTP routes: signup, login, logout, landing
// page and the session-gated dashboard.
package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/member-portal/app/internal/auth"
	"github.com/member-portal/app/internal/models"
)

// App carries the dependencies every handler needs. It is constructed once
// in main and passed around explicitly; there is no package-level state.
type App struct {
	DB       *sql.DB
	Sessions *auth.SessionManager
	Renderer *Renderer
}

// NewApp builds the handler context.
func NewApp(db *sql.DB, sessions *auth.SessionManager, renderer *Renderer) *App {
	return &App{DB: db, Sessions: sessions, Renderer: renderer}
}

// RequireAuth protects a route: requests without a live session are
// redirected to the login page. An expired session and no session at all
// are treated identically.
func (a *App) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.Sessions.Resolve(r); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// currentUser returns the authenticated user for the request, or nil. A
// storage failure is logged and reported as "no user" so pages that only
// use the user for the navbar still render.
func (a *App) currentUser(r *http.Request) *models.User {
	user, err := a.Sessions.CurrentUser(r, a.DB)
	if err != nil {
		log.Printf("resolving current user: %v", err)
		return nil
	}
	return user
}

// View models, one per rendered page. The layout reads Title and User.

type homeView struct {
	Title string
	User  *models.User
}

type signupView struct {
	Title string
	User  *models.User
	Error string
}

type loginView struct {
	Title   string
	User    *models.User
	Message string
}

type dashboardView struct {
	Title string
	User  *models.User
}

type errorView struct {
	Title      string
	User       *models.User
	StatusCode int
	StatusText string
	Message    string
}

// RenderErrorPage renders the shared error template with the given status.
func (a *App) RenderErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	data := errorView{
		Title:      http.StatusText(statusCode),
		User:       a.currentUser(r),
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
		Message:    message,
	}
	if err := a.Renderer.Render(w, statusCode, "error.html", data); err != nil {
		log.Printf("rendering error page: %v", err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// internalError logs the failure for operators and shows the user a
// generic 500 page. Raw error detail never reaches the client.
func (a *App) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("internal error on %s %s: %v", r.Method, r.URL.Path, err)
	a.RenderErrorPage(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

// render is the happy-path wrapper around Renderer.Render; a failing
// template is an internal error like any other.
func (a *App) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	if err := a.Renderer.Render(w, status, name, data); err != nil {
		a.internalError(w, r, err)
	}
}
