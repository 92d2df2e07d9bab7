package handlers

import "net/http"

// Routes wires every route onto a fresh mux. The server binary and the
// handler tests both go through here, so they always agree on routing.
func Routes(app *App, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Static File Server
	fs := http.FileServer(http.Dir(staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	// Landing page; anything else under / is a 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			app.RenderErrorPage(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
			return
		}
		app.Home(w, r)
	})

	// Authentication Routes
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.SignupPage(w, r)
		case http.MethodPost:
			app.Signup(w, r)
		default:
			app.RenderErrorPage(w, r, http.StatusMethodNotAllowed, "This method is not supported for /signup.")
		}
	})

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			app.LoginPage(w, r)
		case http.MethodPost:
			app.Login(w, r)
		default:
			app.RenderErrorPage(w, r, http.StatusMethodNotAllowed, "This method is not supported for /login.")
		}
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			app.Logout(w, r)
		} else {
			app.RenderErrorPage(w, r, http.StatusMethodNotAllowed, "This method is not supported for /logout.")
		}
	})

	// Protected Routes
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			app.RequireAuth(app.Dashboard)(w, r)
		} else {
			app.RenderErrorPage(w, r, http.StatusMethodNotAllowed, "This method is not supported for /dashboard.")
		}
	})

	return mux
}
