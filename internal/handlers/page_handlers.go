package handlers

import "net/http"

// Home renders the landing page. The user is optional; the page adapts to
// whether someone is logged in.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "home.html", homeView{Title: "Home", User: a.currentUser(r)})
}

// Dashboard renders the member dashboard. It sits behind RequireAuth, but
// the user row can still be gone if the account was deleted after login;
// that counts as unauthenticated.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := a.currentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	a.render(w, r, http.StatusOK, "dashboard.html", dashboardView{Title: "Dashboard", User: user})
}
