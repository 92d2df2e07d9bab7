package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/member-portal/app/internal/auth"
	"github.com/member-portal/app/internal/database"
)

const (
	signupValidationError = "All fields required, passwords must match."
	duplicateEmailError   = "Email already in use."
)

// SignupPage renders the signup form.
func (a *App) SignupPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "signup.html", signupView{Title: "Sign Up"})
}

// Signup handles the signup form submission.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.RenderErrorPage(w, r, http.StatusBadRequest, "Could not parse form data.")
		return
	}

	firstName := r.FormValue("firstName")
	lastName := r.FormValue("lastName")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirmPassword")

	// One generic message for any missing field or mismatch; the form does
	// not report field-level errors.
	if firstName == "" || lastName == "" || email == "" || password == "" || password != confirmPassword {
		a.render(w, r, http.StatusOK, "signup.html", signupView{Title: "Sign Up", Error: signupValidationError})
		return
	}

	// Friendly pre-check. Two concurrent signups can both pass it; the
	// unique index catches the loser below.
	_, err := database.GetUserByEmail(a.DB, email)
	if err == nil {
		a.render(w, r, http.StatusOK, "signup.html", signupView{Title: "Sign Up", Error: duplicateEmailError})
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		a.internalError(w, r, err)
		return
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		a.internalError(w, r, err)
		return
	}

	_, err = database.CreateUser(a.DB, firstName, lastName, email, hashedPassword)
	if errors.Is(err, database.ErrDuplicateEmail) {
		a.render(w, r, http.StatusOK, "signup.html", signupView{Title: "Sign Up", Error: duplicateEmailError})
		return
	}
	if err != nil {
		a.internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginPage renders the login form.
func (a *App) LoginPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "login.html", loginView{Title: "Log In"})
}

// Login handles the login form submission. Every authentication failure
// redirects back to the login page with no detail: the client cannot tell
// an unknown email from a wrong password.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.RenderErrorPage(w, r, http.StatusBadRequest, "Could not parse form data.")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := database.GetUserByEmail(a.DB, email)
	if errors.Is(err, sql.ErrNoRows) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		a.internalError(w, r, err)
		return
	}

	match, err := auth.CheckPassword(user.HashedPassword, password)
	if err != nil {
		// Malformed digest in the store, not a wrong password.
		a.internalError(w, r, err)
		return
	}
	if !match {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := a.Sessions.Establish(w, r, user.ID); err != nil {
		a.internalError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout terminates the session and sends the user back to the login page.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Terminate(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}
