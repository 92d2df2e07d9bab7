package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/member-portal/app/internal/database"
	"github.com/member-portal/app/internal/models"
)

const SessionCookieName = "session_token"

// sessionLifetime bounds both the cookie and the server-side record.
const sessionLifetime = 24 * time.Hour

type sessionRecord struct {
	userID    int64
	expiresAt time.Time
}

// SessionManager maps opaque session tokens to authenticated user ids. The
// cookie value carries the token plus an HMAC signature under the session
// secret, so a fabricated cookie is rejected before any store lookup.
//
// The store is in-process; sessions do not survive a restart.
type SessionManager struct {
	secret []byte

	mu       sync.RWMutex
	sessions map[string]sessionRecord
}

// NewSessionManager creates a session manager signing cookies with secret.
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{
		secret:   []byte(secret),
		sessions: make(map[string]sessionRecord),
	}
}

// Establish creates a session for the user and issues its cookie. The
// session moves from Anonymous to Authenticated here and nowhere else.
func (m *SessionManager) Establish(w http.ResponseWriter, r *http.Request, userID int64) error {
	token, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	now := time.Now()
	m.mu.Lock()
	m.sessions[token.String()] = sessionRecord{userID: userID, expiresAt: now.Add(sessionLifetime)}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    m.sign(token.String()),
		Path:     "/",
		Expires:  now.Add(sessionLifetime),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve returns the user id behind the request's session cookie. A
// missing cookie, a bad signature, an unknown token and an expired session
// all yield ok == false; callers cannot and should not tell them apart.
func (m *SessionManager) Resolve(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return 0, false
	}
	token, ok := m.verify(cookie.Value)
	if !ok {
		return 0, false
	}

	m.mu.RLock()
	rec, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return 0, false
	}

	if time.Now().After(rec.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return 0, false
	}
	return rec.userID, true
}

// CurrentUser rehydrates the full user for the request's session. A session
// whose user has since been deleted counts as unauthenticated, not as an
// error.
func (m *SessionManager) CurrentUser(r *http.Request, db *sql.DB) (*models.User, error) {
	userID, ok := m.Resolve(r)
	if !ok {
		return nil, nil
	}
	user, err := database.GetUserByID(db, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Terminate removes the session and expires its cookie. The cookie may
// linger on the client but no longer resolves to anything.
func (m *SessionManager) Terminate(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		if token, ok := m.verify(cookie.Value); ok {
			m.mu.Lock()
			delete(m.sessions, token)
			m.mu.Unlock()
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// sign produces the cookie value "token.signature".
func (m *SessionManager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// verify checks the signature and returns the bare token.
func (m *SessionManager) verify(value string) (string, bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", false
	}
	return token, true
}
