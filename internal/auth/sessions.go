package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"flight-management-system/internal/database"
	"flight-management-system/internal/models"
)

const sessionName = "flight-session"

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so login failures do not reveal which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionManager authenticates users and tracks their identity in a signed
// cookie. Only the user ID is stored client-side; the role is re-read from
// the database on every request so deactivated accounts drop out
// immediately.
type SessionManager struct {
	store *sessions.CookieStore
	db    *database.DB
}

func NewSessionManager(db *database.DB, secret string, maxAge int) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, db: db}
}

// Login verifies credentials and establishes a session. Returns the
// authenticated actor.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, username, password string) (*models.Actor, error) {
	user, err := m.db.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, _ := m.store.Get(r, sessionName)
	session.Values["userID"] = user.ID
	if err := session.Save(r, w); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &models.Actor{ID: user.ID, Username: user.Username, Name: user.Name, Role: user.Role}, nil
}

// Logout invalidates the session.
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	delete(session.Values, "userID")
	return session.Save(r, w)
}

// Current resolves the actor behind a request, or nil if the request is
// unauthenticated or the account no longer exists or is inactive.
func (m *SessionManager) Current(r *http.Request) (*models.Actor, error) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil, nil // tampered cookie: treat as unauthenticated
	}

	userID, ok := session.Values["userID"].(int64)
	if !ok {
		return nil, nil
	}

	user, err := m.db.GetUser(userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &models.Actor{ID: user.ID, Username: user.Username, Name: user.Name, Role: user.Role}, nil
}
