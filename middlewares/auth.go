package middlewares

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const sessionName = "tastebook"

var (
	store *sessions.CookieStore

	// adminToken is generated once per process, so every established
	// session dies with a restart along with the cookie signing key.
	adminToken string
)

func InitSessions(secret []byte) {
	store = sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	adminToken = uuid.NewString()
}

func EstablishAdminSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	session.Values["admin_token"] = adminToken
	return session.Save(r, w)
}

// ClearSession drops the admin token but keeps the cookie alive so a
// farewell flash can still be delivered.
func ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	delete(session.Values, "admin_token")
	return session.Save(r, w)
}

func IsAdmin(r *http.Request) bool {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return false
	}
	token, ok := session.Values["admin_token"].(string)
	return ok && token == adminToken
}

// AdminOnly guards mutating routes: anything without the admin session
// gets a bare 403.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func AddFlash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := store.Get(r, sessionName)
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Error("failed to save flash")
	}
}

// Flashes drains pending flash messages. Saving the session is what
// removes them from the cookie.
func Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Error("failed to save session")
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
