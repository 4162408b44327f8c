// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/talentboard/careerhub/internal/app/system/httpjson"
)

const (
	isAuthKey  = "is_authenticated"
	userIDKey  = "user_id"
	userName   = "user_name"
	userEmail  = "user_email"
	userRole   = "user_role"
)

// SessionUser is what we resolve per request and inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// Manager resolves the per-request user from either a bearer token or a
// cookie session, and issues both on login.
type Manager struct {
	tokenKey    []byte
	tokenTTL    time.Duration
	store       *sessions.CookieStore
	sessionName string
	logger      *zap.Logger
}

// NewManager builds an auth Manager. tokenKey signs bearer JWTs; sessionKey
// signs the cookie store used by browser clients. The `secure` flag controls
// whether cookies are marked Secure.
func NewManager(tokenKey, sessionKey, sessionName, domain string, secure bool, tokenTTL time.Duration, logger *zap.Logger) (*Manager, error) {
	if tokenKey == "" {
		return nil, fmt.Errorf("token key is empty; provide ≥32 random chars")
	}
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(tokenKey) < 32 || len(sessionKey) < 32 {
		logger.Warn("auth key is short; 32+ chars recommended")
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &Manager{
		tokenKey:    []byte(tokenKey),
		tokenTTL:    tokenTTL,
		store:       store,
		sessionName: sessionName,
		logger:      logger,
	}, nil
}

// IssueToken mints a signed bearer token for the user.
func (m *Manager) IssueToken(u SessionUser) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(m.tokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.tokenKey)
}

// parseToken validates a bearer token and reconstructs the SessionUser.
func (m *Manager) parseToken(raw string) (*SessionUser, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.tokenKey, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &SessionUser{ID: sub, Name: name, Email: email, Role: role}, nil
}

// SaveSession writes the user into the cookie session (browser clients).
func (m *Manager) SaveSession(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := m.store.Get(r, m.sessionName)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userName] = u.Name
	sess.Values[userEmail] = u.Email
	sess.Values[userRole] = u.Role
	return sess.Save(r, w)
}

// ClearSession removes the cookie session.
func (m *Manager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.sessionName)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if the request carries a
// valid bearer token or cookie session. Requests without credentials pass
// through unauthenticated; enforcement belongs to RequireSignedIn/RequireRole.
func (m *Manager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := m.userFromBearer(r); u != nil {
			next.ServeHTTP(w, withUser(r, u))
			return
		}
		if u := m.userFromSession(r); u != nil {
			next.ServeHTTP(w, withUser(r, u))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Manager) userFromBearer(r *http.Request) *SessionUser {
	h := r.Header.Get("Authorization")
	if h == "" {
		return nil
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	u, err := m.parseToken(parts[1])
	if err != nil {
		m.logger.Debug("bearer token rejected", zap.Error(err))
		return nil
	}
	return u
}

func (m *Manager) userFromSession(r *http.Request) *SessionUser {
	sess, _ := m.store.Get(r, m.sessionName)
	if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
		return nil
	}
	return &SessionUser{
		ID:    getString(sess, userIDKey),
		Name:  getString(sess, userName),
		Email: getString(sess, userEmail),
		Role:  getString(sess, userRole),
	}
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures there is a user with one of the allowed roles in context.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				httpjson.Unauthorized(w)
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				httpjson.Forbidden(w, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user directly into the request context.
// Test-only escape hatch; production code resolves users via LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
