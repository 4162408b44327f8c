// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/talentboard/careerhub/internal/app/store/users"
	"github.com/talentboard/careerhub/internal/app/system/auditlog"
	"github.com/talentboard/careerhub/internal/app/system/auth"
	"github.com/talentboard/careerhub/internal/app/system/authz"
	"github.com/talentboard/careerhub/internal/app/system/httpjson"
	"github.com/talentboard/careerhub/internal/app/system/normalize"
	"github.com/talentboard/careerhub/internal/app/system/ratelimit"
	"github.com/talentboard/careerhub/internal/app/system/requestid"
)

const loginTimeout = 10 * time.Second

// Handler authenticates users and issues bearer tokens plus cookie sessions.
type Handler struct {
	Users   *userstore.Store
	Auth    *auth.Manager
	Limiter *ratelimit.LoginLimiter
	Audit   *auditlog.Logger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, mgr *auth.Manager, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   userstore.New(db),
		Auth:    mgr,
		Limiter: limiter,
		Audit:   audit,
		Log:     logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  sessionView `json:"user"`
}

type sessionView struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HandleLogin verifies credentials and returns a bearer token. A cookie
// session is set as well so browser clients stay signed in.
//
// Route: POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.DecodeBody(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Email = normalize.Email(req.Email)
	if req.Email == "" || req.Password == "" {
		httpjson.ErrorDetails(w, http.StatusBadRequest, "validation failed", map[string]string{
			"email":    "required",
			"password": "required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), loginTimeout)
	defer cancel()

	if allowed, reason := h.Limiter.Check(r, req.Email); !allowed {
		h.Log.Warn("login rate limited",
			zap.String("reason", reason),
			zap.String("request_id", requestid.FromRequest(r)))
		h.Audit.LoginFailedRateLimit(ctx, r, req.Email, reason)
		httpjson.Error(w, http.StatusTooManyRequests, "too many login attempts, try again later")
		return
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err == mongo.ErrNoDocuments {
		h.Audit.LoginFailedUserNotFound(ctx, r, req.Email)
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}

	if u.Status != "" && u.Status != "active" {
		h.Audit.LoginFailedUserDisabled(ctx, r, u.ID, req.Email)
		httpjson.Forbidden(w, "account is disabled")
		return
	}
	if !userstore.CheckPassword(u.PasswordHash, req.Password) {
		h.Audit.LoginFailedWrongPassword(ctx, r, u.ID, req.Email)
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	sessionUser := auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
	token, err := h.Auth.IssueToken(sessionUser)
	if err != nil {
		h.Log.Error("token issue failed",
			zap.Error(err),
			zap.String("request_id", requestid.FromRequest(r)))
		httpjson.Internal(w)
		return
	}
	if err := h.Auth.SaveSession(w, r, sessionUser); err != nil {
		h.Log.Warn("session save failed", zap.Error(err))
	}

	h.Limiter.ResetEmail(req.Email)
	h.Audit.LoginSuccess(ctx, r, u.ID, u.Email)

	httpjson.OK(w, loginResponse{
		Token: token,
		User: sessionView{
			ID:       u.ID.Hex(),
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
		},
	})
}

// HandleLogout clears the cookie session. Bearer tokens simply expire.
//
// Route: POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if _, _, userID, ok := authz.UserCtx(r); ok {
		h.Audit.Logout(r.Context(), r, userID)
	}
	if err := h.Auth.ClearSession(w, r); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	httpjson.OKMessage(w, nil, "signed out")
}
