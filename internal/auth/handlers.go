package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"evalhub/internal/api"
	"evalhub/internal/requestctx"
)

type Handler struct {
	DB              *pgxpool.Pool
	Secret          string
	TokenTTL        time.Duration
	AllowSelfSignup bool
}

func NewHandler(db *pgxpool.Pool, secret string, tokenTTL time.Duration, allowSelfSignup bool) *Handler {
	return &Handler{DB: db, Secret: secret, TokenTTL: tokenTTL, AllowSelfSignup: allowSelfSignup}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.AllowSelfSignup {
		api.Fail(w, http.StatusForbidden, "signup_disabled", "self signup is disabled", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	role := NormalizeRole(payload.Role)
	if email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", requestctx.GetRequestID(r.Context()))
		return
	}
	if !ValidRole(role) {
		api.Fail(w, http.StatusBadRequest, "invalid_role", "role must be Admin, Manager or Employee", requestctx.GetRequestID(r.Context()))
		return
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hash_error", "failed to hash password", requestctx.GetRequestID(r.Context()))
		return
	}

	var id string
	err = h.DB.QueryRow(r.Context(), `
    INSERT INTO users (email, password_hash, role)
    VALUES ($1,$2,$3)
    ON CONFLICT (email) DO NOTHING
    RETURNING id
  `, email, hash, role).Scan(&id)
	if err != nil {
		api.Fail(w, http.StatusConflict, "email_taken", "email is already registered", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id, "email": email, "role": role}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	var id, role, hash string
	err := h.DB.QueryRow(r.Context(), `
    SELECT id, role, password_hash
    FROM users
    WHERE email = $1
  `, strings.TrimSpace(strings.ToLower(payload.Email))).Scan(&id, &role, &hash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := GenerateToken(h.Secret, Claims{UserID: id, Email: payload.Email, Role: role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": id, "email": payload.Email, "role": role},
	}, requestctx.GetRequestID(r.Context()))
}

// HandleLogout is stateless; the client discards the token. The route exists so
// the console has a stable endpoint to call.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}
