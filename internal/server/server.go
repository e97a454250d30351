package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"recipehub/internal/app"
	"recipehub/internal/util"
	"recipehub/pkg/domain"
)

// AuthHeader carries the session token on every authenticated request.
const AuthHeader = "X-Authorization"

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
}

// Server exposes the HTTP endpoints of the recipe service.
type Server struct {
	app *app.App
	mux *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app: cfg.App,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler with the middleware chain applied.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog("recipehub", util.WithSecurityHeaders(util.WithCORS(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// auth
	s.mux.HandleFunc("/users/register", s.handleRegister)
	s.mux.HandleFunc("/users/login", s.handleLogin)
	s.mux.HandleFunc("/users/logout", s.handleLogout)

	// recipes
	s.mux.HandleFunc("/data/recipes", s.handleRecipes)
	s.mux.HandleFunc("/data/recipes/", s.handleRecipeByID)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type authHandler func(http.ResponseWriter, *http.Request, domain.User)

func (s *Server) authenticated(next authHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(r)
		if !ok {
			s.audit(r, "auth.authorize", "fail", "reason", "missing_token")
			writeError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		user, ok := s.app.UserFromToken(token)
		if !ok {
			s.audit(r, "auth.authorize", "fail", "reason", "invalid_token")
			writeError(w, http.StatusUnauthorized, app.ErrUnauthorized.Error())
			return
		}
		next(w, r, user)
	}
}

// auth handlers
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req authRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user, token, err := s.app.Register(req.Email, req.Password)
	if err != nil {
		s.audit(r, "auth.register", "fail", "reason", err.Error())
		writeAppError(w, err)
		return
	}
	s.audit(r, "auth.register", "success", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, authResponse{
		ID:          user.ID,
		Email:       user.Email,
		AccessToken: token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req authRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user, token, err := s.app.Login(req.Email, req.Password)
	if err != nil {
		s.audit(r, "auth.login", "fail", "reason", err.Error())
		writeAppError(w, err)
		return
	}
	s.audit(r, "auth.login", "success", "user_id", user.ID)
	writeJSON(w, http.StatusOK, authResponse{
		ID:          user.ID,
		Email:       user.Email,
		AccessToken: token,
	})
}

// handleLogout always succeeds, even for unknown or absent tokens.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if token, ok := accessToken(r); ok {
		_ = s.app.Logout(token)
		s.audit(r, "auth.logout", "success")
	}
	w.WriteHeader(http.StatusNoContent)
}

// /data/recipes
func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		recipes, err := s.app.ListRecipes()
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	case http.MethodPost:
		s.authenticated(s.handleCreateRecipe)(w, r)
	default:
		methodNotAllowed(w)
	}
}

// /data/recipes/{id}
func (s *Server) handleRecipeByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/data/recipes/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		recipe, err := s.app.GetRecipe(id)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	case http.MethodPut:
		s.authenticated(func(w http.ResponseWriter, r *http.Request, user domain.User) {
			s.handleUpdateRecipe(w, r, user, id)
		})(w, r)
	case http.MethodDelete:
		s.authenticated(func(w http.ResponseWriter, _ *http.Request, user domain.User) {
			if err := s.app.DeleteRecipe(user, id); err != nil {
				writeAppError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request, user domain.User) {
	var input domain.RecipeInput
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	recipe, err := s.app.CreateRecipe(user, input)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request, user domain.User, id string) {
	var input domain.RecipeInput
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	recipe, err := s.app.UpdateRecipe(user, id, input)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

func accessToken(r *http.Request) (string, bool) {
	token := strings.TrimSpace(r.Header.Get(AuthHeader))
	if token == "" {
		return "", false
	}
	return token, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeAppError maps core errors onto HTTP statuses.
func writeAppError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func (s *Server) audit(r *http.Request, event, outcome string, attrs ...any) {
	logAttrs := []any{
		"event", event,
		"outcome", outcome,
		"path", r.URL.Path,
		"method", r.Method,
		"ip", util.ClientIP(r, nil),
	}
	logAttrs = append(logAttrs, attrs...)
	if outcome == "success" {
		slog.Info("security_event", logAttrs...)
		return
	}
	slog.Warn("security_event", logAttrs...)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, app.ErrFieldsRequired):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrInvalidCredentials), errors.Is(err, app.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, app.ErrRecipeNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
