// Package server wires the application services to their HTTP routes:
// JSON encoding, JWT auth, request logging, CORS and metrics.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nkale/homeboard/internal/auth"
	"github.com/nkale/homeboard/internal/service"
	"github.com/nkale/homeboard/internal/storage"
)

// Server holds the services and exposes them as an http.Handler.
type Server struct {
	store         storage.Store
	jwt           *auth.JWTManager
	auth          *service.AuthService
	households    *service.HouseholdService
	chores        *service.ChoreService
	expenses      *service.ExpenseService
	shopping      *service.ShoppingService
	wall          *service.WallService
	notifications *service.NotificationService
}

// New creates a Server around the given services.
func New(
	store storage.Store,
	jwt *auth.JWTManager,
	authSvc *service.AuthService,
	households *service.HouseholdService,
	chores *service.ChoreService,
	expenses *service.ExpenseService,
	shopping *service.ShoppingService,
	wall *service.WallService,
	notifications *service.NotificationService,
) *Server {
	return &Server{
		store:         store,
		jwt:           jwt,
		auth:          authSvc,
		households:    households,
		chores:        chores,
		expenses:      expenses,
		shopping:      shopping,
		wall:          wall,
		notifications: notifications,
	}
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	api := http.NewServeMux()
	api.HandleFunc("GET /api/households/me", s.handleHouseholdMe)
	api.HandleFunc("POST /api/households", s.handleHouseholdCreate)
	api.HandleFunc("POST /api/households/join", s.handleHouseholdJoin)
	api.HandleFunc("POST /api/households/leave", s.handleHouseholdLeave)

	api.HandleFunc("GET /api/chores", s.handleChoreList)
	api.HandleFunc("POST /api/chores", s.handleChoreCreate)
	api.HandleFunc("PATCH /api/chores/{id}", s.handleChoreUpdate)
	api.HandleFunc("DELETE /api/chores/{id}", s.handleChoreDelete)
	api.HandleFunc("POST /api/chores/{id}/comments", s.handleChoreComment)

	api.HandleFunc("GET /api/expenses", s.handleExpenseList)
	api.HandleFunc("POST /api/expenses", s.handleExpenseCreate)
	api.HandleFunc("GET /api/expenses/balance", s.handleBalance)
	api.HandleFunc("GET /api/expenses/{id}", s.handleExpenseGet)
	api.HandleFunc("PATCH /api/expenses/shares/{id}", s.handleShareSettle)

	api.HandleFunc("GET /api/shopping", s.handleShoppingList)
	api.HandleFunc("POST /api/shopping", s.handleShoppingCreate)
	api.HandleFunc("PATCH /api/shopping/{id}", s.handleShoppingUpdate)
	api.HandleFunc("DELETE /api/shopping/{id}", s.handleShoppingDelete)

	api.HandleFunc("GET /api/wall", s.handleWallList)
	api.HandleFunc("POST /api/wall", s.handleWallCreate)
	api.HandleFunc("DELETE /api/wall/{id}", s.handleWallDelete)

	api.HandleFunc("GET /api/notifications", s.handleNotificationList)
	api.HandleFunc("PATCH /api/notifications/read-all", s.handleNotificationReadAll)
	api.HandleFunc("PATCH /api/notifications/{id}/read", s.handleNotificationRead)

	mux.Handle("/api/", requireAuth(s.jwt, api))

	return withLogging(withCORS(withMetrics(mux)))
}

// handleHealth pings the backing store.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
