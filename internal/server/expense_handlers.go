package server

import (
	"net/http"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/service"
)

type settleShareRequest struct {
	IsSettled *bool `json:"isSettled"`
}

func (s *Server) handleExpenseList(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleExpenseGet(w http.ResponseWriter, r *http.Request) {
	expense, err := s.expenses.Get(r.Context(), UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleExpenseCreate(w http.ResponseWriter, r *http.Request) {
	var req service.ExpenseCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.expenses.Create(r.Context(), UserID(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleShareSettle(w http.ResponseWriter, r *http.Request) {
	var req settleShareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.IsSettled == nil {
		writeError(w, apperr.New(apperr.KindValidation, "isSettled is required"))
		return
	}

	share, err := s.expenses.SettleShare(r.Context(), UserID(r.Context()), r.PathValue("id"), *req.IsSettled)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, share)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.expenses.Balance(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}
