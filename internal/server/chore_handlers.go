package server

import (
	"net/http"

	"github.com/nkale/homeboard/internal/service"
)

type choreCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleChoreList(w http.ResponseWriter, r *http.Request) {
	chores, err := s.chores.List(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chores)
}

func (s *Server) handleChoreCreate(w http.ResponseWriter, r *http.Request) {
	var req service.ChoreCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	chore, err := s.chores.Create(r.Context(), UserID(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, chore)
}

func (s *Server) handleChoreUpdate(w http.ResponseWriter, r *http.Request) {
	var req service.ChoreUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	chore, err := s.chores.Update(r.Context(), UserID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chore)
}

func (s *Server) handleChoreDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.chores.Delete(r.Context(), UserID(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleChoreComment(w http.ResponseWriter, r *http.Request) {
	var req choreCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := s.chores.AddComment(r.Context(), UserID(r.Context()), r.PathValue("id"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
