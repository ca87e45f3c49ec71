package server

import "net/http"

type wallCreateRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleWallList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.wall.List(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleWallCreate(w http.ResponseWriter, r *http.Request) {
	var req wallCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := s.wall.Create(r.Context(), UserID(r.Context()), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleWallDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.wall.Delete(r.Context(), UserID(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
