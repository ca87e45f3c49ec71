package server

import (
	"net/http"

	"github.com/nkale/homeboard/internal/service"
)

type shoppingCreateRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleShoppingList(w http.ResponseWriter, r *http.Request) {
	items, err := s.shopping.List(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleShoppingCreate(w http.ResponseWriter, r *http.Request) {
	var req shoppingCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := s.shopping.Create(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleShoppingUpdate(w http.ResponseWriter, r *http.Request) {
	var req service.ShoppingItemUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := s.shopping.Update(r.Context(), UserID(r.Context()), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleShoppingDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.shopping.Delete(r.Context(), UserID(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
