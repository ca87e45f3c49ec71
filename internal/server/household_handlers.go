package server

import "net/http"

type householdCreateRequest struct {
	Name string `json:"name"`
}

type householdJoinRequest struct {
	InviteCode string `json:"inviteCode"`
}

func (s *Server) handleHouseholdMe(w http.ResponseWriter, r *http.Request) {
	view, err := s.households.Me(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHouseholdCreate(w http.ResponseWriter, r *http.Request) {
	var req householdCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	household, err := s.households.Create(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, household)
}

func (s *Server) handleHouseholdJoin(w http.ResponseWriter, r *http.Request) {
	var req householdJoinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	household, err := s.households.Join(r.Context(), UserID(r.Context()), req.InviteCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, household)
}

func (s *Server) handleHouseholdLeave(w http.ResponseWriter, r *http.Request) {
	if err := s.households.Leave(r.Context(), UserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}
