package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mts-ml/eManage-sub000/clients"
)

type clientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
}

func (s *Server) ListClientsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := paginationParams(r)
		list, err := s.repos.Clients.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListClientsHandler] listing clients")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateClientHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if _, err := s.repos.Clients.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusConflict, "email", "Email já cadastrado")
			return
		}

		client := &clients.Client{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			CNPJ:      req.CNPJ,
			Address:   req.Address,
			CreatedAt: time.Now(),
		}
		if err := s.repos.Clients.Upsert(client); err != nil {
			log.Error().Err(err).Msg("[CreateClientHandler] storing client")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, client)
	}
}

func (s *Server) GetClientHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := s.repos.Clients.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "client not found")
			return
		}
		writeJSON(w, http.StatusOK, client)
	}
}

func (s *Server) UpdateClientHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Clients.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "client not found")
			return
		}

		var req clientRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if other, err := s.repos.Clients.GetByEmail(req.Email); err == nil && other.ID != existing.ID {
			writeError(w, http.StatusConflict, "email", "Email já cadastrado")
			return
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.CNPJ = req.CNPJ
		existing.Address = req.Address
		if err := s.repos.Clients.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdateClientHandler] storing client")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeleteClientHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Clients.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeleteClientHandler] deleting client")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
