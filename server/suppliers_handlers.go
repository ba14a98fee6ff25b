package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mts-ml/eManage-sub000/suppliers"
)

type supplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
}

func (s *Server) ListSuppliersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := paginationParams(r)
		list, err := s.repos.Suppliers.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListSuppliersHandler] listing suppliers")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateSupplierHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supplierRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if _, err := s.repos.Suppliers.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusConflict, "email", "Email já cadastrado")
			return
		}

		supplier := &suppliers.Supplier{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			CNPJ:      req.CNPJ,
			Address:   req.Address,
			CreatedAt: time.Now(),
		}
		if err := s.repos.Suppliers.Upsert(supplier); err != nil {
			log.Error().Err(err).Msg("[CreateSupplierHandler] storing supplier")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, supplier)
	}
}

func (s *Server) GetSupplierHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplier, err := s.repos.Suppliers.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "supplier not found")
			return
		}
		writeJSON(w, http.StatusOK, supplier)
	}
}

func (s *Server) UpdateSupplierHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Suppliers.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "supplier not found")
			return
		}

		var req supplierRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if other, err := s.repos.Suppliers.GetByEmail(req.Email); err == nil && other.ID != existing.ID {
			writeError(w, http.StatusConflict, "email", "Email já cadastrado")
			return
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.CNPJ = req.CNPJ
		existing.Address = req.Address
		if err := s.repos.Suppliers.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdateSupplierHandler] storing supplier")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeleteSupplierHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Suppliers.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeleteSupplierHandler] deleting supplier")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
