package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/purchases"
)

type purchaseRequest struct {
	SupplierID string           `json:"supplier_id" validate:"required"`
	Date       time.Time        `json:"date" validate:"required"`
	Items      []purchases.Item `json:"items" validate:"required,min=1,dive"`
	AmountPaid decimal.Decimal  `json:"amount_paid"`
}

func (s *Server) ListPurchasesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := paginationParams(r)
		list, err := s.repos.Purchases.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListPurchasesHandler] listing purchases")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreatePurchaseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req purchaseRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if _, err := s.repos.Suppliers.GetByID(req.SupplierID); err != nil {
			writeError(w, http.StatusBadRequest, "supplier_id", "supplier not found")
			return
		}

		purchase := &purchases.Purchase{
			ID:         uuid.New().String(),
			SupplierID: req.SupplierID,
			Date:       req.Date,
			Items:      req.Items,
			AmountPaid: req.AmountPaid,
			CreatedAt:  time.Now(),
		}
		purchase.ComputeTotal()
		if err := s.repos.Purchases.Upsert(purchase); err != nil {
			log.Error().Err(err).Msg("[CreatePurchaseHandler] storing purchase")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, purchase)
	}
}

func (s *Server) GetPurchaseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchase, err := s.repos.Purchases.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "purchase not found")
			return
		}
		writeJSON(w, http.StatusOK, purchase)
	}
}

func (s *Server) UpdatePurchaseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Purchases.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "purchase not found")
			return
		}

		var req purchaseRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		existing.SupplierID = req.SupplierID
		existing.Date = req.Date
		existing.Items = req.Items
		existing.AmountPaid = req.AmountPaid
		existing.ComputeTotal()
		if err := s.repos.Purchases.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdatePurchaseHandler] storing purchase")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeletePurchaseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Purchases.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeletePurchaseHandler] deleting purchase")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
