package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/sales"
)

type saleRequest struct {
	ClientID   string          `json:"client_id" validate:"required"`
	Date       time.Time       `json:"date" validate:"required"`
	Items      []sales.Item    `json:"items" validate:"required,min=1,dive"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

func (s *Server) ListSalesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := r.URL.Query().Get("status"); status != "" {
			list, err := s.repos.Sales.ListByStatus(sales.PaymentStatus(status))
			if err != nil {
				log.Error().Err(err).Msg("[ListSalesHandler] listing sales by status")
				writeError(w, http.StatusInternalServerError, "", "internal server error")
				return
			}
			writeJSON(w, http.StatusOK, list)
			return
		}

		offset, limit := paginationParams(r)
		list, err := s.repos.Sales.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListSalesHandler] listing sales")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateSaleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saleRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		if _, err := s.repos.Clients.GetByID(req.ClientID); err != nil {
			writeError(w, http.StatusBadRequest, "client_id", "client not found")
			return
		}

		sale := &sales.Sale{
			ID:         uuid.New().String(),
			ClientID:   req.ClientID,
			Date:       req.Date,
			Items:      req.Items,
			AmountPaid: req.AmountPaid,
			CreatedAt:  time.Now(),
		}
		sale.ComputeTotal()
		if err := s.repos.Sales.Upsert(sale); err != nil {
			log.Error().Err(err).Msg("[CreateSaleHandler] storing sale")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, sale)
	}
}

func (s *Server) GetSaleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sale, err := s.repos.Sales.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "sale not found")
			return
		}
		writeJSON(w, http.StatusOK, sale)
	}
}

func (s *Server) UpdateSaleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Sales.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "sale not found")
			return
		}

		var req saleRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		existing.ClientID = req.ClientID
		existing.Date = req.Date
		existing.Items = req.Items
		existing.AmountPaid = req.AmountPaid
		existing.ComputeTotal()
		if err := s.repos.Sales.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdateSaleHandler] storing sale")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeleteSaleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Sales.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeleteSaleHandler] deleting sale")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
