package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/products"
)

type productRequest struct {
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (s *Server) ListProductsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := paginationParams(r)
		list, err := s.repos.Products.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListProductsHandler] listing products")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		if req.UnitPrice.IsNegative() {
			writeError(w, http.StatusBadRequest, "unit_price", "unit price cannot be negative")
			return
		}

		product := &products.Product{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Category:  req.Category,
			Unit:      req.Unit,
			UnitPrice: req.UnitPrice,
			CreatedAt: time.Now(),
		}
		if err := s.repos.Products.Upsert(product); err != nil {
			log.Error().Err(err).Msg("[CreateProductHandler] storing product")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, product)
	}
}

func (s *Server) GetProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := s.repos.Products.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "product not found")
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func (s *Server) UpdateProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Products.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "product not found")
			return
		}

		var req productRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		if req.UnitPrice.IsNegative() {
			writeError(w, http.StatusBadRequest, "unit_price", "unit price cannot be negative")
			return
		}

		existing.Name = req.Name
		existing.Category = req.Category
		existing.Unit = req.Unit
		existing.UnitPrice = req.UnitPrice
		if err := s.repos.Products.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdateProductHandler] storing product")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeleteProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Products.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeleteProductHandler] deleting product")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
