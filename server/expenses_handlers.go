package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/expenses"
)

type expenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date" validate:"required"`
	Paid        bool            `json:"paid"`
}

func (s *Server) ListExpensesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := paginationParams(r)
		list, err := s.repos.Expenses.List(offset, limit)
		if err != nil {
			log.Error().Err(err).Msg("[ListExpensesHandler] listing expenses")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateExpenseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req expenseRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		if req.Amount.IsNegative() {
			writeError(w, http.StatusBadRequest, "amount", "amount cannot be negative")
			return
		}

		expense := &expenses.Expense{
			ID:          uuid.New().String(),
			Description: req.Description,
			Category:    req.Category,
			Amount:      req.Amount,
			Date:        req.Date,
			Paid:        req.Paid,
			CreatedAt:   time.Now(),
		}
		if err := s.repos.Expenses.Upsert(expense); err != nil {
			log.Error().Err(err).Msg("[CreateExpenseHandler] storing expense")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, expense)
	}
}

func (s *Server) GetExpenseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expense, err := s.repos.Expenses.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "expense not found")
			return
		}
		writeJSON(w, http.StatusOK, expense)
	}
}

func (s *Server) UpdateExpenseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := s.repos.Expenses.GetByID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "", "expense not found")
			return
		}

		var req expenseRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		if req.Amount.IsNegative() {
			writeError(w, http.StatusBadRequest, "amount", "amount cannot be negative")
			return
		}

		existing.Description = req.Description
		existing.Category = req.Category
		existing.Amount = req.Amount
		existing.Date = req.Date
		existing.Paid = req.Paid
		if err := s.repos.Expenses.Upsert(existing); err != nil {
			log.Error().Err(err).Msg("[UpdateExpenseHandler] storing expense")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeleteExpenseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.repos.Expenses.Delete(r.PathValue("id")); err != nil {
			log.Error().Err(err).Msg("[DeleteExpenseHandler] deleting expense")
			writeError(w, http.StatusInternalServerError, "", "internal server error")
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
