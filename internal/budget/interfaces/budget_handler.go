package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type BudgetServiceInterface interface {
	GetBudget() (*domain.Budget, error)
	SaveBudget(budget domain.Budget, userID string) (*domain.Budget, error)
	AddCategory(name string, allocated decimal.Decimal, description, userID string) error
	RemoveCategory(name, userID string) error
	History(limit int) ([]domain.BudgetHistoryEntry, error)
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *BudgetHandler {
	return &BudgetHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	budget, err := h.service.GetBudget()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve budget")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

func (h *BudgetHandler) SaveBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var budget domain.Budget
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	saved, err := h.service.SaveBudget(budget, userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to save budget")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget saved successfully.",
		"data":    saved,
	})
}

func (h *BudgetHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		Name        string          `json:"name"`
		Allocated   decimal.Decimal `json:"allocated"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.AddCategory(req.Name, req.Allocated, req.Description, userID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to add budget category")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget category added.",
	})
}

func (h *BudgetHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	name := r.PathValue("name")
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "Category name is required")
		return
	}
	if err := h.service.RemoveCategory(name, userID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to remove budget category")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget category removed.",
	})
}

func (h *BudgetHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		limit = parsed
	}
	entries, err := h.service.History(limit)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve budget history")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   entries,
	})
}
