package interfaces

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sebuszqo/BudgetManager/internal/budget/application"
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type TransactionServiceInterface interface {
	Record(transaction *domain.Transaction, userID string) error
	Amend(transactionID string, patch application.TransactionPatch, userID string) (*domain.Transaction, error)
	Retract(transactionID, userID string) error
	Get(transactionID string) (*domain.Transaction, error)
	List(filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	return &TransactionHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *TransactionHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.Record(&transaction, userID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to record transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully recorded.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) AmendTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID := r.PathValue("transactionID")
	var patch application.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	transaction, err := h.service.Amend(transactionID, patch, userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to amend transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully amended.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) RetractTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID := r.PathValue("transactionID")
	if err := h.service.Retract(transactionID, userID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retract transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully retracted.",
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.service.Get(r.PathValue("transactionID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	filter := domain.TransactionFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}

	var err error
	if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
		filter.StartDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
	}
	if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
		filter.EndDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		// end_date names a day, the range includes all of it
		filter.EndDate = filter.EndDate.Add(24*time.Hour - time.Nanosecond)
	}

	transactions, err := h.service.List(filter)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}
