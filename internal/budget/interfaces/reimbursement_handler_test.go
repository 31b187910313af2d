package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

func TestCreateRequest_Success(t *testing.T) {
	service := &MockReimbursementService{}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"amount":      "120.00",
		"category":    "Travel",
		"description": "Client visit train tickets",
	})
	req := authenticatedRequest(http.MethodPost, "/api/reimbursements", body)
	rr := httptest.NewRecorder()
	handler.CreateRequest(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.NewDecoder(rr.Body).Decode(&response)
	assert.NoError(t, err)
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "generated-id", data["id"])
	assert.Equal(t, "user-1", data["user_id"])
	assert.Equal(t, domain.ReimbursementStatusPending, data["status"])
}

func TestCreateRequest_Unauthorized(t *testing.T) {
	handler := NewReimbursementHandler(&MockReimbursementService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/reimbursements", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	handler.CreateRequest(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestApproveRequest_Success(t *testing.T) {
	transactionID := "txn-synth"
	service := &MockReimbursementService{
		Request: &domain.ReimbursementRequest{
			ID:            "req-1",
			Amount:        decimal.NewFromInt(120),
			Category:      "Travel",
			Status:        domain.ReimbursementStatusApproved,
			TransactionID: &transactionID,
		},
	}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/reimbursements/req-1/approve", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.ApproveRequest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", service.ApprovedBy)
}

func TestApproveRequest_NotPending(t *testing.T) {
	service := &MockReimbursementService{Err: budgetErrors.ErrReimbursementNotPending}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodPost, "/api/reimbursements/req-1/approve", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.ApproveRequest(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRejectRequest_Success(t *testing.T) {
	service := &MockReimbursementService{
		Request: &domain.ReimbursementRequest{
			ID:     "req-1",
			Status: domain.ReimbursementStatusRejected,
		},
	}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/reimbursements/req-1/reject", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.RejectRequest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteRequest_ApprovedRefused(t *testing.T) {
	service := &MockReimbursementService{Err: budgetErrors.ErrApprovedReimbursementDelete}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/reimbursements/req-1", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.DeleteRequest(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "req-1", service.DeletedID)
}

func TestDeleteRequest_Success(t *testing.T) {
	service := &MockReimbursementService{}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/reimbursements/req-1", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.DeleteRequest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	service := &MockReimbursementService{Err: budgetErrors.ErrReimbursementNotFound}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/reimbursements/missing", nil)
	req.SetPathValue("requestID", "missing")
	rr := httptest.NewRecorder()
	handler.GetRequest(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUploadAttachment_Success(t *testing.T) {
	service := &MockReimbursementService{
		Attachment: &domain.ReimbursementAttachment{
			ID:       "att-1",
			FileName: "receipt.pdf",
		},
	}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "receipt.pdf")
	assert.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake receipt"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reimbursements/req-1/attachments", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = req.WithContext(context.WithValue(req.Context(), "userID", "user-1"))
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.UploadAttachment(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUploadAttachment_MissingFile(t *testing.T) {
	handler := NewReimbursementHandler(&MockReimbursementService{}, respondJSON, respondError)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("note", "no file here"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reimbursements/req-1/attachments", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.UploadAttachment(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAttachments_Success(t *testing.T) {
	service := &MockReimbursementService{
		AttachList: []domain.ReimbursementAttachment{
			{ID: "att-1", FileName: "receipt.pdf"},
			{ID: "att-2", FileName: "invoice.png"},
		},
	}
	handler := NewReimbursementHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/reimbursements/req-1/attachments", nil)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()
	handler.GetAttachments(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.NewDecoder(rr.Body).Decode(&response)
	assert.NoError(t, err)
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}
