package interfaces

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

const maxAttachmentSize = 10 << 20

type ReimbursementServiceInterface interface {
	Create(request *domain.ReimbursementRequest) error
	Approve(requestID, approverID string) (*domain.ReimbursementRequest, error)
	Reject(requestID string) (*domain.ReimbursementRequest, error)
	Delete(requestID string) error
	Get(requestID string) (*domain.ReimbursementRequest, error)
	List() ([]domain.ReimbursementRequest, error)
	AddAttachment(requestID, fileName, fileType string, data []byte) (*domain.ReimbursementAttachment, error)
	Attachments(requestID string) ([]domain.ReimbursementAttachment, error)
}

type ReimbursementHandler struct {
	service      ReimbursementServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewReimbursementHandler(service ReimbursementServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *ReimbursementHandler {
	return &ReimbursementHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *ReimbursementHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var request domain.ReimbursementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	request.UserID = userID
	if err := h.service.Create(&request); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create reimbursement request")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Reimbursement request created.",
		"data":    request,
	})
}

func (h *ReimbursementHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	approverID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	request, err := h.service.Approve(r.PathValue("requestID"), approverID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to approve reimbursement request")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Reimbursement request approved.",
		"data":    request,
	})
}

func (h *ReimbursementHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	request, err := h.service.Reject(r.PathValue("requestID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to reject reimbursement request")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Reimbursement request rejected.",
		"data":    request,
	})
}

func (h *ReimbursementHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.PathValue("requestID")); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete reimbursement request")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Reimbursement request deleted.",
	})
}

func (h *ReimbursementHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, err := h.service.Get(r.PathValue("requestID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve reimbursement request")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   request,
	})
}

func (h *ReimbursementHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve reimbursement requests")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   requests,
	})
}

func (h *ReimbursementHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Attachment file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to read attachment")
		return
	}
	attachment, err := h.service.AddAttachment(r.PathValue("requestID"), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to store attachment")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Attachment uploaded.",
		"data":    attachment,
	})
}

func (h *ReimbursementHandler) GetAttachments(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.service.Attachments(r.PathValue("requestID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve attachments")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   attachments,
	})
}
