package interfaces

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockReimbursementService struct {
	Request     *domain.ReimbursementRequest
	Requests    []domain.ReimbursementRequest
	Attachment  *domain.ReimbursementAttachment
	AttachList  []domain.ReimbursementAttachment
	Err         error
	ApprovedBy  string
	DeletedID   string
}

func (m *MockReimbursementService) Create(request *domain.ReimbursementRequest) error {
	if m.Err != nil {
		return m.Err
	}
	request.ID = "generated-id"
	request.Status = domain.ReimbursementStatusPending
	return nil
}

func (m *MockReimbursementService) Approve(requestID, approverID string) (*domain.ReimbursementRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.ApprovedBy = approverID
	return m.Request, nil
}

func (m *MockReimbursementService) Reject(requestID string) (*domain.ReimbursementRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Request, nil
}

func (m *MockReimbursementService) Delete(requestID string) error {
	m.DeletedID = requestID
	return m.Err
}

func (m *MockReimbursementService) Get(requestID string) (*domain.ReimbursementRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Request, nil
}

func (m *MockReimbursementService) List() ([]domain.ReimbursementRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Requests, nil
}

func (m *MockReimbursementService) AddAttachment(requestID, fileName, fileType string, data []byte) (*domain.ReimbursementAttachment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Attachment, nil
}

func (m *MockReimbursementService) Attachments(requestID string) ([]domain.ReimbursementAttachment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.AttachList, nil
}
