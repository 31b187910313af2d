package infrastructure

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockReimbursementRepository struct {
	Requests    map[string]domain.ReimbursementRequest
	Attachments map[string][]domain.ReimbursementAttachment
	UpdateErr   error
}

func NewMockReimbursementRepository() *MockReimbursementRepository {
	return &MockReimbursementRepository{
		Requests:    map[string]domain.ReimbursementRequest{},
		Attachments: map[string][]domain.ReimbursementAttachment{},
	}
}

func (m *MockReimbursementRepository) Save(request domain.ReimbursementRequest) error {
	m.Requests[request.ID] = request
	return nil
}

func (m *MockReimbursementRepository) FindByID(requestID string) (*domain.ReimbursementRequest, error) {
	request, ok := m.Requests[requestID]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (m *MockReimbursementRepository) FindAll() ([]domain.ReimbursementRequest, error) {
	var requests []domain.ReimbursementRequest
	for _, request := range m.Requests {
		requests = append(requests, request)
	}
	return requests, nil
}

func (m *MockReimbursementRepository) Update(request domain.ReimbursementRequest) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Requests[request.ID] = request
	return nil
}

func (m *MockReimbursementRepository) Delete(requestID string) error {
	delete(m.Requests, requestID)
	return nil
}

func (m *MockReimbursementRepository) SaveAttachment(attachment domain.ReimbursementAttachment) error {
	m.Attachments[attachment.ReimbursementID] = append(m.Attachments[attachment.ReimbursementID], attachment)
	return nil
}

func (m *MockReimbursementRepository) FindAttachments(requestID string) ([]domain.ReimbursementAttachment, error) {
	return m.Attachments[requestID], nil
}

func (m *MockReimbursementRepository) DeleteAttachments(requestID string) error {
	delete(m.Attachments, requestID)
	return nil
}
