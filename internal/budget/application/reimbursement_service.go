package application

import (
	"fmt"
	"log"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

type TransactionRecorderInterface interface {
	Record(transaction *domain.Transaction, userID string) error
}

// BlobStore keeps attachment payloads. Failures on delete are best-effort
// territory, losing a stray blob beats blocking the logical deletion.
type BlobStore interface {
	Save(filePath string, data []byte) (string, error)
	Delete(filePath string) error
}

type ReimbursementService struct {
	repo     domain.ReimbursementRepository
	recorder TransactionRecorderInterface
	blobs    BlobStore
}

func NewReimbursementService(repo domain.ReimbursementRepository, recorder TransactionRecorderInterface, blobs BlobStore) *ReimbursementService {
	return &ReimbursementService{repo: repo, recorder: recorder, blobs: blobs}
}

func (s *ReimbursementService) Create(request *domain.ReimbursementRequest) error {
	request.ID = uuid.NewString()
	request.Status = domain.ReimbursementStatusPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	request.Amount = request.Amount.Round(2)
	if err := request.Validate(); err != nil {
		return err
	}
	return s.repo.Save(*request)
}

// Approve flips a pending request to approved and records the completed
// expense transaction it stands for. The request amount is a positive
// magnitude and enters the budget as an expense.
func (s *ReimbursementService) Approve(requestID, approverID string) (*domain.ReimbursementRequest, error) {
	request, err := s.pendingRequest(requestID)
	if err != nil {
		return nil, err
	}

	transaction := request.SynthesizeTransaction(time.Now())
	if err := s.recorder.Record(&transaction, approverID); err != nil {
		return nil, err
	}

	request.Status = domain.ReimbursementStatusApproved
	request.TransactionID = &transaction.ID
	request.UpdatedAt = time.Now()
	if err := s.repo.Update(*request); err != nil {
		return nil, err
	}
	return request, nil
}

// Reject is terminal and has no budget effect.
func (s *ReimbursementService) Reject(requestID string) (*domain.ReimbursementRequest, error) {
	request, err := s.pendingRequest(requestID)
	if err != nil {
		return nil, err
	}
	request.Status = domain.ReimbursementStatusRejected
	request.UpdatedAt = time.Now()
	if err := s.repo.Update(*request); err != nil {
		return nil, err
	}
	return request, nil
}

// Delete removes attachments, their metadata and the request row. Approved
// requests are refused: their transaction is already reconciled and deleting
// the request would leave that effect dangling.
func (s *ReimbursementService) Delete(requestID string) error {
	request, err := s.repo.FindByID(requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return budgetErrors.ErrReimbursementNotFound
	}
	if request.Status == domain.ReimbursementStatusApproved {
		return budgetErrors.ErrApprovedReimbursementDelete
	}

	attachments, err := s.repo.FindAttachments(requestID)
	if err != nil {
		return err
	}
	for _, attachment := range attachments {
		if err := s.blobs.Delete(attachment.FilePath); err != nil {
			log.Printf("Error deleting attachment blob %s: %v", attachment.FilePath, err)
		}
	}
	if err := s.repo.DeleteAttachments(requestID); err != nil {
		return err
	}
	return s.repo.Delete(requestID)
}

func (s *ReimbursementService) AddAttachment(requestID, fileName, fileType string, data []byte) (*domain.ReimbursementAttachment, error) {
	request, err := s.repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, budgetErrors.ErrReimbursementNotFound
	}

	attachment := domain.ReimbursementAttachment{
		ID:              uuid.NewString(),
		ReimbursementID: requestID,
		FileName:        fileName,
		FileType:        fileType,
		CreatedAt:       time.Now(),
	}
	storedPath, err := s.blobs.Save(path.Join(requestID, fmt.Sprintf("%s_%s", attachment.ID, fileName)), data)
	if err != nil {
		return nil, budgetErrors.NewDependencyError("attachment upload", err)
	}
	attachment.FilePath = storedPath
	if err := s.repo.SaveAttachment(attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (s *ReimbursementService) Get(requestID string) (*domain.ReimbursementRequest, error) {
	request, err := s.repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, budgetErrors.ErrReimbursementNotFound
	}
	return request, nil
}

func (s *ReimbursementService) List() ([]domain.ReimbursementRequest, error) {
	requests, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if requests == nil {
		return []domain.ReimbursementRequest{}, nil
	}
	return requests, nil
}

func (s *ReimbursementService) Attachments(requestID string) ([]domain.ReimbursementAttachment, error) {
	attachments, err := s.repo.FindAttachments(requestID)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		return []domain.ReimbursementAttachment{}, nil
	}
	return attachments, nil
}

func (s *ReimbursementService) pendingRequest(requestID string) (*domain.ReimbursementRequest, error) {
	request, err := s.repo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, budgetErrors.ErrReimbursementNotFound
	}
	if !request.IsPending() {
		return nil, budgetErrors.ErrReimbursementNotPending
	}
	return request, nil
}
