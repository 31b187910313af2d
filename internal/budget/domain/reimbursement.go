package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

const (
	ReimbursementStatusPending  = "pending"
	ReimbursementStatusApproved = "approved"
	ReimbursementStatusRejected = "rejected"
)

// FallbackReimbursementCategory tags the synthesized transaction when the
// request itself carries no category.
const FallbackReimbursementCategory = "Reimbursement"

type ReimbursementRepository interface {
	Save(request ReimbursementRequest) error
	FindByID(requestID string) (*ReimbursementRequest, error)
	FindAll() ([]ReimbursementRequest, error)
	Update(request ReimbursementRequest) error
	Delete(requestID string) error
	SaveAttachment(attachment ReimbursementAttachment) error
	FindAttachments(requestID string) ([]ReimbursementAttachment, error)
	DeleteAttachments(requestID string) error
}

// ReimbursementRequest is a user claim that, once approved, produces one
// completed expense transaction of the same amount.
type ReimbursementRequest struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category,omitempty"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ReimbursementAttachment is metadata only, the payload lives in the blob store.
type ReimbursementAttachment struct {
	ID              string    `json:"id"`
	ReimbursementID string    `json:"reimbursement_id"`
	FileName        string    `json:"file_name"`
	FilePath        string    `json:"file_path"`
	FileType        string    `json:"file_type"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *ReimbursementRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return errors.ErrNonPositiveAmount
	}
	if r.UserID == "" {
		return errors.NewValidationError("User ID is required")
	}
	if len(r.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

func (r *ReimbursementRequest) IsPending() bool {
	return r.Status == ReimbursementStatusPending
}

// SynthesizeTransaction builds the completed expense the approval feeds into
// the budget. The request amount is stored positive and stays positive here,
// the expense type carries the direction.
func (r *ReimbursementRequest) SynthesizeTransaction(now time.Time) Transaction {
	category := r.Category
	if category == "" {
		category = FallbackReimbursementCategory
	}
	// The prefix can push an otherwise valid request description past the
	// transaction cap. Truncate so an accepted request stays approvable.
	description := "Reimbursement: " + r.Description
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}
	return Transaction{
		Amount:      r.Amount,
		Type:        TransactionTypeExpense,
		Description: description,
		Category:    category,
		Date:        now,
		Status:      TransactionStatusCompleted,
		InvoiceID:   &r.InvoiceID,
	}
}
