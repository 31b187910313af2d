package application

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
	"github.com/sebuszqo/BudgetManager/internal/budget/infrastructure"
)

type reimbursementFixture struct {
	service       *ReimbursementService
	budgetService *BudgetService
	budgetRepo    *infrastructure.MockBudgetRepository
	repo          *infrastructure.MockReimbursementRepository
	blobs         *infrastructure.MockBlobStore
	transactions  *infrastructure.MockTransactionRepository
}

func newReimbursementFixture() *reimbursementFixture {
	budgetRepo := &infrastructure.MockBudgetRepository{}
	budgetService := NewBudgetService(budgetRepo, infrastructure.NewMockCategoryRepository(), &infrastructure.MockHistoryRepository{}, decimal.Zero)
	transactionRepo := infrastructure.NewMockTransactionRepository()
	recorder := NewTransactionService(transactionRepo, budgetService)
	repo := infrastructure.NewMockReimbursementRepository()
	blobs := infrastructure.NewMockBlobStore()
	return &reimbursementFixture{
		service:       NewReimbursementService(repo, recorder, blobs),
		budgetService: budgetService,
		budgetRepo:    budgetRepo,
		repo:          repo,
		blobs:         blobs,
		transactions:  transactionRepo,
	}
}

func pendingRequest(f *reimbursementFixture, amount, category string) *domain.ReimbursementRequest {
	request := &domain.ReimbursementRequest{
		InvoiceID:   "invoice-1",
		UserID:      "user-1",
		Amount:      dec(amount),
		Description: "Client visit",
		Category:    category,
	}
	if err := f.service.Create(request); err != nil {
		panic(err)
	}
	return request
}

func TestApprove_ReconcilesExpenseAndTransitions(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", map[string]domain.BudgetCategory{
		"Travel": {Allocated: dec("500"), Spent: decimal.Zero},
	})
	request := pendingRequest(f, "120.00", "Travel")

	approved, err := f.service.Approve(request.ID, "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReimbursementStatusApproved, approved.Status)
	assert.NotNil(t, approved.TransactionID)

	budget, err := f.budgetService.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "120", budget.TotalSpent)
	assertDecimal(t, "120", budget.Categories["Travel"].Spent)

	recorded, ok := f.transactions.Transactions[*approved.TransactionID]
	assert.True(t, ok)
	assert.Equal(t, domain.TransactionStatusCompleted, recorded.Status)
	assert.Equal(t, domain.TransactionTypeExpense, recorded.Type)
	assert.Equal(t, "Reimbursement: Client visit", recorded.Description)
}

func TestApprove_SecondCallRejected(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)
	request := pendingRequest(f, "120.00", "Travel")

	_, err := f.service.Approve(request.ID, "admin-1")
	assert.NoError(t, err)

	_, err = f.service.Approve(request.ID, "admin-1")
	assert.True(t, budgetErrors.IsInvalidStateError(err), "expected InvalidStateError, got %v", err)

	// the budget effect was applied exactly once
	budget, _ := f.budgetService.GetBudget()
	assertDecimal(t, "120", budget.TotalSpent)
}

func TestApprove_MissingRequest(t *testing.T) {
	f := newReimbursementFixture()
	_, err := f.service.Approve("no-such-id", "admin-1")
	assert.True(t, budgetErrors.IsNotFoundError(err))
}

func TestApprove_FallbackCategory(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)
	request := pendingRequest(f, "45.50", "")

	_, err := f.service.Approve(request.ID, "admin-1")
	assert.NoError(t, err)

	budget, _ := f.budgetService.GetBudget()
	assertDecimal(t, "45.5", budget.Categories[domain.FallbackReimbursementCategory].Spent)
}

// A description near the cap is valid on create, and the "Reimbursement: "
// prefix must not make the synthesized transaction fail validation on approve.
func TestApprove_LongDescriptionStaysApprovable(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)

	request := &domain.ReimbursementRequest{
		InvoiceID:   "invoice-1",
		UserID:      "user-1",
		Amount:      dec("60"),
		Description: strings.Repeat("d", 195),
		Category:    "Travel",
	}
	assert.NoError(t, f.service.Create(request))

	approved, err := f.service.Approve(request.ID, "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReimbursementStatusApproved, approved.Status)

	recorded := f.transactions.Transactions[*approved.TransactionID]
	assert.Len(t, recorded.Description, 200)
	assert.True(t, strings.HasPrefix(recorded.Description, "Reimbursement: ddd"))

	budget, _ := f.budgetService.GetBudget()
	assertDecimal(t, "60", budget.TotalSpent)
}

func TestReject_OnlyFlipsStatus(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)
	request := pendingRequest(f, "120.00", "Travel")

	rejected, err := f.service.Reject(request.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReimbursementStatusRejected, rejected.Status)
	assert.Nil(t, rejected.TransactionID)

	budget, _ := f.budgetService.GetBudget()
	assertDecimal(t, "1000", budget.TotalAvailable)
	assertDecimal(t, "0", budget.TotalSpent)
	assert.Empty(t, budget.Categories)
	assert.Empty(t, f.transactions.Transactions)

	_, err = f.service.Reject(request.ID)
	assert.True(t, budgetErrors.IsInvalidStateError(err))
}

func TestDelete_ApprovedRequestRefused(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)
	request := pendingRequest(f, "120.00", "Travel")
	_, err := f.service.Approve(request.ID, "admin-1")
	assert.NoError(t, err)

	err = f.service.Delete(request.ID)
	assert.True(t, budgetErrors.IsConflictError(err), "expected ConflictError, got %v", err)
	assert.Contains(t, f.repo.Requests, request.ID)
}

func TestDelete_PendingRemovesAttachmentsBestEffort(t *testing.T) {
	f := newReimbursementFixture()
	seedBudget(f.budgetRepo, "1000", "0", nil)
	request := pendingRequest(f, "120.00", "Travel")

	_, err := f.service.AddAttachment(request.ID, "receipt.pdf", "application/pdf", []byte("%PDF"))
	assert.NoError(t, err)
	assert.Len(t, f.blobs.Saved, 1)

	// blob backend failing must not block the logical deletion
	f.blobs.DeleteErr = assert.AnError
	err = f.service.Delete(request.ID)
	assert.NoError(t, err)
	assert.NotContains(t, f.repo.Requests, request.ID)
	assert.Empty(t, f.repo.Attachments[request.ID])
	assert.Len(t, f.blobs.Deleted, 1)
}

func TestDelete_MissingRequest(t *testing.T) {
	f := newReimbursementFixture()
	err := f.service.Delete("no-such-id")
	assert.True(t, budgetErrors.IsNotFoundError(err))
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	f := newReimbursementFixture()
	err := f.service.Create(&domain.ReimbursementRequest{
		InvoiceID: "invoice-1",
		UserID:    "user-1",
		Amount:    dec("0"),
	})
	assert.True(t, budgetErrors.IsValidationError(err))
}

func TestAddAttachment_MissingRequest(t *testing.T) {
	f := newReimbursementFixture()
	_, err := f.service.AddAttachment("no-such-id", "receipt.pdf", "application/pdf", []byte("x"))
	assert.True(t, budgetErrors.IsNotFoundError(err))
}
