package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type ReimbursementRepository struct {
	db *sql.DB
}

func NewReimbursementRepository(db *sql.DB) *ReimbursementRepository {
	return &ReimbursementRepository{db: db}
}

func (r *ReimbursementRepository) Save(request domain.ReimbursementRequest) error {
	_, err := r.db.Exec(
		`INSERT INTO reimbursement_requests (id, invoice_id, user_id, amount, description, category, status, transaction_id, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		request.ID, request.InvoiceID, request.UserID, request.Amount, request.Description,
		nullableString(request.Category), request.Status, request.TransactionID, request.CreatedAt, request.UpdatedAt,
	)
	return err
}

func (r *ReimbursementRepository) FindByID(requestID string) (*domain.ReimbursementRequest, error) {
	var request domain.ReimbursementRequest
	var category sql.NullString
	err := r.db.QueryRow(
		`SELECT id, invoice_id, user_id, amount, description, category, status, transaction_id, created_at, updated_at
         FROM reimbursement_requests WHERE id = $1`, requestID,
	).Scan(&request.ID, &request.InvoiceID, &request.UserID, &request.Amount, &request.Description,
		&category, &request.Status, &request.TransactionID, &request.CreatedAt, &request.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	request.Category = category.String
	return &request, nil
}

func (r *ReimbursementRepository) FindAll() ([]domain.ReimbursementRequest, error) {
	rows, err := r.db.Query(
		`SELECT id, invoice_id, user_id, amount, description, category, status, transaction_id, created_at, updated_at
         FROM reimbursement_requests ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ReimbursementRequest
	for rows.Next() {
		var request domain.ReimbursementRequest
		var category sql.NullString
		if err := rows.Scan(&request.ID, &request.InvoiceID, &request.UserID, &request.Amount, &request.Description,
			&category, &request.Status, &request.TransactionID, &request.CreatedAt, &request.UpdatedAt); err != nil {
			return nil, err
		}
		request.Category = category.String
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *ReimbursementRepository) Update(request domain.ReimbursementRequest) error {
	_, err := r.db.Exec(
		`UPDATE reimbursement_requests SET amount = $2, description = $3, category = $4, status = $5, transaction_id = $6, updated_at = $7
         WHERE id = $1`,
		request.ID, request.Amount, request.Description, nullableString(request.Category),
		request.Status, request.TransactionID, request.UpdatedAt,
	)
	return err
}

func (r *ReimbursementRepository) Delete(requestID string) error {
	_, err := r.db.Exec(`DELETE FROM reimbursement_requests WHERE id = $1`, requestID)
	return err
}

func (r *ReimbursementRepository) SaveAttachment(attachment domain.ReimbursementAttachment) error {
	_, err := r.db.Exec(
		`INSERT INTO reimbursement_attachments (id, reimbursement_id, file_name, file_path, file_type, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		attachment.ID, attachment.ReimbursementID, attachment.FileName, attachment.FilePath,
		attachment.FileType, attachment.CreatedAt,
	)
	return err
}

func (r *ReimbursementRepository) FindAttachments(requestID string) ([]domain.ReimbursementAttachment, error) {
	rows, err := r.db.Query(
		`SELECT id, reimbursement_id, file_name, file_path, file_type, created_at
         FROM reimbursement_attachments WHERE reimbursement_id = $1`, requestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.ReimbursementAttachment
	for rows.Next() {
		var attachment domain.ReimbursementAttachment
		if err := rows.Scan(&attachment.ID, &attachment.ReimbursementID, &attachment.FileName,
			&attachment.FilePath, &attachment.FileType, &attachment.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}
	return attachments, rows.Err()
}

func (r *ReimbursementRepository) DeleteAttachments(requestID string) error {
	_, err := r.db.Exec(`DELETE FROM reimbursement_attachments WHERE reimbursement_id = $1`, requestID)
	return err
}
