package gormrepo

import (
	"context"

	"pawledger/internal/adapter/repo/gorm/model"
	"pawledger/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return TransactionRepo{db: db}
}

func (r TransactionRepo) Append(ctx context.Context, sessionID string, tx ledger.Transaction) error {
	db := getDBFromCtx(ctx, r.db)
	row := model.Transaction{
		SessionID:   sessionID,
		TxID:        tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Timestamp:   tx.Timestamp,
	}
	if err := db.Create(&row).Error; err != nil {
		return err
	}
	// Enforce the ledger cap: drop rows older than the newest MaxEntries.
	sub := db.Model(&model.Transaction{}).
		Select("id").
		Where("session_id = ?", sessionID).
		Order("timestamp DESC, id DESC").
		Limit(ledger.MaxEntries)
	return db.
		Where("session_id = ? AND id NOT IN (?)", sessionID, sub).
		Delete(&model.Transaction{}).Error
}

func (r TransactionRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]ledger.Transaction, error) {
	rows := []model.Transaction{}
	query := getDBFromCtx(ctx, r.db).
		Where("session_id = ?", sessionID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "timestamp"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledger.Transaction{
			ID:          row.TxID,
			Description: row.Description,
			Amount:      row.Amount,
			Timestamp:   row.Timestamp,
		})
	}
	return out, nil
}

func (r TransactionRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return getDBFromCtx(ctx, r.db).
		Where("session_id = ?", sessionID).
		Delete(&model.Transaction{}).Error
}
