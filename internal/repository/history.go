package repository

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lus-labeler-backend/internal/models"
)

// HistoryRepository stores label corrections keyed on (patient_id, sequence_id).
type HistoryRepository interface {
	// List returns entries newest-first by timestamp, optionally filtered
	// by annotator.
	List(annotator string) ([]models.HistoryEntry, error)
	// Upsert updates the entry matching (PatientID, SequenceID) in place,
	// or inserts a new one. The timestamp is refreshed either way. It
	// reports whether a new row was created and rewrites *entry to the
	// stored state.
	Upsert(entry *models.HistoryEntry) (created bool, err error)
	// Delete removes the entry with the given id, reporting whether it existed.
	Delete(id uint) (bool, error)
}

type historyRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHistoryRepository returns a HistoryRepository backed by the given database.
func NewHistoryRepository(db *gorm.DB, log *zap.Logger) HistoryRepository {
	return &historyRepository{db: db, log: log}
}

func (r *historyRepository) List(annotator string) ([]models.HistoryEntry, error) {
	query := r.db.Order("timestamp DESC")
	if annotator != "" {
		query = query.Where("annotator = ?", annotator)
	}

	var entries []models.HistoryEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) Upsert(entry *models.HistoryEntry) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.HistoryEntry
		err := tx.Where("patient_id = ? AND sequence_id = ?",
			entry.PatientID, entry.SequenceID).First(&existing).Error

		switch {
		case err == nil:
			existing.PreviousLabel = entry.PreviousLabel
			existing.UpdatedLabel = entry.UpdatedLabel
			existing.Annotator = entry.Annotator
			existing.Timestamp = time.Now().UTC()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*entry = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			entry.Timestamp = time.Now().UTC()
			return tx.Create(entry).Error
		default:
			return err
		}
	})
	return created, err
}

func (r *historyRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.HistoryEntry{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
