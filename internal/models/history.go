package models

import "time"

// HistoryEntry records a human correction of a sequence label.
// At most one entry exists per (patient_id, sequence_id) pair; a repeated
// write for the same pair updates the row in place.
type HistoryEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PatientID     string    `json:"patient_id" gorm:"index;uniqueIndex:idx_history_patient_sequence"`
	SequenceID    string    `json:"sequence_id" gorm:"uniqueIndex:idx_history_patient_sequence"`
	PreviousLabel string    `json:"previous_label"`
	UpdatedLabel  string    `json:"updated_label"`
	Annotator     string    `json:"annotator" gorm:"index"`
	Timestamp     time.Time `json:"timestamp" gorm:"index"`
}
