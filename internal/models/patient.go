package models

import "time"

// Patient defines the structure for persisted patient records.
//
// No endpoint currently reads or writes this table: patients are derived live
// from the Drive folder hierarchy. The schema is kept because external tooling
// may still expect the table to exist. See DESIGN.md.
type Patient struct {
	// The Drive folder name (e.g. "Patient_1") doubles as the primary key.
	PatientID   string    `json:"patient_id" gorm:"primaryKey"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
