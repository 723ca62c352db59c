package models

// User defines the structure for annotator accounts.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}
