package model

import "time"

// FileGrant is one direct share entry. A user may appear more than once
// for the same file; revoke removes the oldest row only.
type FileGrant struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	FileID uint64     `gorm:"column:file_id;not null;index" json:"file_id"`
	File   FileRecord `gorm:"foreignKey:FileID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (FileGrant) TableName() string {
	return "file_grant"
}
