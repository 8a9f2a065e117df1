package model

import "time"

// FileRecord is the metadata for one uploaded blob. Records are
// hard-deleted; the blob under StoragePath is removed after the row.
type FileRecord struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	StoredName  string `gorm:"column:stored_name;size:255;not null" json:"stored_name"`
	DisplayName string `gorm:"column:display_name;size:255;not null" json:"display_name"`
	StoragePath string `gorm:"column:storage_path;size:512;not null" json:"-"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	// Shared flips to true on the first direct grant and stays true even
	// after the last grantee is revoked.
	Shared bool `gorm:"column:shared;not null;default:false" json:"shared"`

	// LinkToken is set iff SharedLinkActive is true.
	SharedLinkActive bool    `gorm:"column:shared_link_active;not null;default:false" json:"shared_link_active"`
	LinkToken        *string `gorm:"column:link_token;size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (FileRecord) TableName() string {
	return "file_record"
}
