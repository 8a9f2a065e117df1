package dto

import (
	"time"

	"FileTransfer/model"
)

// FileInfo is the listing view of a record.
type FileInfo struct {
	ID               uint64    `json:"id"`
	DisplayName      string    `json:"display_name"`
	StoredName       string    `json:"stored_name"`
	Shared           bool      `json:"shared"`
	SharedLinkActive bool      `json:"shared_link_active"`
	CreatedAt        time.Time `json:"created_at"`

	// Owner fields are filled for shared-with-me listings only.
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// NewFileInfo builds the listing view from a record.
func NewFileInfo(record *model.FileRecord) FileInfo {
	return FileInfo{
		ID:               record.ID,
		DisplayName:      record.DisplayName,
		StoredName:       record.StoredName,
		Shared:           record.Shared,
		SharedLinkActive: record.SharedLinkActive,
		CreatedAt:        record.CreatedAt,
	}
}

// NewSharedFileInfo builds the listing view including the owner identity.
func NewSharedFileInfo(record *model.FileRecord) FileInfo {
	info := NewFileInfo(record)
	info.OwnerName = record.Owner.UserName
	info.OwnerEmail = record.Owner.Email
	return info
}
