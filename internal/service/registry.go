package service

import (
	"FileTransfer/internal/repo"
	"FileTransfer/model"
	"errors"

	"gorm.io/gorm"
)

// CreateFileRecord persists a fresh record. Shared and link flags start
// false; the blob must already exist at record.StoragePath.
func CreateFileRecord(record *model.FileRecord) error {
	record.Shared = false
	record.SharedLinkActive = false
	record.LinkToken = nil
	return repo.Db.Create(record).Error
}

// GetFileByID returns a record by ID regardless of owner.
func GetFileByID(fileID uint64) (*model.FileRecord, error) {
	var record model.FileRecord
	err := repo.Db.Where("id = ?", fileID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByOwner lists a user's own uploads, newest first.
func FindByOwner(ownerID uint64) ([]model.FileRecord, error) {
	var records []model.FileRecord
	err := repo.Db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// FindSharedWith lists records granted to the user, with owner loaded for
// display.
func FindSharedWith(userID uint64) ([]model.FileRecord, error) {
	var records []model.FileRecord
	err := repo.Db.
		Joins("JOIN file_grant ON file_grant.file_id = file_record.id").
		Where("file_grant.user_id = ?", userID).
		Group("file_record.id").
		Preload("Owner").
		Find(&records).Error
	return records, err
}

// FindSharedByOwner lists the user's records that carry at least one
// historical grant.
func FindSharedByOwner(ownerID uint64) ([]model.FileRecord, error) {
	var records []model.FileRecord
	err := repo.Db.Where("owner_id = ? AND shared = ?", ownerID, true).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// FindByToken returns the record behind an active link token.
func FindByToken(token string) (*model.FileRecord, error) {
	var record model.FileRecord
	err := repo.Db.Where("link_token = ? AND shared_link_active = ?", token, true).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// RenameFile updates the display name of a record owned by ownerID. A
// repeated identical rename succeeds again.
func RenameFile(ownerID, fileID uint64, newName string) (*model.FileRecord, error) {
	var record model.FileRecord
	err := repo.Db.Where("id = ? AND owner_id = ?", fileID, ownerID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := repo.Db.Model(&record).Update("display_name", newName).Error; err != nil {
		return nil, err
	}
	record.DisplayName = newName
	return &record, nil
}

// DeleteFileRecord removes the record and its grants, returning the
// removed record so the caller can drop the blob afterwards. A caller who
// is not the owner gets ErrForbidden, distinct from ErrNotFound.
func DeleteFileRecord(callerID, fileID uint64) (*model.FileRecord, error) {
	record, err := GetFileByID(fileID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != callerID {
		return nil, ErrForbidden
	}
	err = repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("file_id = ?", fileID).Delete(&model.FileGrant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FileRecord{}, fileID).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
