package service

import (
	"FileTransfer/internal/repo"
	"FileTransfer/model"
)

// CheckFileOwner reports whether the file exists and belongs to the user.
func CheckFileOwner(userID, fileID uint64) bool {
	var count int64
	err := repo.Db.
		Model(&model.FileRecord{}).
		Where("id = ? AND owner_id = ?", fileID, userID).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}

// IsGrantee reports whether the user holds at least one direct grant on
// the file.
func IsGrantee(userID, fileID uint64) bool {
	var count int64
	err := repo.Db.
		Model(&model.FileGrant{}).
		Where("file_id = ? AND user_id = ?", fileID, userID).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
