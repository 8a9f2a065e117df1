package service

import (
	"FileTransfer/internal/repo"
	"FileTransfer/model"
	"FileTransfer/utils"
	"errors"
	"log"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

const linkCacheTTL = 24 * time.Hour

// GrantByEmails resolves each email to an account and appends a grant per
// resolved user. Duplicate grants are allowed; the record's shared flag
// flips to true and never back. Returns the resolved users.
func GrantByEmails(fileID uint64, emails []string) ([]model.User, error) {
	record, err := GetFileByID(fileID)
	if err != nil {
		return nil, err
	}

	users, err := FindUsersByEmails(emails)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}

	err = repo.Db.Transaction(func(tx *gorm.DB) error {
		for _, user := range users {
			grant := model.FileGrant{
				FileID: record.ID,
				UserID: user.ID,
			}
			if err := tx.Create(&grant).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.FileRecord{}).
			Where("id = ?", record.ID).
			Update("shared", true).Error
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// RevokeGrant removes one grant row. An owner may revoke any target; a
// grantee may only revoke themself (targetID zero means the caller).
func RevokeGrant(fileID, callerID, targetID uint64) error {
	if _, err := GetFileByID(fileID); err != nil {
		return err
	}

	if targetID == 0 {
		targetID = callerID
	}
	if !CheckFileOwner(callerID, fileID) && targetID != callerID {
		return ErrForbidden
	}

	var grant model.FileGrant
	err := repo.Db.Where("file_id = ? AND user_id = ?", fileID, targetID).
		Order("id ASC").
		First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidArgument
	}
	if err != nil {
		return err
	}
	// Shared stays true even when this was the last grant.
	return repo.Db.Delete(&model.FileGrant{}, grant.ID).Error
}

// IssueLink activates an anonymous download link for an owned file and
// returns the token. Issuing while a link is active is a conflict and
// leaves the existing token untouched.
func IssueLink(ctx context.Context, fileID, ownerID uint64) (string, error) {
	var record model.FileRecord
	err := repo.Db.Where("id = ? AND owner_id = ?", fileID, ownerID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if record.SharedLinkActive {
		return "", ErrConflict
	}

	token := utils.GetToken()
	err = repo.Db.Model(&record).Updates(map[string]interface{}{
		"link_token":         token,
		"shared_link_active": true,
	}).Error
	if err != nil {
		return "", err
	}

	if err := utils.SetLinkFileToCache(ctx, token, record.ID, linkCacheTTL); err != nil {
		log.Printf("cache link token failed: %v", err)
	}
	return token, nil
}

// DisableLink deactivates the link and clears the token so a stale token
// can never resolve again.
func DisableLink(ctx context.Context, fileID, ownerID uint64) error {
	var record model.FileRecord
	err := repo.Db.Where("id = ? AND owner_id = ?", fileID, ownerID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !record.SharedLinkActive {
		return ErrConflict
	}

	token := ""
	if record.LinkToken != nil {
		token = *record.LinkToken
	}
	err = repo.Db.Model(&record).Updates(map[string]interface{}{
		"link_token":         nil,
		"shared_link_active": false,
	}).Error
	if err != nil {
		return err
	}

	if token != "" {
		if err := utils.InvalidateLinkCache(ctx, token); err != nil {
			log.Printf("invalidate link cache failed: %v", err)
		}
	}
	return nil
}

// ResolveByToken finds the record behind an active link token. The token
// alone authorizes; no identity is involved. The cache is consulted first
// and the hit is verified against the record, so a disabled link never
// resolves from a stale entry.
func ResolveByToken(ctx context.Context, token string) (*model.FileRecord, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	if fileID, ok := utils.GetLinkFileFromCache(ctx, token); ok {
		record, err := GetFileByID(fileID)
		if err == nil && record.SharedLinkActive &&
			record.LinkToken != nil && *record.LinkToken == token {
			return record, nil
		}
	}

	record, err := FindByToken(token)
	if err != nil {
		return nil, err
	}
	if err := utils.SetLinkFileToCache(ctx, token, record.ID, linkCacheTTL); err != nil {
		log.Printf("cache link token failed: %v", err)
	}
	return record, nil
}
