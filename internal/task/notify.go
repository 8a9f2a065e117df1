package task

import (
	"FileTransfer/internal/mq"
	"FileTransfer/model"
	"context"
	"encoding/json"
	"log"
)

// ShareNoticeMessage is the payload sent to the notify worker.
type ShareNoticeMessage struct {
	FileID    uint64 `json:"file_id"`
	UserID    uint64 `json:"user_id"`
	Email     string `json:"email"`
	OwnerName string `json:"owner_name"`
	FileName  string `json:"file_name"`
	Attempt   int    `json:"attempt"`
}

// EnqueueShareNotices publishes one notice per grantee. Best effort: a
// publish failure is logged and never fails the grant itself.
func EnqueueShareNotices(record *model.FileRecord, ownerName string, users []model.User) {
	publisher, err := mq.GetPublisher()
	if err != nil {
		log.Printf("share notice publisher unavailable: %v", err)
		return
	}
	for _, user := range users {
		msg := ShareNoticeMessage{
			FileID:    record.ID,
			UserID:    user.ID,
			Email:     user.Email,
			OwnerName: ownerName,
			FileName:  record.DisplayName,
			Attempt:   0,
		}
		body, err := json.Marshal(msg)
		if err != nil {
			log.Printf("share notice encode failed: %v", err)
			continue
		}
		if err := publisher.PublishNotice(context.Background(), body); err != nil {
			log.Printf("share notice publish failed for %s: %v", user.Email, err)
		}
	}
}
