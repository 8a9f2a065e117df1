package service

import (
	"errors"
	"testing"
)

func TestFindByOwnerScopedToUploader(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	own, err := FindByOwner(u1)
	if err != nil {
		t.Fatalf("FindByOwner failed: %v", err)
	}
	if len(own) != 1 || own[0].ID != fileID {
		t.Fatalf("expect u1 listing to contain the upload, got %d records", len(own))
	}

	other, err := FindByOwner(u2)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("expect empty listing for u2, got %d records", len(other))
	}
}

func TestCreateFileRecordResetsShareState(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	fileID := seedFile(t, u1, "a.txt")

	record, err := GetFileByID(fileID)
	if err != nil {
		t.Fatal(err)
	}
	if record.Shared || record.SharedLinkActive || record.LinkToken != nil {
		t.Fatal("new record must start with no share state")
	}
	if record.OwnerID != u1 {
		t.Fatalf("expect owner %d, got %d", u1, record.OwnerID)
	}
}

func TestRenameOwnerScoped(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	record, err := RenameFile(u1, fileID, "b.txt")
	if err != nil {
		t.Fatalf("RenameFile failed: %v", err)
	}
	if record.DisplayName != "b.txt" {
		t.Fatalf("expect b.txt, got %s", record.DisplayName)
	}

	// Repeating the identical rename succeeds again.
	if _, err := RenameFile(u1, fileID, "b.txt"); err != nil {
		t.Fatalf("repeated rename failed: %v", err)
	}

	if _, err := RenameFile(u2, fileID, "c.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for non-owner rename, got %v", err)
	}
}

func TestDeleteDistinguishesForbiddenFromNotFound(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if _, err := DeleteFileRecord(u2, fileID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expect ErrForbidden for non-owner delete, got %v", err)
	}

	record, err := DeleteFileRecord(u1, fileID)
	if err != nil {
		t.Fatalf("DeleteFileRecord failed: %v", err)
	}
	if record.StoragePath == "" {
		t.Fatal("removed record must carry the storage path for blob cleanup")
	}

	if _, err := GetFileByID(fileID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound after delete, got %v", err)
	}
	if _, err := DeleteFileRecord(u1, fileID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for double delete, got %v", err)
	}
}
