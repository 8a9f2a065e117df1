package service

import (
	"FileTransfer/internal/repo"
	"FileTransfer/model"
	"context"
	"errors"
	"testing"
)

func TestGrantByEmails(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	users, err := GrantByEmails(fileID, []string{"u2@test.com", "nobody@test.com"})
	if err != nil {
		t.Fatalf("GrantByEmails failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != u2 {
		t.Fatalf("expect exactly u2 resolved, got %d users", len(users))
	}

	if !IsGrantee(u2, fileID) {
		t.Fatal("u2 should be a grantee")
	}
	record, err := GetFileByID(fileID)
	if err != nil {
		t.Fatal(err)
	}
	if !record.Shared {
		t.Fatal("shared flag must flip on first grant")
	}

	shared, err := FindSharedWith(u2)
	if err != nil {
		t.Fatal(err)
	}
	if len(shared) != 1 || shared[0].ID != fileID {
		t.Fatalf("expect file in u2's shared listing, got %d records", len(shared))
	}
	if shared[0].Owner.UserName != "u1" {
		t.Fatalf("expect owner preloaded, got %q", shared[0].Owner.UserName)
	}

	byMe, err := FindSharedByOwner(u1)
	if err != nil {
		t.Fatal(err)
	}
	if len(byMe) != 1 {
		t.Fatalf("expect file in u1's shared-by-me listing, got %d records", len(byMe))
	}
}

func TestGrantByEmailsNoneResolve(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if _, err := GrantByEmails(fileID, []string{"ghost@test.com"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound when no email resolves, got %v", err)
	}
	if _, err := GrantByEmails(99999, []string{"u1@test.com"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for missing file, got %v", err)
	}
}

func TestGrantByEmailsAllowsDuplicates(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	for i := 0; i < 2; i++ {
		if _, err := GrantByEmails(fileID, []string{"u2@test.com"}); err != nil {
			t.Fatalf("grant %d failed: %v", i, err)
		}
	}

	var count int64
	repo.Db.Model(&model.FileGrant{}).Where("file_id = ?", fileID).Count(&count)
	if count != 2 {
		t.Fatalf("expect 2 grant rows, got %d", count)
	}
}

func TestRevokeGrantSelfAndOwner(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	u3 := seedUser(t, "u3", "u3@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if _, err := GrantByEmails(fileID, []string{"u2@test.com"}); err != nil {
		t.Fatal(err)
	}

	// A grantee removes only themself.
	if err := RevokeGrant(fileID, u3, u2); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expect ErrForbidden for stranger revoking u2, got %v", err)
	}
	if err := RevokeGrant(fileID, u2, 0); err != nil {
		t.Fatalf("self revoke failed: %v", err)
	}
	if IsGrantee(u2, fileID) {
		t.Fatal("u2 still a grantee after self revoke")
	}

	// Shared stays true after the last grant is gone.
	record, err := GetFileByID(fileID)
	if err != nil {
		t.Fatal(err)
	}
	if !record.Shared {
		t.Fatal("shared flag must not reset")
	}

	if err := RevokeGrant(fileID, u2, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expect ErrInvalidArgument for absent grant, got %v", err)
	}

	// The owner removes any target.
	if _, err := GrantByEmails(fileID, []string{"u2@test.com"}); err != nil {
		t.Fatal(err)
	}
	if err := RevokeGrant(fileID, u1, u2); err != nil {
		t.Fatalf("owner revoke failed: %v", err)
	}

	if err := RevokeGrant(99999, u1, u2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for missing file, got %v", err)
	}
}

func TestRevokeRemovesOldestDuplicateOnly(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	for i := 0; i < 2; i++ {
		if _, err := GrantByEmails(fileID, []string{"u2@test.com"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := RevokeGrant(fileID, u2, 0); err != nil {
		t.Fatal(err)
	}
	if !IsGrantee(u2, fileID) {
		t.Fatal("second duplicate grant should survive a single revoke")
	}
}

func TestLinkLifecycle(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if _, err := IssueLink(ctx, fileID, u2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for non-owner issue, got %v", err)
	}

	token, err := IssueLink(ctx, fileID, u1)
	if err != nil {
		t.Fatalf("IssueLink failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	// Issuing again conflicts and leaves the token unchanged.
	if _, err := IssueLink(ctx, fileID, u1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expect ErrConflict on second issue, got %v", err)
	}
	record, err := GetFileByID(fileID)
	if err != nil {
		t.Fatal(err)
	}
	if record.LinkToken == nil || *record.LinkToken != token {
		t.Fatal("existing token must survive a conflicting issue")
	}

	resolved, err := ResolveByToken(ctx, token)
	if err != nil {
		t.Fatalf("ResolveByToken failed: %v", err)
	}
	if resolved.ID != fileID {
		t.Fatalf("expect file %d, got %d", fileID, resolved.ID)
	}

	if err := DisableLink(ctx, fileID, u1); err != nil {
		t.Fatalf("DisableLink failed: %v", err)
	}
	if _, err := ResolveByToken(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for disabled token, got %v", err)
	}
	if err := DisableLink(ctx, fileID, u1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expect ErrConflict on double disable, got %v", err)
	}

	record, err = GetFileByID(fileID)
	if err != nil {
		t.Fatal(err)
	}
	if record.LinkToken != nil || record.SharedLinkActive {
		t.Fatal("disable must clear token and flag")
	}
}

func TestResolveByTokenUnknown(t *testing.T) {
	cleanTables(t)
	if _, err := ResolveByToken(context.Background(), "no-such-token"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound, got %v", err)
	}
	if _, err := ResolveByToken(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expect ErrNotFound for empty token, got %v", err)
	}
}
