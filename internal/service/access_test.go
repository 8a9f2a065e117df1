package service

import "testing"

func TestCheckFileOwner(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if !CheckFileOwner(u1, fileID) {
		t.Fatal("owner not recognized")
	}
	if CheckFileOwner(u2, fileID) {
		t.Fatal("non-owner recognized as owner")
	}
	if CheckFileOwner(u1, 99999) {
		t.Fatal("missing file recognized")
	}
}

func TestIsGrantee(t *testing.T) {
	cleanTables(t)
	u1 := seedUser(t, "u1", "u1@test.com")
	u2 := seedUser(t, "u2", "u2@test.com")
	fileID := seedFile(t, u1, "a.txt")

	if IsGrantee(u2, fileID) {
		t.Fatal("u2 should not be a grantee yet")
	}
	if _, err := GrantByEmails(fileID, []string{"u2@test.com"}); err != nil {
		t.Fatal(err)
	}
	if !IsGrantee(u2, fileID) {
		t.Fatal("u2 should be a grantee")
	}
}
