package utils

import "testing"

func TestCheckPwd(t *testing.T) {
	hash := GetPwd("s3cret")
	if hash == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPwd("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPwd("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
