package utils

import "testing"

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("yourpassword")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("yourpassword")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ")
	}
	if first == "yourpassword" {
		t.Error("hash must not equal the plaintext")
	}

	if !CheckPassword(first, "yourpassword") {
		t.Error("first hash should verify against the original password")
	}
	if !CheckPassword(second, "yourpassword") {
		t.Error("second hash should verify against the original password")
	}
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("yourpassword")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if CheckPassword(hash, "notmypassword") {
		t.Error("wrong password must not verify")
	}
}
