// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	data := "alice:correct-horse-battery-staple"

	got := HashString(data, testHashKey)

	// Эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	data := "some-password"

	hash1 := HashString(data, testHashKey)
	hash2 := HashString(data, testHashKey)

	if hash1 != hash2 {
		t.Errorf("same input must produce same hash:\n  hash1: %s\n  hash2: %s", hash1, hash2)
	}
}

func TestHashString_DifferentData(t *testing.T) {
	hash1 := HashString("password-one", testHashKey)
	hash2 := HashString("password-two", testHashKey)

	if hash1 == hash2 {
		t.Error("different inputs must produce different hashes")
	}
}

// TestHashString_DifferentKeys проверяет что разные ключи дают разные хеши
// для одного и того же входа.
func TestHashString_DifferentKeys(t *testing.T) {
	data := "same-password"

	hash1 := HashString(data, "key-one")
	hash2 := HashString(data, "key-two")

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same input")
	}
}

func TestHashString_EmptyInput(t *testing.T) {
	got := HashString("", testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("empty input hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}
