// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestGenerateResetToken(t *testing.T) {
	plain, hashed, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(plain) != 2*resetTokenBytes {
		t.Errorf("expected %d hex chars, got %d", 2*resetTokenBytes, len(plain))
	}
	if hashed == plain {
		t.Error("digest must differ from the plain token")
	}
	if hashed != HashResetToken(plain) {
		t.Error("digest must match HashResetToken(plain)")
	}

	other, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if other == plain {
		t.Error("expected two different tokens")
	}
}

func TestHashResetToken(t *testing.T) {
	sum := sha256.Sum256([]byte("abc"))
	want := hex.EncodeToString(sum[:])

	if got := HashResetToken("abc"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
