package memory

import (
	"testing"
	"time"
)

func TestLoginAttemptStore(t *testing.T) {
	store := NewLoginAttemptStore(3, time.Minute)
	email := "user@example.com"

	if store.Blocked(email) {
		t.Fatal("fresh email should not be blocked")
	}

	store.RecordFailure(email)
	store.RecordFailure(email)
	if store.Blocked(email) {
		t.Fatal("two failures should not block with limit 3")
	}

	store.RecordFailure(email)
	if !store.Blocked(email) {
		t.Fatal("three failures should block with limit 3")
	}

	store.Reset(email)
	if store.Blocked(email) {
		t.Fatal("reset should clear the block")
	}
}

func TestLoginAttemptStoreIsolatedPerEmail(t *testing.T) {
	store := NewLoginAttemptStore(1, time.Minute)

	store.RecordFailure("a@example.com")
	if store.Blocked("b@example.com") {
		t.Fatal("failures must not leak across emails")
	}
}
