package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"invctl/internal/models"
)

func TestInitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	st := NewStore(path)
	if st.Active() {
		t.Fatal("fresh store should have no active session")
	}

	user := models.User{ID: 1, Username: "alice"}
	if err := st.Init("tok-123", user); err != nil {
		t.Fatalf("Init() unexpected error = %v", err)
	}

	token, err := st.Token()
	if err != nil {
		t.Fatalf("Token() unexpected error = %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token = %q, want tok-123", token)
	}

	// A new store picks up the persisted session
	st2 := NewStore(path)
	if !st2.Active() {
		t.Fatal("persisted session should be loaded")
	}
	u, err := st2.User()
	if err != nil {
		t.Fatalf("User() unexpected error = %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("username = %q, want alice", u.Username)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	st := NewStore(path)
	if err := st.Init("tok-123", models.User{Username: "alice"}); err != nil {
		t.Fatalf("Init() unexpected error = %v", err)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear() unexpected error = %v", err)
	}

	if st.Active() {
		t.Error("session should be inactive after Clear")
	}
	if _, err := st.Token(); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Token() error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}
}

func TestClear_NoActiveSession(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "session.json"))

	if err := st.Clear(); err != nil {
		t.Errorf("Clear() on empty store unexpected error = %v", err)
	}
}

func TestNewStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path)
	if st.Active() {
		t.Error("corrupt session file should not produce an active session")
	}
}
