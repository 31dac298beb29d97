package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))

	want := &TokenSet{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		ExpiresAt:    1756400000,
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got == nil {
		t.Fatal("Load() returned nil after Save")
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	ts, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if ts != nil {
		t.Error("Load() should return nil for missing file")
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Load() should fail on corrupt token file")
	}
}

func TestStoreSavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)
	if err := store.Save(&TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresAt: 1}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestStoreSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")
	store := NewStore(path)
	if err := store.Save(&TokenSet{AccessToken: "a"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("token file not created: %v", err)
	}
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)
	if err := store.Save(&TokenSet{AccessToken: "a"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file should be gone after Clear")
	}

	// Clearing again is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on missing file: %v", err)
	}
}

func TestTokenSetExpired(t *testing.T) {
	now := time.Now().Unix()

	tests := []struct {
		name  string
		token *TokenSet
		want  bool
	}{
		{"nil token", nil, true},
		{"empty access token", &TokenSet{ExpiresAt: now + 3600}, true},
		{"no expiry recorded", &TokenSet{AccessToken: "a"}, true},
		{"expired in the past", &TokenSet{AccessToken: "a", ExpiresAt: now - 10}, true},
		{"inside the margin", &TokenSet{AccessToken: "a", ExpiresAt: now + 30}, true},
		{"valid well into the future", &TokenSet{AccessToken: "a", ExpiresAt: now + 3600}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Expired(ExpiryMargin); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
