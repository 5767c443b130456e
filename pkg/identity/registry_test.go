package identity

import (
	"errors"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}

	t.Run("rejects empty username", func(t *testing.T) {
		if err := r.Register("", "pw"); err == nil {
			t.Error("Register() with empty username should fail")
		}
	})

	t.Run("rejects empty password", func(t *testing.T) {
		if err := r.Register("bob", ""); err == nil {
			t.Error("Register() with empty password should fail")
		}
	})
}

func TestRegistry_DuplicateKeepsOriginalPassword(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("alice", "pw2"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("second Register() error = %v, want ErrUserExists", err)
	}

	// Original credentials still work, the new ones never took effect.
	if err := r.Authenticate("alice", "pw1"); err != nil {
		t.Errorf("Authenticate() with original password error = %v", err)
	}
	if err := r.Authenticate("alice", "pw2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() with rejected password error = %v, want ErrInvalidCredentials", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistry_Authenticate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "alice", "pw1", nil},
		{"wrong password", "alice", "nope", ErrInvalidCredentials},
		{"unknown user", "mallory", "pw1", ErrInvalidCredentials},
		{"empty password", "alice", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Authenticate(tt.username, tt.password)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Authenticate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authenticate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
