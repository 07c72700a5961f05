package operators

import (
	"context"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	op, err := svc.CreateOrUpdate(ctx, "Staff@NWPolishing.co.uk", "Staff User", "hunter22")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if op.ID == "" {
		t.Fatal("expected operator to get an ID")
	}
	if op.Email != "staff@nwpolishing.co.uk" {
		t.Fatalf("expected email to be normalized, got %q", op.Email)
	}

	got, err := svc.Authenticate(ctx, "staff@nwpolishing.co.uk", "hunter22")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.Email != op.Email {
		t.Fatalf("unexpected operator: %+v", got)
	}

	// wrong password and unknown account look the same
	if _, err := svc.Authenticate(ctx, "staff@nwpolishing.co.uk", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@nwpolishing.co.uk", "hunter22"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateOrUpdate_UpdatesExisting(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.CreateOrUpdate(ctx, "ops@nwpolishing.co.uk", "Old Name", "pw1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.CreateOrUpdate(ctx, "ops@nwpolishing.co.uk", "New Name", "pw2")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same account, got %q and %q", first.ID, second.ID)
	}
	if _, err := svc.Authenticate(ctx, "ops@nwpolishing.co.uk", "pw2"); err != nil {
		t.Fatalf("expected new password to authenticate: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ops@nwpolishing.co.uk", "pw1"); err == nil {
		t.Fatal("expected old password to be rejected")
	}
}
