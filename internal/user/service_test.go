package user

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndResolve(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Vasile")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	id, err := svc.GetIDByName(ctx, "Vasile")
	if err != nil {
		t.Fatalf("resolve id: %v", err)
	}
	if id != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, id)
	}

	ok, err := svc.Exists(ctx, created.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected user %d to exist", created.ID)
	}
}

func TestExistsUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	ok, err := svc.Exists(context.Background(), 27)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("expected user 27 to be unknown")
	}
}

func TestCreateDuplicateName(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Vasile"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "Vasile"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Create(context.Background(), "   "); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
