package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

type stubClassroomCache struct {
	rooms       []domain.Classroom
	warm        bool
	sets        int
	invalidates int
}

func (c *stubClassroomCache) GetList(_ context.Context) ([]domain.Classroom, bool) {
	if !c.warm {
		return nil, false
	}
	return c.rooms, true
}

func (c *stubClassroomCache) SetList(_ context.Context, rooms []domain.Classroom) {
	c.rooms = rooms
	c.warm = true
	c.sets++
}

func (c *stubClassroomCache) Invalidate(_ context.Context) {
	c.rooms = nil
	c.warm = false
	c.invalidates++
}

func TestClassroomList_ReadThrough(t *testing.T) {
	repo := newStubClassroomRepo(&domain.Classroom{ID: 1, Name: "多媒體教室", Capacity: 40})
	cache := &stubClassroomCache{}
	svc := NewClassroomService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	// Cold cache: served from the store, then cached.
	rooms, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(rooms) != 1 || cache.sets != 1 {
		t.Fatalf("expected miss then fill, got %d rooms, %d sets", len(rooms), cache.sets)
	}

	// Warm cache: the store is not consulted again.
	delete(repo.rooms, 1)
	rooms, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("warm cache should still serve the old listing, got %d rooms", len(rooms))
	}
}

func TestClassroomMutationsInvalidateCache(t *testing.T) {
	repo := newStubClassroomRepo()
	cache := &stubClassroomCache{}
	svc := NewClassroomService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	room, err := svc.Create(ctx, ports.ClassroomInput{Name: "視聽教室", Capacity: 60, Color: "#f59e0b"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("create must drop the cached list, got %d invalidations", cache.invalidates)
	}

	if _, err := svc.Update(ctx, room.ID, ports.ClassroomInput{Name: "視聽教室", Capacity: 80, Color: "#f59e0b"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cache.invalidates != 2 {
		t.Fatalf("update must drop the cached list, got %d invalidations", cache.invalidates)
	}

	if err := svc.Delete(ctx, room.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidates != 3 {
		t.Fatalf("delete must drop the cached list, got %d invalidations", cache.invalidates)
	}
}

func TestClassroomUpdate_NotFound(t *testing.T) {
	svc := NewClassroomService(newStubClassroomRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 42, ports.ClassroomInput{Name: "x"}); !errors.Is(err, domain.ErrClassroomNotFound) {
		t.Fatalf("expected ErrClassroomNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrClassroomNotFound) {
		t.Fatalf("expected ErrClassroomNotFound, got %v", err)
	}
}
