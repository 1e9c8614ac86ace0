package reptiles

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID   map[int64]Reptile
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Reptile{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, rp Reptile) (Reptile, error) {
	rp.ID = r.nextID
	r.nextID++
	r.byID[rp.ID] = rp
	return rp, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Reptile, error) {
	rp, ok := r.byID[id]
	if !ok {
		return Reptile{}, errRepoNotFound
	}
	return rp, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID int64) ([]Reptile, error) {
	out := make([]Reptile, 0)
	for _, rp := range r.byID {
		if rp.OwnerUserID == ownerUserID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rp Reptile) error {
	if _, ok := r.byID[rp.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[rp.ID] = rp
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rp, err := svc.Create(context.Background(), 3, CreateInput{
		Species: SpeciesCornSnake,
		Name:    "  Rex  ",
		Sex:     SexFemale,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rp.ID == 0 || rp.OwnerUserID != 3 {
		t.Fatalf("reptile = %+v", rp)
	}
	if rp.Name != "Rex" {
		t.Fatalf("name not trimmed: %q", rp.Name)
	}
	if !rp.CreatedAt.Equal(now) || !rp.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v / %v, want %v", rp.CreatedAt, rp.UpdatedAt, now)
	}

	if rp.OwnedBy() != 3 {
		t.Fatalf("OwnedBy() = %d, want 3", rp.OwnedBy())
	}
}

func TestService_Create_RequiresOwner(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), 0, CreateInput{Species: SpeciesBallPython, Sex: SexMale}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_ReplacesMutableFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	rp, err := svc.Create(context.Background(), 3, CreateInput{
		Species: SpeciesBallPython,
		Name:    "Parker",
		Sex:     SexMale,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }

	updated, err := svc.Update(context.Background(), rp, CreateInput{
		Species: SpeciesKingSnake,
		Name:    "Parker II",
		Sex:     SexFemale,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Species != SpeciesKingSnake || updated.Name != "Parker II" || updated.Sex != SexFemale {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.OwnerUserID != 3 || updated.ID != rp.ID {
		t.Fatalf("identity fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) || !updated.UpdatedAt.Equal(later) {
		t.Fatalf("timestamps = %v / %v", updated.CreatedAt, updated.UpdatedAt)
	}

	stored, _ := repo.GetByID(context.Background(), rp.ID)
	if stored.Species != SpeciesKingSnake {
		t.Fatalf("repo not updated: %+v", stored)
	}
}
