package authz

import (
	"context"
	"errors"
	"testing"
)

type testPet struct {
	id    int64
	owner int64
}

func (p testPet) OwnedBy() int64 { return p.owner }

func lookupFrom(pets map[int64]testPet) func(context.Context, int64) (testPet, error) {
	return func(_ context.Context, id int64) (testPet, error) {
		p, ok := pets[id]
		if !ok {
			return testPet{}, errors.New("not found")
		}
		return p, nil
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		id, err := ParseID(tc.raw)
		if tc.wantOK {
			if err != nil {
				t.Fatalf("ParseID(%q): unexpected error %v", tc.raw, err)
			}
			if id != tc.want {
				t.Fatalf("ParseID(%q) = %d, want %d", tc.raw, id, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("ParseID(%q): expected ErrInvalidID, got %v", tc.raw, err)
		}
	}
}

func TestAuthorizeParent_HappyPath(t *testing.T) {
	lookup := lookupFrom(map[int64]testPet{5: {id: 5, owner: 10}})

	p, err := AuthorizeParent(context.Background(), 10, "5", lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.id != 5 {
		t.Fatalf("parent id = %d, want 5", p.id)
	}
}

func TestAuthorizeParent_MissingIdentity(t *testing.T) {
	lookup := lookupFrom(map[int64]testPet{5: {id: 5, owner: 10}})

	if _, err := AuthorizeParent(context.Background(), 0, "5", lookup); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized with no identity, got %v", err)
	}
}

func TestAuthorizeParent_BadID(t *testing.T) {
	lookup := lookupFrom(map[int64]testPet{})

	for _, raw := range []string{"x", "0", ""} {
		if _, err := AuthorizeParent(context.Background(), 10, raw, lookup); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("raw=%q: expected ErrInvalidID, got %v", raw, err)
		}
	}
}

func TestAuthorizeParent_ConflatesNotFoundAndNotOwner(t *testing.T) {
	lookup := lookupFrom(map[int64]testPet{5: {id: 5, owner: 10}})

	// Inexistente
	_, errMissing := AuthorizeParent(context.Background(), 10, "99", lookup)
	// De otro usuario
	_, errForeign := AuthorizeParent(context.Background(), 11, "5", lookup)

	if !errors.Is(errMissing, ErrUnauthorized) || !errors.Is(errForeign, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for both, got %v / %v", errMissing, errForeign)
	}
	if errMissing.Error() != errForeign.Error() {
		t.Fatalf("not-found and not-owner must be indistinguishable: %v vs %v", errMissing, errForeign)
	}
}

func TestOneOf(t *testing.T) {
	type species string

	if !OneOf(species("corn_snake"), species("ball_python"), species("corn_snake")) {
		t.Fatal("expected member to pass")
	}
	if OneOf(species("gecko"), species("ball_python"), species("corn_snake")) {
		t.Fatal("expected non-member to fail")
	}
	if OneOf(species("ball_python")) {
		t.Fatal("empty allow-list admits nothing")
	}
}
