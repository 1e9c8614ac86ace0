package users

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID   map[int64]User
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, u User) (User, error) {
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Signup_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Joseph",
		LastName:  "Ditton",
		Email:     "Joseph.Ditton@usu.edu",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if u.Email != "joseph.ditton@usu.edu" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "secret123" || !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %q", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestService_Signup_RejectsMissingFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []SignupInput{
		{FirstName: "A", LastName: "B", Email: "", Password: "pw"},
		{FirstName: "A", LastName: "B", Email: "a@b.c", Password: ""},
		{FirstName: "", LastName: "B", Email: "a@b.c", Password: "pw"},
		{FirstName: "A", LastName: "", Email: "a@b.c", Password: "pw"},
	}
	for i, in := range cases {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Signup_RejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	in := SignupInput{FirstName: "A", LastName: "B", Email: "a@b.c", Password: "pw"}
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A", LastName: "B", Email: "a@b.c", Password: "right-pw",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "a@b.c", "right-pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("authenticated id = %d, want %d", u.ID, created.ID)
	}

	// Password incorrecto y email inexistente devuelven el mismo error
	_, errWrongPw := svc.Authenticate(context.Background(), "a@b.c", "wrong-pw")
	_, errNoUser := svc.Authenticate(context.Background(), "missing@b.c", "right-pw")

	if !errors.Is(errWrongPw, ErrBadCredentials) || !errors.Is(errNoUser, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for both, got %v / %v", errWrongPw, errNoUser)
	}
}
