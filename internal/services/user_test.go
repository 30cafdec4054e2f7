package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fittrack/apiserver/internal/auth"
	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

type fakeUserRepo struct {
	users  map[int]types.User
	nextID int

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]types.User), nextID: 1}
}

func (f *fakeUserRepo) List(_ context.Context, skip, limit int) ([]types.User, error) {
	out := make([]types.User, 0, len(f.users))
	for id := 1; id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			out = append(out, user)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, bool, error) {
	user, ok := f.users[id]
	return user, ok, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (types.User, bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return types.User{}, false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if f.createErr != nil {
		return types.User{}, f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int, patch types.UserPatch) (types.User, bool, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, false, nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	f.users[id] = user
	return user, true, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) (bool, error) {
	_, ok := f.users[id]
	delete(f.users, id)
	return ok, nil
}

func newTestUserService(t *testing.T, repo UserRepository) *UserService {
	t.Helper()
	codec, err := auth.NewCodec("unit-test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewUserService(repo, codec, 100)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(t, repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user id")
	}
	if user.PasswordHash == "s3cret!" {
		t.Fatal("password stored in plain text")
	}

	pair, err := svc.Login(context.Background(), "alice@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(t, repo)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(context.Background(), "Mallory", "alice@example.com", "pw2")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterDuplicateRace(t *testing.T) {
	// The pre-insert lookup misses but the unique index fires.
	repo := newFakeUserRepo()
	repo.createErr = store.ErrDuplicate
	svc := newTestUserService(t, repo)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestUserService(t, newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, ErrUserNotRegistered) {
		t.Fatalf("expected ErrUserNotRegistered, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(t, repo)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "right"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRequiresRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(t, repo)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := svc.Login(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("expected a fresh token pair")
	}

	if _, err := svc.Refresh(pair.AccessToken); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc := newTestUserService(t, newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListClampsLimit(t *testing.T) {
	repo := newFakeUserRepo()
	codec, err := auth.NewCodec("unit-test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	svc := NewUserService(repo, codec, 3)

	for i := 0; i < 5; i++ {
		if _, err := svc.Register(context.Background(), "User", string(rune('a'+i))+"@example.com", "pw"); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	users, err := svc.List(context.Background(), 0, 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected limit clamped to 3, got %d users", len(users))
	}
}
