package app_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"dealerhub/internal/app"
	"dealerhub/internal/domain"
)

// ---- fakes ----

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
	next  int64
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.users == nil {
		f.users = map[string]domain.User{}
	}
	if _, exists := f.users[u.Username]; exists {
		return 0, domain.ErrDuplicateUser
	}
	f.next++
	u.ID = f.next
	f.users[u.Username] = u
	return u.ID, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type fakeSessions struct {
	mu   sync.Mutex
	byTk map[string]string
	next int
}

func (f *fakeSessions) Create(ctx context.Context, username string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byTk == nil {
		f.byTk = map[string]string{}
	}
	f.next++
	tk := fmt.Sprintf("tok-%d", f.next)
	f.byTk[tk] = username
	return tk, nil
}

func (f *fakeSessions) Get(ctx context.Context, token string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byTk[token]
	return u, ok, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byTk, token)
	return nil
}

// ---- tests ----

func TestRegister_ThenLogin(t *testing.T) {
	users := &fakeUserRepo{}
	auth := app.NewAuthService(users, &fakeSessions{})

	tok, err := auth.Register(context.Background(), app.RegisterInput{Username: "ana", Password: "s3cret", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tok == "" {
		t.Fatal("register must open a session")
	}
	// the stored hash must not be the plaintext
	u, _ := users.GetUserByUsername(context.Background(), "ana")
	if u.PasswordHash == "s3cret" || u.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", u.PasswordHash)
	}

	if _, err := auth.Login(context.Background(), "ana", "s3cret"); err != nil {
		t.Fatalf("login with correct password: %v", err)
	}
	if _, err := auth.Login(context.Background(), "ana", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.Login(context.Background(), "nobody", "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	auth := app.NewAuthService(&fakeUserRepo{}, &fakeSessions{})
	for _, in := range []app.RegisterInput{
		{Username: "", Password: "x"},
		{Username: "ana", Password: ""},
	} {
		if _, err := auth.Register(context.Background(), in); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", in, err)
		}
	}
}

func TestRegister_DuplicateKeepsSingleRecord(t *testing.T) {
	users := &fakeUserRepo{}
	auth := app.NewAuthService(users, &fakeSessions{})

	if _, err := auth.Register(context.Background(), app.RegisterInput{Username: "ana", Password: "a"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(context.Background(), app.RegisterInput{Username: "ana", Password: "b"})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate register created %d records", len(users.users))
	}
}

func TestAuthenticateAndLogout(t *testing.T) {
	sessions := &fakeSessions{}
	auth := app.NewAuthService(&fakeUserRepo{}, sessions)

	tok, err := auth.Register(context.Background(), app.RegisterInput{Username: "bo", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	cred, err := auth.Authenticate(context.Background(), tok)
	if err != nil || cred == nil || cred.Username != "bo" || cred.Token != tok {
		t.Fatalf("expected live credential, got %+v err=%v", cred, err)
	}

	auth.Logout(context.Background(), tok)
	cred, err = auth.Authenticate(context.Background(), tok)
	if err != nil || cred != nil {
		t.Fatalf("expected nil credential after logout, got %+v err=%v", cred, err)
	}

	// unknown and empty tokens are simply "not logged in"
	if cred, _ := auth.Authenticate(context.Background(), "bogus"); cred != nil {
		t.Fatalf("expected nil credential for bogus token")
	}
	if cred, _ := auth.Authenticate(context.Background(), ""); cred != nil {
		t.Fatalf("expected nil credential for empty token")
	}
}
