package user_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/store"
	"github.com/neet-mastery/mastery-lambda/internal/user"
)

type fakeSync struct {
	synced []user.Profile
	err    error
}

func (f *fakeSync) SyncUser(_ context.Context, p *user.Profile) error {
	f.synced = append(f.synced, *p)
	return f.err
}

func (f *fakeSync) Close(context.Context) error { return nil }

func newService(t *testing.T, remote user.RemoteSync) (user.UserService, *event.Recorder, store.KV) {
	t.Helper()
	kv := store.NewMemoryKV()
	rec := event.NewRecorder()
	svc := user.NewService(user.NewRepository(store.NewLocal(kv)), remote, rec, nil)
	return svc, rec, kv
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("RegularUser", func(t *testing.T) {
		remote := &fakeSync{}
		svc, rec, _ := newService(t, remote)

		p, err := svc.Login(ctx, user.LoginRequest{Name: "Asha", AuthMethod: user.AuthMethodEmail, Identifier: "asha@example.com"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if p.ID == "" || p.IsSubscribed || p.Email != "asha@example.com" || p.Phone != "" {
			t.Fatalf("unexpected profile: %+v", p)
		}
		if len(remote.synced) != 1 {
			t.Fatalf("expected one remote sync, got %d", len(remote.synced))
		}
		if events := rec.Events(); len(events) != 1 || events[0].Type != event.TypeUserLoggedIn {
			t.Fatalf("expected login event, got %+v", events)
		}
	})

	t.Run("AuthorIsSubscribed", func(t *testing.T) {
		svc, _, _ := newService(t, &fakeSync{})

		p, err := svc.Login(ctx, user.LoginRequest{Name: "Adarsh", AuthMethod: user.AuthMethodPhone, Identifier: "7233893011"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if !p.IsSubscribed || p.Phone != "7233893011" {
			t.Fatalf("author should be subscribed: %+v", p)
		}
		if !svc.IsSubscribed(ctx, p.ID) {
			t.Fatal("IsSubscribed should read the saved profile")
		}
	})

	t.Run("RemoteFailureIgnored", func(t *testing.T) {
		svc, _, _ := newService(t, &fakeSync{err: errors.New("unreachable")})

		p, err := svc.Login(ctx, user.LoginRequest{Name: "Ravi", AuthMethod: user.AuthMethodPhone, Identifier: "9000000000"})
		if err != nil {
			t.Fatalf("remote sync failure must not fail login: %v", err)
		}
		if _, err := svc.Me(ctx, p.ID); err != nil {
			t.Fatalf("profile should be saved locally: %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		svc, _, _ := newService(t, &fakeSync{})

		for _, req := range []user.LoginRequest{
			{Name: "", AuthMethod: user.AuthMethodPhone, Identifier: "1"},
			{Name: "x", AuthMethod: user.AuthMethodPhone, Identifier: " "},
			{Name: "x", AuthMethod: "pigeon", Identifier: "1"},
		} {
			if _, err := svc.Login(ctx, req); !errors.Is(err, user.ErrInvalidLogin) {
				t.Errorf("expected ErrInvalidLogin for %+v, got %v", req, err)
			}
		}
	})
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, withKey := range []bool{false, true} {
		name := "Plain"
		if withKey {
			name = "Encrypted"
		}
		t.Run(name, func(t *testing.T) {
			if withKey {
				os.Setenv("CRYPTO_KEY", "01234567890123456789012345678901")
				defer os.Unsetenv("CRYPTO_KEY")
			} else {
				os.Unsetenv("CRYPTO_KEY")
			}
			config.InitCrypto()
			defer func() {
				os.Unsetenv("CRYPTO_KEY")
				config.InitCrypto()
			}()

			kv := store.NewMemoryKV()
			repo := user.NewRepository(store.NewLocal(kv))
			want := &user.Profile{
				ID:         "u1",
				Name:       "Meera",
				AuthMethod: user.AuthMethodPhone,
				Phone:      "9876543210",
				JoinedAt:   "2026-01-02T03:04:05Z",
			}
			repo.Save(ctx, want)

			got, ok := repo.Get(ctx, "u1")
			if !ok {
				t.Fatal("profile not found")
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
			}

			raw, err := kv.Get(ctx, store.UserKey(store.KeyUser, "u1"))
			if err != nil {
				t.Fatalf("raw read: %v", err)
			}
			if withKey == strings.Contains(string(raw), "9876543210") {
				t.Fatalf("phone at rest should be encrypted only when a key is set: %s", raw)
			}
		})
	}
}

func TestMarkSubscribedAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, rec, _ := newService(t, &fakeSync{})

	p, _ := svc.Login(ctx, user.LoginRequest{Name: "Kiran", AuthMethod: user.AuthMethodEmail, Identifier: "k@example.com"})
	if svc.IsSubscribed(ctx, p.ID) {
		t.Fatal("new user should not be subscribed")
	}

	if _, err := svc.MarkSubscribed(ctx, p.ID); err != nil {
		t.Fatalf("mark subscribed: %v", err)
	}
	if !svc.IsSubscribed(ctx, p.ID) {
		t.Fatal("subscription not persisted")
	}
	events := rec.Events()
	if events[len(events)-1].Type != event.TypeUserSubscribed {
		t.Fatalf("expected subscribed event, got %+v", events)
	}

	svc.Logout(ctx, p.ID)
	if _, err := svc.Me(ctx, p.ID); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after logout, got %v", err)
	}
	if _, err := svc.MarkSubscribed(ctx, "ghost"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, &fakeSync{})

	if got := svc.Theme(ctx, "u1"); got != user.ThemeLight {
		t.Fatalf("expected light by default, got %s", got)
	}
	svc.SetTheme(ctx, "u1", user.ThemeDark)
	if got := svc.Theme(ctx, "u1"); got != user.ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
}
