package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService() *Service {
	return NewService(NewInMemoryStore(), "test-secret", time.Hour)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ayu", "ayu@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.Token == "" || sess.User.ID == "" {
		t.Fatalf("register session incomplete: %+v", sess)
	}

	claims, err := svc.Parse(sess.Token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != sess.User.ID || claims.Email != "ayu@example.com" {
		t.Fatalf("claims = %+v", claims)
	}

	again, err := svc.Login(ctx, "AYU@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if again.User.ID != sess.User.ID {
		t.Fatal("login returned a different user")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := testService()
	cases := []struct {
		name, email, password string
	}{
		{"", "a@b.c", "longenough"},
		{"Ayu", "not-an-email", "longenough"},
		{"Ayu", "a@b.c", "short"},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c.name, c.email, c.password); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Register(%q,%q,...) err = %v, want ErrInvalidInput", c.name, c.email, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "A", "dup@example.com", "password123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, "B", "dup@example.com", "password456"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "A", "a@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "a@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "ghost@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testService()
	sess, err := svc.Register(context.Background(), "A", "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	svc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	if _, err := svc.Parse(sess.Token); err == nil {
		t.Fatal("expired token should not parse")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := testService()
	sess, err := svc.Register(context.Background(), "A", "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var gotSubject string
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = SubjectFromContext(r.Context())
	}))

	// no token
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/history", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", rr.Code)
	}

	// garbage token
	rr = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("Authorization", "Bearer nope")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d, want 401", rr.Code)
	}

	// valid token
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, want 200", rr.Code)
	}
	if gotSubject != sess.User.ID {
		t.Fatalf("subject in context = %q, want %q", gotSubject, sess.User.ID)
	}
}
