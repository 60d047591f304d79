// Package auth issues and verifies the bearer tokens that authorize
// every API call, and owns user registration and login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/7innovations/fixu/internal/history"
)

const minPasswordLen = 8

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("name, valid email, and password of at least 8 characters required")
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PassHash  string `json:"-"`
	CreatedAt string `json:"createdAt"`
}

type UserStore interface {
	Insert(ctx context.Context, u User) error
	ByEmail(ctx context.Context, email string) (User, error)
}

type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	users UserStore
	hmac  []byte
	ttl   time.Duration
	now   func() time.Time
	newID func() string
}

func NewService(users UserStore, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Service{
		users: users,
		hmac:  []byte(secret),
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] },
	}
}

// Session is what a successful register or login hands back.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *Service) Register(ctx context.Context, name, email, password string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || !strings.Contains(email, "@") || len(password) < minPasswordLen {
		return Session{}, ErrInvalidInput
	}
	if _, err := s.users.ByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}
	u := User{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		PassHash:  string(hash),
		CreatedAt: s.now().Format(history.TimeLayout),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return Session{}, fmt.Errorf("store user: %w", err)
	}
	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *Service) session(u User) (Session, error) {
	tok, err := s.IssueJWT(u)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: tok, User: u}, nil
}

func (s *Service) IssueJWT(u User) (string, error) {
	now := s.now()
	claims := &Claims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fixu",
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return c, nil
}
