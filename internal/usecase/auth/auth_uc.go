package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
	ErrEmailConflict      = errors.New("email already registered")
)

type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*User, error)
}

type Usecase struct {
	store     Store
	jwtSecret []byte
	expMin    int
}

func New(store Store, jwtSecret string, expiresMinutes int) *Usecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &Usecase{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

func (u *Usecase) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.store.FindByEmail(ctx, email)
	if err != nil {
		// Hide whether the email exists
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"typ":   "user",
		"email": user.Email,
		"name":  user.FirstName + " " + user.LastName,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	// The session user is a sanitized copy; the hash never leaves the store.
	sessionUser := *user
	sessionUser.PasswordHash = ""

	return &Session{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
		User:        sessionUser,
	}, nil
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	ve := validation.Errors{}
	ve.Require("username", in.Username)
	ve.Require("email", in.Email)
	ve.Require("firstName", in.FirstName)
	ve.Require("lastName", in.LastName)
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		ve.Add("email", "email is invalid")
	}
	if len(in.Password) < 8 {
		ve.Add("password", "password must be at least 8 characters")
	}
	if ve.Any() {
		return nil, ve
	}

	if !isValidRole(in.Role) {
		in.Role = RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return u.store.CreateUser(ctx, CreateUserInput{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
		PasswordHash: string(hash),
	})
}

func (u *Usecase) CurrentUser(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return u.store.FindByID(ctx, id)
}

func isValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	default:
		return false
	}
}
