package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

type fakeStore struct {
	users map[string]*User // keyed by email
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeStore{
		users: map[string]*User{
			"admin@warehouse.com": {
				ID: "usr-admin", Username: "admin", Email: "admin@warehouse.com",
				Role: RoleAdmin, FirstName: "Admin", LastName: "User",
				PasswordHash: string(hash),
			},
		},
	}
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := f.users[email]; ok {
		out := *u
		return &out, nil
	}
	return nil, ErrNotFound
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, in CreateUserInput) (*User, error) {
	if _, ok := f.users[in.Email]; ok {
		return nil, ErrEmailConflict
	}
	u := &User{
		ID: "usr-" + in.Username, Username: in.Username, Email: in.Email,
		Role: in.Role, FirstName: in.FirstName, LastName: in.LastName,
		PasswordHash: in.PasswordHash,
	}
	f.users[in.Email] = u
	out := *u
	return &out, nil
}

func TestLoginIssuesToken(t *testing.T) {
	uc := New(newFakeStore(t), "test-secret", 60)

	sess, err := uc.Login(context.Background(), "  Admin@Warehouse.com ", "admin123")
	require.NoError(t, err)
	require.Equal(t, 3600, sess.ExpiresIn)
	require.Equal(t, "usr-admin", sess.User.ID)
	require.Empty(t, sess.User.PasswordHash)

	tok, err := jwt.Parse(sess.AccessToken, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	require.Equal(t, "usr-admin", claims["sub"])
	require.Equal(t, "user", claims["typ"])
	require.Equal(t, "Admin User", claims["name"])
	require.Equal(t, RoleAdmin, claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := New(newFakeStore(t), "test-secret", 60)
	ctx := context.Background()

	_, err := uc.Login(ctx, "admin@warehouse.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email maps to the same error as a wrong password.
	_, err = uc.Login(ctx, "nobody@warehouse.com", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesAndDefaultsRole(t *testing.T) {
	uc := New(newFakeStore(t), "test-secret", 60)

	u, err := uc.Register(context.Background(), RegisterInput{
		Username: "jdoe", Email: "JDoe@Warehouse.com", Password: "secret-pw-1",
		FirstName: "Jane", LastName: "Doe", Role: "superuser",
	})
	require.NoError(t, err)
	require.Equal(t, "jdoe@warehouse.com", u.Email)
	require.Equal(t, RoleStaff, u.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pw-1")))
}

func TestRegisterValidation(t *testing.T) {
	uc := New(newFakeStore(t), "test-secret", 60)

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "not-an-email", Password: "short",
	})
	ve, ok := validation.As(err)
	require.True(t, ok)
	require.Contains(t, ve, "username")
	require.Equal(t, "email is invalid", ve["email"])
	require.Contains(t, ve, "firstName")
	require.Contains(t, ve, "lastName")
	require.Equal(t, "password must be at least 8 characters", ve["password"])
}

func TestRegisterEmailConflict(t *testing.T) {
	uc := New(newFakeStore(t), "test-secret", 60)

	_, err := uc.Register(context.Background(), RegisterInput{
		Username: "admin2", Email: "admin@warehouse.com", Password: "secret-pw-1",
		FirstName: "Other", LastName: "Admin",
	})
	require.ErrorIs(t, err, ErrEmailConflict)
}
