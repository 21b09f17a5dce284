package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/joshua-takyi/luxstay/internal/helpers"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	users []*models.User
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, user)
	return user, nil
}

func (m *MockUserRepo) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", models.ErrNotFound)
}

func (m *MockUserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.ID == id })
}

func (m *MockUserRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *MockUserRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Username == username })
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	return m.users, nil
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	user, err := m.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		switch key {
		case "email":
			user.Email = value.(string)
		case "username":
			user.Username = value.(string)
		case "password":
			user.Password = value.(string)
		case "role":
			user.Role = value.(string)
		}
	}
	return user, nil
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user: %w", models.ErrNotFound)
}

func (m *MockUserRepo) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == models.RoleAdmin {
			count++
		}
	}
	return count, nil
}

func (m *MockUserRepo) AppendToken(ctx context.Context, id primitive.ObjectID, token string) error {
	user, err := m.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	user.Tokens = append(user.Tokens, models.AuthToken{Token: token})
	return nil
}

func (m *MockUserRepo) RemoveToken(ctx context.Context, id primitive.ObjectID, token string) error {
	user, err := m.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	kept := user.Tokens[:0]
	for _, t := range user.Tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	user.Tokens = kept
	return nil
}

func (m *MockUserRepo) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	user, err := m.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	user.LastLogin = &at
	return nil
}

const testSecret = "test-secret-key"

func newUser(username, email string) *models.User {
	return &models.User{
		Username: username,
		Email:    email,
		Password: "supersecret",
	}
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	user, token, err := us.Register(context.Background(), &models.User{
		Username: "guest",
		Email:    "  Guest@Example.COM ",
		Password: "supersecret",
		Role:     models.RoleAdmin, // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, "guest@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "supersecret", user.Password)
	assert.True(t, helpers.CheckPassword(user.Password, "supersecret"))

	// the issued token is parseable and stored on the document
	claims, err := helpers.ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	require.Len(t, user.Tokens, 1)
	assert.Equal(t, token, user.Tokens[0].Token)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	_, _, err := us.Register(context.Background(), newUser("guest", "guest@example.com"))
	require.NoError(t, err)

	_, _, err = us.Register(context.Background(), newUser("other", "guest@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, _, err = us.Register(context.Background(), newUser("guest", "other@example.com"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	us := NewUserService(&MockUserRepo{}, testSecret)

	_, _, err := us.Register(context.Background(), &models.User{
		Username: "guest",
		Email:    "not-an-email",
		Password: "supersecret",
	})
	assert.Error(t, err)

	_, _, err = us.Register(context.Background(), &models.User{
		Username: "guest",
		Email:    "guest@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	_, _, err := us.Register(context.Background(), newUser("guest", "guest@example.com"))
	require.NoError(t, err)

	user, token, err := us.Login(context.Background(), "Guest@Example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, user.LastLogin)
	assert.Len(t, user.Tokens, 2, "login adds a second session token")

	_, _, err = us.Login(context.Background(), "guest@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = us.Login(context.Background(), "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRemovesOnlyPresentedToken(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	user, first, err := us.Register(context.Background(), newUser("guest", "guest@example.com"))
	require.NoError(t, err)
	_, second, err := us.Login(context.Background(), "guest@example.com", "supersecret")
	require.NoError(t, err)

	require.NoError(t, us.Logout(context.Background(), user.ID, first))

	stored, err := repo.FindUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stored.Tokens, 1)
	assert.Equal(t, second, stored.Tokens[0].Token)
}

func TestUpdateUserChecksUniqueness(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	first, _, err := us.Register(context.Background(), newUser("first", "first@example.com"))
	require.NoError(t, err)
	_, _, err = us.Register(context.Background(), newUser("second", "second@example.com"))
	require.NoError(t, err)

	_, err = us.UpdateUser(context.Background(), first.ID, map[string]interface{}{"email": "Second@Example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// keeping your own email is not a conflict
	updated, err := us.UpdateUser(context.Background(), first.ID, map[string]interface{}{"email": "First@Example.com", "username": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", updated.Email)
	assert.Equal(t, "renamed", updated.Username)

	_, err = us.UpdateUser(context.Background(), first.ID, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = us.UpdateUser(context.Background(), primitive.NewObjectID(), map[string]interface{}{"username": "ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	user, _, err := us.Register(context.Background(), newUser("guest", "guest@example.com"))
	require.NoError(t, err)

	updated, err := us.UpdateProfile(context.Background(), user.ID, map[string]interface{}{"password": "newsecret"})
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret", updated.Password)
	assert.True(t, helpers.CheckPassword(updated.Password, "newsecret"))

	_, err = us.UpdateProfile(context.Background(), user.ID, map[string]interface{}{"password": "tiny"})
	assert.Error(t, err)
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	admin, err := us.CreateUser(context.Background(), &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	err = us.DeleteUser(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)

	second, err := us.CreateUser(context.Background(), &models.User{
		Username: "admin2",
		Email:    "admin2@example.com",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, us.DeleteUser(context.Background(), second.ID))

	count, err := repo.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteRegularUser(t *testing.T) {
	repo := &MockUserRepo{}
	us := NewUserService(repo, testSecret)

	user, _, err := us.Register(context.Background(), newUser("guest", "guest@example.com"))
	require.NoError(t, err)

	require.NoError(t, us.DeleteUser(context.Background(), user.ID))
	assert.ErrorIs(t, us.DeleteUser(context.Background(), user.ID), models.ErrNotFound)
}
