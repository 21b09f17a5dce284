package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshua-takyi/luxstay/internal/helpers"
	"github.com/joshua-takyi/luxstay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrLastAdmin          = errors.New("cannot delete the last admin user")
	ErrNoFields           = errors.New("no fields to update")
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewUserService(userRepo models.UserRepo, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a self-service account. The role is always "user"; admin
// accounts are created through CreateUser. Returns the user and a fresh token.
func (us *UserService) Register(ctx context.Context, user *models.User) (*models.User, string, error) {
	user.Role = models.RoleUser

	created, err := us.createUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := us.issueToken(ctx, created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// CreateUser is the admin variant of Register: the role may be assigned and
// no token is issued.
func (us *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return us.createUser(ctx, user)
}

func (us *UserService) createUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Username = strings.TrimSpace(user.Username)

	if err := models.Validate.Struct(user); err != nil {
		return nil, err
	}

	if err := us.checkEmailFree(ctx, user.Email); err != nil {
		return nil, err
	}
	if err := us.checkUsernameFree(ctx, user.Username); err != nil {
		return nil, err
	}

	hash, err := helpers.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.CreatedAt = time.Now()
	user.Tokens = []models.AuthToken{}

	return us.userRepo.CreateUser(ctx, user)
}

// Login verifies credentials, mints a token, records it on the user document
// and stamps lastLogin.
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := us.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %v", err)
	}

	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := us.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	loginAt := time.Now()
	if err := us.userRepo.SetLastLogin(ctx, user.ID, loginAt); err != nil {
		return nil, "", fmt.Errorf("failed to record login: %v", err)
	}
	user.LastLogin = &loginAt

	return user, token, nil
}

func (us *UserService) issueToken(ctx context.Context, user *models.User) (string, error) {
	token, err := helpers.SignToken(us.jwtSecret, user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", err
	}
	if err := us.userRepo.AppendToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("failed to store token: %v", err)
	}
	return token, nil
}

// Logout removes exactly the presented token; other sessions stay valid.
func (us *UserService) Logout(ctx context.Context, id primitive.ObjectID, token string) error {
	if err := us.userRepo.RemoveToken(ctx, id, token); err != nil {
		return fmt.Errorf("failed to remove token: %v", err)
	}
	return nil
}

func (us *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return us.userRepo.FindUserByID(ctx, id)
}

func (us *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return us.userRepo.ListUsers(ctx)
}

// UpdateUser applies an admin edit. Email and username changes are re-checked
// for uniqueness against other documents.
func (us *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	current, err := us.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["email"]; ok {
		email := strings.ToLower(strings.TrimSpace(raw.(string)))
		fields["email"] = email
		if email != current.Email {
			if err := us.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
		}
	}
	if raw, ok := fields["username"]; ok {
		username := strings.TrimSpace(raw.(string))
		fields["username"] = username
		if username != current.Username {
			if err := us.checkUsernameFree(ctx, username); err != nil {
				return nil, err
			}
		}
	}

	return us.userRepo.UpdateUser(ctx, id, fields)
}

// UpdateProfile applies a self-service edit. A password change is re-hashed
// before it is stored.
func (us *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	if raw, ok := fields["password"]; ok {
		password := raw.(string)
		if err := models.Validate.Var(password, "required,min=6"); err != nil {
			return nil, fmt.Errorf("invalid password: %v", err)
		}
		hash, err := helpers.HashPassword(password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	return us.userRepo.UpdateUser(ctx, id, fields)
}

// DeleteUser removes an account, refusing to remove the last admin.
func (us *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := us.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		admins, err := us.userRepo.CountAdmins(ctx)
		if err != nil {
			return fmt.Errorf("failed to count admins: %v", err)
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	return us.userRepo.DeleteUser(ctx, id)
}

func (us *UserService) checkEmailFree(ctx context.Context, email string) error {
	_, err := us.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to look up email: %v", err)
	}
	return nil
}

func (us *UserService) checkUsernameFree(ctx context.Context, username string) error {
	_, err := us.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to look up username: %v", err)
	}
	return nil
}
