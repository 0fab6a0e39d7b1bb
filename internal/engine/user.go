package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/security"
	"github.com/agenson/cinema-booking/internal/utils"
)

// maxNameLen bounds usernames and passwords after trimming.
const maxNameLen = 16

// UserService manages accounts and credential checks. Registration and
// login are open; profile changes are owner-only; role changes are staff.
type UserService struct {
	st         Store
	bcryptCost int
}

// NewUserService binds the service to its store. bcryptCost is the cost
// factor used when hashing passwords.
func NewUserService(st Store, bcryptCost int) *UserService {
	return &UserService{st: st, bcryptCost: bcryptCost}
}

// Find returns the user with the given public identifier, or nil when no
// such user exists.
func (s *UserService) Find(ctx context.Context, userUUID string) (*model.User, error) {
	u, err := s.st.Users().FindByUUID(ctx, userUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return u, err
}

// FindByUsername returns the user with the given login name, or nil.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.st.Users().FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return u, err
}

// FindAll lists every account. Staff only.
func (s *UserService) FindAll(ctx context.Context, ident *security.Identity) ([]model.User, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	return s.st.Users().FindAll(ctx)
}

// Register creates a customer account and returns it; the caller is then
// logged in by the session layer. Usernames are unique after trimming.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := s.validateUsername(ctx, "", username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UUID:     uuid.NewString(),
		Username: username,
		Password: hash,
		Role:     model.RoleCustomer,
	}
	if err := s.st.Users().Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies a username/password pair and returns the account. A
// missing user and a wrong password produce the same connection failure.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.st.Users().FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrNotFound) {
		return nil, security.ErrConnection
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(user.Password, password) {
		return nil, security.ErrConnection
	}
	return user, nil
}

// UpdateUsername renames an account. Owner only. Returns nil when the
// account does not exist.
func (s *UserService) UpdateUsername(ctx context.Context, ident *security.Identity, userUUID, username string) (*model.User, error) {
	if err := security.RequireUser(ident, userUUID); err != nil {
		return nil, err
	}
	user, err := s.st.Users().FindByUUID(ctx, userUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if err := s.validateUsername(ctx, userUUID, username); err != nil {
		return nil, err
	}
	if err := s.st.Users().UpdateUsername(ctx, userUUID, username); err != nil {
		return nil, err
	}
	user.Username = username
	return user, nil
}

// UpdatePassword rehashes and stores a new password. Owner only. Returns
// nil when the account does not exist.
func (s *UserService) UpdatePassword(ctx context.Context, ident *security.Identity, userUUID, password string) (*model.User, error) {
	if err := security.RequireUser(ident, userUUID); err != nil {
		return nil, err
	}
	user, err := s.st.Users().FindByUUID(ctx, userUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	if err := s.st.Users().UpdatePassword(ctx, userUUID, hash); err != nil {
		return nil, err
	}
	user.Password = hash
	return user, nil
}

// UpdateRole promotes or demotes an account. Staff only. Returns nil when
// the account does not exist.
func (s *UserService) UpdateRole(ctx context.Context, ident *security.Identity, userUUID string, role model.Role) (*model.User, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	user, err := s.st.Users().FindByUUID(ctx, userUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.st.Users().UpdateRole(ctx, userUUID, role); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

// Remove deletes an account. Owner only: users may delete only themselves.
// Their orders cascade-delete at the storage layer.
func (s *UserService) Remove(ctx context.Context, ident *security.Identity, userUUID string) error {
	if err := security.RequireUser(ident, userUUID); err != nil {
		return err
	}
	return s.st.Users().DeleteByUUID(ctx, userUUID)
}

// validateUsername rejects empty or over-long names and names already used
// by a different account. selfUUID is empty on registration.
func (s *UserService) validateUsername(ctx context.Context, selfUUID, username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > maxNameLen {
		return ErrUsernameTooLong
	}
	other, err := s.st.Users().FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.UUID != selfUUID {
		return ErrUsernameExists
	}
	return nil
}

func validatePassword(password string) error {
	trimmed := strings.TrimSpace(password)
	if trimmed == "" {
		return ErrPasswordRequired
	}
	if len(trimmed) > maxNameLen {
		return ErrPasswordTooLong
	}
	return nil
}
