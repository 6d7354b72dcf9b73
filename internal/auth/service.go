package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/common"
	"godesa/internal/dbmysql"
)

var ErrInvalidCredentials = errors.New("email atau password salah")

type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*dbmysql.User, string, error)
	Login(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	GetUser(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error)

	// EnsureRole creates the default "user" role row when none exists.
	EnsureRole(ctx context.Context, userID string) error
	// IsAdmin is false for a missing session, a missing role row, a lookup
	// error, and a role row valued "user".
	IsAdmin(ctx context.Context, userID string) bool
	Role(ctx context.Context, userID string) (string, error)
	PromoteAdmin(ctx context.Context, email string) error
}

type service struct {
	users UserRepository
	roles RoleRepository
	log   *zap.Logger
}

func NewService(users UserRepository, roles RoleRepository, log *zap.Logger) Service {
	return &service{users: users, roles: roles, log: log}
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*dbmysql.User, string, error) {
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.users.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", errors.New("email sudah terdaftar")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashed,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	// Default role row is best-effort: a failure here is logged and must
	// not fail the registration itself.
	if err := s.roles.CreateRole(ctx, &dbmysql.UserRole{UserID: user.ID, Role: dbmysql.RoleUser}); err != nil {
		s.log.Warn("failed to create default role row",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := common.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("email dan password wajib diisi")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Lazy role bootstrap on sign-in, best-effort.
	if err := s.EnsureRole(ctx, user.ID); err != nil {
		s.log.Warn("failed to ensure role row",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := common.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*dbmysql.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	return s.users.GetUserByEmail(ctx, email)
}

func (s *service) EnsureRole(ctx context.Context, userID string) error {
	_, err := s.roles.GetRoleByUserID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.roles.CreateRole(ctx, &dbmysql.UserRole{UserID: userID, Role: dbmysql.RoleUser})
}

func (s *service) IsAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	role, err := s.roles.GetRoleByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("role lookup failed", zap.String("user_id", userID), zap.Error(err))
		}
		return false
	}
	return role.Role == dbmysql.RoleAdmin
}

func (s *service) Role(ctx context.Context, userID string) (string, error) {
	role, err := s.roles.GetRoleByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dbmysql.RoleUser, nil
		}
		return "", err
	}
	return role.Role, nil
}

// PromoteAdmin is the out-of-band promotion procedure: it upserts the role
// row for the user with the given email to "admin".
func (s *service) PromoteAdmin(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	role, err := s.roles.GetRoleByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.roles.CreateRole(ctx, &dbmysql.UserRole{UserID: user.ID, Role: dbmysql.RoleAdmin})
		}
		return err
	}

	role.Role = dbmysql.RoleAdmin
	return s.roles.UpdateRole(ctx, role)
}
