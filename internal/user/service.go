package user

import (
	"context"

	"pilmart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, phone, password, address string) (User, error)
	Login(ctx context.Context, phone, password string) (string, User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, phone, password, address string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Name:     name,
		Phone:    phone,
		Password: hashed,
		Address:  address,
	})
	if err != nil {
		log.Warn("failed to create user", zap.Error(err))
		return User{}, err
	}

	log.Info("user registered", zap.Int("user_id", u.ID))
	return u, nil
}

// Login checks the password and returns a signed token. The same error is
// returned for an unknown phone and a wrong password.
func (s *service) Login(ctx context.Context, phone, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		log.Warn("login failed: unknown phone")
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login failed: password mismatch", zap.Int("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Phone, RoleUser)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user logged in", zap.Int("user_id", u.ID))
	return token, *u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id int, params UpdateProfileParams) (*User, error) {
	u, err := s.repo.UpdateProfile(ctx, id, params)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update profile",
			zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}
