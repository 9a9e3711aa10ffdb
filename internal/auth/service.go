package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/devray27/studypal-backend/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	policy PasswordPolicy
	cost   int
}

func NewService(db *gorm.DB, policy PasswordPolicy, bcryptCost int) *Service {
	return &Service{db: db, policy: policy, cost: bcryptCost}
}

type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

// Register validates input, checks username-then-email uniqueness and
// persists the user with a bcrypt hash. No row is written before both
// uniqueness checks pass; a constraint race on insert is re-mapped to the
// matching duplicate error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegistration(in, s.policy); err != nil {
		return nil, err
	}

	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", in.Username).Count(&cnt).Error; err != nil {
		return nil, fmt.Errorf("%w: check username: %s", ErrPersistence, err)
	}
	if cnt > 0 {
		return nil, ErrDuplicateUsername
	}

	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", in.Email).Count(&cnt).Error; err != nil {
		return nil, fmt.Errorf("%w: check email: %s", ErrPersistence, err)
	}
	if cnt > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := HashPassword(in.Password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %s", ErrPersistence, err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent writer won between our checks and the insert
			return nil, s.classifyDuplicate(ctx, in)
		}
		return nil, fmt.Errorf("%w: create user: %s", ErrPersistence, err)
	}
	return &user, nil
}

func (s *Service) classifyDuplicate(ctx context.Context, in RegisterInput) error {
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", in.Username).Count(&cnt).Error; err == nil && cnt > 0 {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// Login is a stateless credential check: it issues no token or session.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: lookup user: %s", ErrPersistence, err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}
	return &user, nil
}
