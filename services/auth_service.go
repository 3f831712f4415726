package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/repository"
	"github.com/wbonfim/DeliveryApp/utils"
)

// AuthService handles registration, login and token reissue.
type AuthService struct {
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// UserOut is the wire shape of an account; storage-only fields (password
// hash, relations) never cross it.
type UserOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName"`
	UserType string `json:"userType"`
	IsActive bool   `json:"isActive"`
}

func ToUserOut(u *entity.User) UserOut {
	return UserOut{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		FullName: u.FullName,
		UserType: u.UserType,
		IsActive: u.IsActive,
	}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName"`
	UserType string `json:"userType" binding:"omitempty,oneof=customer restaurant"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if count, err := s.UserRepo.CountByUsername(username); err != nil {
		return nil, apperr.Internal(err)
	} else if count > 0 {
		return nil, apperr.ErrDuplicateUsername
	}
	if count, err := s.UserRepo.CountByEmail(email); err != nil {
		return nil, apperr.Internal(err)
	} else if count > 0 {
		return nil, apperr.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	userType := in.UserType
	if userType == "" {
		userType = entity.UserTypeCustomer
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Phone:    strings.TrimSpace(in.Phone),
		FullName: strings.TrimSpace(in.FullName),
		UserType: userType,
		IsActive: true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		// a concurrent registration can slip past the counts; the unique
		// indexes are the final arbiter
		if dup := duplicateUserError(err); dup != nil {
			return nil, dup
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// duplicateUserError maps a unique-constraint violation on the users table
// to the matching conflict sentinel. Covers the sqlite ("UNIQUE constraint
// failed: users.username") and postgres ("duplicate key value violates
// unique constraint") message shapes.
func duplicateUserError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !errors.Is(err, gorm.ErrDuplicatedKey) &&
		!strings.Contains(msg, "UNIQUE constraint") &&
		!strings.Contains(msg, "duplicate key") {
		return nil
	}
	switch {
	case strings.Contains(msg, "username"):
		return apperr.ErrDuplicateUsername
	case strings.Contains(msg, "email"):
		return apperr.ErrDuplicateEmail
	default:
		return nil
	}
}

// Login accepts username or email. Unknown identity and wrong password
// produce the same error so neither is leaked.
func (s *AuthService) Login(identifier, password string) (string, *entity.User, error) {
	identifier = strings.TrimSpace(identifier)

	user, err := s.UserRepo.FindByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperr.ErrAccountDeactivated
	}

	token, err := utils.GenerateToken(user.ID, user.UserType, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

// Refresh reissues a token with a fresh full-length window from now.
func (s *AuthService) Refresh(userID uint) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.ErrSubjectNotFound
		}
		return "", apperr.Internal(err)
	}
	if !user.IsActive {
		return "", apperr.ErrAccountDeactivated
	}
	token, err := utils.GenerateToken(user.ID, user.UserType, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSubjectNotFound
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}
