package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sqlconsole/internal/models"
	"sqlconsole/internal/repositories"
	"sqlconsole/internal/utils"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (s *AuthService) Register(email, fullName, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := utils.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// Login rejects unknown, inactive, and wrong-password accounts with the same
// error so the response does not reveal which accounts exist.
func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", "", err
	}
	if user == nil || !user.IsActive {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(user.ID, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := utils.GenerateJWT(user.ID, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh validates the refresh token and issues a rotated token pair.
// Tokens are self-contained; there is no session table to consult.
func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	user, err := s.userRepo.FindUserByID(claims.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil || !user.IsActive {
		return "", "", ErrInvalidCredentials
	}

	newAccessToken, err := utils.GenerateJWT(claims.UserID, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	newRefreshToken, err := utils.GenerateJWT(claims.UserID, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	return newAccessToken, newRefreshToken, nil
}

func (s *AuthService) Me(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
