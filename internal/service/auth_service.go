package service

import (
	"golang.org/x/crypto/bcrypt"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/pkg/jwt"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/pkg/constants"
	"gitops-dashboard/pkg/responses"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(refreshToken string) (*dto.TokenResponse, error)
	GetUserInfo(username string) (*dto.UserInfo, error)
}

type authService struct {
	store *store.Store
}

func NewAuthService(s *store.Store) AuthService {
	return &authService{store: s}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, ok := s.store.GetUserByUsername(req.Username)
	if !ok {
		return nil, responses.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, responses.ErrInvalidCredentials
	}

	return s.issueTokens(user.Username, user.Role)
}

func (s *authService) RefreshToken(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != constants.JWTTypeRefresh {
		return nil, responses.ErrInvalidToken
	}

	user, ok := s.store.GetUserByUsername(claims.Username)
	if !ok {
		return nil, responses.ErrInvalidToken
	}

	return s.issueTokens(user.Username, user.Role)
}

func (s *authService) GetUserInfo(username string) (*dto.UserInfo, error) {
	user, ok := s.store.GetUserByUsername(username)
	if !ok {
		return nil, responses.ErrRecordNotFound
	}

	return &dto.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *authService) issueTokens(username, role string) (*dto.TokenResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(username, role)
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "generate access token failed", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(username, role)
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "generate refresh token failed", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
