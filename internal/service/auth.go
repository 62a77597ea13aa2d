package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

type AuthService struct {
	repoUser   *repository.UserRepository
	jwtService *JWTService
	blacklist  *BlacklistService
}

func NewAuthService(repoUser *repository.UserRepository, jwtService *JWTService, blacklist *BlacklistService) *AuthService {
	return &AuthService{
		repoUser:   repoUser,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Register")

	logger.InfoWithContext(ctx, "Registering new user").
		String("email", req.Email).
		Log()

	hashedKey, err := bcrypt.GenerateFromPassword([]byte(req.Key), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, fmt.Errorf("failed to hash key: %w", err))
	}

	userType := req.Type
	if userType == "" {
		userType = model.UserTypeUser
	}

	user := &model.User{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		OtherNames: req.OtherNames,
		Phone:      req.Phone,
		Type:       userType,
		HashedKey:  string(hashedKey),
	}

	if err := s.repoUser.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toUserResponse(user), nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Login")

	user, err := s.repoUser.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedKey), []byte(req.Key)) != nil {
		logger.WarnWithContext(ctx, "Login failed, invalid credentials").
			String("email", req.Email).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID.String())
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User logged in successfully").
		String("user_id", user.ID.String()).
		Log()

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh verifies a refresh token and mints a new access token.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.AccessTokenResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Refresh")

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return &dto.AccessTokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Logout blacklists the presented token. Used for both access and refresh
// logout; the middleware has already verified the token and its type.
func (s *AuthService) Logout(ctx context.Context, claims *TokenClaims) error {
	ctx = ctxutil.WithScope(ctx, "service", "Logout")

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	return s.blacklist.Revoke(ctx, claims, userID)
}

// GetUser loads one user by id.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetUser")

	user, err := s.repoUser.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toUserResponse(user), nil
}

// GetUserModel loads the raw user model; the JWT middleware uses it to
// attach the authenticated user to the request context.
func (s *AuthService) GetUserModel(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repoUser.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return user, nil
}

// ListUsers returns a filtered page of users. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, currentUser *model.User, params url.Values, page query.PageParams) (*query.PaginatedResponse[dto.UserResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "ListUsers")

	if !currentUser.IsAdmin() {
		logger.WarnWithContext(ctx, "Non-admin attempted to list users").
			String("user_id", currentUser.ID.String()).
			Log()
		return nil, apperrors.ErrAdminOnly
	}

	users, err := s.repoUser.List(ctx, params, page)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(users, func(u model.User) dto.UserResponse {
		return *toUserResponse(&u)
	}), nil
}

// ValidateAccessToken verifies an access token and checks the blacklist.
func (s *AuthService) ValidateAccessToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	return s.validateToken(ctx, tokenString, TokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token and checks the blacklist.
func (s *AuthService) ValidateRefreshToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	return s.validateToken(ctx, tokenString, TokenTypeRefresh)
}

func (s *AuthService) validateToken(ctx context.Context, tokenString, tokenType string) (*TokenClaims, error) {
	claims, err := s.jwtService.ValidateToken(tokenString, tokenType)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	return claims, nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		OtherNames: user.OtherNames,
		Phone:      user.Phone,
		Type:       user.Type,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
