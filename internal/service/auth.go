package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

var (
	// ErrInvalidCredentials is returned when the login email is
	// unknown or the password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token does not resolve to an
	// existing user
	ErrInvalidToken = errors.New("invalid token")
)

// JWTConfig holds configuration for JWT token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

// AuthService handles authentication and authorization
type AuthService struct {
	store     *store.Store
	jwtConfig JWTConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(st *store.Store, jwtConfig JWTConfig) *AuthService {
	return &AuthService{
		store:     st,
		jwtConfig: jwtConfig,
	}
}

// Claims represents JWT claims. The token is an opaque credential to
// clients; the user id travels only inside the signed payload.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a user with role "user" and issues a token bound
// to it. Fails with store.ErrDuplicateEmail when the email is taken.
func (s *AuthService) Register(req models.RegisterRequest) (string, *models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, &user, nil
}

// Login authenticates a user and issues a fresh token
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, &user, nil
}

// generateToken generates a JWT token for a user
func (s *AuthService) generateToken(userID uuid.UUID, role models.UserRole) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.jwtConfig.ExpiresIn) * time.Hour)

	claims := &Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ResolveToken maps a token to the user it was issued for. A token is
// only valid while that user still exists in the store.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &user, nil
}

// ListUsers returns all users in insertion order
func (s *AuthService) ListUsers() []models.User {
	return s.store.ListUsers()
}
