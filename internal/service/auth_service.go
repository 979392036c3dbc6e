package service

import (
	"errors"
	"fmt"
	"time"

	"notekeeper/internal/models"
	"notekeeper/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrDuplicateAccount   = errors.New("account with this email already exists")
	ErrUnknownAccount     = errors.New("no account with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

// AuthService handles signup, login and session tokens.
type AuthService struct {
	users repository.Users
	sess  SessionConfig
}

func NewAuthService(users repository.Users, sess SessionConfig) *AuthService {
	return &AuthService{users: users, sess: sess}
}

var _ Authorization = (*AuthService)(nil)

// SignUp validates the form, rejects duplicate emails and persists a new
// user with a hashed password. The plaintext never reaches the repository.
func (s *AuthService) SignUp(in SignupInput) (*models.User, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(in.Username, in.Email, hash)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: in.Username, Email: in.Email, PasswordHash: hash}, nil
}

// Login validates credentials against the stored hash.
func (s *AuthService) Login(in LoginInput) (*models.User, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnknownAccount
	}

	if err := verifyPassword(u.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Claims defines the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// IssueSession signs a session token bound to userID.
func (s *AuthService) IssueSession(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sess.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.sess.Secret))
}

// ResolveSession verifies a session token and loads the referenced user.
// Any failure (bad token, expired, user gone) yields ErrInvalidSession so
// the caller treats the request as anonymous.
func (s *AuthService) ResolveSession(accessToken string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.sess.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	u, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidSession
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
