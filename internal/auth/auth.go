package auth

import (
	"fmt"
	"time"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const SessionTTL = 24 * time.Hour

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user with a bcrypt-hashed password. Usernames are
// unique at the schema level, a duplicate surfaces as a store error.
func (a *AuthService) Register(username, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		Username: username,
		Password: hash,
	}

	if err := a.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return &user, nil
}

// Authenticate looks the user up by exact username and verifies the password
// against the stored hash. The error is the same generic one whether the user
// is missing or the password is wrong.
func (a *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	result := a.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &user, nil
}

// CreateSession persists a new session row snapshotting the user's name and
// admin flag.
func (a *AuthService) CreateSession(user *models.User) (*models.Session, error) {
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      user.Username,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: time.Now().Add(SessionTTL),
	}

	if err := a.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	return &session, nil
}

// ValidateSession returns the session for an unexpired session ID.
func (a *AuthService) ValidateSession(sessionID string) (*models.Session, error) {
	var session models.Session
	result := a.db.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&session)
	if result.Error != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	return &session, nil
}

func (a *AuthService) DeleteSession(sessionID string) error {
	return a.db.Where("id = ?", sessionID).Delete(&models.Session{}).Error
}

// DeleteExpiredSessions removes sessions whose TTL has passed. Called
// periodically from a background goroutine.
func (a *AuthService) DeleteExpiredSessions() error {
	return a.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{}).Error
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
