package auth

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register("alice", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Password == "pw123" {
		t.Fatal("password stored in plaintext")
	}
	if user.IsAdmin {
		t.Fatal("freshly registered user must not be admin")
	}

	got, err := svc.Authenticate("alice", "pw123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("Authenticate returned user %d, want %d", got.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	if _, err := svc.Register("alice", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Authenticate("alice", "nope"); err == nil {
		t.Fatal("Authenticate accepted a wrong password")
	}
	if _, err := svc.Authenticate("bob", "pw123"); err == nil {
		t.Fatal("Authenticate accepted an unknown user")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	if _, err := svc.Register("alice", "pw123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register("alice", "other"); err == nil {
		t.Fatal("Register accepted a duplicate username")
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("alice", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	session, err := svc.CreateSession(user)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.Name != "alice" || session.IsAdmin {
		t.Fatalf("session snapshot wrong: name=%q admin=%v", session.Name, session.IsAdmin)
	}
	if !session.IsLoggedIn() {
		t.Fatal("fresh session must count as logged in")
	}

	got, err := svc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if got.UserID != user.ID {
		t.Fatalf("ValidateSession returned user %d, want %d", got.UserID, user.ID)
	}

	if err := svc.DeleteSession(session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.ValidateSession(session.ID); err == nil {
		t.Fatal("deleted session still validates")
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("alice", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	session, err := svc.CreateSession(user)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	db.Model(&models.Session{}).Where("id = ?", session.ID).
		Update("expires_at", time.Now().Add(-time.Minute))

	if _, err := svc.ValidateSession(session.ID); err == nil {
		t.Fatal("expired session still validates")
	}

	if err := svc.DeleteExpiredSessions(); err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected 0 sessions after cleanup, got %d", count)
	}
}

func TestAnonymousSessionIsNotLoggedIn(t *testing.T) {
	var s *models.Session
	if s.IsLoggedIn() {
		t.Fatal("nil session must be anonymous")
	}
}
