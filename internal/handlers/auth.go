package handlers

import (
	"log"
	"net/http"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/auth"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
		"title": "Login",
	}))
}

// Login verifies the credentials and establishes a session. Every failure
// mode looks the same from the browser: a redirect back to the login page.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(username, password)
	if err != nil {
		log.Printf("Login failed for %q: %v", username, err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session, err := h.authService.CreateSession(user)
	if err != nil {
		log.Printf("Failed to create session for %q: %v", username, err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, session.ID, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	log.Printf("Welcome back: %s", user.Username)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{
		"title": "Register",
	}))
}

// Register creates the user account and sends the visitor on to the login
// page. A store failure, duplicate username included, bounces back to the
// registration form with the detail in the server log only.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Register(username, password)
	if err != nil {
		log.Printf("Register error: %v", err)
		c.Redirect(http.StatusFound, "/register")
		return
	}

	log.Printf("User registered: %s", user.Username)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookie)
	if err == nil {
		if err := h.authService.DeleteSession(sessionID); err != nil {
			log.Printf("Logout error: %v", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
