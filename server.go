package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/auth"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/database"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/handlers"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/middleware"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Embed the web directory
//
//go:embed web/templates/*.html
var templatesFS embed.FS

//go:embed web/static
var staticFS embed.FS

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := openDatabase(config.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := database.CreateDefaultAdmin(db, config.Admin); err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}

	authService := auth.NewAuthService(db)

	r := setupRouter(db, authService, config.Server)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	log.Printf("Starting server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() (*models.Config, error) {
	// .env is optional; the file overrides nothing already exported.
	godotenv.Load()

	config := &models.Config{
		Server: models.ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			ContactPath: "contact.md",
		},
		Database: models.DatabaseConfig{
			SQLitePath: "portfolio.db",
		},
		Admin: models.AdminConfig{
			Username: "webmastr",
			Password: "changeme",
		},
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	// The original deployment drives these two through the environment.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Database.URL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %v", port, err)
		}
		config.Server.Port = p
	}

	return config, nil
}

// openDatabase picks the backing store: Postgres when a connection URL is
// configured, the embedded SQLite file otherwise.
func openDatabase(config models.DatabaseConfig) (*gorm.DB, error) {
	if config.URL != "" {
		return database.Connect(config.URL)
	}
	return database.ConnectSQLite(config.SQLitePath)
}

func setupRouter(db *gorm.DB, authService *auth.AuthService, serverConfig models.ServerConfig) *gin.Engine {
	r := gin.Default()

	// Load templates from embedded filesystem
	tmpl := template.Must(template.New("").ParseFS(templatesFS, "web/templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	// Serve static files from embedded filesystem
	staticSubFS, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		log.Fatalf("Failed to create static subfilesystem: %v", err)
	}
	r.StaticFS("/static", http.FS(staticSubFS))

	r.Use(middleware.SessionContext(authService))

	authHandler := handlers.NewAuthHandler(authService)
	guestbookHandler := handlers.NewGuestbookHandler(db)
	workHandler := handlers.NewWorkHandler(db)
	contentHandler := handlers.NewContentHandler(serverConfig.ContactPath)

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)

	// Guestbook: open to every visitor, mutations included
	r.GET("/", guestbookHandler.HomePage)
	r.POST("/submit-comment", guestbookHandler.SubmitComment)
	r.GET("/edit/:id", guestbookHandler.EditCommentPage)
	r.POST("/edit/:id", guestbookHandler.UpdateComment)
	r.GET("/delete/:id", guestbookHandler.DeleteComment)

	// Work items: reads are public, mutations are admin only
	r.GET("/work", workHandler.WorkPage)
	r.GET("/work/:id", workHandler.WorkItemPage)
	r.GET("/newp", middleware.AdminRequired(), workHandler.NewWorkItemPage)
	r.POST("/newp", middleware.AdminRequired(), workHandler.CreateWorkItem)
	r.GET("/work/edit/:id", middleware.AdminRequired(), workHandler.EditWorkItemPage)
	r.POST("/work/edit/:id", middleware.AdminRequired(), workHandler.UpdateWorkItem)
	r.GET("/work/delete/:id", middleware.AdminRequired(), workHandler.DeleteWorkItem)

	r.GET("/contact", contentHandler.ContactPage)

	r.NoRoute(handlers.NotFound)

	// Background task to drop expired sessions
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if err := authService.DeleteExpiredSessions(); err != nil {
				log.Printf("Session cleanup error: %v", err)
			}
		}
	}()

	return r
}
