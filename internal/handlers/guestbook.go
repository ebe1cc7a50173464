package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GuestbookHandler struct {
	db *gorm.DB
}

func NewGuestbookHandler(db *gorm.DB) *GuestbookHandler {
	return &GuestbookHandler{db: db}
}

// HomePage renders the guestbook, oldest entry first. A store failure
// degrades to the same page with an error flag and no comments, never a
// failed request.
func (h *GuestbookHandler) HomePage(c *gin.Context) {
	var entries []models.GuestbookEntry
	err := h.db.Order("created_at asc").Find(&entries).Error
	if err != nil {
		log.Printf("Error fetching guestbook: %v", err)
		c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
			"title":    "Home",
			"Comments": []models.GuestbookEntry{},
			"DBError":  true,
		}))
		return
	}

	c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
		"title":    "Home",
		"Comments": entries,
		"DBError":  false,
	}))
}

// SubmitComment inserts a guestbook entry for any visitor, no auth involved,
// and re-renders the home page inline with the list newest first.
func (h *GuestbookHandler) SubmitComment(c *gin.Context) {
	now := time.Now()
	entry := models.GuestbookEntry{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Comment: c.PostForm("comment"),
		Date:    models.FormatEntryDate(now),
	}

	if err := h.db.Create(&entry).Error; err != nil {
		log.Printf("Guestbook error: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	var entries []models.GuestbookEntry
	if err := h.db.Order("created_at desc").Find(&entries).Error; err != nil {
		log.Printf("Guestbook error: %v", err)
		c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
			"title":    "Home",
			"Comments": []models.GuestbookEntry{},
			"DBError":  true,
		}))
		return
	}

	c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
		"title":    "Home",
		"Comments": entries,
		"DBError":  false,
	}))
}

func (h *GuestbookHandler) EditCommentPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var entry models.GuestbookEntry
	if err := h.db.First(&entry, uint(id)).Error; err != nil {
		log.Printf("Error fetching guestbook entry %d: %v", id, err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "edit_comment.html", pageData(c, gin.H{
		"title":   "Edit comment",
		"Comment": entry,
	}))
}

// UpdateComment overwrites the comment text for the given id. There is no
// ownership check on guestbook entries; anyone who knows the id may edit.
func (h *GuestbookHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	comment := c.PostForm("comment")
	if err := h.db.Model(&models.GuestbookEntry{}).Where("id = ?", uint(id)).
		Update("comment", comment).Error; err != nil {
		log.Printf("Edit error: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *GuestbookHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.db.Delete(&models.GuestbookEntry{}, uint(id)).Error; err != nil {
		log.Printf("Delete error: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}
