package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkHandler struct {
	db *gorm.DB
}

func NewWorkHandler(db *gorm.DB) *WorkHandler {
	return &WorkHandler{db: db}
}

// WorkPage lists all portfolio projects. On a store failure the same
// template renders with zero items and an error flag, still status 200.
func (h *WorkHandler) WorkPage(c *gin.Context) {
	var items []models.WorkItem
	err := h.db.Find(&items).Error
	if err != nil {
		// Detail goes to the log only, the page just gets the flag.
		log.Printf("Work error: %v", err)
		c.HTML(http.StatusOK, "work.html", pageData(c, gin.H{
			"title":     "Work",
			"WorkItems": []models.WorkItem{},
			"DBError":   true,
		}))
		return
	}

	c.HTML(http.StatusOK, "work.html", pageData(c, gin.H{
		"title":     "Work",
		"WorkItems": items,
		"DBError":   false,
	}))
}

func (h *WorkHandler) WorkItemPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/work")
		return
	}

	var item models.WorkItem
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		log.Printf("Error fetching work item %d: %v", id, err)
		c.Redirect(http.StatusFound, "/work")
		return
	}

	c.HTML(http.StatusOK, "work_item.html", pageData(c, gin.H{
		"title": item.Name,
		"Wi":    item,
	}))
}

func (h *WorkHandler) NewWorkItemPage(c *gin.Context) {
	c.HTML(http.StatusOK, "newp.html", pageData(c, gin.H{
		"title": "New project",
	}))
}

func (h *WorkHandler) CreateWorkItem(c *gin.Context) {
	item := models.WorkItem{
		Name:        c.PostForm("wname"),
		Description: c.PostForm("wdesc"),
		Type:        c.PostForm("wtype"),
		ImageURL:    c.PostForm("wimg"),
	}

	if err := h.db.Create(&item).Error; err != nil {
		log.Printf("Error creating work item: %v", err)
		c.Redirect(http.StatusFound, "/newp")
		return
	}

	c.Redirect(http.StatusFound, "/work")
}

// EditWorkItemPage renders the prefilled edit form. The per-type booleans
// drive the selected state of the type radio buttons in the template.
func (h *WorkHandler) EditWorkItemPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/work")
		return
	}

	var item models.WorkItem
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		log.Printf("Error fetching work item %d: %v", id, err)
		c.Redirect(http.StatusFound, "/work")
		return
	}

	c.HTML(http.StatusOK, "edit.html", pageData(c, gin.H{
		"title":    "Edit project",
		"Wi":       item,
		"IsWeb":    item.Type == models.WorkTypeWeb,
		"IsGame":   item.Type == models.WorkTypeGame,
		"IsDesign": item.Type == models.WorkTypeDesign,
		"IsUxd":    item.Type == models.WorkTypeUxd,
	}))
}

func (h *WorkHandler) UpdateWorkItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/work")
		return
	}

	updates := map[string]interface{}{
		"name":        c.PostForm("wname"),
		"description": c.PostForm("wdesc"),
		"type":        c.PostForm("wtype"),
		"image_url":   c.PostForm("wimg"),
	}

	if err := h.db.Model(&models.WorkItem{}).Where("id = ?", uint(id)).
		Updates(updates).Error; err != nil {
		log.Printf("Error updating work item %d: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/work")
}

// DeleteWorkItem removes the item. Deleting an id that does not exist is not
// an error, the redirect is identical either way.
func (h *WorkHandler) DeleteWorkItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/work")
		return
	}

	if err := h.db.Delete(&models.WorkItem{}, uint(id)).Error; err != nil {
		log.Printf("Error deleting work item %d: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/work")
}
