package handlers

import (
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/russross/blackfriday/v2"
)

type ContentHandler struct {
	contactPath string
}

func NewContentHandler(contactPath string) *ContentHandler {
	return &ContentHandler{contactPath: contactPath}
}

// ContactPage renders the contact page, with the body converted from the
// markdown file configured under server.contact_path.
func (h *ContentHandler) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", pageData(c, gin.H{
		"title":   "Contact",
		"Content": h.readMarkdownFile(h.contactPath),
	}))
}

// NotFound renders the 404 page for any unmatched route.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", pageData(c, gin.H{
		"title": "Not found",
	}))
}

// readMarkdownFile reads a markdown file and converts it to HTML. A missing
// or unreadable file renders as an inline notice rather than an error page.
func (h *ContentHandler) readMarkdownFile(path string) template.HTML {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return template.HTML("<p>The file <code>" + template.HTMLEscapeString(path) + "</code> was not found.</p>")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return template.HTML("<p>Error reading file: " + template.HTMLEscapeString(err.Error()) + "</p>")
	}

	return template.HTML(blackfriday.Run(data))
}
