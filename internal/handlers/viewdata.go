package handlers

import (
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// pageData builds the base view model every template receives: the session
// context {IsLoggedIn, Name, IsAdmin} merged with the route's own fields.
func pageData(c *gin.Context, extra gin.H) gin.H {
	session := middleware.CurrentSession(c)

	data := gin.H{
		"IsLoggedIn": false,
		"Name":       "",
		"IsAdmin":    false,
	}
	if session.IsLoggedIn() {
		data["IsLoggedIn"] = true
		data["Name"] = session.Name
		data["IsAdmin"] = session.IsAdmin
	}

	for k, v := range extra {
		data[k] = v
	}
	return data
}
