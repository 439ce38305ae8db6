package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the flat informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "pages/about.html", gin.H{
		"Title": "About",
	})
}

func (h *PageHandler) AboutAuthor(c *gin.Context) {
	Render(c, http.StatusOK, "pages/about_author.html", gin.H{
		"Title": "About the author",
	})
}

// NotFound is the catch-all 404 page.
func (h *PageHandler) NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "error.html", gin.H{
		"Error": "Page not found",
		"Path":  c.Request.URL.Path,
	})
}
