package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["CurrentPath"] = c.Request.URL.Path
	if _, ok := obj["Active"]; !ok {
		obj["Active"] = ""
	}

	c.HTML(code, name, obj)
}

// RenderError maps a service error to the matching error page.
func RenderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		Render(c, http.StatusNotFound, "error.html", gin.H{"Error": "Page not found"})
	case errors.Is(err, services.ErrForbidden):
		Render(c, http.StatusForbidden, "error.html", gin.H{"Error": "You are not allowed to do that"})
	case errors.Is(err, services.ErrValidation):
		Render(c, http.StatusBadRequest, "error.html", gin.H{"Error": "Invalid input"})
	default:
		Render(c, http.StatusInternalServerError, "error.html", gin.H{"Error": "Something went wrong"})
	}
}
