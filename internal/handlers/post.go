package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler covers publishing, editing, the detail page and comments.
type PostHandler struct {
	posts    *services.PostService
	comments *services.CommentService
}

func NewPostHandler(posts *services.PostService, comments *services.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

func loadGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	return groups
}

// ShowCreate renders the publish form, GET /new
func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{
		"Title":  "New post",
		"Groups": loadGroups(),
	})
}

// parseGroupID reads the optional group selector from the form.
func parseGroupID(c *gin.Context) *uint {
	raw := c.PostForm("group_id")
	if raw == "" {
		return nil
	}
	id := utils.StringToInt(raw)
	if id <= 0 {
		return nil
	}
	gid := uint(id)
	return &gid
}

// saveOptionalImage stores the uploaded image if the form carried one.
// Returns the stored URL, or "" when no file was attached.
func saveOptionalImage(c *gin.Context) (string, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// No file attached is fine, the image is optional
		return "", nil
	}
	defer file.Close()

	result, err := services.SaveImage(file, header)
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

// Create publishes a post, POST /new
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	imageURL, err := saveOptionalImage(c)
	if err != nil {
		Render(c, http.StatusBadRequest, "post/create.html", gin.H{
			"Error":  "Could not store the image",
			"Groups": loadGroups(),
		})
		return
	}

	post, err := h.posts.Publish(user.ID, services.PostInput{
		Text:    c.PostForm("text"),
		GroupID: parseGroupID(c),
		Image:   imageURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			Render(c, http.StatusBadRequest, "post/create.html", gin.H{
				"Error":  "Text must not be empty",
				"Groups": loadGroups(),
			})
			return
		}
		RenderError(c, err)
		return
	}

	InvalidateFeedCache()
	logger.Get().Debug("Post published", zap.Uint("post_id", post.ID), zap.Uint("user_id", user.ID))

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

// Detail renders a single post with its comments, GET /p/:pid
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	post, err := h.posts.ByPid(pid)
	if err != nil {
		RenderError(c, err)
		return
	}

	comments, err := h.comments.ForPost(post.ID)
	if err != nil {
		RenderError(c, err)
		return
	}

	type RenderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]RenderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = RenderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":    post.User.Name(),
		"Post":     post,
		"PostText": utils.RenderMarkdown(post.Text),
		"Comments": rendered,
	})
}

// ShowEdit renders the edit form, GET /p/:pid/edit (author only)
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	post, err := h.posts.ByPid(pid)
	if err != nil {
		RenderError(c, err)
		return
	}

	if post.UserID != user.ID {
		// Same behavior as the edit POST: non-authors are bounced back
		c.Redirect(http.StatusFound, "/p/"+pid)
		return
	}

	var selectedGroupID uint
	if post.GroupID != nil {
		selectedGroupID = *post.GroupID
	}

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title":           "Edit post",
		"Post":            post,
		"Groups":          loadGroups(),
		"SelectedGroupID": selectedGroupID,
	})
}

// Update edits a post, POST /p/:pid/edit (author only)
func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	imageURL, err := saveOptionalImage(c)
	if err != nil {
		RenderError(c, err)
		return
	}

	post, err := h.posts.Update(pid, user.ID, services.PostInput{
		Text:    c.PostForm("text"),
		GroupID: parseGroupID(c),
		Image:   imageURL,
	})
	if err != nil {
		RenderError(c, err)
		return
	}

	InvalidateFeedCache()
	if post.GroupID != nil {
		var group models.Group
		if err := db.DB.First(&group, *post.GroupID).Error; err == nil {
			utils.GetCache().Delete(fmt.Sprintf("feed:group:%s:page:1", group.Slug))
		}
	}

	c.Redirect(http.StatusFound, "/p/"+post.Pid)
}

// CreateComment adds a comment, POST /p/:pid/comment (login required)
func (h *PostHandler) CreateComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	post, err := h.posts.ByPid(pid)
	if err != nil {
		RenderError(c, err)
		return
	}

	if _, err := h.comments.Add(post.ID, user.ID, c.PostForm("text")); err != nil {
		if errors.Is(err, services.ErrValidation) {
			// Empty comment: just bounce back to the post
			c.Redirect(http.StatusFound, "/p/"+pid)
			return
		}
		RenderError(c, err)
		return
	}

	InvalidateFeedCache()

	c.Redirect(http.StatusFound, "/p/"+pid)
}
