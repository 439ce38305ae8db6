package handlers

import (
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler renders author pages and drives follow/unfollow.
type ProfileHandler struct {
	feeds  *services.FeedService
	social *services.SocialService
}

func NewProfileHandler(feeds *services.FeedService, social *services.SocialService) *ProfileHandler {
	return &ProfileHandler{feeds: feeds, social: social}
}

// Profile is the author page with their paginated posts, GET /u/:username
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	page := utils.ParsePage(c.Query("page"))

	author, feed, err := h.feeds.ByAuthor(username, page)
	if err != nil {
		RenderError(c, err)
		return
	}

	isFollowing := false
	isSelf := false
	if user := middleware.CurrentUser(c); user != nil {
		isSelf = user.ID == author.ID
		if !isSelf {
			isFollowing = h.social.IsFollowing(user.ID, author.ID)
		}
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":          author.Name(),
		"Author":         author,
		"Page":           feed,
		"FollowerCount":  h.social.FollowerCount(author.ID),
		"FollowingCount": h.social.FollowingCount(author.ID),
		"IsFollowing":    isFollowing,
		"IsSelf":         isSelf,
	})
}

// Follow creates the follow edge, POST /u/:username/follow (login required)
func (h *ProfileHandler) Follow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	if err := h.social.Follow(user.ID, username); err != nil {
		RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/u/"+username)
}

// Unfollow removes the follow edge, POST /u/:username/unfollow (login
// required). Unfollowing someone you never followed is still a redirect.
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	if err := h.social.Unfollow(user.ID, username); err != nil {
		RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/u/"+username)
}
