package handlers

import (
	"fmt"
	"net/http"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler renders the post listings: global, group, search, following.
type FeedHandler struct {
	feeds *services.FeedService
}

func NewFeedHandler(feeds *services.FeedService) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

// InvalidateFeedCache drops the cached first page after any post or comment
// write ("clear cache after a write"). Deeper pages just age out on TTL.
func InvalidateFeedCache() {
	utils.GetCache().Delete("feed:global:page:1")
}

// Index is the global feed, GET /
func (h *FeedHandler) Index(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"))

	// Rendered feed pages are shared across users, so anonymous and
	// logged-in visitors serve from the same entry
	cacheKey := fmt.Sprintf("feed:global:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "feed/index.html", hData)
			return
		}
	}

	feed, err := h.feeds.Global(page)
	if err != nil {
		RenderError(c, err)
		return
	}

	renderData := gin.H{
		"Title":  "Latest posts",
		"Active": "index",
		"Page":   feed,
	}

	utils.GetCache().Set(cacheKey, renderData, utils.PageTTL())

	Render(c, http.StatusOK, "feed/index.html", renderData)
}

// Group is the per-group feed, GET /group/:slug
func (h *FeedHandler) Group(c *gin.Context) {
	slug := c.Param("slug")
	page := utils.ParsePage(c.Query("page"))

	cacheKey := fmt.Sprintf("feed:group:%s:page:%d", slug, page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "feed/group.html", hData)
			return
		}
	}

	group, feed, err := h.feeds.ByGroup(slug, page)
	if err != nil {
		RenderError(c, err)
		return
	}

	renderData := gin.H{
		"Title":  group.Title,
		"Active": "group",
		"Group":  group,
		"Page":   feed,
	}

	utils.GetCache().Set(cacheKey, renderData, utils.PageTTL())

	Render(c, http.StatusOK, "feed/group.html", renderData)
}

// Following is the personalized feed, GET /follow (login required). This is
// the one feed that is never cached: it is different for every caller.
func (h *FeedHandler) Following(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	page := utils.ParsePage(c.Query("page"))

	feed, err := h.feeds.Following(user.ID, page)
	if err != nil {
		RenderError(c, err)
		return
	}

	Render(c, http.StatusOK, "feed/follow.html", gin.H{
		"Title":  "Following",
		"Active": "follow",
		"Page":   feed,
	})
}

// Search handles GET /search?q=term. An empty term renders an empty result
// list rather than falling back to the global listing.
func (h *FeedHandler) Search(c *gin.Context) {
	query := c.Query("q")

	posts, err := h.feeds.Search(query)
	if err != nil {
		RenderError(c, err)
		return
	}

	Render(c, http.StatusOK, "search.html", gin.H{
		"Title":  "Search",
		"Active": "search",
		"Query":  query,
		"Posts":  posts,
	})
}
