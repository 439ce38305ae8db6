package services

import (
	"math"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Page sizes per feed variant, as the product has always shipped them.
const (
	GlobalPageSize    = 10
	GroupPageSize     = 5
	AuthorPageSize    = 10
	FollowingPageSize = 10
)

// Page is one slice of an ordered post listing plus everything a template
// needs to render "page N of M" with prev/next controls.
type Page struct {
	Posts      []models.Post
	Number     int
	TotalPages int
	Total      int64
	PerPage    int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) PrevPage() int { return p.Number - 1 }
func (p Page) NextPage() int { return p.Number + 1 }

// Paginate clamps a requested page number against the total item count.
// Page numbers below 1 fall back to page 1; numbers past the end return the
// last valid page rather than an empty one. An empty listing still has one
// (empty) page so callers never divide by zero.
func Paginate(total int64, perPage, requested int) (page, offset, totalPages int) {
	totalPages = int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset = (page - 1) * perPage
	return page, offset, totalPages
}

// FeedService builds the ordered, paginated post listings. It is stateless:
// every call goes straight to the database, caching of rendered pages is the
// handlers' business.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// feedOrder is shared by every variant: newest first, primary key as the
// stable tie-break when two posts carry the same timestamp.
const feedOrder = "created_at DESC, id DESC"

func (s *FeedService) listPage(query *gorm.DB, perPage, requested int) (Page, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Model(&models.Post{}).Count(&total).Error; err != nil {
		return Page{}, err
	}

	page, offset, totalPages := Paginate(total, perPage, requested)

	var posts []models.Post
	err := query.Session(&gorm.Session{}).
		Preload("User").Preload("Group").
		Order(feedOrder).
		Limit(perPage).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return Page{}, err
	}

	s.fillCommentCounts(posts)

	return Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
		PerPage:    perPage,
	}, nil
}

// Global returns the site-wide feed.
func (s *FeedService) Global(page int) (Page, error) {
	return s.listPage(s.db.Model(&models.Post{}), GlobalPageSize, page)
}

// ByGroup returns the feed of a single group, resolved by slug.
func (s *FeedService) ByGroup(slug string, page int) (models.Group, Page, error) {
	var group models.Group
	if err := s.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return models.Group{}, Page{}, ErrNotFound
	}

	p, err := s.listPage(s.db.Model(&models.Post{}).Where("group_id = ?", group.ID), GroupPageSize, page)
	return group, p, err
}

// ByAuthor returns the feed of a single author, resolved by username.
func (s *FeedService) ByAuthor(username string, page int) (models.User, Page, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		return models.User{}, Page{}, ErrNotFound
	}

	p, err := s.listPage(s.db.Model(&models.Post{}).Where("user_id = ?", author.ID), AuthorPageSize, page)
	return author, p, err
}

// Following returns posts authored by anyone the given user follows. The
// following set is resolved as a subquery on the follow edge table, so a
// user with an empty graph simply gets an empty first page.
func (s *FeedService) Following(userID uint, page int) (Page, error) {
	followed := s.db.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)

	return s.listPage(s.db.Model(&models.Post{}).Where("user_id IN (?)", followed), FollowingPageSize, page)
}

// Search returns posts whose text contains the term, newest first. An empty
// term returns an empty result, not the full listing. The match is a
// case-sensitive LIKE, which is what the product has always done.
func (s *FeedService) Search(term string) ([]models.Post, error) {
	if term == "" {
		return []models.Post{}, nil
	}

	var posts []models.Post
	err := s.db.Preload("User").Preload("Group").
		Where("text LIKE ?", "%"+term+"%").
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	s.fillCommentCounts(posts)
	return posts, nil
}

// fillCommentCounts fills Post.CommentCount for a page of posts with one
// grouped query instead of a query per row.
func (s *FeedService) fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}
