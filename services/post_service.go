package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/futura-blog/metrics"
	"github.com/appdotbuilder/futura-blog/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

const RelatedPostsLimit = 3

type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db, now: utcNow}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (s *PostService) published(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Post{}).Scopes(Published(s.now()))
}

// Paginate returns one page of published posts matching filters, newest
// first, with relations loaded. Pages past the end are empty.
func (s *PostService) Paginate(ctx context.Context, filters models.PostFilters, req models.PageRequest) (models.Paginated[models.PostSummary], error) {
	var total int64
	if err := s.published(ctx).Scopes(Filtered(filters)).Count(&total).Error; err != nil {
		return models.Paginated[models.PostSummary]{}, fmt.Errorf("count posts: %w", err)
	}

	var posts []models.Post
	if req.InRange(total) {
		err := s.published(ctx).
			Scopes(Filtered(filters), Recent, WithRelations).
			Limit(req.PerPage).
			Offset(req.Offset()).
			Find(&posts).Error
		if err != nil {
			return models.Paginated[models.PostSummary]{}, fmt.Errorf("list posts: %w", err)
		}
	}

	return models.NewPaginated(models.NewPostSummaries(posts), total, req), nil
}

// FindPublished loads a post by slug. Drafts, archived and scheduled posts
// are reported exactly like missing ones.
func (s *PostService) FindPublished(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := s.published(ctx).
		Scopes(WithRelations).
		Where("posts.slug = ?", slug).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post %q: %w", slug, err)
	}
	return &post, nil
}

// IncrementViews adds one view in a single UPDATE so concurrent readers
// never lose an increment. post.ViewsCount is bumped to match.
func (s *PostService) IncrementViews(ctx context.Context, post *models.Post) error {
	res := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("increment views of post %d: %w", post.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	post.ViewsCount++
	metrics.PostViews.Inc()
	return nil
}

// Related returns up to limit published posts from the same category.
// A post without a category has no related posts.
func (s *PostService) Related(ctx context.Context, post *models.Post, limit int) ([]models.Post, error) {
	related := []models.Post{}
	if post.CategoryID == nil {
		return related, nil
	}
	err := s.published(ctx).
		Scopes(Recent, WithRelations).
		Where("posts.category_id = ?", *post.CategoryID).
		Where("posts.id <> ?", post.ID).
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, fmt.Errorf("related posts of %d: %w", post.ID, err)
	}
	return related, nil
}

// Latest returns up to limit published posts, newest first, skipping
// excludeID when it is non-zero.
func (s *PostService) Latest(ctx context.Context, limit int, excludeID uint) ([]models.Post, error) {
	posts := []models.Post{}
	q := s.published(ctx).Scopes(Recent, WithRelations)
	if excludeID != 0 {
		q = q.Where("posts.id <> ?", excludeID)
	}
	if err := q.Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("latest posts: %w", err)
	}
	return posts, nil
}
