package services

import (
	"context"
	"fmt"
	"time"

	"github.com/appdotbuilder/futura-blog/models"

	"gorm.io/gorm"
)

// Caps of the home page navigation lists.
const (
	PopularCategoriesLimit = 8
	PopularTagsLimit       = 10
)

const publishedPostCondition = "posts.status = ? AND posts.published_at IS NOT NULL AND posts.published_at <= ?"

// TaxonomyService lists categories and tags annotated with the number of
// published posts they hold.
type TaxonomyService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTaxonomyService(db *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: db, now: utcNow}
}

func (s *TaxonomyService) categoryCounts(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Category{}).
		Select(`categories.id, categories.name, categories.slug, categories.description, categories.color,
			(SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id AND `+publishedPostCondition+`) AS published_posts_count`,
			models.StatusPublished, s.now())
}

func (s *TaxonomyService) tagCounts(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Tag{}).
		Select(`tags.id, tags.name, tags.slug,
			(SELECT COUNT(*) FROM posts JOIN post_tags ON post_tags.post_id = posts.id
				WHERE post_tags.tag_id = tags.id AND `+publishedPostCondition+`) AS published_posts_count`,
			models.StatusPublished, s.now())
}

// AllCategories returns every category, empty ones included, by name.
func (s *TaxonomyService) AllCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	categories := []models.CategoryWithCount{}
	if err := s.categoryCounts(ctx).Order("categories.name ASC, categories.id ASC").Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// AllTags returns every tag, empty ones included, by name.
func (s *TaxonomyService) AllTags(ctx context.Context) ([]models.TagWithCount, error) {
	tags := []models.TagWithCount{}
	if err := s.tagCounts(ctx).Order("tags.name ASC, tags.id ASC").Scan(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// PopularCategories returns at most limit categories that hold published
// posts, the fullest first.
func (s *TaxonomyService) PopularCategories(ctx context.Context, limit int) ([]models.CategoryWithCount, error) {
	categories := []models.CategoryWithCount{}
	if err := s.popular(ctx, s.categoryCounts(ctx), limit).Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("popular categories: %w", err)
	}
	return categories, nil
}

// PopularTags returns at most limit tags that hold published posts, the
// most used first.
func (s *TaxonomyService) PopularTags(ctx context.Context, limit int) ([]models.TagWithCount, error) {
	tags := []models.TagWithCount{}
	if err := s.popular(ctx, s.tagCounts(ctx), limit).Scan(&tags).Error; err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	return tags, nil
}

func (s *TaxonomyService) popular(ctx context.Context, counts *gorm.DB, limit int) *gorm.DB {
	return s.db.WithContext(ctx).Table("(?) AS counted", counts).
		Where("counted.published_posts_count > 0").
		Order("counted.published_posts_count DESC, counted.name ASC, counted.id ASC").
		Limit(limit)
}
