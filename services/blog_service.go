package services

import (
	"context"

	"github.com/appdotbuilder/futura-blog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const LatestPostsLimit = 6

// BlogService assembles the page models of the public blog.
type BlogService struct {
	posts    *PostService
	taxonomy *TaxonomyService
	log      *zap.Logger
}

func NewBlogService(db *gorm.DB, log *zap.Logger) *BlogService {
	return &BlogService{
		posts:    NewPostService(db),
		taxonomy: NewTaxonomyService(db),
		log:      log,
	}
}

// Index builds the blog listing: one page of filtered posts plus the full
// category and tag lists for the filter controls. filters is echoed back
// as received.
func (s *BlogService) Index(ctx context.Context, filters models.PostFilters, req models.PageRequest) (*models.BlogIndex, error) {
	posts, err := s.posts.Paginate(ctx, filters, req)
	if err != nil {
		return nil, err
	}
	categories, err := s.taxonomy.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.taxonomy.AllTags(ctx)
	if err != nil {
		return nil, err
	}

	return &models.BlogIndex{
		Posts:      posts,
		Categories: categories,
		Tags:       tags,
		Filters:    filters,
	}, nil
}

// Show loads a published post, records the view and finds related posts.
// Every call counts as a view.
func (s *BlogService) Show(ctx context.Context, slug string) (*models.BlogShow, error) {
	post, err := s.posts.FindPublished(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.posts.IncrementViews(ctx, post); err != nil {
		return nil, err
	}

	related, err := s.posts.Related(ctx, post, RelatedPostsLimit)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Post viewed", zap.Uint("id", post.ID), zap.String("slug", post.Slug), zap.Int64("views", post.ViewsCount))

	return &models.BlogShow{
		Post:         models.NewPostResource(post),
		RelatedPosts: models.NewPostSummaries(related),
	}, nil
}

// Home builds the landing page: the newest post as the featured one, the
// next newest posts, and the most used categories and tags.
func (s *BlogService) Home(ctx context.Context) (*models.HomePage, error) {
	page := &models.HomePage{}

	newest, err := s.posts.Latest(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	var featuredID uint
	if len(newest) > 0 {
		featured := models.NewPostSummary(&newest[0])
		page.FeaturedPost = &featured
		featuredID = newest[0].ID
	}

	latest, err := s.posts.Latest(ctx, LatestPostsLimit, featuredID)
	if err != nil {
		return nil, err
	}
	page.LatestPosts = models.NewPostSummaries(latest)

	if page.Categories, err = s.taxonomy.PopularCategories(ctx, PopularCategoriesLimit); err != nil {
		return nil, err
	}
	if page.Tags, err = s.taxonomy.PopularTags(ctx, PopularTagsLimit); err != nil {
		return nil, err
	}
	return page, nil
}

// Categories lists every category for the browse page.
func (s *BlogService) Categories(ctx context.Context) (*models.CategoriesPage, error) {
	categories, err := s.taxonomy.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &models.CategoriesPage{Categories: categories}, nil
}
