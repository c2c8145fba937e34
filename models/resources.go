package models

import (
	"strings"
	"time"
)

// PostFilters is the optional filter set of the blog listing. An empty
// field means no constraint.
type PostFilters struct {
	Category string `form:"category" json:"category,omitempty"`
	Tag      string `form:"tag" json:"tag,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
}

// Normalized returns the filters with surrounding whitespace removed, so a
// blank value behaves like an absent one.
func (f PostFilters) Normalized() PostFilters {
	return PostFilters{
		Category: strings.TrimSpace(f.Category),
		Tag:      strings.TrimSpace(f.Tag),
		Search:   strings.TrimSpace(f.Search),
	}
}

type AuthorResource struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryResource struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type TagResource struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostSummary is the card shape of a post: everything but the body.
type PostSummary struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Excerpt       string            `json:"excerpt"`
	FeaturedImage *string           `json:"featured_image"`
	ReadingTime   int               `json:"reading_time"`
	ViewsCount    int64             `json:"views_count"`
	PublishedAt   *time.Time        `json:"published_at"`
	Author        AuthorResource    `json:"author"`
	Category      *CategoryResource `json:"category"`
	Tags          []TagResource     `json:"tags"`
}

// PostResource is the full post as shown on its own page.
type PostResource struct {
	PostSummary
	Content string `json:"content"`
}

func NewPostSummary(p *Post) PostSummary {
	s := PostSummary{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		ReadingTime:   p.ReadingTime,
		ViewsCount:    p.ViewsCount,
		PublishedAt:   p.PublishedAt,
		Author:        AuthorResource{ID: p.Author.ID, Name: p.Author.Name},
		Tags:          make([]TagResource, 0, len(p.Tags)),
	}
	if p.Category != nil {
		s.Category = &CategoryResource{
			ID:    p.Category.ID,
			Name:  p.Category.Name,
			Slug:  p.Category.Slug,
			Color: p.Category.Color,
		}
	}
	for _, t := range p.Tags {
		s.Tags = append(s.Tags, TagResource{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return s
}

func NewPostResource(p *Post) PostResource {
	return PostResource{PostSummary: NewPostSummary(p), Content: p.Content}
}

func NewPostSummaries(posts []Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostSummary(&posts[i]))
	}
	return out
}

type BlogIndex struct {
	Posts      Paginated[PostSummary] `json:"posts"`
	Categories []CategoryWithCount    `json:"categories"`
	Tags       []TagWithCount         `json:"tags"`
	Filters    PostFilters            `json:"filters"`
}

type BlogShow struct {
	Post         PostResource  `json:"post"`
	RelatedPosts []PostSummary `json:"related_posts"`
}

type HomePage struct {
	FeaturedPost *PostSummary        `json:"featured_post"`
	LatestPosts  []PostSummary       `json:"latest_posts"`
	Categories   []CategoryWithCount `json:"categories"`
	Tags         []TagWithCount      `json:"tags"`
}

type CategoriesPage struct {
	Categories []CategoryWithCount `json:"categories"`
}
