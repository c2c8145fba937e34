package models

import (
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

// WordsPerMinute is the reading speed used for reading_time.
const WordsPerMinute = 200

type Post struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"not null;index"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt       string     `json:"excerpt" gorm:"type:text"`
	Content       string     `json:"content" gorm:"type:text;not null"`
	FeaturedImage *string    `json:"featured_image"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	Author        User       `json:"author" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CategoryID    *uint      `json:"category_id" gorm:"index:idx_posts_category_published,priority:1"`
	Category      *Category  `json:"category" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Tags          []Tag      `json:"tags" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE;"`
	Status        PostStatus `json:"status" gorm:"type:varchar(16);not null;default:draft;index;index:idx_posts_status_published,priority:1"`
	PublishedAt   *time.Time `json:"published_at" gorm:"index;index:idx_posts_status_published,priority:2;index:idx_posts_category_published,priority:2"`
	ReadingTime   int        `json:"reading_time" gorm:"not null;default:0"`
	ViewsCount    int64      `json:"views_count" gorm:"not null;default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeSave keeps reading_time in step with the content on every write.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	p.ReadingTime = ReadingTime(p.Content)
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}

// IsPublished applies the published predicate to an already loaded post.
func (p *Post) IsPublished(now time.Time) bool {
	return p.Status == StatusPublished && p.PublishedAt != nil && !p.PublishedAt.After(now)
}

// ReadingTime returns the estimated minutes needed to read content.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
