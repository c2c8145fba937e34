package services

import (
	"strings"
	"time"

	"github.com/appdotbuilder/futura-blog/models"

	"gorm.io/gorm"
)

// Published restricts a post query to publicly visible posts.
func Published(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.status = ?", models.StatusPublished).
			Where("posts.published_at IS NOT NULL AND posts.published_at <= ?", now)
	}
}

// Recent orders posts newest first. id breaks ties between posts
// published at the same instant so pages never overlap.
func Recent(db *gorm.DB) *gorm.DB {
	return db.Order("posts.published_at DESC").Order("posts.id DESC")
}

// WithRelations eager loads author, category and tags, one query per
// relation for the whole result set.
func WithRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Category").Preload("Tags")
}

func InCategory(slug string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.category_id IN (SELECT categories.id FROM categories WHERE categories.slug = ?)", slug)
	}
}

func WithTag(slug string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`posts.id IN (
			SELECT post_tags.post_id FROM post_tags
			JOIN tags ON tags.id = post_tags.tag_id
			WHERE tags.slug = ?)`, slug)
	}
}

// Matching keeps posts whose title, excerpt or content contains term,
// ignoring case. LIKE wildcards inside term match literally. Both sides
// are folded by the database's LOWER so they always agree.
func Matching(term string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(term) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			`(LOWER(posts.title) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\' OR LOWER(posts.excerpt) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\' OR LOWER(posts.content) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}
}

// Filtered applies every non-empty filter. Filter families are ANDed.
func Filtered(f models.PostFilters) func(*gorm.DB) *gorm.DB {
	f = f.Normalized()
	return func(db *gorm.DB) *gorm.DB {
		if f.Category != "" {
			db = InCategory(f.Category)(db)
		}
		if f.Tag != "" {
			db = WithTag(f.Tag)(db)
		}
		if f.Search != "" {
			db = Matching(f.Search)(db)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
