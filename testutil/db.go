// Package testutil opens throwaway databases and builds blog fixtures for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/appdotbuilder/futura-blog/database"
	"github.com/appdotbuilder/futura-blog/models"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory sqlite database that lives until the
// test ends. The pool is pinned to one connection because every sqlite
// memory connection is its own database.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN("file::memory:")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Fixtures creates rows with sensible defaults. Every call gets unique
// slugs and emails.
type Fixtures struct {
	t   testing.TB
	db  *gorm.DB
	seq int
	// Now anchors published_at offsets; posts are published relative to it.
	Now time.Time
}

func NewFixtures(t testing.TB, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db, Now: time.Now().UTC().Truncate(time.Second)}
}

// DB is the database the fixtures write to.
func (f *Fixtures) DB() *gorm.DB {
	return f.db
}

func (f *Fixtures) next() int {
	f.seq++
	return f.seq
}

func (f *Fixtures) User(name string) models.User {
	f.t.Helper()
	u := models.User{Name: name, Email: fmt.Sprintf("user%d@example.test", f.next())}
	if err := f.db.Create(&u).Error; err != nil {
		f.t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *Fixtures) Category(name string) models.Category {
	f.t.Helper()
	c := models.Category{Name: name, Slug: fmt.Sprintf("%s-%d", slug.Make(name), f.next()), Color: "#6366f1"}
	if err := f.db.Create(&c).Error; err != nil {
		f.t.Fatalf("create category: %v", err)
	}
	return c
}

func (f *Fixtures) Tag(name string) models.Tag {
	f.t.Helper()
	tag := models.Tag{Name: name, Slug: fmt.Sprintf("%s-%d", slug.Make(name), f.next())}
	if err := f.db.Create(&tag).Error; err != nil {
		f.t.Fatalf("create tag: %v", err)
	}
	return tag
}

// PostAttrs describes a post to insert. Zero values get defaults: a
// published post, one hour old, with generated title and slug.
type PostAttrs struct {
	Title    string
	Slug     string
	Excerpt  string
	Content  string
	Author   models.User
	Category *models.Category
	Tags     []models.Tag
	Status   models.PostStatus
	// Age is subtracted from Now to get published_at. Negative ages
	// schedule the post in the future.
	Age         time.Duration
	Unpublished bool
	Views       int64
}

func (f *Fixtures) Post(attrs PostAttrs) models.Post {
	f.t.Helper()
	n := f.next()
	if attrs.Title == "" {
		attrs.Title = fmt.Sprintf("Post number %d", n)
	}
	if attrs.Slug == "" {
		attrs.Slug = fmt.Sprintf("post-%d", n)
	}
	if attrs.Content == "" {
		attrs.Content = "Lorem ipsum dolor sit amet."
	}
	if attrs.Status == "" {
		attrs.Status = models.StatusPublished
	}
	if attrs.Author.ID == 0 {
		attrs.Author = f.User(fmt.Sprintf("Author %d", n))
	}
	if attrs.Age == 0 {
		attrs.Age = time.Hour
	}

	p := models.Post{
		Title:      attrs.Title,
		Slug:       attrs.Slug,
		Excerpt:    attrs.Excerpt,
		Content:    attrs.Content,
		UserID:     attrs.Author.ID,
		Status:     attrs.Status,
		ViewsCount: attrs.Views,
		Tags:       attrs.Tags,
	}
	if attrs.Category != nil {
		p.CategoryID = &attrs.Category.ID
	}
	if !attrs.Unpublished {
		at := f.Now.Add(-attrs.Age)
		p.PublishedAt = &at
	}
	if err := f.db.Create(&p).Error; err != nil {
		f.t.Fatalf("create post: %v", err)
	}
	return p
}
