package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/appdotbuilder/futura-blog/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultCategories = []struct {
	Name  string
	Color string
}{
	{"Technology", "#6366f1"},
	{"Design", "#8b5cf6"},
	{"Business", "#06b6d4"},
	{"Lifestyle", "#ec4899"},
	{"Health", "#10b981"},
	{"Travel", "#f59e0b"},
}

var defaultTags = []string{
	"React", "Laravel", "Vue.js", "TypeScript", "PHP", "JavaScript",
	"TailwindCSS", "UI/UX", "Frontend", "Backend", "API", "Database",
	"Mobile", "Web Development", "DevOps", "Cloud", "Security",
	"Performance", "Testing", "Open Source", "Tutorial", "Best Practices",
}

type SeedOptions struct {
	Authors   int
	Published int
	Drafts    int
	// Seed makes the generated content reproducible. Zero picks a random seed.
	Seed uint64
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{Authors: 3, Published: 20, Drafts: 5}
}

// Seed fills an empty blog with demo content. Categories and tags are
// matched on slug; authors and posts are only created when none exist.
func Seed(db *gorm.DB, log *zap.Logger, opts SeedOptions) error {
	faker := gofakeit.New(opts.Seed)

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}
	tags, err := seedTags(db)
	if err != nil {
		return err
	}
	authors, err := seedAuthors(db, faker, opts.Authors)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		log.Info("Posts already present, skipping post seeding", zap.Int64("posts", count))
		return nil
	}

	s := postSeeder{db: db, faker: faker, categories: categories, tags: tags, authors: authors}
	for i := 0; i < opts.Published; i++ {
		if err := s.create(models.StatusPublished, 1, 4); err != nil {
			return err
		}
	}
	for i := 0; i < opts.Drafts; i++ {
		if err := s.create(models.StatusDraft, 1, 3); err != nil {
			return err
		}
	}

	log.Info("Blog content seeded",
		zap.Int("categories", len(categories)),
		zap.Int("tags", len(tags)),
		zap.Int("published", opts.Published),
		zap.Int("drafts", opts.Drafts),
	)
	return nil
}

func seedCategories(db *gorm.DB) ([]models.Category, error) {
	out := make([]models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		category := models.Category{}
		err := db.Where(models.Category{Slug: slug.Make(c.Name)}).
			Attrs(models.Category{
				Name:        c.Name,
				Description: "Everything about " + c.Name,
				Color:       c.Color,
			}).
			FirstOrCreate(&category).Error
		if err != nil {
			return nil, fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		out = append(out, category)
	}
	return out, nil
}

func seedTags(db *gorm.DB) ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(defaultTags))
	for _, name := range defaultTags {
		tag := models.Tag{}
		err := db.Where(models.Tag{Slug: slug.Make(name)}).
			Attrs(models.Tag{Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, fmt.Errorf("seed tag %s: %w", name, err)
		}
		out = append(out, tag)
	}
	return out, nil
}

func seedAuthors(db *gorm.DB, faker *gofakeit.Faker, n int) ([]models.User, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	if len(users) > 0 {
		return users, nil
	}
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Name:  faker.Name(),
			Email: fmt.Sprintf("author%d.%s", i+1, strings.ToLower(faker.Email())),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed authors: %w", err)
	}
	return users, nil
}

type postSeeder struct {
	db         *gorm.DB
	faker      *gofakeit.Faker
	categories []models.Category
	tags       []models.Tag
	authors    []models.User
	slugs      map[string]struct{}
}

func (s *postSeeder) create(status models.PostStatus, minTags, maxTags int) error {
	f := s.faker
	title := strings.TrimSuffix(f.Sentence(f.Number(4, 8)), ".")

	paragraphs := make([]string, f.Number(5, 12))
	for i := range paragraphs {
		paragraphs[i] = f.Paragraph(1, f.Number(3, 8), 12, "")
	}
	image := fmt.Sprintf("https://picsum.photos/800/450?random=%d", f.Number(1, 1000))

	post := models.Post{
		Title:         title,
		Slug:          s.uniqueSlug(title),
		Excerpt:       f.Sentence(12) + " " + f.Sentence(10),
		Content:       strings.Join(paragraphs, "\n\n"),
		FeaturedImage: &image,
		UserID:        s.authors[f.Number(0, len(s.authors)-1)].ID,
		CategoryID:    &s.categories[f.Number(0, len(s.categories)-1)].ID,
		Status:        status,
		ViewsCount:    int64(f.Number(10, 5000)),
		Tags:          s.pickTags(f.Number(minTags, maxTags)),
	}
	if status == models.StatusPublished {
		now := time.Now().UTC()
		at := f.DateRange(now.AddDate(-1, 0, 0), now).UTC()
		post.PublishedAt = &at
	}

	if err := s.db.Create(&post).Error; err != nil {
		return fmt.Errorf("seed post %q: %w", post.Slug, err)
	}
	return nil
}

func (s *postSeeder) uniqueSlug(title string) string {
	if s.slugs == nil {
		s.slugs = map[string]struct{}{}
	}
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		if _, taken := s.slugs[candidate]; !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	s.slugs[candidate] = struct{}{}
	return candidate
}

func (s *postSeeder) pickTags(n int) []models.Tag {
	if n > len(s.tags) {
		n = len(s.tags)
	}
	picked := make(map[int]struct{}, n)
	out := make([]models.Tag, 0, n)
	for len(out) < n {
		i := s.faker.Number(0, len(s.tags)-1)
		if _, dup := picked[i]; dup {
			continue
		}
		picked[i] = struct{}{}
		out = append(out, s.tags[i])
	}
	return out
}
