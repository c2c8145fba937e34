package database_test

import (
	"testing"

	"github.com/appdotbuilder/futura-blog/database"
	"github.com/appdotbuilder/futura-blog/models"
	"github.com/appdotbuilder/futura-blog/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSeed(t *testing.T) {
	db := testutil.OpenDB(t)
	log := zaptest.NewLogger(t)

	opts := database.DefaultSeedOptions()
	opts.Seed = 42
	require.NoError(t, database.Seed(db, log, opts))

	var categories, tags, users, published, drafts int64
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.Tag{}).Count(&tags)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Where("status = ?", models.StatusPublished).Count(&published)
	db.Model(&models.Post{}).Where("status = ?", models.StatusDraft).Count(&drafts)

	assert.Equal(t, int64(6), categories)
	assert.Equal(t, int64(22), tags)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(20), published)
	assert.Equal(t, int64(5), drafts)

	var posts []models.Post
	require.NoError(t, db.Preload("Tags").Find(&posts).Error)
	for _, p := range posts {
		assert.NotEmpty(t, p.Tags, "post %s has no tags", p.Slug)
		assert.LessOrEqual(t, len(p.Tags), 4)
		assert.Positive(t, p.ReadingTime)
		assert.NotNil(t, p.CategoryID)
		if p.Status == models.StatusPublished {
			assert.NotNil(t, p.PublishedAt)
		} else {
			assert.Nil(t, p.PublishedAt)
		}
	}

	// A second run must not duplicate anything.
	require.NoError(t, database.Seed(db, log, opts))
	var total int64
	db.Model(&models.Post{}).Count(&total)
	db.Model(&models.Category{}).Count(&categories)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, int64(6), categories)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "blog.db?_foreign_keys=on", database.SQLiteDSN("blog.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", database.SQLiteDSN("file::memory:?cache=shared"))
	assert.Equal(t, "x.db?_foreign_keys=off", database.SQLiteDSN("x.db?_foreign_keys=off"))
}
