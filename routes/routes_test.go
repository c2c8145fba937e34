package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/appdotbuilder/futura-blog/config"
	"github.com/appdotbuilder/futura-blog/models"
	"github.com/appdotbuilder/futura-blog/routes"
	"github.com/appdotbuilder/futura-blog/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type envelope struct {
	Component string          `json:"component"`
	Props     json.RawMessage `json:"props"`
}

type app struct {
	router *gin.Engine
	fx     *testutil.Fixtures
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)
	cfg := &config.Config{
		AppName:            "Futura Test",
		CORSAllowedOrigins: []string{"http://allowed.test"},
	}
	return &app{
		router: routes.NewRouter(cfg, db, zaptest.NewLogger(t)),
		fx:     testutil.NewFixtures(t, db),
	}
}

func (a *app) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	a.router.ServeHTTP(w, req)
	return w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder, component string, props any) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, component, env.Component)
	require.NoError(t, json.Unmarshal(env.Props, props))
}

func TestHomePage(t *testing.T) {
	a := newApp(t)
	cat := a.fx.Category("Go")
	featured := a.fx.Post(testutil.PostAttrs{Category: &cat, Age: time.Minute})
	a.fx.Post(testutil.PostAttrs{Category: &cat, Age: time.Hour})

	var home models.HomePage
	decodePage(t, a.get(t, "/"), "welcome", &home)

	require.NotNil(t, home.FeaturedPost)
	assert.Equal(t, featured.Slug, home.FeaturedPost.Slug)
	require.Len(t, home.LatestPosts, 1)
	require.Len(t, home.Categories, 1)
	assert.EqualValues(t, 2, home.Categories[0].PublishedPostsCount)
	assert.NotNil(t, home.Tags)
}

func TestHomePage_EmptyBlog(t *testing.T) {
	a := newApp(t)

	w := a.get(t, "/")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Props map[string]json.RawMessage `json:"props"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, "null", string(body.Props["featured_post"]))
	assert.JSONEq(t, "[]", string(body.Props["latest_posts"]))
	assert.JSONEq(t, "[]", string(body.Props["categories"]))
	assert.JSONEq(t, "[]", string(body.Props["tags"]))
}

func TestBlogIndex(t *testing.T) {
	a := newApp(t)
	author := a.fx.User("Ada")
	cat := a.fx.Category("Go")
	tag := a.fx.Tag("Web")

	a.fx.Post(testutil.PostAttrs{Author: author, Title: "Understanding Goroutines", Category: &cat, Tags: []models.Tag{tag}})
	a.fx.Post(testutil.PostAttrs{Author: author, Title: "Styling with CSS"})
	a.fx.Post(testutil.PostAttrs{Author: author, Title: "Secret draft", Status: models.StatusDraft, Category: &cat})

	tests := []struct {
		name   string
		query  url.Values
		titles []string
	}{
		{name: "all", query: url.Values{}, titles: []string{"Understanding Goroutines", "Styling with CSS"}},
		{name: "search", query: url.Values{"search": {"goroutines"}}, titles: []string{"Understanding Goroutines"}},
		{name: "category", query: url.Values{"category": {cat.Slug}}, titles: []string{"Understanding Goroutines"}},
		{name: "tag", query: url.Values{"tag": {tag.Slug}}, titles: []string{"Understanding Goroutines"}},
		{name: "bad page falls back to first", query: url.Values{"page": {"abc"}}, titles: []string{"Understanding Goroutines", "Styling with CSS"}},
		{name: "page past the end", query: url.Values{"page": {"5"}}, titles: []string{}},
		{name: "page beyond any offset", query: url.Values{"page": {"9223372036854775807"}}, titles: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var index models.BlogIndex
			decodePage(t, a.get(t, "/blog?"+tt.query.Encode()), "blog/index", &index)

			titles := []string{}
			for _, p := range index.Posts.Data {
				titles = append(titles, p.Title)
			}
			assert.ElementsMatch(t, tt.titles, titles)
			assert.EqualValues(t, tt.query.Get("search"), index.Filters.Search)
			assert.EqualValues(t, tt.query.Get("category"), index.Filters.Category)
			assert.EqualValues(t, tt.query.Get("tag"), index.Filters.Tag)
			assert.Len(t, index.Categories, 1)
			assert.Len(t, index.Tags, 1)
		})
	}
}

func TestBlogShow(t *testing.T) {
	a := newApp(t)
	cat := a.fx.Category("Go")
	post := a.fx.Post(testutil.PostAttrs{Title: "Channels in depth", Category: &cat, Views: 10})
	a.fx.Post(testutil.PostAttrs{Category: &cat, Age: 2 * time.Hour})

	var show models.BlogShow
	decodePage(t, a.get(t, "/blog/"+post.Slug), "blog/show", &show)

	assert.Equal(t, "Channels in depth", show.Post.Title)
	assert.EqualValues(t, 11, show.Post.ViewsCount)
	assert.Len(t, show.RelatedPosts, 1)

	var stored models.Post
	require.NoError(t, a.fx.DB().First(&stored, post.ID).Error)
	assert.EqualValues(t, 11, stored.ViewsCount)
}

func TestBlogShow_NotFound(t *testing.T) {
	a := newApp(t)
	draft := a.fx.Post(testutil.PostAttrs{Status: models.StatusDraft})
	scheduled := a.fx.Post(testutil.PostAttrs{Age: -time.Hour})

	for _, slug := range []string{draft.Slug, scheduled.Slug, "missing"} {
		t.Run(slug, func(t *testing.T) {
			w := a.get(t, "/blog/"+slug)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
		})
	}
}

func TestCategoriesPage(t *testing.T) {
	a := newApp(t)
	cat := a.fx.Category("Go")
	a.fx.Category("Empty")
	a.fx.Post(testutil.PostAttrs{Category: &cat})

	var page models.CategoriesPage
	decodePage(t, a.get(t, "/categories"), "categories/index", &page)

	require.Len(t, page.Categories, 2)
	assert.Equal(t, "Empty", page.Categories[0].Name)
	assert.EqualValues(t, 0, page.Categories[0].PublishedPostsCount)
	assert.EqualValues(t, 1, page.Categories[1].PublishedPostsCount)
}

func TestAboutPage(t *testing.T) {
	a := newApp(t)

	var props struct {
		AppName string `json:"app_name"`
	}
	decodePage(t, a.get(t, "/about"), "about", &props)
	assert.Equal(t, "Futura Test", props.AppName)
}

func TestHealthCheck(t *testing.T) {
	a := newApp(t)

	w := a.get(t, "/health-check")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newApp(t)
	a.get(t, "/health-check")

	w := a.get(t, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `route="/health-check"`))
	assert.True(t, strings.Contains(w.Body.String(), "blog_post_views_total"))
}

func TestUnknownRoute(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, http.StatusNotFound, a.get(t, "/dashboard").Code)
}

func TestStorageFailureIsLoggedOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t)
	core, logs := observer.New(zapcore.ErrorLevel)
	router := routes.NewRouter(&config.Config{AppName: "Futura Test"}, db, zap.New(core))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load posts"}`, w.Body.String())

	errs := logs.FilterMessage("Request error").All()
	require.Len(t, errs, 1)
	assert.Equal(t, "Failed to load posts", errs[0].ContextMap()["reason"])
	assert.Equal(t, "/blog", errs[0].ContextMap()["path"])
}
