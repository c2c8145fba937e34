package controllers

import (
	"errors"
	"net/http"

	"github.com/appdotbuilder/futura-blog/models"
	"github.com/appdotbuilder/futura-blog/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BlogController struct {
	blogService *services.BlogService
}

func NewBlogController(db *gorm.DB, log *zap.Logger) *BlogController {
	return &BlogController{
		blogService: services.NewBlogService(db, log),
	}
}

// Home godoc
// @Summary      Home page
// @Description  Featured post, latest posts and the most used categories and tags
// @Tags         pages
// @Produce      json
// @Success      200  {object}  Page{props=models.HomePage}
// @Failure      500  {object}  ErrorResponse
// @Router       / [get]
func (bc *BlogController) Home(c *gin.Context) {
	home, err := bc.blogService.Home(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to load home page", err)
		return
	}
	renderPage(c, "welcome", home)
}

// Index godoc
// @Summary      List published posts
// @Description  Paginated listing, 12 posts per page, newest first
// @Tags         blog
// @Produce      json
// @Param        category  query  string  false  "Category slug"
// @Param        tag       query  string  false  "Tag slug"
// @Param        search    query  string  false  "Text searched in title, excerpt and content"
// @Param        page      query  int     false  "Page number"  minimum(1)
// @Success      200  {object}  Page{props=models.BlogIndex}
// @Failure      500  {object}  ErrorResponse
// @Router       /blog [get]
func (bc *BlogController) Index(c *gin.Context) {
	var filters models.PostFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	req := models.NewPageRequest(c.Query("page"), models.BlogPageSize, c.Request.URL.Path, c.Request.URL.Query())
	index, err := bc.blogService.Index(c.Request.Context(), filters, req)
	if err != nil {
		internalError(c, "Failed to load posts", err)
		return
	}
	renderPage(c, "blog/index", index)
}

// Show godoc
// @Summary      Show a published post
// @Description  Counts a view and returns the post with up to 3 related posts
// @Tags         blog
// @Produce      json
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {object}  Page{props=models.BlogShow}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blog/{slug} [get]
func (bc *BlogController) Show(c *gin.Context) {
	show, err := bc.blogService.Show(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to load post", err)
		return
	}
	renderPage(c, "blog/show", show)
}

// Categories godoc
// @Summary      List categories
// @Description  Every category with its number of published posts
// @Tags         blog
// @Produce      json
// @Success      200  {object}  Page{props=models.CategoriesPage}
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (bc *BlogController) Categories(c *gin.Context) {
	page, err := bc.blogService.Categories(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to load categories", err)
		return
	}
	renderPage(c, "categories/index", page)
}
