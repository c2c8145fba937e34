package routes

import (
	"github.com/appdotbuilder/futura-blog/config"
	"github.com/appdotbuilder/futura-blog/controllers"
	"github.com/appdotbuilder/futura-blog/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the engine with the middleware stack and every route.
func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(log))

	blogController := controllers.NewBlogController(db, log)
	pageController := controllers.NewPageController(cfg.AppName)

	SetupRoutes(r, blogController, pageController)
	return r
}
