package routes

import (
	"github.com/appdotbuilder/futura-blog/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine, blogController *controllers.BlogController, pageController *controllers.PageController) {
	r.GET("/health-check", pageController.HealthCheck)

	r.GET("/", blogController.Home)

	blog := r.Group("/blog")
	{
		blog.GET("", blogController.Index)
		blog.GET("/:slug", blogController.Show)
	}

	r.GET("/categories", blogController.Categories)
	r.GET("/about", pageController.About)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
