package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/sudharson99/swipeHire/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sudharson99/swipeHire/internal/auth"
	"github.com/sudharson99/swipeHire/internal/controller/jobs"
	"github.com/sudharson99/swipeHire/internal/controller/swipes"
	"github.com/sudharson99/swipeHire/internal/controller/users"
	"github.com/sudharson99/swipeHire/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	jobsController := jobs.NewJobsController(s.DB)
	swipesController := swipes.NewSwipesController(s.DB)
	usersController := users.NewUsersController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/", s.HelloHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("signup", lAuth.SignupHandler)
			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.GET("verify", middleware.RequireAuth(s.DB), lAuth.VerifyHandler)
			authRoute.POST("convert-swipes", lAuth.ConvertSwipesHandler)
		}

		jobsRoute := api.Group("/jobs")
		{
			jobsRoute.GET("", middleware.OptionalAuth(s.DB), jobsController.GetJobs)
			jobsRoute.GET(":id", jobsController.GetJobByID)
			jobsRoute.GET("city/:city", jobsController.GetJobsByCity)
			jobsRoute.GET("search/:query", jobsController.SearchJobs)
		}

		swipesRoute := api.Group("/swipes")
		{
			swipesRoute.POST("anonymous", swipesController.AnonymousSwipeHandler)

			needAuth := swipesRoute.Group("")
			{
				needAuth.Use(middleware.RequireAuth(s.DB))
				needAuth.POST("user", swipesController.UserSwipeHandler)
				needAuth.GET("history", swipesController.SwipeHistory)
				needAuth.GET("liked", swipesController.LikedJobs)
				needAuth.GET("stats", swipesController.SwipeStats)
			}
		}

		usersRoute := api.Group("/users")
		{
			usersRoute.Use(middleware.RequireAuth(s.DB))
			usersRoute.GET("me", usersController.GetProfile)
			usersRoute.PUT("me", usersController.UpdateProfile)
			usersRoute.GET("applications", usersController.GetApplications)
			usersRoute.POST("apply/:job_id", usersController.ApplyHandler)
			usersRoute.POST("apply-bulk", usersController.BulkApplyHandler)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloHandler handle request by return service name
func (s *MyServer) HelloHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "SwipeHire API"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
