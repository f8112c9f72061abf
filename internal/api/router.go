package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourly/internal/api/controllers"
	"tourly/internal/config"
	"tourly/pkg/auth"
	"tourly/pkg/middleware"
	"tourly/pkg/utils"
)

// flowCookieSuffix names the cookie session that carries the login return path.
const flowCookieSuffix = "_flow"

type RouterParams struct {
	fx.In

	Server   config.ServerConfig
	Session  config.SessionConfig
	Logger   *zap.Logger
	Resolver *auth.Resolver

	Accounts     *controllers.AccountController
	Categories   *controllers.CategoryController
	Attractions  *controllers.AttractionController
	Hotels       *controllers.HotelController
	Destinations *controllers.DestinationController
	Reviews      *controllers.ReviewController
	Uploads      *controllers.UploadController
	Dashboard    *controllers.DashboardController
	Health       *controllers.HealthController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		p.Logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("trace_id", c.GetString("trace_id")),
		)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternal)
		c.Abort()
	}))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     p.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.TraceHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.TraceHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(p.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(p.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   p.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(p.Session.CookieName+flowCookieSuffix, store))

	r.Use(middleware.SessionMiddleware(p.Resolver))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	with := middleware.WithIdentity
	writeCatalog := middleware.Authorize(auth.OpWriteCatalog)

	r.GET("/healthz", p.Health.Health)

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.NewRateLimiter(p.Server.RateLimitPerMinute, p.Server.RateLimitBurst).Middleware())
	authGroup.POST("/register", p.Accounts.Register)
	authGroup.POST("/login", p.Accounts.Login)
	authGroup.POST("/logout", with(p.Accounts.Logout))
	authGroup.GET("/me", with(p.Accounts.Me))

	categories := r.Group("/attraction-categories")
	categories.GET("", with(p.Categories.ListCategories))
	categories.POST("", writeCatalog, with(p.Categories.CreateCategory))
	categories.PUT("/:id", writeCatalog, with(p.Categories.UpdateCategory))

	attractions := r.Group("/attractions")
	attractions.GET("", with(p.Attractions.ListAttractions))
	attractions.GET("/:id", with(p.Attractions.GetAttraction))
	attractions.POST("", writeCatalog, with(p.Attractions.CreateAttraction))
	attractions.PUT("/:id", writeCatalog, with(p.Attractions.UpdateAttraction))
	attractions.DELETE("/:id", writeCatalog, with(p.Attractions.DeleteAttraction))

	hotels := r.Group("/hotels")
	hotels.GET("", with(p.Hotels.ListHotels))
	hotels.GET("/:id", with(p.Hotels.GetHotel))
	hotels.POST("", writeCatalog, with(p.Hotels.CreateHotel))
	hotels.PUT("/:id", writeCatalog, with(p.Hotels.UpdateHotel))
	hotels.DELETE("/:id", writeCatalog, with(p.Hotels.DeleteHotel))

	destinations := r.Group("/destinations")
	destinations.GET("", with(p.Destinations.ListDestinations))
	destinations.POST("", writeCatalog, with(p.Destinations.CreateDestination))

	r.POST("/upload", middleware.Authorize(auth.OpUploadImages), with(p.Uploads.UploadImages))

	r.GET("/user/reviews", with(p.Reviews.ListMyReviews))
	r.POST("/reviews", middleware.Authorize(auth.OpWriteReview), with(p.Reviews.CreateReview))

	checkout := r.Group("/checkout", middleware.RequireSession(auth.OpCheckout, p.Server.LoginPath))
	checkout.GET("", with(p.Dashboard.Checkout))

	admin := r.Group("/admin", middleware.RequireSession(auth.OpAdminArea, p.Server.LoginPath))
	admin.GET("/summary", with(p.Dashboard.GetSummary))
}
