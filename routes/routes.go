package routes

import (
	"github.com/mustafa3m/TastyTable-final-1/configs"
	"github.com/mustafa3m/TastyTable-final-1/controllers"
	"github.com/mustafa3m/TastyTable-final-1/middlewares"
	"github.com/mustafa3m/TastyTable-final-1/repository"
	"github.com/mustafa3m/TastyTable-final-1/services"
	"github.com/mustafa3m/TastyTable-final-1/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, utils.AdminRole)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authRequired, authCtrl.Me)
	}

	// Menu (reads are public, writes admin only)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	m := r.Group("/menu", adminOnly)
	{
		m.POST("", menuCtrl.Create)
		m.PATCH("/:id/availability", menuCtrl.SetAvailability)
		m.DELETE("/:id", menuCtrl.Delete)
	}

	// Orders (authenticated)
	o := r.Group("/orders", authRequired)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.ListForMe)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.UpdateItems)
		o.DELETE("/:id", orderCtrl.Delete)
		o.PATCH("/:id/status", adminOnly, orderCtrl.UpdateStatus)
	}
}
