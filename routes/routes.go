package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/configs"
	"github.com/wbonfim/DeliveryApp/controllers"
	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/middlewares"
	"github.com/wbonfim/DeliveryApp/pkg/logger"
	"github.com/wbonfim/DeliveryApp/repository"
	"github.com/wbonfim/DeliveryApp/services"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestLogger(logger.Log))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"message": "ok"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo, productRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, userRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, restRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addressCtrl := controllers.NewAddressController(userRepo)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	authRequired := middlewares.Auth(db, cfg.JWTSecret)

	// Auth (public, throttled)
	a := r.Group("/auth", middlewares.RateLimit(rate.Limit(5), 10))
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := r.Group("/auth", authRequired)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/refresh", authCtrl.Refresh)
	}

	// Address book
	addresses := r.Group("/addresses", authRequired)
	{
		addresses.GET("", addressCtrl.List)
		addresses.POST("", addressCtrl.Create)
		addresses.PUT("/:id", addressCtrl.Update)
		addresses.DELETE("/:id", addressCtrl.Delete)
	}

	// Public catalog
	r.GET("/categories", restCtrl.Categories)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)

	// Restaurant management (owner)
	owner := r.Group("/restaurants", middlewares.Auth(db, cfg.JWTSecret,
		entity.UserTypeRestaurant, entity.UserTypeAdmin))
	{
		owner.POST("", restCtrl.Create)
		owner.PUT("/:id", restCtrl.Update)
		owner.PATCH("/:id/online", restCtrl.SetOnline)
		owner.POST("/:id/products", restCtrl.CreateProduct)
		owner.PUT("/:id/products/:productId", restCtrl.UpdateProduct)
		owner.DELETE("/:id/products/:productId", restCtrl.DeleteProduct)
		owner.POST("/:id/product-categories", restCtrl.CreateProductCategory)
		owner.GET("/:id/orders", orderCtrl.ListForRestaurant)
	}

	// Cart
	cart := r.Group("/cart", authRequired)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
	}

	// Orders
	orders := r.Group("/orders", authRequired)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.PATCH("/:id/payment", orderCtrl.UpdatePayment)
	}

	// Reviews
	r.POST("/reviews", authRequired, reviewCtrl.Create)
	profile := r.Group("/profile", authRequired)
	{
		profile.GET("/reviews", reviewCtrl.ListForMe)
	}

	// Admin
	admin := r.Group("/admin", middlewares.Auth(db, cfg.JWTSecret, entity.UserTypeAdmin))
	{
		admin.PATCH("/restaurants/:id/active", restCtrl.SetActive)
	}
}
