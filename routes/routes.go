package routes

import (
	"github.com/E-W-N-K/course-project/configs"
	"github.com/E-W-N-K/course-project/controllers"
	"github.com/E-W-N-K/course-project/middlewares"
	"github.com/E-W-N-K/course-project/pkg/userlock"
	"github.com/E-W-N-K/course-project/repository"
	"github.com/E-W-N-K/course-project/services"
	"github.com/E-W-N-K/course-project/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	locks := userlock.New()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	catalogSvc := services.NewCatalogService(restRepo, dishRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, locks)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, locks)

	hub := ws.NewHub()
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(restRepo, dishRepo, userRepo, orderSvc, cfg.UploadDir)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Profile self-service
	user := r.Group("/user", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		user.GET("/profile", userCtrl.Profile)
		user.PATCH("/profile", userCtrl.UpdateProfile)
		user.PATCH("/password", userCtrl.ChangePassword)
		user.GET("/delivery-info", userCtrl.DeliveryInfo)
		user.PUT("/delivery-info", userCtrl.SetDeliveryInfo)
	}

	// Public catalog
	r.GET("/restaurants", catalogCtrl.Restaurants)
	r.GET("/restaurants/search", catalogCtrl.SearchRestaurants)
	r.GET("/restaurants/:id/dishes", catalogCtrl.Dishes)
	r.GET("/restaurants/:id/dishes/search", catalogCtrl.SearchDishesInRestaurant)
	r.GET("/dishes/search", catalogCtrl.SearchDishes)
	r.GET("/dishes/:id", catalogCtrl.DishDetail)

	// Cart + checkout (user)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add/:dishId", cartCtrl.Add)
		cart.DELETE("/remove/:cartItemId", cartCtrl.Remove)
		cart.DELETE("/clear", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Orders (user)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/history", orderCtrl.ListForMe)
		orders.GET("/status/:status", orderCtrl.ListByStatus)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/cancel", orderCtrl.Cancel)
	}

	// Order status push
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/restaurants", adminCtrl.CreateRestaurant)
		admin.PUT("/restaurants/:id", adminCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)

		admin.POST("/restaurants/:id/dishes", adminCtrl.CreateDish)
		admin.PUT("/dishes/:id", adminCtrl.UpdateDish)
		admin.DELETE("/dishes/:id", adminCtrl.DeleteDish)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}
}
