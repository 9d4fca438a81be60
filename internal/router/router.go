// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sintacc/sintacc-backend/internal/config"
	"github.com/sintacc/sintacc-backend/internal/handlers"
	"github.com/sintacc/sintacc-backend/internal/middleware"
	"github.com/sintacc/sintacc-backend/internal/repository"
	"github.com/sintacc/sintacc-backend/internal/services"
	"github.com/sintacc/sintacc-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	billingRepo := repository.NewBillingProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	contactRepo := repository.NewContactRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)

	// Services
	fileService, err := services.NewFileService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize file storage")
	}
	mailService := services.NewMailService(cfg)

	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, categoryRepo, tagRepo, fileService)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	cartService := services.NewCartService(cartRepo, productRepo, fileService)
	orderService := services.NewOrderService(orderRepo, cartRepo, addressRepo, billingRepo, userRepo, fileService, mailService)
	addressService := services.NewAddressService(addressRepo)
	billingService := services.NewBillingService(billingRepo)
	recipeService := services.NewRecipeService(recipeRepo, ingredientRepo)
	contactService := services.NewContactService(contactRepo)
	promotionService := services.NewPromotionService(promotionRepo, fileService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	addressHandler := handlers.NewAddressHandler(addressService)
	billingHandler := handlers.NewBillingHandler(billingService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	contactHandler := handlers.NewContactHandler(contactService)
	fileHandler := handlers.NewFileHandler(fileService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/check-status", middleware.AuthRequired(), authHandler.CheckStatus)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/tag/:tag", productHandler.GetProductsByTag)
			products.GET("/:param", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PATCH("/:param", productHandler.UpdateProduct)
				protected.DELETE("/:param", productHandler.DeleteProduct)
			}
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)

			protected := categories.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", categoryHandler.CreateCategory)
				protected.PATCH("/:id", categoryHandler.UpdateCategory)
				protected.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)

			protected := tags.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", tagHandler.CreateTag)
				protected.PATCH("/:id", tagHandler.UpdateTag)
				protected.DELETE("/:id", tagHandler.DeleteTag)
			}
		}

		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PATCH("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("/checkout", orderHandler.Checkout)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		addresses := v1.Group("/addresses")
		addresses.Use(middleware.AuthRequired())
		{
			addresses.GET("", addressHandler.GetAddresses)
			addresses.GET("/:id", addressHandler.GetAddress)
			addresses.POST("", addressHandler.CreateAddress)
			addresses.PUT("/:id", addressHandler.UpdateAddress)
			addresses.DELETE("/:id", addressHandler.DeleteAddress)
		}

		billing := v1.Group("/billing-profiles")
		billing.Use(middleware.AuthRequired())
		{
			billing.GET("", billingHandler.GetProfiles)
			billing.GET("/:id", billingHandler.GetProfile)
			billing.POST("", billingHandler.CreateProfile)
			billing.PUT("/:id", billingHandler.UpdateProfile)
			billing.DELETE("/:id", billingHandler.DeleteProfile)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeHandler.GetRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)

			protected := recipes.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", recipeHandler.CreateRecipe)
				protected.PUT("/:id", recipeHandler.UpdateRecipe)
				protected.DELETE("/:id", recipeHandler.DeleteRecipe)
			}
		}

		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", recipeHandler.GetIngredients)

			protected := ingredients.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", recipeHandler.CreateIngredient)
				protected.DELETE("/:id", recipeHandler.DeleteIngredient)
			}
		}

		promotions := v1.Group("/promotions")
		{
			promotions.GET("", promotionHandler.GetPromotions)
			promotions.GET("/:id", promotionHandler.GetPromotion)

			protected := promotions.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", promotionHandler.CreatePromotion)
				protected.PATCH("/:id", promotionHandler.UpdatePromotion)
				protected.DELETE("/:id", promotionHandler.DeletePromotion)
				protected.DELETE("", promotionHandler.DeleteAllPromotions)
			}
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("", middleware.AuthRequired(), middleware.AdminRequired(), contactHandler.GetContacts)
		}

		files := v1.Group("/files")
		files.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.UploadRateLimit())
		{
			files.POST("/upload", fileHandler.Upload)
		}

		users := v1.Group("/users")
		users.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:param", userHandler.GetUser)
			users.DELETE("/:param", userHandler.DeleteUser)
		}
	}

	// Static file serving for the local storage driver
	if cfg.Storage.Driver == "local" {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	return r
}
