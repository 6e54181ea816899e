package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/database"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/catalog"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/subscription"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	requireAuth := middleware.RequireAuth(j)
	optionalAuth := middleware.OptionalAuth(j)

	authService := auth.NewService(userRepo, subscriptionRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(tagRepo, ingredientRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	recipeService := recipe.NewService(
		recipeRepo,
		tagRepo,
		ingredientRepo,
		favoriteRepo,
		cartRepo,
		subscriptionRepo,
	)
	recipeHandler := recipe.NewHandler(recipeService)

	subscriptionService := subscription.NewService(userRepo, subscriptionRepo, recipeRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, authHandler, requireAuth, optionalAuth)
		catalog.RegisterRoutes(v1, catalogHandler)
		recipe.RegisterRoutes(v1, recipeHandler, requireAuth, optionalAuth)
		subscription.RegisterRoutes(v1, subscriptionHandler, requireAuth)
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
