package main

import (
	"fmt"
	"log"
	"os"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM shopping_carts")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")
	users := make([]domain.User, 0, 3)
	profiles := []struct {
		email, username, first, last string
	}{
		{"chef@foodgram.kz", "chef", "Айгерим", "Садыкова"},
		{"home.cook@gmail.com", "homecook", "Данияр", "Омаров"},
		{"baker@yandex.kz", "baker", "Мария", "Ким"},
	}
	for _, p := range profiles {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        p.email,
			Username:     p.username,
			FirstName:    p.first,
			LastName:     p.last,
			PasswordHash: string(hash),
		}
		db.Create(&user)
		users = append(users, user)
	}
	log.Println("Users created, password for all: password123")

	// ================== TAGS ==================
	log.Println("Creating tags...")
	tags := []domain.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
		{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
		{Name: "Десерт", Color: "#F44336", Slug: "dessert"},
	}
	for i := range tags {
		db.Create(&tags[i])
	}

	// ================== INGREDIENTS ==================
	log.Println("Creating ingredients...")
	ingredients := []domain.Ingredient{
		{Name: "мука", MeasurementUnit: "г"},
		{Name: "сахар", MeasurementUnit: "г"},
		{Name: "яйцо", MeasurementUnit: "шт"},
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "масло сливочное", MeasurementUnit: "г"},
		{Name: "соль", MeasurementUnit: "г"},
		{Name: "картофель", MeasurementUnit: "г"},
		{Name: "лук репчатый", MeasurementUnit: "шт"},
		{Name: "морковь", MeasurementUnit: "шт"},
		{Name: "говядина", MeasurementUnit: "г"},
		{Name: "рис", MeasurementUnit: "г"},
		{Name: "помидор", MeasurementUnit: "шт"},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")
	recipes := []struct {
		author      int
		name        string
		text        string
		cookingTime int
		tagIdx      []int
		items       []domain.RecipeIngredient
	}{
		{
			author:      0,
			name:        "Блины на молоке",
			text:        "Смешать муку, яйца и молоко, жарить на разогретой сковороде.",
			cookingTime: 30,
			tagIdx:      []int{0, 3},
			items: []domain.RecipeIngredient{
				{IngredientID: ingredients[0].ID, Amount: 200},
				{IngredientID: ingredients[2].ID, Amount: 2},
				{IngredientID: ingredients[3].ID, Amount: 500},
			},
		},
		{
			author:      1,
			name:        "Плов",
			text:        "Обжарить мясо с луком и морковью, добавить рис и тушить до готовности.",
			cookingTime: 90,
			tagIdx:      []int{1, 2},
			items: []domain.RecipeIngredient{
				{IngredientID: ingredients[9].ID, Amount: 500},
				{IngredientID: ingredients[10].ID, Amount: 400},
				{IngredientID: ingredients[7].ID, Amount: 2},
				{IngredientID: ingredients[8].ID, Amount: 2},
			},
		},
		{
			author:      2,
			name:        "Картофельный суп",
			text:        "Отварить картофель с луком и морковью, посолить по вкусу.",
			cookingTime: 45,
			tagIdx:      []int{1},
			items: []domain.RecipeIngredient{
				{IngredientID: ingredients[6].ID, Amount: 600},
				{IngredientID: ingredients[7].ID, Amount: 1},
				{IngredientID: ingredients[8].ID, Amount: 1},
				{IngredientID: ingredients[5].ID, Amount: 10},
			},
		},
	}
	recipeIDs := make([]int64, 0, len(recipes))
	for i, r := range recipes {
		rec := domain.Recipe{
			AuthorID:    users[r.author].ID,
			Name:        r.name,
			Image:       fmt.Sprintf("/media/recipes/seed%d.jpg", i+1),
			Text:        r.text,
			CookingTime: r.cookingTime,
		}
		db.Create(&rec)

		for _, idx := range r.tagIdx {
			db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", rec.ID, tags[idx].ID)
		}
		for _, item := range r.items {
			item.RecipeID = rec.ID
			db.Create(&item)
		}
		recipeIDs = append(recipeIDs, rec.ID)
	}

	// ================== RELATIONS ==================
	log.Println("Creating favorites, carts and subscriptions...")
	db.Create(&domain.Favorite{UserID: users[1].ID, RecipeID: recipeIDs[0]})
	db.Create(&domain.Favorite{UserID: users[2].ID, RecipeID: recipeIDs[1]})
	db.Create(&domain.ShoppingCart{UserID: users[0].ID, RecipeID: recipeIDs[1]})
	db.Create(&domain.ShoppingCart{UserID: users[0].ID, RecipeID: recipeIDs[2]})
	db.Create(&domain.Subscription{FollowerID: users[1].ID, AuthorID: users[0].ID})
	db.Create(&domain.Subscription{FollowerID: users[2].ID, AuthorID: users[0].ID})

	log.Println("Seed finished.")
}
