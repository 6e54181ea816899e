package domain

import "time"

// Favorite — закладка "рецепт в избранном" у пользователя.
// Одна пара (user, recipe) — одна запись, дубль запрещён индексом.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Favorite) TableName() string { return "favorites" }

// ShoppingCart — рецепт, отложенный в список покупок. Та же схема, что и
// у Favorite, но семантика другая: по этим записям строится агрегация
// ингредиентов.
type ShoppingCart struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }

// Subscription — подписка follower на автора рецептов.
type Subscription struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	FollowerID int64     `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_follower_author"`
	AuthorID   int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_follower_author"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Follower *User `json:"follower,omitempty" gorm:"foreignKey:FollowerID"`
	Author   *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (Subscription) TableName() string { return "subscriptions" }
