package domain

// Tag — тег рецепта (завтрак/обед/ужин и т.п.). Справочные данные,
// управляются только через cmd/seed, API отдаёт их read-only.
type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Color string `json:"color"`
	Slug  string `json:"slug" gorm:"not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }

// Ingredient — справочник ингредиентов с единицей измерения.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"not null;index"`
	MeasurementUnit string `json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
