// internal/models/recipe.go
package models

import "github.com/google/uuid"

type Recipe struct {
	BaseModel
	Title string `json:"title" gorm:"size:255;not null"`
	Text  string `json:"text" gorm:"type:text;not null"`

	RecipeIngredients []RecipeIngredient `json:"recipe_ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type RecipeIngredient struct {
	BaseModel
	RecipeID     uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uuid.UUID `json:"ingredient_id" gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient"`

	Ingredient Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

type Ingredient struct {
	BaseModel
	Name string `json:"name" gorm:"size:120;not null;uniqueIndex"`
}
