package models

import "time"

type NutritionEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	FoodName    string    `gorm:"not null" json:"food_name"`
	MealType    string    `gorm:"size:20" json:"meal_type,omitempty"` // breakfast | lunch | dinner | snack
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatG        float64   `json:"fat_g"`
	ServingSize string    `gorm:"size:50" json:"serving_size,omitempty"`
	RecordedAt  time.Time `gorm:"index" json:"recorded_at"`
}
