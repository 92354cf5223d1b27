package storage

import (
	"fmt"
	"log/slog"

	"menuboard/models"
)

type seedItem struct {
	name        string
	description string
	price       *int
	order       int
}

type seedCategory struct {
	category models.InsertCategory
	items    []seedItem
}

func intPtr(v int) *int { return &v }

// defaultMenu 默认菜单：午餐无限量古吉拉特套餐（各配菜随套餐附带，不单独定价）+ 晚餐单点
var defaultMenu = []seedCategory{
	{
		category: models.InsertCategory{Name: "thali", DisplayName: "Gujarati Thali", Icon: "🍽️", Color: "green", Order: intPtr(1), MealType: models.MealTypeLunch},
		items: []seedItem{
			{"Unlimited Gujarati Thali", "Complete traditional thali with unlimited servings", intPtr(20000), 1},
		},
	},
	{
		category: models.InsertCategory{Name: "sabji", DisplayName: "Sabji", Icon: "🥬", Color: "green", Order: intPtr(2), MealType: models.MealTypeLunch},
		items: []seedItem{
			{"Aloo Gobi", "Fresh & Spicy", nil, 1},
			{"Dal Tadka", "Rich & Creamy", nil, 2},
			{"Mix Veg", "Garden Fresh", nil, 3},
			{"Bhindi Masala", "Crispy & Flavorful", nil, 4},
		},
	},
	{
		category: models.InsertCategory{Name: "farsan", DisplayName: "Farsan", Icon: "🍪", Color: "orange", Order: intPtr(3), MealType: models.MealTypeLunch},
		items: []seedItem{
			{"Dhokla", "Steamed & Soft", nil, 1},
			{"Khandvi", "Rolled Delight", nil, 2},
			{"Thepla", "Spiced Flatbread", nil, 3},
		},
	},
	{
		category: models.InsertCategory{Name: "sweet", DisplayName: "Sweet", Icon: "🍬", Color: "pink", Order: intPtr(4), MealType: models.MealTypeLunch},
		items: []seedItem{
			{"Gulab Jamun", "Sweet & Juicy", nil, 1},
			{"Mohanthal", "Rich & Nutty", nil, 2},
			{"Jalebi", "Crispy & Sweet", nil, 3},
		},
	},
	{
		category: models.InsertCategory{Name: "roti", DisplayName: "Roti & Rice", Icon: "🍞", Color: "brown", Order: intPtr(5), MealType: models.MealTypeLunch},
		items: []seedItem{
			{"Gujarati Roti", "Fresh & Soft", nil, 1},
			{"Jeera Rice", "Aromatic", nil, 2},
		},
	},
	{
		category: models.InsertCategory{Name: "dinner", DisplayName: "Dinner Items", Icon: "🌙", Color: "purple", Order: intPtr(1), MealType: models.MealTypeDinner},
		items: []seedItem{
			{"Chole Bhature", "Spicy chickpeas with fried bread", intPtr(12000), 1},
			{"Pav Bhaji", "Mumbai street food special", intPtr(10000), 2},
		},
	},
}

// Seed 写入默认菜单，仅在存储为空时调用
func Seed(s Store) error {
	var itemCount int
	for _, sc := range defaultMenu {
		cat, err := s.CreateCategory(sc.category)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", sc.category.Name, err)
		}
		for _, it := range sc.items {
			desc := it.description
			_, err := s.CreateMenuItem(models.InsertMenuItem{
				Name:        it.name,
				Description: &desc,
				Price:       it.price,
				CategoryID:  cat.ID,
				Order:       it.order,
				MealType:    cat.MealType,
			})
			if err != nil {
				return fmt.Errorf("seed menu item %q: %w", it.name, err)
			}
			itemCount++
		}
	}
	slog.Info("seeded default menu", "categories", len(defaultMenu), "items", itemCount)
	return nil
}
