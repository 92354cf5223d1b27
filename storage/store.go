// Package storage holds the menu data: categories, menu items and the
// composed read views served by the API.
package storage

import (
	"errors"
	"fmt"

	"menuboard/models"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ValidationError 输入缺少必填字段或取值非法
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ViewFilter 组合视图的过滤条件
type ViewFilter struct {
	// AvailableOnly 顾客视图只展示在售菜品，后台视图不过滤
	AvailableOnly bool
	// MealType 为空表示全部餐次
	MealType models.MealType
}

func (f ViewFilter) matchItem(item *models.MenuItem) bool {
	if f.AvailableOnly && !item.IsAvailable {
		return false
	}
	return f.MealType == "" || item.MealType == f.MealType
}

// Store defines the menu store operations.
// Lookups by id report absence with a false flag; mutations report it
// with an error wrapping ErrNotFound.
type Store interface {
	ListCategories() []models.Category
	GetCategory(id int64) (models.Category, bool)
	CreateCategory(in models.InsertCategory) (models.Category, error)
	UpdateCategory(id int64, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(id int64) bool

	ListMenuItems() []models.MenuItem
	GetMenuItem(id int64) (models.MenuItem, bool)
	ListMenuItemsByCategory(categoryID int64) []models.MenuItem
	CreateMenuItem(in models.InsertMenuItem) (models.MenuItem, error)
	UpdateMenuItem(id int64, patch models.MenuItemPatch) (models.MenuItem, error)
	DeleteMenuItem(id int64) bool
	ToggleAvailability(id int64) (models.MenuItem, error)

	CategoriesWithItems(filter ViewFilter) []models.CategoryWithItems
	ItemsWithCategory() []models.MenuItemWithCategory
	AnalyticsSummary() models.AnalyticsSummary
}
