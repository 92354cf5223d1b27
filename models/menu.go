package models

import "time"

// MenuItem 菜品
type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price"` // 最小货币单位（分/paise），nil 表示随套餐附带
	CategoryID  int64     `json:"categoryId"`
	IsAvailable bool      `json:"isAvailable"`
	ImageURL    *string   `json:"imageUrl"`
	Order       int       `json:"order"`
	IsSpecial   bool      `json:"isSpecial"`
	MealType    MealType  `json:"mealType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Clone 深拷贝，避免调用方通过指针字段修改存储
func (m MenuItem) Clone() MenuItem {
	m.Description = clonePtr(m.Description)
	m.Price = clonePtr(m.Price)
	m.ImageURL = clonePtr(m.ImageURL)
	return m
}

// InsertMenuItem 创建菜品的输入
type InsertMenuItem struct {
	Name        string
	Description *string
	Price       *int
	CategoryID  int64
	IsAvailable *bool // 缺省为 true
	ImageURL    *string
	Order       int
	IsSpecial   bool
	MealType    MealType
}

// MenuItemPatch 菜品的部分更新
// 可置空字段使用 Nullable，以区分“未提供”和“显式设为 null”
type MenuItemPatch struct {
	Name        *string
	Description Nullable[string]
	Price       Nullable[int]
	CategoryID  *int64
	IsAvailable *bool
	ImageURL    Nullable[string]
	Order       *int
	IsSpecial   *bool
	MealType    *MealType
}

// IsEmpty 是否没有任何需要更新的字段
func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && !p.Description.Set && !p.Price.Set && p.CategoryID == nil &&
		p.IsAvailable == nil && !p.ImageURL.Set && p.Order == nil && p.IsSpecial == nil && p.MealType == nil
}

// MenuItemWithCategory 菜品及其所属分类
type MenuItemWithCategory struct {
	MenuItem
	Category Category `json:"category"`
}

// AnalyticsSummary 后台统计
type AnalyticsSummary struct {
	TotalCategories int `json:"totalCategories"`
	TotalItems      int `json:"totalItems"`
	AvailableItems  int `json:"availableItems"`
	ViewsToday      int `json:"viewsToday"` // 占位数据，未做真实访问统计
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
