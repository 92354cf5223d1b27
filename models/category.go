package models

// MealType 餐次
type MealType string

const (
	MealTypeLunch  MealType = "lunch"
	MealTypeDinner MealType = "dinner"
)

// Valid 是否为已知餐次
func (m MealType) Valid() bool {
	return m == MealTypeLunch || m == MealTypeDinner
}

// Category 菜单分类
type Category struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`        // 机器标识，如 sabji
	DisplayName string   `json:"displayName"` // 展示名称
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Order       int      `json:"order"` // 升序展示，可重复
	MealType    MealType `json:"mealType"`
}

// InsertCategory 创建分类的输入，Order 与 MealType 可缺省
type InsertCategory struct {
	Name        string
	DisplayName string
	Icon        string
	Color       string
	Order       *int
	MealType    MealType
}

// CategoryPatch 分类的部分更新，nil 字段保持不变
type CategoryPatch struct {
	Name        *string
	DisplayName *string
	Icon        *string
	Color       *string
	Order       *int
	MealType    *MealType
}

// IsEmpty 是否没有任何需要更新的字段
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.DisplayName == nil && p.Icon == nil &&
		p.Color == nil && p.Order == nil && p.MealType == nil
}

// CategoryWithItems 分类及其下菜品
type CategoryWithItems struct {
	Category
	Items []MenuItem `json:"items"`
}
