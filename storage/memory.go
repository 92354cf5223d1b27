package storage

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"menuboard/models"
)

// MemStore 内存菜单存储，进程退出即丢失
type MemStore struct {
	mu             sync.RWMutex
	categories     map[int64]models.Category
	items          map[int64]models.MenuItem
	nextCategoryID int64
	nextItemID     int64

	now        func() time.Time
	viewsToday func() int
}

// Option 配置 MemStore
type Option func(*MemStore)

// WithClock 替换 createdAt 使用的时钟
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) { s.now = now }
}

// WithViewsToday 替换 viewsToday 占位数据的来源
func WithViewsToday(fn func() int) Option {
	return func(s *MemStore) { s.viewsToday = fn }
}

// NewMemStore 创建空的内存存储，id 从 1 开始
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		categories:     make(map[int64]models.Category),
		items:          make(map[int64]models.MenuItem),
		nextCategoryID: 1,
		nextItemID:     1,
		now:            time.Now,
		viewsToday:     mockViewsToday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mockViewsToday 没有真实访问统计，返回 50~249 的随机数
func mockViewsToday() int {
	return rand.IntN(200) + 50
}

func byOrder[T any](order func(T) int, id func(T) int64) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Or(cmp.Compare(order(a), order(b)), cmp.Compare(id(a), id(b)))
	}
}

var (
	categoryOrder = byOrder(
		func(c models.Category) int { return c.Order },
		func(c models.Category) int64 { return c.ID },
	)
	itemOrder = byOrder(
		func(m models.MenuItem) int { return m.Order },
		func(m models.MenuItem) int64 { return m.ID },
	)
)

// ---------- 分类 ----------

func (s *MemStore) ListCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedCategories()
}

func (s *MemStore) sortedCategories() []models.Category {
	list := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		list = append(list, c)
	}
	// 同 order 按 id（即插入顺序）排序
	slices.SortFunc(list, categoryOrder)
	return list
}

func (s *MemStore) GetCategory(id int64) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	return c, ok
}

func (s *MemStore) CreateCategory(in models.InsertCategory) (models.Category, error) {
	c := models.Category{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Icon:        in.Icon,
		Color:       in.Color,
		MealType:    in.MealType,
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if c.MealType == "" {
		c.MealType = models.MealTypeLunch
	}
	if err := validateCategory(c); err != nil {
		return models.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c, nil
}

func (s *MemStore) UpdateCategory(id int64, patch models.CategoryPatch) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.DisplayName != nil {
		c.DisplayName = *patch.DisplayName
	}
	if patch.Icon != nil {
		c.Icon = *patch.Icon
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Order != nil {
		c.Order = *patch.Order
	}
	if patch.MealType != nil {
		c.MealType = *patch.MealType
	}
	if err := validateCategory(c); err != nil {
		return models.Category{}, err
	}
	s.categories[id] = c
	return c, nil
}

// DeleteCategory 不级联删除引用该分类的菜品
func (s *MemStore) DeleteCategory(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false
	}
	delete(s.categories, id)
	return true
}

// validateCategory 分类字段原样保存，icon/color 允许为空串
func validateCategory(c models.Category) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return &ValidationError{Field: "name", Message: "is required"}
	case strings.TrimSpace(c.DisplayName) == "":
		return &ValidationError{Field: "displayName", Message: "is required"}
	case !c.MealType.Valid():
		return &ValidationError{Field: "mealType", Message: "must be one of: lunch, dinner"}
	}
	return nil
}

// ---------- 菜品 ----------

func (s *MemStore) ListMenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterItems(func(*models.MenuItem) bool { return true })
}

func (s *MemStore) filterItems(keep func(*models.MenuItem) bool) []models.MenuItem {
	list := make([]models.MenuItem, 0, len(s.items))
	for _, m := range s.items {
		if keep(&m) {
			list = append(list, m.Clone())
		}
	}
	slices.SortFunc(list, itemOrder)
	return list
}

func (s *MemStore) GetMenuItem(id int64) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.items[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return m.Clone(), true
}

func (s *MemStore) ListMenuItemsByCategory(categoryID int64) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterItems(func(m *models.MenuItem) bool { return m.CategoryID == categoryID })
}

// CreateMenuItem 不校验 categoryId 是否存在
func (s *MemStore) CreateMenuItem(in models.InsertMenuItem) (models.MenuItem, error) {
	m := models.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		IsAvailable: true,
		ImageURL:    in.ImageURL,
		Order:       in.Order,
		IsSpecial:   in.IsSpecial,
		MealType:    in.MealType,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if m.MealType == "" {
		m.MealType = models.MealTypeLunch
	}
	m = m.Clone()
	if err := validateMenuItem(m); err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextItemID
	s.nextItemID++
	m.CreatedAt = s.now()
	s.items[m.ID] = m
	return m.Clone(), nil
}

func (s *MemStore) UpdateMenuItem(id int64, patch models.MenuItemPatch) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	m = m.Clone()
	if patch.Name != nil {
		m.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description.Set {
		m.Description = patch.Description.Ptr()
	}
	if patch.Price.Set {
		m.Price = patch.Price.Ptr()
	}
	if patch.CategoryID != nil {
		m.CategoryID = *patch.CategoryID
	}
	if patch.IsAvailable != nil {
		m.IsAvailable = *patch.IsAvailable
	}
	if patch.ImageURL.Set {
		m.ImageURL = patch.ImageURL.Ptr()
	}
	if patch.Order != nil {
		m.Order = *patch.Order
	}
	if patch.IsSpecial != nil {
		m.IsSpecial = *patch.IsSpecial
	}
	if patch.MealType != nil {
		m.MealType = *patch.MealType
	}
	if err := validateMenuItem(m); err != nil {
		return models.MenuItem{}, err
	}
	s.items[id] = m
	return m.Clone(), nil
}

func (s *MemStore) DeleteMenuItem(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *MemStore) ToggleAvailability(id int64) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	m.IsAvailable = !m.IsAvailable
	s.items[id] = m
	return m.Clone(), nil
}

func validateMenuItem(m models.MenuItem) error {
	switch {
	case m.Name == "":
		return &ValidationError{Field: "name", Message: "is required"}
	case m.CategoryID <= 0:
		return &ValidationError{Field: "categoryId", Message: "must be a positive integer"}
	case m.Price != nil && *m.Price < 0:
		return &ValidationError{Field: "price", Message: "must not be negative"}
	case !m.MealType.Valid():
		return &ValidationError{Field: "mealType", Message: "must be one of: lunch, dinner"}
	}
	return nil
}

// ---------- 组合视图 ----------

// CategoriesWithItems 按 order 返回分类，并附带其下按 order 排序的菜品
func (s *MemStore) CategoriesWithItems(filter ViewFilter) []models.CategoryWithItems {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make(map[int64][]models.MenuItem)
	for _, m := range s.filterItems(filter.matchItem) {
		grouped[m.CategoryID] = append(grouped[m.CategoryID], m)
	}

	categories := s.sortedCategories()
	result := make([]models.CategoryWithItems, 0, len(categories))
	for _, c := range categories {
		if filter.MealType != "" && c.MealType != filter.MealType {
			continue
		}
		items := grouped[c.ID]
		if items == nil {
			items = []models.MenuItem{}
		}
		result = append(result, models.CategoryWithItems{Category: c, Items: items})
	}
	return result
}

// ItemsWithCategory 分类已删除的菜品直接跳过
func (s *MemStore) ItemsWithCategory() []models.MenuItemWithCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.filterItems(func(*models.MenuItem) bool { return true })
	result := make([]models.MenuItemWithCategory, 0, len(items))
	for _, m := range items {
		c, ok := s.categories[m.CategoryID]
		if !ok {
			continue
		}
		result = append(result, models.MenuItemWithCategory{MenuItem: m, Category: c})
	}
	return result
}

func (s *MemStore) AnalyticsSummary() models.AnalyticsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	available := 0
	for _, m := range s.items {
		if m.IsAvailable {
			available++
		}
	}
	return models.AnalyticsSummary{
		TotalCategories: len(s.categories),
		TotalItems:      len(s.items),
		AvailableItems:  available,
		ViewsToday:      s.viewsToday(),
	}
}

var _ Store = (*MemStore)(nil)
