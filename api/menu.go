package api

import (
	"net/http"

	"menuboard/models"
	"menuboard/storage"

	"github.com/gin-gonic/gin"
)

// MenuItemHandler 菜品管理
type MenuItemHandler struct {
	store storage.Store
	// strictCategoryRefs 为 true 时拒绝引用不存在分类的写入
	strictCategoryRefs bool
}

func NewMenuItemHandler(store storage.Store, strictCategoryRefs bool) *MenuItemHandler {
	return &MenuItemHandler{store: store, strictCategoryRefs: strictCategoryRefs}
}

type MenuItemCreateRequest struct {
	Name        string          `json:"name" binding:"required,max=100" example:"Jalebi"`
	Description *string         `json:"description" binding:"omitempty,max=500" example:"Crispy & Sweet"`
	Price       *int            `json:"price" binding:"omitempty,min=0" example:"12000"` // 最小货币单位
	CategoryID  int64           `json:"categoryId" binding:"required,min=1" example:"4"`
	IsAvailable *bool           `json:"isAvailable" example:"true"`
	ImageURL    *string         `json:"imageUrl" binding:"omitempty,max=2048"`
	Order       int             `json:"order" example:"3"`
	IsSpecial   bool            `json:"isSpecial"`
	MealType    models.MealType `json:"mealType" binding:"omitempty,oneof=lunch dinner" example:"lunch"`
}

var menuItemNonNullable = []string{"name", "categoryId", "isAvailable", "order", "isSpecial", "mealType"}

// MenuItemUpdateRequest description/price/imageUrl 可显式设为 null
type MenuItemUpdateRequest struct {
	Name        *string                 `json:"name" binding:"omitempty,min=1,max=100"`
	Description models.Nullable[string] `json:"description" swaggertype:"string"`
	Price       models.Nullable[int]    `json:"price" swaggertype:"integer"`
	CategoryID  *int64                  `json:"categoryId" binding:"omitempty,min=1"`
	IsAvailable *bool                   `json:"isAvailable"`
	ImageURL    models.Nullable[string] `json:"imageUrl" swaggertype:"string"`
	Order       *int                    `json:"order"`
	IsSpecial   *bool                   `json:"isSpecial"`
	MealType    *models.MealType        `json:"mealType" binding:"omitempty,oneof=lunch dinner"`
}

func (r MenuItemUpdateRequest) patch() models.MenuItemPatch {
	return models.MenuItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		IsAvailable: r.IsAvailable,
		ImageURL:    r.ImageURL,
		Order:       r.Order,
		IsSpecial:   r.IsSpecial,
		MealType:    r.MealType,
	}
}

// checkCategoryRef 严格模式下校验分类存在
func (h *MenuItemHandler) checkCategoryRef(c *gin.Context, categoryID int64) bool {
	if !h.strictCategoryRefs {
		return true
	}
	if _, ok := h.store.GetCategory(categoryID); !ok {
		BadRequest(c, "Invalid menu item data", FieldError{Field: "categoryId", Message: "category does not exist"})
		return false
	}
	return true
}

// List 列出所有菜品
// @Summary 获取菜品列表
// @Description 按 order 升序返回全部菜品（含已下架）
// @Tags 菜品
// @Produce json
// @Param mealType query string false "lunch 或 dinner"
// @Success 200 {array} models.MenuItem
// @Failure 400 {object} ErrorResponse
// @Router /api/menu-items [get]
func (h *MenuItemHandler) List(c *gin.Context) {
	mealType, ok := parseMealType(c)
	if !ok {
		return
	}
	items := h.store.ListMenuItems()
	if mealType != "" {
		filtered := make([]models.MenuItem, 0, len(items))
		for _, m := range items {
			if m.MealType == mealType {
				filtered = append(filtered, m)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, items)
}

// WithCategory 菜品及所属分类
// @Summary 获取菜品及分类
// @Description 分类已删除的菜品不会出现在结果中
// @Tags 菜品
// @Produce json
// @Success 200 {array} models.MenuItemWithCategory
// @Router /api/menu-items/with-category [get]
func (h *MenuItemHandler) WithCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ItemsWithCategory())
}

// Get 获取单个菜品
// @Summary 获取菜品
// @Tags 菜品
// @Produce json
// @Param id path int true "菜品ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} ErrorResponse
// @Router /api/menu-items/{id} [get]
func (h *MenuItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, found := h.store.GetMenuItem(id)
	if !found {
		NotFound(c, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create 创建菜品
// @Summary 创建菜品
// @Description price 以最小货币单位传输，缺省表示随套餐附带
// @Tags 菜品
// @Accept json
// @Produce json
// @Param request body MenuItemCreateRequest true "菜品信息"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} ErrorResponse
// @Router /api/menu-items [post]
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req MenuItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid menu item data", bindErrorDetails(err)...)
		return
	}
	if !h.checkCategoryRef(c, req.CategoryID) {
		return
	}

	item, err := h.store.CreateMenuItem(models.InsertMenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsAvailable: req.IsAvailable,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		IsSpecial:   req.IsSpecial,
		MealType:    req.MealType,
	})
	if err != nil {
		respondStoreError(c, err, "Invalid menu item data", "Menu item not found", "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update 部分更新菜品
// @Summary 更新菜品
// @Description 只更新请求体中出现的字段，description/price/imageUrl 传 null 表示清空
// @Tags 菜品
// @Accept json
// @Produce json
// @Param id path int true "菜品ID"
// @Param request body MenuItemUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/menu-items/{id} [put]
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MenuItemUpdateRequest
	if !bindPatch(c, &req, "Invalid menu item data", menuItemNonNullable...) {
		return
	}
	if req.CategoryID != nil && !h.checkCategoryRef(c, *req.CategoryID) {
		return
	}

	item, err := h.store.UpdateMenuItem(id, req.patch())
	if err != nil {
		respondStoreError(c, err, "Invalid menu item data", "Menu item not found", "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Toggle 切换在售状态
// @Summary 切换菜品在售状态
// @Tags 菜品
// @Produce json
// @Param id path int true "菜品ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} ErrorResponse
// @Router /api/menu-items/{id}/toggle [put]
func (h *MenuItemHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.store.ToggleAvailability(id)
	if err != nil {
		respondStoreError(c, err, "Invalid menu item data", "Menu item not found", "Failed to toggle item availability")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete 删除菜品
// @Summary 删除菜品
// @Tags 菜品
// @Param id path int true "菜品ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/menu-items/{id} [delete]
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteMenuItem(id) {
		NotFound(c, "Menu item not found")
		return
	}
	c.Status(http.StatusNoContent)
}
