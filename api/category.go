package api

import (
	"net/http"
	"strconv"

	"menuboard/models"
	"menuboard/storage"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 菜单分类管理
type CategoryHandler struct {
	store storage.Store
}

func NewCategoryHandler(store storage.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

type CategoryCreateRequest struct {
	Name        string          `json:"name" binding:"required,max=50" example:"sweet"`
	DisplayName string          `json:"displayName" binding:"required,max=100" example:"Sweet"`
	Icon        *string         `json:"icon" binding:"required,max=100" example:"🍬"` // 可为空串，但必须出现
	Color       *string         `json:"color" binding:"required,max=50" example:"pink"`
	Order       *int            `json:"order" example:"4"`
	MealType    models.MealType `json:"mealType" binding:"omitempty,oneof=lunch dinner" example:"lunch"`
}

// categoryNonNullable 更新时不允许显式传 null 的字段
var categoryNonNullable = []string{"name", "displayName", "icon", "color", "order", "mealType"}

type CategoryUpdateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=50"`
	DisplayName *string          `json:"displayName" binding:"omitempty,min=1,max=100"`
	Icon        *string          `json:"icon" binding:"omitempty,max=100"`
	Color       *string          `json:"color" binding:"omitempty,max=50"`
	Order       *int             `json:"order"`
	MealType    *models.MealType `json:"mealType" binding:"omitempty,oneof=lunch dinner"`
}

// List 列出所有分类
// @Summary 获取分类列表
// @Description 按 order 升序返回全部分类
// @Tags 分类
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListCategories())
}

// WithItems 分类及其菜品
// @Summary 获取分类及菜品
// @Description availableOnly=true 为顾客视图，仅返回在售菜品；mealType 过滤午餐/晚餐
// @Tags 分类
// @Produce json
// @Param availableOnly query bool false "仅在售菜品"
// @Param mealType query string false "lunch 或 dinner"
// @Success 200 {array} models.CategoryWithItems
// @Failure 400 {object} ErrorResponse
// @Router /api/categories/with-items [get]
func (h *CategoryHandler) WithItems(c *gin.Context) {
	var filter storage.ViewFilter
	if raw := c.Query("availableOnly"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid query", FieldError{Field: "availableOnly", Message: "must be a boolean"})
			return
		}
		filter.AvailableOnly = v
	}
	mealType, ok := parseMealType(c)
	if !ok {
		return
	}
	filter.MealType = mealType

	c.JSON(http.StatusOK, h.store.CategoriesWithItems(filter))
}

// Get 获取单个分类
// @Summary 获取分类
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, found := h.store.GetCategory(id)
	if !found {
		NotFound(c, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Items 分类下的菜品
// @Summary 获取分类下的菜品
// @Description 分类已删除时仍返回引用该 id 的菜品
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {array} models.MenuItem
// @Router /api/categories/{id}/items [get]
func (h *CategoryHandler) Items(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.ListMenuItemsByCategory(id))
}

// Create 创建分类
// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "分类信息"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid category data", bindErrorDetails(err)...)
		return
	}

	cat, err := h.store.CreateCategory(models.InsertCategory{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Icon:        *req.Icon,
		Color:       *req.Color,
		Order:       req.Order,
		MealType:    req.MealType,
	})
	if err != nil {
		respondStoreError(c, err, "Invalid category data", "Category not found", "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// Update 部分更新分类
// @Summary 更新分类
// @Description 只更新请求体中出现的字段
// @Tags 分类
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Param request body CategoryUpdateRequest true "需要更新的字段"
// @Success 200 {object} models.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CategoryUpdateRequest
	if !bindPatch(c, &req, "Invalid category data", categoryNonNullable...) {
		return
	}

	cat, err := h.store.UpdateCategory(id, models.CategoryPatch{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Icon:        req.Icon,
		Color:       req.Color,
		Order:       req.Order,
		MealType:    req.MealType,
	})
	if err != nil {
		respondStoreError(c, err, "Invalid category data", "Category not found", "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete 删除分类
// @Summary 删除分类
// @Description 不会删除引用该分类的菜品
// @Tags 分类
// @Param id path int true "分类ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteCategory(id) {
		NotFound(c, "Category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
