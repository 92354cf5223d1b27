package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"menuboard/models"
	"menuboard/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItemRouter(store storage.Store, strict bool) *gin.Engine {
	h := NewMenuItemHandler(store, strict)
	r := gin.New()
	r.GET("/menu-items", h.List)
	r.GET("/menu-items/with-category", h.WithCategory)
	r.GET("/menu-items/:id", h.Get)
	r.POST("/menu-items", h.Create)
	r.PUT("/menu-items/:id", h.Update)
	r.PUT("/menu-items/:id/toggle", h.Toggle)
	r.DELETE("/menu-items/:id", h.Delete)
	return r
}

func TestMenuItemHandler_Create(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "POST", "/menu-items",
		`{"name":"Kesar Jalebi","description":"Crispy & Sweet","categoryId":4,"order":3}`)

	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[models.MenuItem](t, w)
	assert.Equal(t, int64(16), item.ID)
	assert.Equal(t, "Kesar Jalebi", item.Name)
	require.NotNil(t, item.Description)
	assert.Equal(t, "Crispy & Sweet", *item.Description)
	assert.Nil(t, item.Price)
	assert.True(t, item.IsAvailable)
	assert.False(t, item.IsSpecial)
	assert.Equal(t, models.MealTypeLunch, item.MealType)
	assert.False(t, item.CreatedAt.IsZero())

	// 未定价时 price 序列化为 null
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "price")
	assert.Nil(t, raw["price"])
}

func TestMenuItemHandler_Create_Unavailable(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "POST", "/menu-items",
		`{"name":"Pani Puri","price":6000,"categoryId":6,"isAvailable":false,"isSpecial":true,"mealType":"dinner"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[models.MenuItem](t, w)
	require.NotNil(t, item.Price)
	assert.Equal(t, 6000, *item.Price)
	assert.False(t, item.IsAvailable)
	assert.True(t, item.IsSpecial)
	assert.Equal(t, models.MealTypeDinner, item.MealType)
}

func TestMenuItemHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"缺少 name", `{"categoryId":1}`, "name"},
		{"缺少 categoryId", `{"name":"Dhokla"}`, "categoryId"},
		{"price 非整数", `{"name":"Dhokla","categoryId":1,"price":120.5}`, "price"},
		{"price 为负", `{"name":"Dhokla","categoryId":1,"price":-1}`, "price"},
		{"非法 mealType", `{"name":"Dhokla","categoryId":1,"mealType":"brunch"}`, "mealType"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, false)
			router := menuItemRouter(store, false)

			w := serve(router, "POST", "/menu-items", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, "Invalid menu item data", resp.Message)
			assert.True(t, hasFieldError(resp, tt.field), "errors: %+v", resp.Errors)
			assert.Empty(t, store.ListMenuItems())
		})
	}
}

func TestMenuItemHandler_CategoryRefs(t *testing.T) {
	// 默认不校验分类是否存在
	router := menuItemRouter(newTestStore(t, true), false)
	w := serve(router, "POST", "/menu-items", `{"name":"Ghost","categoryId":99}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	strict := menuItemRouter(newTestStore(t, true), true)
	w = serve(strict, "POST", "/menu-items", `{"name":"Ghost","categoryId":99}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, hasFieldError(decode[ErrorResponse](t, w), "categoryId"))

	w = serve(strict, "PUT", "/menu-items/1", `{"categoryId":99}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(strict, "PUT", "/menu-items/1", `{"categoryId":6}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), decode[models.MenuItem](t, w).CategoryID)
}

func TestMenuItemHandler_Get(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "GET", "/menu-items/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unlimited Gujarati Thali", decode[models.MenuItem](t, w).Name)

	w = serve(router, "GET", "/menu-items/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu item not found", decode[ErrorResponse](t, w).Message)

	w = serve(router, "GET", "/menu-items/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuItemHandler_List(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "GET", "/menu-items", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.MenuItem](t, w)
	require.Len(t, items, 15)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Order, items[i].Order)
	}

	w = serve(router, "GET", "/menu-items?mealType=dinner", "")
	require.Equal(t, http.StatusOK, w.Code)
	dinner := decode[[]models.MenuItem](t, w)
	require.Len(t, dinner, 2)
	assert.Equal(t, "Chole Bhature", dinner[0].Name)

	w = serve(router, "GET", "/menu-items?mealType=brunch", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuItemHandler_Update(t *testing.T) {
	store := newTestStore(t, true)
	router := menuItemRouter(store, false)
	thali := findItem(t, store, "Unlimited Gujarati Thali")

	w := serve(router, "PUT", "/menu-items/1", `{"price":22000,"isSpecial":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	item := decode[models.MenuItem](t, w)
	require.NotNil(t, item.Price)
	assert.Equal(t, 22000, *item.Price)
	assert.True(t, item.IsSpecial)
	assert.Equal(t, thali.Name, item.Name)
	assert.Equal(t, thali.Description, item.Description)
	assert.True(t, thali.CreatedAt.Equal(item.CreatedAt))

	// null 清空 price 与 description
	w = serve(router, "PUT", "/menu-items/1", `{"price":null,"description":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	item = decode[models.MenuItem](t, w)
	assert.Nil(t, item.Price)
	assert.Nil(t, item.Description)
	assert.True(t, item.IsSpecial)
}

func TestMenuItemHandler_Update_Errors(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "PUT", "/menu-items/999", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu item not found", decode[ErrorResponse](t, w).Message)

	w = serve(router, "PUT", "/menu-items/1", `{"price":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, hasFieldError(decode[ErrorResponse](t, w), "price"))

	w = serve(router, "PUT", "/menu-items/1", `{"isAvailable":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, hasFieldError(decode[ErrorResponse](t, w), "isAvailable"))
}

func TestMenuItemHandler_Update_RejectsNull(t *testing.T) {
	store := newTestStore(t, true)
	router := menuItemRouter(store, false)
	before := findItem(t, store, "Pav Bhaji")
	path := "/menu-items/" + strconv.FormatInt(before.ID, 10)

	for _, field := range menuItemNonNullable {
		w := serve(router, "PUT", path, `{"`+field+`":null}`)
		require.Equal(t, http.StatusBadRequest, w.Code, field)
		assert.True(t, hasFieldError(decode[ErrorResponse](t, w), field), field)
	}

	// 可空字段仍可显式置空
	w := serve(router, "PUT", path, `{"imageUrl":null,"isSpecial":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	item := decode[models.MenuItem](t, w)
	assert.Nil(t, item.ImageURL)
	assert.True(t, item.IsSpecial)
	assert.Equal(t, before.Name, item.Name)
	assert.True(t, item.IsAvailable)
}

func TestMenuItemHandler_Toggle(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "PUT", "/menu-items/3/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.MenuItem](t, w).IsAvailable)

	w = serve(router, "PUT", "/menu-items/3/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.MenuItem](t, w).IsAvailable)

	w = serve(router, "PUT", "/menu-items/999/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu item not found", decode[ErrorResponse](t, w).Message)
}

func TestMenuItemHandler_Delete(t *testing.T) {
	router := menuItemRouter(newTestStore(t, true), false)

	w := serve(router, "DELETE", "/menu-items/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, "GET", "/menu-items/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, "DELETE", "/menu-items/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuItemHandler_WithCategory(t *testing.T) {
	store := newTestStore(t, true)
	router := menuItemRouter(store, false)
	require.True(t, store.DeleteCategory(6))

	w := serve(router, "GET", "/menu-items/with-category", "")

	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.MenuItemWithCategory](t, w)
	// dinner 分类已删除，其下 2 个菜品不再出现
	require.Len(t, items, 13)
	for _, item := range items {
		assert.Equal(t, item.CategoryID, item.Category.ID)
	}
}
