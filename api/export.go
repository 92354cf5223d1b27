package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"menuboard/models"
	"menuboard/storage"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{"ID", "Name", "Category", "Meal", "Price", "Available", "Special", "Order", "Description", "Created At"}

// ExportHandler 菜单导出
type ExportHandler struct {
	store    storage.Store
	currency string
}

// NewExportHandler 创建导出处理器
func NewExportHandler(store storage.Store, currency string) *ExportHandler {
	return &ExportHandler{store: store, currency: currency}
}

// exportRows 按分类顺序、分类内按 order 生成导出行，孤立菜品排在最后
// 菜品只取一次快照，每个菜品恰好出现一次
func (h *ExportHandler) exportRows() [][]string {
	cats := h.store.ListCategories()
	items := h.store.ListMenuItems()

	byCategory := make(map[int64][]models.MenuItem, len(cats))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	rows := make([][]string, 0, len(items))
	for _, cat := range cats {
		for _, item := range byCategory[cat.ID] {
			rows = append(rows, h.row(item, cat.DisplayName))
		}
		delete(byCategory, cat.ID)
	}
	for _, item := range items {
		if _, orphan := byCategory[item.CategoryID]; orphan {
			rows = append(rows, h.row(item, ""))
		}
	}
	return rows
}

func (h *ExportHandler) row(item models.MenuItem, category string) []string {
	desc := ""
	if item.Description != nil {
		desc = *item.Description
	}
	return []string{
		strconv.FormatInt(item.ID, 10),
		item.Name,
		category,
		string(item.MealType),
		models.FormatPrice(item.Price, h.currency),
		strconv.FormatBool(item.IsAvailable),
		strconv.FormatBool(item.IsSpecial),
		strconv.Itoa(item.Order),
		desc,
		item.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Export 导出菜单
// @Summary 导出菜单
// @Description 导出全部菜品（含已下架与孤立菜品），format 为 csv 或 xlsx
// @Tags 导出
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv（默认）或 xlsx"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse
// @Router /api/menu-items/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	rows := h.exportRows()
	stamp := time.Now().Format("20060102")

	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		data, err := buildCSV(rows)
		if err != nil {
			InternalError(c, err, "Failed to export menu")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=menu_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := buildXLSX(rows)
		if err != nil {
			InternalError(c, err, "Failed to export menu")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=menu_%s.xlsx", stamp))
		c.Data(http.StatusOK, xlsxContentType, data)
	default:
		BadRequest(c, "Invalid query", FieldError{Field: "format", Message: "must be one of: csv, xlsx"})
	}
}

func buildCSV(rows [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	// 添加 BOM，Excel 打开时正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Menu"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 24)
	f.SetColWidth(sheetName, "D", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 40)
	f.SetColWidth(sheetName, "J", "J", 20)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	for r, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
