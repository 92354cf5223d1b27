package models

import "fmt"

// FormatPrice 将最小货币单位格式化为展示价格，nil 或 0 返回空字符串
func FormatPrice(price *int, currency string) string {
	if price == nil || *price == 0 {
		return ""
	}
	p := *price
	sign := ""
	if p < 0 {
		sign, p = "-", -p
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, currency, p/100, p%100)
}
