package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storedesk/internal/domain"
)

const (
	NoSalesData        = "Немає даних про продажі."
	NoOrdersForAverage = "Немає замовлень для обчислення середнього чеку."
)

// TotalSalesLine prints NoSalesData when there is nothing to sum.
func TotalSalesLine(total float64, ok bool) string {
	if !ok {
		return NoSalesData
	}
	return "Загальний обсяг продажів: " + Amount(total) + " грн."
}

func AverageLine(avg float64) string {
	return fmt.Sprintf("Середній чек замовлення: %.2f грн.", avg)
}

func PopularCategoryLine(c domain.CategoryCount, ok bool) string {
	if !ok {
		return NoSalesData
	}
	return fmt.Sprintf("Найпопулярніша категорія: %s, кількість продажів: %d", c.Category, c.Count)
}

func CustomerOrdersLine(r domain.CustomerOrders) string {
	return fmt.Sprintf("Клієнт: %s, Загальна кількість замовлень: %d", r.Customer, r.TotalOrders)
}

func CategoryProductsLine(c domain.CategoryCount) string {
	return fmt.Sprintf("Категорія: %s, Кількість продуктів: %d", c.Category, c.Count)
}

// Amount prints a currency value in plain decimal notation, keeping ".0" on
// whole numbers: 3000 -> "3000.0", 1234567.5 -> "1234567.5".
func Amount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
