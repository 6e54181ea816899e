package recipe

import (
	"fmt"
	"strings"

	"foodgram/internal/repository"
)

// ShoppingListFilename — имя вложения, которое получает клиент.
const ShoppingListFilename = "shopping-list.txt"

// RenderShoppingList формирует текстовый файл списка покупок: заголовок
// и по строке на каждый агрегированный ингредиент.
func RenderShoppingList(items []repository.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString("Список покупок.\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s, %d %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}
	return b.String()
}
