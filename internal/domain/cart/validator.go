package cart

import "fmt"

// Violations reports MOQ shortfalls in cart order, one message per violating
// line. The messages are advisory for checkout display; they never block a
// mutation.
func Violations(items []Item) []string {
	var violations []string
	for i := range items {
		item := &items[i]
		if item.Quantity >= item.Product.MOQ {
			continue
		}
		violations = append(violations, fmt.Sprintf(
			"%s: Need %d more units to meet MOQ of %d",
			item.Product.Title, item.Product.MOQ-item.Quantity, item.Product.MOQ,
		))
	}
	return violations
}
