package services

import (
	"strings"

	"collections-backend/internal/models"
)

// ProductAll means no single-product narrowing.
const ProductAll = 0

// VisibleCustomers computes the dashboard list: customers whose status
// is blocked or disabled and who hold at least one assigned tracked
// device. Pure and deterministic; output preserves the input customer
// order and duplicates are not collapsed.
func VisibleCustomers(customers []models.Customer, inventory []models.InventoryItem, productFilter int, cityFilter, search string) []models.Customer {
	inScope := make(map[int]bool)
	for _, item := range inventory {
		if item.ProductID != models.ProductBaicell && item.ProductID != models.ProductG5010 {
			continue
		}
		if !strings.EqualFold(item.Status, "assigned") {
			continue
		}
		if productFilter != ProductAll && item.ProductID != productFilter {
			continue
		}
		inScope[item.CustomerID] = true
	}

	city := strings.ToLower(strings.TrimSpace(cityFilter))
	query := strings.ToLower(search)

	result := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		status := strings.ToLower(c.Status)
		if status != "blocked" && status != "disabled" {
			continue
		}
		if !inScope[c.ID] {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(c.City), city) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// DepositFor joins the billing list by customer id. At most one match
// is used (the first, since external data order is not guaranteed);
// absence renders as "N/A".
func DepositFor(billings []models.Billing, customerID int) string {
	for _, b := range billings {
		if b.CustomerID == customerID {
			return b.Deposit
		}
	}
	return "N/A"
}
