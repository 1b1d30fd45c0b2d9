package models

// Customer is an end-customer record owned by the upstream portal.
// Read-only from this system's perspective.
type Customer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	BillingType string `json:"billing_type"`
	Phone       string `json:"phone"`
	Street1     string `json:"street_1,omitempty"`
	City        string `json:"city,omitempty"`
	GPS         string `json:"gps,omitempty"`
}

// Billing is the upstream billing record for a customer. Deposit is a
// display string, not a numeric amount.
type Billing struct {
	CustomerID int    `json:"customer_id"`
	Deposit    string `json:"deposit"`
}

// InventoryItem is a trackable device assigned to a customer.
type InventoryItem struct {
	ID         int    `json:"id"`
	ProductID  int    `json:"product_id"`
	CustomerID int    `json:"customer_id"`
	Status     string `json:"status"`
}

// ChangeLog is one historical status transition of a customer.
type ChangeLog struct {
	NewStatus string `json:"new_status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Tracked device product ids. Only Baicell and G5010 units put a
// customer in scope for collections.
const (
	ProductBaicell = 1
	ProductG5010   = 2
)
