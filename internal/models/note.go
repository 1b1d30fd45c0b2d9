package models

// CustomerNote is an append-only comment/audit entry attached to a
// customer in the upstream portal. The tri-state flags are string
// booleans ("1"/"0") on the wire.
type CustomerNote struct {
	ID              int    `json:"id,omitempty"`
	CustomerID      int    `json:"customer_id"`
	Datetime        string `json:"datetime"`
	AdministratorID int    `json:"administrator_id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Comment         string `json:"comment"`
	IsDone          string `json:"is_done"`
	IsSend          string `json:"is_send"`
	IsPinned        string `json:"is_pinned"`
}
