package models

// Task is a scheduling work item created in the upstream portal when a
// device collection is booked. Field values mirror what the portal's
// scheduling module expects; most of the numeric ids are fixed routing
// values with no meaning inside this system.
type Task struct {
	Title                    string `json:"title"`
	Description              string `json:"description"`
	ReporterID               int    `json:"reporter_id"`
	Address                  string `json:"address"`
	GPS                      string `json:"gps"`
	RelatedCustomerID        int    `json:"related_customer_id"`
	PartnerID                int    `json:"partner_id"`
	ProjectID                int    `json:"project_id"`
	LocationID               int    `json:"location_id"`
	RelatedToID              int    `json:"related_to_id"`
	CreatedAt                string `json:"created_at"`
	UpdatedAt                string `json:"updated_at"`
	Priority                 string `json:"priority"`
	AssignedTo               string `json:"assigned_to"`
	Assignee                 int    `json:"assignee"`
	AssignedAt               string `json:"assigned_at"`
	IsScheduled              bool   `json:"is_scheduled"`
	ScheduledFrom            string `json:"scheduled_from"`
	FormattedDuration        string `json:"formatted_duration"`
	WorkflowStatusID         int    `json:"workflow_status_id"`
	IsArchived               int    `json:"is_archived"`
	TravelTimeTo             int    `json:"travel_time_to"`
	TravelTimeFrom           int    `json:"travel_time_from"`
	Closed                   int    `json:"closed"`
	NotificationSendInterval int    `json:"notification_send_interval"`
	NotificationEnabled      string `json:"notification_enabled"`
	Remaining                int    `json:"remaining"`
	LastStatusChanged        string `json:"last_status_changed"`
	Watchers                 []int  `json:"watchers"`
}
