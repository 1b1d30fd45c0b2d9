package services

import (
	"context"
	"fmt"

	"collections-backend/internal/models"
	"collections-backend/internal/portal"
	"collections-backend/internal/timeutil"
)

// Note titles written by the recorder.
const (
	TitleComment      = "Customer Comment"
	TitlePromise      = "Promise to Pay"
	TitleTaskCreation = "Task Creation"
)

// teamAssignees routes collection tasks: these administrator ids get
// assignee 1, everyone else assignee 2. Undocumented portal-side
// routing rule, preserved verbatim from the source system.
var teamAssignees = map[int]bool{6: true, 21: true, 23: true}

const (
	assigneeTeam    = 1
	assigneeDefault = 2
)

// ActionService records follow-up actions against customers: plain
// comments, payment promises and device collection tasks. All writes
// are append-only; a multi-write action is at-least-once, never
// transactional.
type ActionService struct {
	Portal *portal.Client
}

func NewActionService(client *portal.Client) *ActionService {
	return &ActionService{Portal: client}
}

// PostComment appends a note to the customer's history.
func (s *ActionService) PostComment(ctx context.Context, customerID int, admin *models.Administrator, text, title string) error {
	note := &models.CustomerNote{
		CustomerID:      customerID,
		Datetime:        timeutil.LocalStamp(),
		AdministratorID: admin.ID,
		Name:            admin.Name,
		Type:            "comment",
		Title:           title,
		Comment:         text,
		IsDone:          "1",
		IsSend:          "1",
		IsPinned:        "0",
	}
	return s.Portal.CreateNote(ctx, note)
}

// RecordPromise records a payment promise as a templated comment.
// Amount and due date are required before any network call is made.
func (s *ActionService) RecordPromise(ctx context.Context, customerID int, admin *models.Administrator, amount, dueDate string) error {
	if amount == "" || dueDate == "" {
		return &ValidationError{Msg: "amount and date are required"}
	}
	due, err := timeutil.ParseDate(dueDate)
	if err != nil {
		return &ValidationError{Msg: "date must be in YYYY-MM-DD form"}
	}

	text := fmt.Sprintf("Promised to pay R%s on %s", amount, due.Format(timeutil.DisplayLayout))
	return s.PostComment(ctx, customerID, admin, text, TitlePromise)
}

// ScheduleCollection creates a device collection task in the portal's
// scheduling module and, on success, records an auto comment. A failed
// task creation skips the comment; a failed comment leaves the task in
// place uncommented.
func (s *ActionService) ScheduleCollection(ctx context.Context, customer *models.Customer, admin *models.Administrator, collectionDate string) error {
	if collectionDate == "" {
		return &ValidationError{Msg: "collection date is required"}
	}
	scheduled, err := timeutil.ParseDate(collectionDate)
	if err != nil {
		return &ValidationError{Msg: "date must be in YYYY-MM-DD form"}
	}

	address := customer.Street1
	if address == "" {
		address = "No address"
	}
	assignee := assigneeDefault
	if teamAssignees[admin.ID] {
		assignee = assigneeTeam
	}

	stamp := timeutil.LocalStamp()
	task := &models.Task{
		Title:               customer.Name,
		Description:         "Collect device from the customer",
		ReporterID:          1,
		Address:             address,
		GPS:                 customer.GPS,
		RelatedCustomerID:   customer.ID,
		PartnerID:           1,
		ProjectID:           1,
		LocationID:          1,
		RelatedToID:         1,
		CreatedAt:           stamp,
		UpdatedAt:           stamp,
		Priority:            "priority_medium",
		AssignedTo:          "assigned_to_team",
		Assignee:            assignee,
		AssignedAt:          stamp,
		IsScheduled:         true,
		ScheduledFrom:       scheduled.Format(timeutil.DateTimeLayout),
		FormattedDuration:   "1h 25m",
		WorkflowStatusID:    1,
		NotificationEnabled: "1",
		LastStatusChanged:   stamp,
		Watchers:            []int{10, 11},
	}

	if err := s.Portal.CreateTask(ctx, task); err != nil {
		return err
	}

	text := fmt.Sprintf("Collection Task created for %s", collectionDate)
	return s.PostComment(ctx, customer.ID, admin, text, TitleTaskCreation)
}
