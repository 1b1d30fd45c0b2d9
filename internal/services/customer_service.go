package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"collections-backend/internal/models"
	"collections-backend/internal/portal"
	"collections-backend/internal/timeutil"
)

// InactivityUnknown is the label when a customer has no recorded
// transition into "disabled".
const InactivityUnknown = "N/A"

// CustomerService serves the per-customer drill-in data: note history
// and the derived "inactive since" label.
type CustomerService struct {
	Portal *portal.Client
}

func NewCustomerService(client *portal.Client) *CustomerService {
	return &CustomerService{Portal: client}
}

// History returns the customer's notes. The portal only exposes the
// full note set, so filtering by exact id happens here.
func (s *CustomerService) History(ctx context.Context, customerID int) ([]models.CustomerNote, error) {
	all, err := s.Portal.Notes(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]models.CustomerNote, 0)
	for _, n := range all {
		if n.CustomerID == customerID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// InactiveSince derives the month+year the customer was last disabled
// from its change log: the most recent entry whose new status is
// "disabled", ranked by combined date+time. No such entry yields the
// literal "N/A".
func (s *CustomerService) InactiveSince(ctx context.Context, customerID int) (string, error) {
	logs, err := s.Portal.ChangeLogs(ctx, customerID)
	if err != nil {
		return "", err
	}

	type disabledAt struct {
		entry models.ChangeLog
		at    time.Time
	}
	var disabled []disabledAt
	for _, entry := range logs {
		if !strings.EqualFold(entry.NewStatus, "disabled") {
			continue
		}
		at, err := time.Parse("2006-01-02T15:04:05", entry.Date+"T"+entry.Time)
		if err != nil {
			log.Printf("[Inactivity] customer %d: unparseable change log %q %q", customerID, entry.Date, entry.Time)
			continue
		}
		disabled = append(disabled, disabledAt{entry: entry, at: at})
	}

	if len(disabled) == 0 {
		return InactivityUnknown, nil
	}

	sort.Slice(disabled, func(i, j int) bool {
		return disabled[i].at.After(disabled[j].at)
	})

	latest, err := time.Parse(timeutil.DateLayout, disabled[0].entry.Date)
	if err != nil {
		return InactivityUnknown, nil
	}
	return timeutil.MonthYear(latest), nil
}
