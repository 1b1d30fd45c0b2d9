package services

import (
	"context"
	"sync"

	"collections-backend/internal/models"
	"collections-backend/internal/portal"
)

// DashboardEntry is one visible customer with the joined deposit.
type DashboardEntry struct {
	Customer models.Customer `json:"customer"`
	Deposit  string          `json:"deposit"`
}

type DashboardService struct {
	Portal *portal.Client
}

func NewDashboardService(client *portal.Client) *DashboardService {
	return &DashboardService{Portal: client}
}

// snapshot is one full read of the upstream dataset.
type snapshot struct {
	customers []models.Customer
	billings  []models.Billing
	inventory []models.InventoryItem
}

// load fetches customers, billing and inventory concurrently. Any
// single failure fails the whole load; there is no partial result and
// no retry.
func (s *DashboardService) load(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	errs := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		snap.customers, err = s.Portal.Customers(ctx)
		errs <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		snap.billings, err = s.Portal.Billings(ctx)
		errs <- err
	}()
	go func() {
		defer wg.Done()
		var err error
		snap.inventory, err = s.Portal.InventoryItems(ctx)
		errs <- err
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

// VisibleCustomers loads a fresh upstream snapshot and returns the
// filtered dashboard list with deposits joined in.
func (s *DashboardService) VisibleCustomers(ctx context.Context, productFilter int, city, search string) ([]DashboardEntry, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := VisibleCustomers(snap.customers, snap.inventory, productFilter, city, search)
	entries := make([]DashboardEntry, 0, len(visible))
	for _, c := range visible {
		entries = append(entries, DashboardEntry{
			Customer: c,
			Deposit:  DepositFor(snap.billings, c.ID),
		})
	}
	return entries, nil
}

// FindCustomer locates one customer in the upstream list by id.
// Returns (nil, nil) when the id is unknown.
func (s *DashboardService) FindCustomer(ctx context.Context, id int) (*models.Customer, error) {
	customers, err := s.Portal.Customers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, nil
}
