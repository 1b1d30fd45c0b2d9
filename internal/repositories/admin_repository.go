package repositories

import (
	"context"
	"errors"

	"collections-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// GetByUsername looks up the single administrator row for a username.
// Returns (nil, nil) when no row matches.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT admin_id, name, username, password
         FROM administrators WHERE username=$1`, username)

	var admin models.Administrator
	err := row.Scan(&admin.ID, &admin.Name, &admin.Username, &admin.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Get fetches an administrator by id.
func (r *AdminRepository) Get(ctx context.Context, id int) (*models.Administrator, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT admin_id, name, username, password
         FROM administrators WHERE admin_id=$1`, id)

	var admin models.Administrator
	err := row.Scan(&admin.ID, &admin.Name, &admin.Username, &admin.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateCredentials applies a partial credential update. Only the
// fields set on the update are written; the password is expected to
// arrive already hashed.
func (r *AdminRepository) UpdateCredentials(ctx context.Context, id int, update models.AdminUpdate) error {
	switch {
	case update.Username != nil && update.Password != nil:
		_, err := r.DB.Exec(ctx,
			`UPDATE administrators SET username=$1, password=$2, updated_at=CURRENT_TIMESTAMP WHERE admin_id=$3`,
			*update.Username, *update.Password, id)
		return err
	case update.Username != nil:
		_, err := r.DB.Exec(ctx,
			`UPDATE administrators SET username=$1, updated_at=CURRENT_TIMESTAMP WHERE admin_id=$2`,
			*update.Username, id)
		return err
	case update.Password != nil:
		_, err := r.DB.Exec(ctx,
			`UPDATE administrators SET password=$1, updated_at=CURRENT_TIMESTAMP WHERE admin_id=$2`,
			*update.Password, id)
		return err
	default:
		return nil
	}
}
