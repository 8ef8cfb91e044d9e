package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"dealerhub/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate creates the tables. Safe to run on every start.
func (r *Repo) Migrate(ctx context.Context) error {
	for _, stmt := range []string{createCarMakesSQL, createCarModelsSQL, createUsersSQL} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) CountMakes(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countMakesSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) SeedCatalog(ctx context.Context, seeds []domain.CatalogSeed) error {
	for _, s := range seeds {
		if _, err := r.db.ExecContext(ctx, insertMakeSQL, s.Make.Name, s.Make.Description); err != nil {
			return err
		}
		// re-read the id: INSERT IGNORE reports nothing when the row existed
		var makeID int64
		if err := r.db.QueryRowContext(ctx, selectMakeIDSQL, s.Make.Name).Scan(&makeID); err != nil {
			return err
		}
		for _, m := range s.Models {
			if _, err := r.db.ExecContext(ctx, insertModelSQL, makeID, m.Name, m.Type, m.Year); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Repo) ListCars(ctx context.Context) ([]domain.CarEntry, error) {
	rows, err := r.db.QueryContext(ctx, listCarsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CarEntry
	for rows.Next() {
		var e domain.CarEntry
		if err := rows.Scan(&e.CarModel, &e.CarMake); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 { // duplicate entry
			return 0, domain.ErrDuplicateUser
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserSQL, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
