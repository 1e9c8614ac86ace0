package postgres

import (
	"context"
	"database/sql"

	"reptile-husbandry/internal/domain/reptiles"
)

type ReptilesRepo struct {
	db *sql.DB
}

func NewReptilesRepo(db *sql.DB) *ReptilesRepo {
	return &ReptilesRepo{db: db}
}

func (r *ReptilesRepo) Create(ctx context.Context, rp reptiles.Reptile) (reptiles.Reptile, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reptiles (owner_user_id, species, name, sex, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		rp.OwnerUserID,
		string(rp.Species),
		rp.Name,
		string(rp.Sex),
		rp.CreatedAt,
		rp.UpdatedAt,
	).Scan(&rp.ID)
	if err != nil {
		return reptiles.Reptile{}, err
	}
	return rp, nil
}

func (r *ReptilesRepo) GetByID(ctx context.Context, id int64) (reptiles.Reptile, error) {
	if id <= 0 {
		return reptiles.Reptile{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, species, name, sex, created_at, updated_at
		FROM reptiles
		WHERE id = $1
	`, id)

	var rp reptiles.Reptile
	var species, sex string
	if err := row.Scan(
		&rp.ID,
		&rp.OwnerUserID,
		&species,
		&rp.Name,
		&sex,
		&rp.CreatedAt,
		&rp.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return reptiles.Reptile{}, ErrNotFound
		}
		return reptiles.Reptile{}, err
	}

	rp.Species = reptiles.Species(species)
	rp.Sex = reptiles.Sex(sex)

	return rp, nil
}

func (r *ReptilesRepo) ListByOwner(ctx context.Context, ownerUserID int64) ([]reptiles.Reptile, error) {
	if ownerUserID <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, species, name, sex, created_at, updated_at
		FROM reptiles
		WHERE owner_user_id = $1
		ORDER BY id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reptiles.Reptile, 0)
	for rows.Next() {
		var rp reptiles.Reptile
		var species, sex string
		if err := rows.Scan(
			&rp.ID,
			&rp.OwnerUserID,
			&species,
			&rp.Name,
			&sex,
			&rp.CreatedAt,
			&rp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		rp.Species = reptiles.Species(species)
		rp.Sex = reptiles.Sex(sex)

		out = append(out, rp)
	}

	return out, rows.Err()
}

func (r *ReptilesRepo) Update(ctx context.Context, rp reptiles.Reptile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reptiles
		SET species = $2, name = $3, sex = $4, updated_at = $5
		WHERE id = $1
	`,
		rp.ID,
		string(rp.Species),
		rp.Name,
		string(rp.Sex),
		rp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReptilesRepo) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}

	// Los hijos (feedings, husbandry_records, schedules) caen por
	// ON DELETE CASCADE del schema.
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM reptiles
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
