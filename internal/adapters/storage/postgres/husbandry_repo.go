package postgres

import (
	"context"
	"database/sql"

	"reptile-husbandry/internal/domain/husbandry"
)

type HusbandryRepo struct {
	db *sql.DB
}

func NewHusbandryRepo(db *sql.DB) *HusbandryRepo {
	return &HusbandryRepo{db: db}
}

func (r *HusbandryRepo) Create(ctx context.Context, rec husbandry.Record) (husbandry.Record, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO husbandry_records (reptile_id, length, weight, temperature, humidity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		rec.ReptileID,
		rec.Length,
		rec.Weight,
		rec.Temperature,
		rec.Humidity,
		rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return husbandry.Record{}, err
	}
	return rec, nil
}

func (r *HusbandryRepo) ListByReptile(ctx context.Context, reptileID int64) ([]husbandry.Record, error) {
	if reptileID <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reptile_id, length, weight, temperature, humidity, created_at
		FROM husbandry_records
		WHERE reptile_id = $1
		ORDER BY id ASC
	`, reptileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]husbandry.Record, 0)
	for rows.Next() {
		var rec husbandry.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.ReptileID,
			&rec.Length,
			&rec.Weight,
			&rec.Temperature,
			&rec.Humidity,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
