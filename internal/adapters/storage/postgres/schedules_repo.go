package postgres

import (
	"context"
	"database/sql"

	"reptile-husbandry/internal/domain/schedules"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

func (r *SchedulesRepo) Create(ctx context.Context, sc schedules.Schedule) (schedules.Schedule, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO schedules (
			reptile_id, user_id, type, description,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`,
		sc.ReptileID,
		sc.UserID,
		string(sc.Type),
		sc.Description,
		sc.Monday,
		sc.Tuesday,
		sc.Wednesday,
		sc.Thursday,
		sc.Friday,
		sc.Saturday,
		sc.Sunday,
		sc.CreatedAt,
	).Scan(&sc.ID)
	if err != nil {
		return schedules.Schedule{}, err
	}
	return sc, nil
}

func (r *SchedulesRepo) ListByReptile(ctx context.Context, reptileID int64) ([]schedules.Schedule, error) {
	if reptileID <= 0 {
		return nil, nil
	}
	return r.list(ctx, `WHERE reptile_id = $1`, reptileID)
}

func (r *SchedulesRepo) ListByUser(ctx context.Context, userID int64) ([]schedules.Schedule, error) {
	if userID <= 0 {
		return nil, nil
	}
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

func (r *SchedulesRepo) list(ctx context.Context, where string, arg any) ([]schedules.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, reptile_id, user_id, type, description,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			created_at
		FROM schedules
		`+where+`
		ORDER BY id ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		var sc schedules.Schedule
		var typ string
		if err := rows.Scan(
			&sc.ID,
			&sc.ReptileID,
			&sc.UserID,
			&typ,
			&sc.Description,
			&sc.Monday,
			&sc.Tuesday,
			&sc.Wednesday,
			&sc.Thursday,
			&sc.Friday,
			&sc.Saturday,
			&sc.Sunday,
			&sc.CreatedAt,
		); err != nil {
			return nil, err
		}

		sc.Type = schedules.Type(typ)

		out = append(out, sc)
	}

	return out, rows.Err()
}
