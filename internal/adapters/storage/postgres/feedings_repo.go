package postgres

import (
	"context"
	"database/sql"

	"reptile-husbandry/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) (feedings.Feeding, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO feedings (reptile_id, food_item, created_at)
		VALUES ($1,$2,$3)
		RETURNING id
	`,
		f.ReptileID,
		f.FoodItem,
		f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return feedings.Feeding{}, err
	}
	return f, nil
}

func (r *FeedingsRepo) ListByReptile(ctx context.Context, reptileID int64) ([]feedings.Feeding, error) {
	if reptileID <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reptile_id, food_item, created_at
		FROM feedings
		WHERE reptile_id = $1
		ORDER BY id ASC
	`, reptileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var f feedings.Feeding
		if err := rows.Scan(&f.ID, &f.ReptileID, &f.FoodItem, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}
