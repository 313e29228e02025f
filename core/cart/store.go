package cart

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// FetchLines returns the cart joined with the master classes, most recently
// added first. Entries whose master class no longer exists are skipped.
func FetchLines(ctx context.Context, db sqlx.QueryerContext) ([]Line, error) {
	const q = `
	SELECT
		c.id, c.master_class_id, c.quantity, c.added_at,
		mc.title, mc.teacher, mc.price, mc.image_url, mc.teacher_photo
	FROM
		cart AS c
	JOIN
		master_classes AS mc ON mc.id = c.master_class_id
	ORDER BY
		c.added_at DESC, c.id DESC`

	lines := []Line{}
	if err := sqlx.SelectContext(ctx, db, &lines, q); err != nil {
		return nil, fmt.Errorf("selecting cart lines: %w", err)
	}
	return lines, nil
}

// Add puts quantity units of a master class in the cart. If the master class
// is already there its quantity grows instead and added_at is kept. The
// insert-or-increment runs as a single statement, so concurrent adds of the
// same master class never lose an increment.
func Add(ctx context.Context, db sqlx.QueryerContext, masterClassID int64, quantity int) (Added, error) {
	const q = `
	INSERT INTO cart
		(master_class_id, quantity)
	VALUES
		($1, $2)
	ON CONFLICT (master_class_id) DO UPDATE SET
		quantity = cart.quantity + EXCLUDED.quantity
	RETURNING
		id, quantity, (xmax = 0) AS created`

	var a Added
	if err := sqlx.GetContext(ctx, db, &a, q, masterClassID, quantity); err != nil {
		return Added{}, fmt.Errorf("upserting cart entry for master class[%d]: %w", masterClassID, err)
	}
	return a, nil
}

// DeleteEntry removes one cart entry by its own id. A missing id is not an
// error.
func DeleteEntry(ctx context.Context, db sqlx.ExecerContext, id int64) error {
	const q = `
	DELETE FROM
		cart
	WHERE
		id = $1`

	if _, err := db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("deleting cart entry[%d]: %w", id, err)
	}
	return nil
}

// Clear empties the cart.
func Clear(ctx context.Context, db sqlx.ExecerContext) error {
	const q = `DELETE FROM cart`

	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
