package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/irsalhamdi/masterclass-store/database"
	"github.com/jmoiron/sqlx"
)

// FetchAll returns every master class, newest first.
func FetchAll(ctx context.Context, db sqlx.QueryerContext) ([]MasterClass, error) {
	const q = `
	SELECT
		id, title, teacher, price, image_url, teacher_photo
	FROM
		master_classes
	ORDER BY
		id DESC`

	mcs := []MasterClass{}
	if err := sqlx.SelectContext(ctx, db, &mcs, q); err != nil {
		return nil, fmt.Errorf("selecting master classes: %w", err)
	}
	return mcs, nil
}

func Fetch(ctx context.Context, db sqlx.QueryerContext, id int64) (MasterClass, error) {
	const q = `
	SELECT
		id, title, teacher, price, image_url, teacher_photo
	FROM
		master_classes
	WHERE
		id = $1`

	var mc MasterClass
	if err := sqlx.GetContext(ctx, db, &mc, q, id); err != nil {
		if errors.Is(err, database.ErrDBNotFound) {
			return MasterClass{}, database.ErrDBNotFound
		}
		return MasterClass{}, fmt.Errorf("selecting master class[%d]: %w", id, err)
	}
	return mc, nil
}

// Create stores nc and returns the id the database assigned to it.
func Create(ctx context.Context, db sqlx.QueryerContext, nc MasterClassNew) (int64, error) {
	const q = `
	INSERT INTO master_classes
		(title, teacher, price, image_url, teacher_photo)
	VALUES
		($1, $2, $3, $4, $5)
	RETURNING id`

	var id int64
	err := db.QueryRowxContext(ctx, q, nc.Title, nc.Teacher, nc.Price, nc.ImageURL, nc.TeacherPhoto).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting master class: %w", err)
	}
	return id, nil
}

// Update overwrites the master class with the given id. Updating an id that
// does not exist is not an error.
func Update(ctx context.Context, db sqlx.ExecerContext, id int64, up MasterClassUp) error {
	const q = `
	UPDATE master_classes SET
		title = $1,
		teacher = $2,
		price = $3,
		image_url = $4,
		teacher_photo = $5
	WHERE
		id = $6`

	if _, err := db.ExecContext(ctx, q, up.Title, up.Teacher, up.Price, up.ImageURL, up.TeacherPhoto, id); err != nil {
		return fmt.Errorf("updating master class[%d]: %w", id, err)
	}
	return nil
}

// Delete removes the master class with the given id, if any. Cart entries
// pointing at it are left in place.
func Delete(ctx context.Context, db sqlx.ExecerContext, id int64) error {
	const q = `
	DELETE FROM
		master_classes
	WHERE
		id = $1`

	if _, err := db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("deleting master class[%d]: %w", id, err)
	}
	return nil
}
