package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/masterclass-store/api/web"
	"github.com/irsalhamdi/masterclass-store/api/weberr"
	"github.com/irsalhamdi/masterclass-store/database"
	"github.com/irsalhamdi/masterclass-store/validate"
	"github.com/jmoiron/sqlx"
)

type created struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		mcs, err := FetchAll(ctx, db)
		if err != nil {
			return weberr.Storage(fmt.Errorf("fetching master classes: %w", err))
		}

		return web.Respond(ctx, w, mcs, http.StatusOK)
	}
}

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		mc, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, database.ErrDBNotFound) {
				return weberr.NotFound(
					fmt.Errorf("master class[%d] not found", id),
					weberr.WithFields(map[string]interface{}{"master_class_id": id}),
				)
			}
			return weberr.Storage(fmt.Errorf("fetching master class[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, mc, http.StatusOK)
	}
}

func HandleCreate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nc MasterClassNew
		if err := web.Decode(w, r, &nc); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nc); err != nil {
			return weberr.BadRequest(err)
		}

		if nc.Price.IsNegative() {
			return weberr.BadRequest(errors.New("price must not be negative"))
		}

		id, err := Create(ctx, db, nc)
		if err != nil {
			return weberr.Storage(fmt.Errorf("creating master class: %w", err))
		}

		return web.Respond(ctx, w, created{ID: id, Message: "Master class created"}, http.StatusCreated)
	}
}

func HandleUpdate(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		var up MasterClassUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := Update(ctx, db, id, up); err != nil {
			return weberr.Storage(fmt.Errorf("updating master class[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, web.Message{Message: "Updated"}, http.StatusOK)
	}
}

func HandleDelete(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := Delete(ctx, db, id); err != nil {
			return weberr.Storage(fmt.Errorf("deleting master class[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, web.Message{Message: "Deleted"}, http.StatusOK)
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := web.ParamInt64(r, "id")
	if err != nil {
		return 0, weberr.BadRequest(err)
	}
	return id, nil
}
