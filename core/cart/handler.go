package cart

import (
	"context"
	"fmt"
	"net/http"

	"github.com/irsalhamdi/masterclass-store/api/web"
	"github.com/irsalhamdi/masterclass-store/api/weberr"
	"github.com/irsalhamdi/masterclass-store/validate"
	"github.com/jmoiron/sqlx"
)

const defaultQuantity = 1

type addedResponse struct {
	ID       int64  `json:"id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Message  string `json:"message"`
}

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lines, err := FetchLines(ctx, db)
		if err != nil {
			return weberr.Storage(fmt.Errorf("fetching cart: %w", err))
		}

		return web.Respond(ctx, w, lines, http.StatusOK)
	}
}

func HandleCreateItem(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var en EntryNew
		if err := web.Decode(w, r, &en); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(en); err != nil {
			return weberr.BadRequest(err)
		}

		qty := defaultQuantity
		if en.Quantity != nil {
			qty = *en.Quantity
		}

		a, err := Add(ctx, db, en.MasterClassID, qty)
		if err != nil {
			return weberr.Storage(fmt.Errorf("adding master class[%d] to cart: %w", en.MasterClassID, err))
		}

		if a.Created {
			return web.Respond(ctx, w, addedResponse{ID: a.ID, Message: "Added to cart"}, http.StatusCreated)
		}
		return web.Respond(ctx, w, addedResponse{Quantity: a.Quantity, Message: "Cart updated"}, http.StatusOK)
	}
}

func HandleDeleteItem(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamInt64(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		if err := DeleteEntry(ctx, db, id); err != nil {
			return weberr.Storage(fmt.Errorf("removing cart entry[%d]: %w", id, err))
		}

		return web.Respond(ctx, w, web.Message{Message: "Removed from cart"}, http.StatusOK)
	}
}

func HandleDelete(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := Clear(ctx, db); err != nil {
			return weberr.Storage(fmt.Errorf("clearing cart: %w", err))
		}

		return web.Respond(ctx, w, web.Message{Message: "Cart cleared"}, http.StatusOK)
	}
}
