package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/irsalhamdi/masterclass-store/api/middleware"
	"github.com/irsalhamdi/masterclass-store/api/web"
	"github.com/irsalhamdi/masterclass-store/api/weberr"
	"github.com/irsalhamdi/masterclass-store/core/cart"
	"github.com/irsalhamdi/masterclass-store/core/catalog"
	"github.com/irsalhamdi/masterclass-store/database"
	"github.com/irsalhamdi/masterclass-store/rate"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	DB         *sqlx.DB
	Limiter    *rate.Limiter
	StaticDir  string
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	if cfg.Limiter != nil {
		a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))
	}

	a.Handle(http.MethodGet, "/readiness", handleReadiness(cfg.DB))

	a.Handle(http.MethodGet, "/api/master-classes", catalog.HandleList(cfg.DB))
	a.Handle(http.MethodGet, "/api/master-classes/{id}", catalog.HandleShow(cfg.DB))
	a.Handle(http.MethodPost, "/api/master-classes", catalog.HandleCreate(cfg.DB))
	a.Handle(http.MethodPut, "/api/master-classes/{id}", catalog.HandleUpdate(cfg.DB))
	a.Handle(http.MethodDelete, "/api/master-classes/{id}", catalog.HandleDelete(cfg.DB))

	a.Handle(http.MethodGet, "/api/cart", cart.HandleShow(cfg.DB))
	a.Handle(http.MethodPost, "/api/cart", cart.HandleCreateItem(cfg.DB))
	a.Handle(http.MethodDelete, "/api/cart", cart.HandleDelete(cfg.DB))
	a.Handle(http.MethodDelete, "/api/cart/{id}", cart.HandleDeleteItem(cfg.DB))

	if cfg.StaticDir != "" {
		a.Router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir))).Methods(http.MethodGet, http.MethodHead)
	}

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}

func handleReadiness(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		if err := database.StatusCheck(ctx, db); err != nil {
			return weberr.Storage(err)
		}

		status := struct {
			Status string `json:"status"`
		}{
			Status: "ok",
		}
		return web.Respond(ctx, w, status, http.StatusOK)
	}
}
