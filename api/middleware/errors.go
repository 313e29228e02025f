package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/irsalhamdi/masterclass-store/api/web"
	"github.com/irsalhamdi/masterclass-store/api/weberr"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := map[string]interface{}{
				"req_id":  ContextRequestID(ctx),
				"message": err,
			}
			if f, ok := weberr.Fields(err); ok {
				for k, v := range f {
					fields[k] = v
				}
			}

			var pqErr *pq.Error
			if errors.As(err, &pqErr) {
				fields["pq_code"] = string(pqErr.Code)
				fields["pq_class"] = pqErr.Code.Class().Name()
			}

			log.WithFields(logrus.Fields(fields)).Error("ERROR")

			if body, code, ok := weberr.Response(err); ok {
				return web.Respond(ctx, w, body, code)
			}

			er := weberr.ErrorResponse{
				Error: http.StatusText(http.StatusInternalServerError),
			}
			return web.Respond(ctx, w, er, http.StatusInternalServerError)
		}
		return h
	}
	return m
}
