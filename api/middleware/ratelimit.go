package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/irsalhamdi/masterclass-store/api/web"
	"github.com/irsalhamdi/masterclass-store/api/weberr"
	"github.com/irsalhamdi/masterclass-store/rate"
)

// RateLimit rejects requests from clients that have drained their bucket.
// Clients are told apart by remote IP.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			ip := clientIP(r)
			if !lim.Check(ip) {
				return weberr.TooManyRequests(
					fmt.Errorf("client[%s] exceeded the rate limit", ip),
					weberr.WithFields(map[string]interface{}{"client": ip}),
				)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
