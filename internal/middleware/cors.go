package middleware

import (
	"github.com/AdhityaRamadhanus/fasthttpcors"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/catalog/pkg/httpcontext"
)

// CORS allows the listed origins ("*" or an empty list for any). OPTIONS
// requests are answered here and never reach the router.
func CORS(allowedOrigins []string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	cors := fasthttpcors.NewCorsHandler(fasthttpcors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{fasthttp.MethodGet, fasthttp.MethodPost},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{httpcontext.HeaderRequestID},
		AllowMaxAge:    600,
	})
	return cors.CorsMiddleware
}
