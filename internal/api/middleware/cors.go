package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Content-Type"}
)

// CORS разрешает запросы с любого origin на GET/POST.
// Заголовки ставятся на каждый ответ, в том числе без Origin в запросе.
// Preflight запросы обрабатываются здесь и до роутера не доходят.
func CORS(next http.Handler) http.Handler {
	handler := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       corsMethods,
		AllowedHeaders:       corsHeaders,
		OptionsSuccessStatus: http.StatusOK,
	}).Handler(next)

	methods := strings.Join(corsMethods, ", ")
	headers := strings.Join(corsHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)
		handler.ServeHTTP(w, r)
	})
}
