package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ConfiguratorService/internal/api/handlers"
	"github.com/m04kA/SMC-ConfiguratorService/internal/api/middleware"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/metrics"
)

const defaultMetricsPath = "/metrics"

// Handler обработчик одной HTTP операции
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики операций.
// GetBooking и GetProducts могут быть nil, если хранилище бронирований или каталог не настроены.
type Handlers struct {
	GetLocations      Handler
	GetAvailableSlots Handler
	CreateBooking     Handler
	GetBooking        Handler
	ComputeQuote      Handler
	GetProducts       Handler
}

// Options необязательные части роутера
type Options struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	RateLimiter *middleware.RateLimiter
	Logger      middleware.Logger
}

// NewRouter собирает роутер со всеми маршрутами и middleware
func NewRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	if opts.Logger != nil {
		r.Use(middleware.Recovery(opts.Logger))
	}
	r.Use(middleware.MetricsMiddleware(opts.Metrics))

	// Служебные маршруты
	r.HandleFunc("/health", health).Methods(http.MethodGet)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = defaultMetricsPath
		}
		r.Handle(path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Чтение
	r.HandleFunc("/", h.GetLocations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/locations", h.GetLocations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/availability", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	if h.GetProducts != nil {
		r.HandleFunc("/products", h.GetProducts.Handle).Methods(http.MethodGet)
	}
	if h.GetBooking != nil {
		r.HandleFunc("/bookings/{confirmationCode}", h.GetBooking.Handle).Methods(http.MethodGet)
	}

	// Запись, под ограничением частоты
	write := r.NewRoute().Subrouter()
	if opts.RateLimiter != nil {
		write.Use(opts.RateLimiter.Middleware)
	}
	write.HandleFunc("/book", h.CreateBooking.Handle).Methods(http.MethodPost)
	write.HandleFunc("/quote", h.ComputeQuote.Handle).Methods(http.MethodPost)

	// OPTIONS без preflight заголовков: 200 с пустым телом на любой путь
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return middleware.CORS(r)
}

func health(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
