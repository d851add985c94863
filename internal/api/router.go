package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers/admin_dump"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/admin_export"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/cancel_booking"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/get_session"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/healthz"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/list_feedback"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/logout"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/register_shop"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/sign_in"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/sign_up"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/submit_feedback"
	"github.com/m04kA/SMC-CarWash/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/service/admin"
	"github.com/m04kA/SMC-CarWash/internal/service/auth"
	"github.com/m04kA/SMC-CarWash/internal/service/bookings"
	"github.com/m04kA/SMC-CarWash/internal/service/feedback"
	"github.com/m04kA/SMC-CarWash/internal/service/shops"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
	"github.com/m04kA/SMC-CarWash/pkg/metrics"
)

// Deps зависимости HTTP слоя
type Deps struct {
	Auth     *auth.Service
	Bookings *bookings.Service
	Feedback *feedback.Service
	Shops    *shops.Service
	Admin    *admin.Service

	DB      healthz.Pinger
	Backend string
	Cookies middleware.Cookies
	Logger  *logger.Logger

	// Metrics и MetricsHandler необязательны
	Metrics        *metrics.Metrics
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает маршруты сервиса, включая старые пути форм (/book, /orders, /feedbacks)
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()

	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}
	r.Use(middleware.Session(d.Auth, d.Cookies, d.Logger))

	requireSession := middleware.RequireSession(d.Logger)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireSession(h)
	}

	signUpHandler := sign_up.NewHandler(d.Auth, d.Logger)
	signInHandler := sign_in.NewHandler(d.Auth, d.Cookies, d.Logger)
	logoutHandler := logout.NewHandler(d.Auth, d.Cookies, d.Logger)
	sessionHandler := get_session.NewHandler()

	createBookingHandler := create_booking.NewHandler(d.Bookings, d.Logger)
	getUserBookingsHandler := get_user_bookings.NewHandler(d.Bookings, d.Logger)
	cancelBookingHandler := cancel_booking.NewHandler(d.Bookings, d.Logger)
	updateStatusHandler := update_booking_status.NewHandler(d.Bookings, d.Logger)

	submitFeedbackHandler := submit_feedback.NewHandler(d.Feedback, d.Logger)
	listFeedbackHandler := list_feedback.NewHandler(d.Feedback, d.Logger)
	registerShopHandler := register_shop.NewHandler(d.Shops, d.Logger)

	adminDumpHandler := admin_dump.NewHandler(d.Admin, d.Logger)
	adminExportHandler := admin_export.NewHandler(d.Admin, d.Logger)
	healthHandler := healthz.NewHandler(d.DB, d.Backend, d.Logger)

	// Auth
	for _, path := range []string{"/signup", "/api/signup"} {
		r.HandleFunc(path, signUpHandler.Handle).Methods(http.MethodPost)
	}
	for _, path := range []string{"/signin", "/api/signin"} {
		r.HandleFunc(path, signInHandler.Handle).Methods(http.MethodPost)
	}
	for _, path := range []string{"/logout", "/api/logout"} {
		r.HandleFunc(path, logoutHandler.Handle).Methods(http.MethodPost)
	}
	r.HandleFunc("/api/session", sessionHandler.Handle).Methods(http.MethodGet)

	// Bookings
	for _, path := range []string{"/book", "/booking", "/api/booking"} {
		r.Handle(path, protected(createBookingHandler.Handle)).Methods(http.MethodPost)
	}
	for _, path := range []string{"/orders", "/api/orders"} {
		r.Handle(path, protected(getUserBookingsHandler.Handle)).Methods(http.MethodGet)
	}
	r.Handle("/api/orders/{id:[0-9]+}", protected(cancelBookingHandler.Handle)).Methods(http.MethodDelete)
	r.Handle("/api/orders/{id:[0-9]+}/status", protected(updateStatusHandler.Handle)).Methods(http.MethodPut)

	// Feedback & shops
	for _, path := range []string{"/feedback", "/api/feedback"} {
		r.HandleFunc(path, submitFeedbackHandler.Handle).Methods(http.MethodPost)
	}
	for _, path := range []string{"/feedback", "/feedbacks", "/api/feedback"} {
		r.HandleFunc(path, listFeedbackHandler.Handle).Methods(http.MethodGet)
	}
	for _, path := range []string{"/shop/register", "/api/shop/register"} {
		r.HandleFunc(path, registerShopHandler.Handle).Methods(http.MethodPost)
	}

	// Admin
	for _, path := range []string{"/admin/db", "/api/admin/db"} {
		r.HandleFunc(path, adminDumpHandler.Handle).Methods(http.MethodGet)
	}
	r.HandleFunc("/api/admin/export", adminExportHandler.Handle).Methods(http.MethodGet)

	r.HandleFunc("/healthz", healthHandler.Handle).Methods(http.MethodGet)
	if d.MetricsHandler != nil && d.MetricsPath != "" {
		r.Handle(d.MetricsPath, d.MetricsHandler).Methods(http.MethodGet)
	}

	return r
}
