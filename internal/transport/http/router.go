package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cwrk-planet/classroom-scheduler/internal/transport/ws"
	"github.com/cwrk-planet/classroom-scheduler/pkg/httputil"
)

type Deps struct {
	Handler        *Handler
	WS             *ws.Server
	Ready          func(ctx context.Context) error
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(d Deps) http.Handler {
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}
	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httputil.MiddlewareRequestID)
	r.Use(httputil.MiddlewareLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			if err := d.Ready(r.Context()); err != nil {
				httputil.Error(r.Context(), w, http.StatusServiceUnavailable, "storage unavailable", nil)
				return
			}
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	// WS вне Timeout: соединение живёт дольше запроса
	if d.WS != nil {
		r.Get("/ws/{topic}", d.WS.HandleWS)
	}

	h := d.Handler
	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(d.RequestTimeout))
		api.Use(middleware.Compress(5))

		api.Route("/rooms", func(rm chi.Router) {
			rm.Post("/", h.CreateRoom)
			rm.Get("/", h.ListActiveRooms)
			rm.Put("/", h.EditRoom)
			rm.Get("/number/{number}", h.GetRoomByNumber)
			rm.Delete("/{id}", h.DeleteRoom)
		})

		api.Route("/users", func(us chi.Router) {
			us.Post("/", h.CreateUser)
			us.Get("/", h.ListUsers)
			us.Put("/", h.EditUser)
			// один параметр на оба метода: GET ищет по имени/email, DELETE ждёт id
			us.Get("/{user}", h.FindUser)
			us.Delete("/{user}", h.DeleteUser)
		})

		api.Route("/reservations", func(rs chi.Router) {
			rs.Post("/", h.CreateReservation)
			rs.Get("/", h.ListReservations)
			rs.Get("/export", h.ExportReservations)

			rs.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.GetReservation)
				rr.Post("/cancel", h.CancelReservation)
			})
		})
	})

	return r
}
