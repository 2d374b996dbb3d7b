package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", h.createPost)
			r.Get("/", h.listPosts)
			r.Get("/{postId}", h.getPost)
			r.Put("/{postId}", h.updatePost)
			r.Delete("/{postId}", h.deletePost)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Post("/", h.createComment)
			r.Get("/", h.listComments)
			r.Get("/post/{postId}", h.listCommentsByPost)
			r.Put("/{commentId}", h.updateComment)
			r.Delete("/{commentId}", h.deleteComment)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
