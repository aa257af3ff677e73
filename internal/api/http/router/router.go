package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dsemenov/linkmark/internal/api/http/handler"
	"github.com/dsemenov/linkmark/internal/api/http/middleware"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/model"
	"github.com/dsemenov/linkmark/internal/service"
)

// Router builds the HTTP route table: public auth endpoints plus a
// guarded group for everything operating on the authenticated identity.
type Router struct {
	authService     *service.Auth
	userService     *service.User
	bookmarkService *service.Bookmark
	tokens          middleware.TokenParser
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	bookmarkService *service.Bookmark,
	tokens middleware.TokenParser,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		userService:     userService,
		bookmarkService: bookmarkService,
		tokens:          tokens,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Handler assembles middleware and routes into an http.Handler.
func (r *Router) Handler() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.userService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	bookmarkHandler := handler.NewBookmark(r.bookmarkService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(logging.Handle)

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Route("/auth", func(mux chi.Router) {
		mux.Post("/signup", authHandler.SignUp)
		mux.Post("/signin", authHandler.SignIn)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(authenticate.Handle)

		mux.Get("/users/me", userHandler.GetMe)
		mux.Patch("/users", userHandler.Update)

		mux.Route("/bookmarks", func(mux chi.Router) {
			mux.Post("/", bookmarkHandler.Create)
			mux.Get("/", bookmarkHandler.List)
			mux.Patch("/{id}", bookmarkHandler.Update)
			mux.Delete("/{id}", bookmarkHandler.Delete)
		})
	})

	return mux
}
