package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crustcraft/crustcraft-backend/api/controllers"
	"github.com/crustcraft/crustcraft-backend/api/middleware"
	"github.com/crustcraft/crustcraft-backend/internal/auth"
	"github.com/crustcraft/crustcraft-backend/internal/cart"
	"github.com/crustcraft/crustcraft-backend/internal/categories"
	"github.com/crustcraft/crustcraft-backend/internal/franchise"
	"github.com/crustcraft/crustcraft-backend/internal/menu"
	"github.com/crustcraft/crustcraft-backend/internal/offers"
	"github.com/crustcraft/crustcraft-backend/internal/outlets"
	"github.com/crustcraft/crustcraft-backend/pkg/config"
	"github.com/crustcraft/crustcraft-backend/pkg/db"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
	"github.com/crustcraft/crustcraft-backend/pkg/metrics"
	"github.com/crustcraft/crustcraft-backend/pkg/redis"
)

// Services groups everything the router wires into handlers.
type Services struct {
	Auth       *auth.Service
	Categories *categories.Service
	Menu       *menu.Service
	Offers     *offers.Service
	Outlets    *outlets.Service
	Franchise  *franchise.Service
	Cart       *cart.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	submitPolicy := middleware.SubmitRateLimitPolicy{
		Name:    "franchise",
		Window:  cfg.Franchise.SubmitWindow,
		IPLimit: cfg.Franchise.SubmitIPLimit,
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", controllers.ListCategories(svcs.Categories, logg))
		r.Get("/menu", controllers.ListMenu(svcs.Menu, logg))
		r.Get("/menu/featured", controllers.FeaturedMenu(svcs.Menu, logg))
		r.Get("/offers", controllers.ListOffers(svcs.Offers, logg))
		r.Get("/outlets", controllers.ListOutlets(svcs.Outlets, logg))

		r.With(middleware.SubmitRateLimit(submitPolicy, redisClient, logg)).
			Post("/franchise", controllers.SubmitFranchise(svcs.Franchise, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, logg))
			r.Post("/bogo", controllers.AddCartBogo(svcs.Cart, svcs.Offers, logg))
			r.Post("/combo", controllers.AddCartCombo(svcs.Cart, svcs.Offers, logg))
			r.Patch("/items/{itemID}", controllers.UpdateCartItemQuantity(svcs.Cart, logg))
			r.Delete("/items/{itemID}", controllers.RemoveCartItem(svcs.Cart, logg))
			r.Post("/items/{itemID}/addons", controllers.ToggleCartAddOn(svcs.Cart, logg))
			r.Put("/outlet", controllers.SelectCartOutlet(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
			r.Get("/message", controllers.GetCartMessage(svcs.Cart, logg))
			r.Post("/checkout", controllers.CheckoutCart(svcs.Cart, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AdminLogin(svcs.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Post("/password", controllers.AdminChangePassword(svcs.Auth, logg))

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", controllers.AdminListCategories(svcs.Categories, logg))
				r.Post("/", controllers.AdminCreateCategory(svcs.Categories, logg))
				r.Patch("/{id}", controllers.AdminUpdateCategory(svcs.Categories, logg))
				r.Delete("/{id}", controllers.AdminDeleteCategory(svcs.Categories, logg))
			})

			r.Route("/menu", func(r chi.Router) {
				r.Get("/", controllers.AdminListMenu(svcs.Menu, logg))
				r.Post("/", controllers.AdminCreateMenuItem(svcs.Menu, logg))
				r.Patch("/{id}", controllers.AdminUpdateMenuItem(svcs.Menu, logg))
				r.Delete("/{id}", controllers.AdminDeleteMenuItem(svcs.Menu, logg))
			})

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", controllers.AdminListOffers(svcs.Offers, logg))
				r.Post("/", controllers.AdminCreateOffer(svcs.Offers, logg))
				r.Patch("/{id}", controllers.AdminUpdateOffer(svcs.Offers, logg))
				r.Delete("/{id}", controllers.AdminDeleteOffer(svcs.Offers, logg))
			})

			r.Route("/outlets", func(r chi.Router) {
				r.Get("/", controllers.AdminListOutlets(svcs.Outlets, logg))
				r.Post("/", controllers.AdminCreateOutlet(svcs.Outlets, logg))
				r.Patch("/{id}", controllers.AdminUpdateOutlet(svcs.Outlets, logg))
			})

			r.Route("/franchise", func(r chi.Router) {
				r.Get("/", controllers.AdminListFranchise(svcs.Franchise, logg))
				r.Patch("/{id}/status", controllers.AdminUpdateFranchiseStatus(svcs.Franchise, logg))
			})
		})
	})

	return r
}
