package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	analyticsctrl "orientalgroup/internal/analytics/controller"
	"orientalgroup/internal/auth"
	blogctrl "orientalgroup/internal/blog/controller"
	contactctrl "orientalgroup/internal/contact/controller"
	contentctrl "orientalgroup/internal/content/controller"
	orderctrl "orientalgroup/internal/order/controller"
	productctrl "orientalgroup/internal/product/controller"
	userctrl "orientalgroup/internal/user/controller"
)

type Controllers struct {
	Orders    *orderctrl.OrdersController
	Contacts  *contactctrl.ContactsController
	Products  *productctrl.ProductsController
	Blog      *blogctrl.BlogController
	Content   *contentctrl.ContentController
	Auth      *userctrl.AuthController
	Users     *userctrl.UsersController
	Analytics *analyticsctrl.AnalyticsController
}

func NewRouter(c Controllers, authMw *auth.Middleware, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public storefront surface
		r.Post("/orders", c.Orders.SubmitQuote)
		r.Get("/orders/{id}", c.Orders.GetOrder)
		r.Get("/user/stats", c.Orders.UserStats)

		r.Post("/contact", c.Contacts.Submit)

		r.Get("/products", c.Products.List)
		r.Get("/products/featured", c.Products.ListFeatured)
		r.Get("/products/{id}", c.Products.Get)

		r.Get("/blog", c.Blog.ListPublished)
		r.Get("/blog/{slug}", c.Blog.GetBySlug)
		r.Get("/blog-categories", c.Blog.ListCategories)

		r.Get("/services", c.Content.ListServices)
		r.Get("/partners", c.Content.ListPartners)
		r.Get("/mission", c.Content.ListMissionPoints)

		r.Post("/auth/signup", c.Auth.Signup)
		r.Post("/auth/login", c.Auth.Login)

		// Back-office surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMw.RequireAdmin)

			r.Get("/me", c.Auth.Me)

			r.Get("/orders", c.Orders.ListOrders)
			r.Patch("/orders/{id}/status", c.Orders.UpdateStatus)
			r.Patch("/orders/{id}/quote", c.Orders.AttachQuote)

			r.Get("/contacts", c.Contacts.List)
			r.Get("/contacts/{id}", c.Contacts.Get)
			r.Patch("/contacts/{id}", c.Contacts.SetRead)
			r.Post("/contacts/{id}/reply", c.Contacts.Reply)
			r.Delete("/contacts/{id}", c.Contacts.Delete)
			r.Get("/inbox", c.Contacts.Inbox)

			r.Post("/products", c.Products.Create)
			r.Put("/products/{id}", c.Products.Update)
			r.Delete("/products/{id}", c.Products.Delete)

			r.Get("/blog", c.Blog.ListAll)
			r.Post("/blog", c.Blog.Create)
			r.Put("/blog/{slug}", c.Blog.Update)
			r.Delete("/blog/{slug}", c.Blog.Delete)
			r.Post("/blog-categories", c.Blog.CreateCategory)
			r.Delete("/blog-categories/{id}", c.Blog.DeleteCategory)

			r.Post("/services", c.Content.CreateService)
			r.Put("/services/{id}", c.Content.UpdateService)
			r.Delete("/services/{id}", c.Content.DeleteService)

			r.Post("/partners", c.Content.CreatePartner)
			r.Put("/partners/{id}", c.Content.UpdatePartner)
			r.Delete("/partners/{id}", c.Content.DeletePartner)

			r.Post("/mission", c.Content.CreateMissionPoint)
			r.Put("/mission/{id}", c.Content.UpdateMissionPoint)
			r.Delete("/mission/{id}", c.Content.DeleteMissionPoint)

			r.Get("/users", c.Users.List)
			r.Patch("/users/{id}/role", c.Users.UpdateRole)
			r.Delete("/users/{id}", c.Users.Delete)

			r.Get("/analytics", c.Analytics.Dashboard)
		})
	})

	return r
}
