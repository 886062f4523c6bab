package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	appsales "github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	CartUC      *appsales.CartUseCase
	SalesQuery  *appsales.QueryUseCase
	JWTSecret   string
	AuthRateMax int // peticiones por minuto e IP en /api/auth; 0 desactiva el límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.AuthRateMax > 0 {
		authGroup.Use(limiter.New(limiter.Config{
			Max:        deps.AuthRateMax,
			Expiration: time.Minute,
		}))
	}
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Carrito de la sesión (un carrito por usuario)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Reset)
	cart.Put("/client", cartHandler.SelectClient)
	cart.Put("/pending", cartHandler.SetPending)
	cart.Post("/items", cartHandler.AddItem)
	cart.Delete("/items/:index", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesQuery)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/pdf", saleHandler.Receipt)

	protected.Get("/reports/summary", saleHandler.Summary)
}
