package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *usecase.ClientUseCase
	BrandUC      *usecase.BrandUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	ItemUC       *usecase.EquipmentItemUseCase
	ReportUC     *usecase.InventoryReportUseCase
	PersonnelUC  *usecase.PersonnelUseCase
	PositionUC   *usecase.JobPositionUseCase
	AssignmentUC *usecase.AssignmentUseCase
	ServiceUC    *usecase.ServiceUseCase
	ProviderUC   *usecase.ProviderUseCase
	Validator    *validation.Validator
	JWTSecret    string
	Cookie       CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	api := app.Group("/api")
	gate := AuthMiddleware(deps.JWTSecret, deps.Cookie.Name)

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, v, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", gate, authHandler.Me)

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("/", gate)

	registerResource(protected, "/clients", deps.ClientUC, v, "cliente eliminado")
	registerResource(protected, "/brands", deps.BrandUC, v, "marca eliminada")
	registerResource(protected, "/categories", deps.CategoryUC, v, "categoría eliminada")
	registerResource(protected, "/positions", deps.PositionUC, v, "puesto de trabajo eliminado")
	registerResource(protected, "/services", deps.ServiceUC, v, "servicio eliminado")
	registerResource(protected, "/providers", deps.ProviderUC, v, "proveedor eliminado")

	products := protected.Group("/products")
	NewEquipmentItemHandler(deps.ItemUC, deps.ReportUC, v).Register(products)
	registerResource(protected, "/products", deps.ProductUC, v, "producto eliminado")

	personnel := protected.Group("/personnel")
	assignments := NewAssignmentHandler(deps.AssignmentUC, v)
	assignments.Register(personnel, "positions")
	assignments.Register(personnel, "puestos")
	registerResource(protected, "/personnel", deps.PersonnelUC, v, "persona eliminada")
}
