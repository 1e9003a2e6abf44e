package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

// repositories puertos de persistencia del driver elegido.
type repositories struct {
	users       repository.UserRepository
	clients     repository.ClientRepository
	brands      repository.BrandRepository
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	items       repository.EquipmentItemRepository
	personnel   repository.PersonnelRepository
	positions   repository.JobPositionRepository
	assignments repository.AssignmentRepository
	services    repository.ServiceRepository
	providers   repository.ProviderRepository
	close       func()
}

func postgresRepositories(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*repositories, error) {
	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &repositories{
		users:       postgres.NewUserRepository(pool),
		clients:     postgres.NewClientRepository(pool),
		brands:      postgres.NewBrandRepository(pool),
		categories:  postgres.NewCategoryRepository(pool),
		products:    postgres.NewProductRepository(pool),
		items:       postgres.NewEquipmentItemRepository(pool),
		personnel:   postgres.NewPersonnelRepository(pool),
		positions:   postgres.NewJobPositionRepository(pool),
		assignments: postgres.NewAssignmentRepository(pool),
		services:    postgres.NewServiceRepository(pool),
		providers:   postgres.NewProviderRepository(pool),
		close:       pool.Close,
	}, nil
}

func memoryRepositories() *repositories {
	st := memory.NewStore()
	return &repositories{
		users:       st.Users(),
		clients:     st.Clients(),
		brands:      st.Brands(),
		categories:  st.Categories(),
		products:    st.Products(),
		items:       st.EquipmentItems(),
		personnel:   st.Personnel(),
		positions:   st.JobPositions(),
		assignments: st.Assignments(),
		services:    st.Services(),
		providers:   st.Providers(),
		close:       func() {},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: no se podrán emitir ni validar sesiones")
	}

	ctx := context.Background()
	var repos *repositories
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		repos = memoryRepositories()
	default:
		repos, err = postgresRepositories(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
	}
	defer repos.close()

	itemUC := usecase.NewEquipmentItemUseCase(repos.items, repos.products, repos.providers)
	reportUC := usecase.NewInventoryReportUseCase(
		repos.products, repos.categories, repos.brands, repos.providers, itemUC,
		infrapdf.NewMarotoPDFGenerator(),
	)
	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	if origins := strings.TrimSpace(cfg.HTTP.CORSOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowCredentials: true,
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     usecase.NewClientUseCase(repos.clients),
		BrandUC:      usecase.NewBrandUseCase(repos.brands),
		CategoryUC:   usecase.NewCategoryUseCase(repos.categories),
		ProductUC:    usecase.NewProductUseCase(repos.products, repos.categories, repos.brands),
		ItemUC:       itemUC,
		ReportUC:     reportUC,
		PersonnelUC:  usecase.NewPersonnelUseCase(repos.personnel),
		PositionUC:   usecase.NewJobPositionUseCase(repos.positions),
		AssignmentUC: usecase.NewAssignmentUseCase(repos.assignments, repos.personnel, repos.positions),
		ServiceUC:    usecase.NewServiceUseCase(repos.services),
		ProviderUC:   usecase.NewProviderUseCase(repos.providers),
		Validator:    validation.New(),
		JWTSecret:    cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
