package cmd

import (
	"log/slog"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/memory"
	"eats/internal/adapters/out/paymentstub"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/services"
	"eats/internal/jobs"
)

// CompositionRoot wires repositories, the payment provider, and the domain
// recommender into application handlers.
type CompositionRoot struct {
	config Config

	courierRepository *memory.CourierRepository
	orderRepository   *memory.OrderRepository
	walletRepository  *memory.PaymentMethodRepository
	menuRepository    *memory.MenuRepository

	provider    *paymentstub.Provider
	recommender *services.Recommender
}

// NewCompositionRoot builds the object graph from configuration. The menu
// store and recommender are seeded with the default catalog.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	provider, err := paymentstub.NewProvider(config.PaymentProviderName, config.PaymentProviderAPIKey)
	if err != nil {
		return nil, err
	}

	catalog := menu.DefaultCatalog()

	return &CompositionRoot{
		config:            config,
		courierRepository: memory.NewCourierRepository(),
		orderRepository:   memory.NewOrderRepository(),
		walletRepository:  memory.NewPaymentMethodRepository(),
		menuRepository:    memory.NewMenuRepository(catalog),
		provider:          provider,
		recommender:       services.NewRecommender(catalog),
	}, nil
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierRepository)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.courierRepository)
}

func (c *CompositionRoot) CreateAddPaymentMethodCommandHandler() commands.AddPaymentMethodCommandHandler {
	return commands.NewAddPaymentMethodCommandHandler(c.walletRepository, c.provider)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuRepository)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateAnalyzeBehaviorCommandHandler() commands.AnalyzeBehaviorCommandHandler {
	return commands.NewAnalyzeBehaviorCommandHandler(c.recommender)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.courierRepository)
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetRecommendationsQueryHandler() queries.GetRecommendationsQueryHandler {
	return queries.NewGetRecommendationsQueryHandler(c.recommender)
}

// CreateHTTPServer assembles the inbound HTTP adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterCourierCommandHandler(),
		c.CreateUpdateCourierLocationCommandHandler(),
		c.CreateAddPaymentMethodCommandHandler(),
		c.CreateAddMenuItemCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAnalyzeBehaviorCommandHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetPlacedOrdersQueryHandler(),
		c.CreateGetRecommendationsQueryHandler(),
		c.menuRepository,
		c.walletRepository,
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.recommender,
		c.provider,
		c.config.BehaviorReportSchedule,
		c.config.GatewayHealthSchedule,
		logger,
	)
}

// PaymentProvider returns the configured gateway client.
func (c *CompositionRoot) PaymentProvider() *paymentstub.Provider {
	return c.provider
}
