package http

import (
	"errors"
	"net/http"
	"strconv"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into application commands and queries.
// It owns no business rules: validation failures surface from the domain as
// typed errors and are mapped onto status codes here.
type Server struct {
	registerCourierHandler       commands.RegisterCourierCommandHandler
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler
	addPaymentMethodHandler      commands.AddPaymentMethodCommandHandler
	addMenuItemHandler           commands.AddMenuItemCommandHandler
	placeOrderHandler            commands.PlaceOrderCommandHandler
	analyzeBehaviorHandler       commands.AnalyzeBehaviorCommandHandler

	getAllCouriersHandler     queries.GetAllCouriersQueryHandler
	getPlacedOrdersHandler    queries.GetPlacedOrdersQueryHandler
	getRecommendationsHandler queries.GetRecommendationsQueryHandler

	menuRepository   ports.MenuRepository
	walletRepository ports.PaymentMethodRepository
}

// NewServer creates an HTTP server over the application use cases. The menu
// and wallet repositories are needed to resolve dish names and stored cards
// referenced by order placement requests.
func NewServer(
	registerCourierHandler commands.RegisterCourierCommandHandler,
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler,
	addPaymentMethodHandler commands.AddPaymentMethodCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	analyzeBehaviorHandler commands.AnalyzeBehaviorCommandHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getPlacedOrdersHandler queries.GetPlacedOrdersQueryHandler,
	getRecommendationsHandler queries.GetRecommendationsQueryHandler,
	menuRepository ports.MenuRepository,
	walletRepository ports.PaymentMethodRepository,
) *Server {
	return &Server{
		registerCourierHandler:       registerCourierHandler,
		updateCourierLocationHandler: updateCourierLocationHandler,
		addPaymentMethodHandler:      addPaymentMethodHandler,
		addMenuItemHandler:           addMenuItemHandler,
		placeOrderHandler:            placeOrderHandler,
		analyzeBehaviorHandler:       analyzeBehaviorHandler,
		getAllCouriersHandler:        getAllCouriersHandler,
		getPlacedOrdersHandler:       getPlacedOrdersHandler,
		getRecommendationsHandler:    getRecommendationsHandler,
		menuRepository:               menuRepository,
		walletRepository:             walletRepository,
	}
}

// RegisterRoutes mounts all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/couriers", s.RegisterCourier)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers/:id/location", s.UpdateCourierLocation)
	api.POST("/payment-methods", s.AddPaymentMethod)
	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddMenuItem)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/recommendations", s.GetRecommendations)
	api.POST("/users/:id/login", s.RecordLogin)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req RegisterCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewRegisterCourierCommand(
		req.Name, req.Email, req.Phone, req.VehicleType, req.LicensePlate, req.Password, req.Experience,
	)

	person, err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, ports.ErrEmailAlreadyRegistered) {
			return errorJSON(ctx, http.StatusConflict, err.Error())
		}
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierResponse{
		ID:           person.ID().String(),
		Name:         person.Name(),
		Email:        person.Email(),
		VehicleType:  person.VehicleType(),
		LicensePlate: person.LicensePlate(),
	})
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve couriers")
	}

	response := make([]CourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = CourierResponse{
			ID:           courier.ID.String(),
			Name:         courier.Name,
			Email:        courier.Email,
			VehicleType:  courier.VehicleType,
			LicensePlate: courier.LicensePlate,
		}
		if courier.Location != nil {
			response[i].Location = &LocationResponse{
				Latitude:  courier.Location.Latitude(),
				Longitude: courier.Location.Longitude(),
			}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCourierLocation handles POST /api/v1/couriers/:id/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var req UpdateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, point)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateCourierLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPaymentMethod handles POST /api/v1/payment-methods.
func (s *Server) AddPaymentMethod(ctx echo.Context) error {
	var req AddPaymentMethodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewAddPaymentMethodCommand(req.Holder, req.Number, req.Expiry, req.CVV)

	method, err := s.addPaymentMethodHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PaymentMethodResponse{
		ID:           method.ID().String(),
		Holder:       method.Holder(),
		MaskedNumber: method.MaskedNumber(),
		Expiry:       method.Expiry(),
	})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.menuRepository.GetAll(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, menuResponse(items))
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req AddMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewAddMenuItemCommand(req.Name, req.Description, req.Price, req.Category, req.Image)

	item, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MenuItemResponse{
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		Image:       item.Image(),
	})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	methodID, err := kernel.UUIDFromString(req.PaymentMethodID)
	if err != nil {
		return badRequest(ctx, "Invalid payment method id")
	}

	method, err := s.walletRepository.Get(ctx.Request().Context(), methodID)
	if err != nil {
		return domainError(ctx, err)
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(items, method, req.Address, req.Note)
	if err != nil {
		return domainError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrPaymentDeclined) {
			return errorJSON(ctx, http.StatusPaymentRequired, err.Error())
		}
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:              placed.ID().String(),
		Status:          placed.Status().String(),
		TotalAmount:     placed.TotalAmount(),
		DeliveryAddress: placed.DeliveryAddress(),
		CustomerNote:    placed.CustomerNote(),
		PlacedAt:        placed.PlacedAt(),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getPlacedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPlacedOrdersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:              o.ID.String(),
			Status:          o.Status,
			TotalAmount:     o.TotalAmount,
			DeliveryAddress: o.DeliveryAddress,
			CustomerNote:    o.CustomerNote,
			PlacedAt:        o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRecommendations handles GET /api/v1/recommendations.
func (s *Server) GetRecommendations(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	maxPrice, err := strconv.ParseFloat(ctx.QueryParam("maxPrice"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid maxPrice")
	}
	maxDistance, err := strconv.ParseFloat(ctx.QueryParam("maxDistance"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid maxDistance")
	}
	maxTime, err := strconv.Atoi(ctx.QueryParam("maxTime"))
	if err != nil {
		return badRequest(ctx, "Invalid maxTime")
	}

	filters, err := menu.NewFilters(maxPrice, maxDistance, maxTime)
	if err != nil {
		return domainError(ctx, err)
	}

	prefs := menu.NewPreferences(ctx.QueryParam("cuisine"), ctx.QueryParam("mealType"))

	query, err := queries.NewGetRecommendationsQuery(userID, prefs, filters)
	if err != nil {
		return domainError(ctx, err)
	}

	recommendations, err := s.getRecommendationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]MenuItemResponse, len(recommendations))
	for i, r := range recommendations {
		response[i] = MenuItemResponse{
			Name:        r.Name,
			Description: r.Description,
			Price:       r.Price,
			Category:    r.Category,
			Image:       r.Image,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordLogin handles POST /api/v1/users/:id/login. It feeds the behavioral
// event log that the periodic behavior report aggregates.
func (s *Server) RecordLogin(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewAnalyzeBehaviorCommand(userID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.analyzeBehaviorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) resolveItems(ctx echo.Context, names []string) ([]menu.Item, error) {
	if len(names) == 0 {
		return nil, nil
	}

	available, err := s.menuRepository.GetAll(ctx.Request().Context())
	if err != nil {
		return nil, err
	}

	byName := make(map[string]menu.Item, len(available))
	for _, item := range available {
		byName[item.Name()] = item
	}

	items := make([]menu.Item, 0, len(names))
	for _, name := range names {
		item, ok := byName[name]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", name)
		}
		items = append(items, item)
	}

	return items, nil
}

func menuResponse(items []menu.Item) []MenuItemResponse {
	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Category:    item.Category(),
			Image:       item.Image(),
		}
	}
	return response
}

// domainError maps a typed domain error onto an HTTP status code.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
