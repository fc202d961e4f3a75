package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/memory"
	"eats/internal/adapters/out/paymentstub"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	echo        *echo.Echo
	recommender *services.Recommender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	courierRepo := memory.NewCourierRepository()
	orderRepo := memory.NewOrderRepository()
	wallet := memory.NewPaymentMethodRepository()
	menuRepo := memory.NewMenuRepository(menu.DefaultCatalog())
	recommender := services.NewRecommender(menu.DefaultCatalog())
	provider, err := paymentstub.NewProvider("QuickPay", "test-key")
	require.NoError(t, err)

	server := httpin.NewServer(
		commands.NewRegisterCourierCommandHandler(courierRepo),
		commands.NewUpdateCourierLocationCommandHandler(courierRepo),
		commands.NewAddPaymentMethodCommandHandler(wallet, provider),
		commands.NewAddMenuItemCommandHandler(menuRepo),
		commands.NewPlaceOrderCommandHandler(orderRepo),
		commands.NewAnalyzeBehaviorCommandHandler(recommender),
		queries.NewGetAllCouriersQueryHandler(courierRepo),
		queries.NewGetPlacedOrdersQueryHandler(orderRepo),
		queries.NewGetRecommendationsQueryHandler(recommender),
		menuRepo,
		wallet,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return &fixture{echo: e, recommender: recommender}
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

// storeCard saves a card through the payment-methods endpoint, so the stored
// method carries whatever provider the production wiring attaches.
func (f *fixture) storeCard(t *testing.T, cvv string) string {
	t.Helper()
	rec := f.do(http.MethodPost, "/api/v1/payment-methods", `{
		"holder": "John Doe",
		"number": "4111111111111111",
		"expiry": "12/30",
		"cvv": "`+cvv+`"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp httpin.PaymentMethodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ID
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RegisterCourier(t *testing.T) {
	f := newFixture(t)

	t.Run("should register a valid courier", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers", `{
			"name": "Maria Papadopoulou",
			"email": "maria@example.com",
			"phone": "+306912345678",
			"vehicleType": "scooter",
			"licensePlate": "AB-1234",
			"password": "sturdy1password",
			"experience": "3 years"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp httpin.CourierResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "maria@example.com", resp.Email)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("should reject duplicate email with conflict", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers", `{
			"name": "Nikos Georgiou",
			"email": "maria@example.com",
			"phone": "+306998765432",
			"vehicleType": "bike",
			"licensePlate": "XY-987",
			"password": "another1password",
			"experience": "5 years"
		}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should reject invalid input as unprocessable", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers", `{
			"name": "Maria 123",
			"email": "other@example.com",
			"phone": "+306912345678",
			"vehicleType": "scooter",
			"licensePlate": "AB-1234",
			"password": "sturdy1password",
			"experience": "3 years"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestServer_UpdateCourierLocation(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/v1/couriers", `{
		"name": "Maria Papadopoulou",
		"email": "maria@example.com",
		"phone": "+306912345678",
		"vehicleType": "scooter",
		"licensePlate": "AB-1234",
		"password": "sturdy1password",
		"experience": "3 years"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered httpin.CourierResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	t.Run("should accept a valid position", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers/"+registered.ID+"/location",
			`{"latitude": 37.9838, "longitude": 23.7275}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/couriers", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var couriers []httpin.CourierResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &couriers))
		require.Len(t, couriers, 1)
		require.NotNil(t, couriers[0].Location)
		assert.InDelta(t, 37.9838, couriers[0].Location.Latitude, 0.0001)
	})

	t.Run("should reject an out of range position", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers/"+registered.ID+"/location",
			`{"latitude": 95.0, "longitude": 23.7275}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should report unknown courier as not found", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/couriers/"+kernel.NewUUID().String()+"/location",
			`{"latitude": 37.9838, "longitude": 23.7275}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_AddPaymentMethod(t *testing.T) {
	f := newFixture(t)

	t.Run("should store a valid card and mask the number", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/payment-methods", `{
			"holder": "John Doe",
			"number": "4111 1111 1111 1111",
			"expiry": "12/30",
			"cvv": "123"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp httpin.PaymentMethodResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "**** **** **** 1111", resp.MaskedNumber)
	})

	t.Run("should reject an expired card", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/payment-methods", `{
			"holder": "John Doe",
			"number": "4111111111111111",
			"expiry": "01/20",
			"cvv": "123"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestServer_PlaceOrder(t *testing.T) {
	t.Run("should place and confirm an order", func(t *testing.T) {
		f := newFixture(t)
		methodID := f.storeCard(t, "123")

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"items": ["Greek Salad"],
			"paymentMethodId": "`+methodID+`",
			"address": "Athens",
			"note": ""
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp httpin.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "confirmed", resp.Status)
		assert.InDelta(t, 5.0, resp.TotalAmount, 0.0001)
		assert.Equal(t, "Athens", resp.DeliveryAddress)
	})

	t.Run("should surface a declined charge as payment required", func(t *testing.T) {
		f := newFixture(t)
		methodID := f.storeCard(t, "000")

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"items": ["Greek Salad"],
			"paymentMethodId": "`+methodID+`",
			"address": "Athens"
		}`)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []httpin.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Empty(t, orders)
	})

	t.Run("should reject a blank address", func(t *testing.T) {
		f := newFixture(t)
		methodID := f.storeCard(t, "123")

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"items": ["Greek Salad"],
			"paymentMethodId": "`+methodID+`",
			"address": "   "
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should report unknown dish as not found", func(t *testing.T) {
		f := newFixture(t)
		methodID := f.storeCard(t, "123")

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"items": ["Moussaka"],
			"paymentMethodId": "`+methodID+`",
			"address": "Athens"
		}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should report unknown payment method as not found", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{
			"items": ["Greek Salad"],
			"paymentMethodId": "`+kernel.NewUUID().String()+`",
			"address": "Athens"
		}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetRecommendations(t *testing.T) {
	f := newFixture(t)
	userID := kernel.NewUUID().String()

	t.Run("should filter by price ceiling in catalog order", func(t *testing.T) {
		rec := f.do(http.MethodGet,
			"/api/v1/recommendations?userId="+userID+"&maxPrice=6.0&maxDistance=5.0&maxTime=60", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var items []httpin.MenuItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Greek Salad", items[0].Name)
		assert.Equal(t, "Fruit Bowl", items[1].Name)
	})

	t.Run("should reject a negative price ceiling", func(t *testing.T) {
		rec := f.do(http.MethodGet,
			"/api/v1/recommendations?userId="+userID+"&maxPrice=-5.0&maxDistance=5.0&maxTime=60", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should reject a malformed user id", func(t *testing.T) {
		rec := f.do(http.MethodGet,
			"/api/v1/recommendations?userId=nope&maxPrice=6.0&maxDistance=5.0&maxTime=60", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_RecordLogin(t *testing.T) {
	t.Run("should record a login event for the diner", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/users/"+kernel.NewUUID().String()+"/login", "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		events := f.recommender.Events()
		require.Len(t, events, 1)
		assert.Equal(t, services.EventLogin, events[0].Type())
	})

	t.Run("should reject a malformed user id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/users/nope/login", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, f.recommender.Events())
	})
}

func TestServer_Menu(t *testing.T) {
	f := newFixture(t)

	t.Run("should list the seeded catalog", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/menu", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var items []httpin.MenuItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 4)
		assert.Equal(t, "Greek Salad", items[0].Name)
	})

	t.Run("should add a new dish", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/menu", `{
			"name": "Lentil Soup",
			"description": "Slow cooked lentils",
			"price": 6.5,
			"category": "Soups"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do(http.MethodGet, "/api/v1/menu", "")
		var items []httpin.MenuItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 5)
	})

	t.Run("should reject a dish without description", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/menu", `{
			"name": "Mystery Dish",
			"price": 6.5
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
