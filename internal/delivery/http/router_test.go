package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/godcandidate/warehouse-management-app/internal/config"
	"github.com/godcandidate/warehouse-management-app/internal/store/memory"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.New()
	store.Seed()

	app := fiber.New()
	RegisterRoutes(app, config.Config{
		JWTSecret:         "test-secret",
		JWTExpiresMinutes: 60,
	}, store)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	out, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	status, body := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/health", "", nil)
	require.Equal(t, fiber.StatusOK, status)
}

func TestLoginAndMe(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, body := doJSON(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(body, &me))
	require.Equal(t, "usr-admin", me.ID)
	require.Equal(t, "admin@example.com", me.Email)
	require.Equal(t, "admin", me.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "nope",
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProtectedRequiresToken(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/inventory", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "GET", "/api/inventory", "not-a-jwt", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestInventoryListSearchAndPaging(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	var page struct {
		Items []struct {
			Name string `json:"name"`
			SKU  string `json:"sku"`
		} `json:"items"`
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"pageSize"`
	}

	status, body := doJSON(t, app, "GET", "/api/inventory?pageSize=4", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page.Items, 4)
	require.Equal(t, 6, page.Total)
	require.Equal(t, 4, page.PageSize)

	status, body = doJSON(t, app, "GET", "/api/inventory?search=elec-0", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &page))
	require.Equal(t, 2, page.Total)

	status, body = doJSON(t, app, "GET", "/api/inventory?status=out-of-stock", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &page))
	require.Equal(t, 1, page.Total)
	require.Equal(t, "Paper Clips", page.Items[0].Name)
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, body := doJSON(t, app, "POST", "/api/purchase-orders", token, fiber.Map{
		"supplierId":           "sup-tech",
		"orderDate":            "2025-06-01T00:00:00Z",
		"expectedDeliveryDate": "2025-06-15T00:00:00Z",
		"items": []fiber.Map{
			{"itemId": "itm-laptop", "quantity": 5},
		},
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var po struct {
		ID           string  `json:"id"`
		SupplierName string  `json:"supplierName"`
		Status       string  `json:"status"`
		TotalAmount  float64 `json:"totalAmount"`
		Items        []struct {
			ItemName   string  `json:"itemName"`
			Quantity   int     `json:"quantity"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &po))
	require.NotEmpty(t, po.ID)
	require.Equal(t, "Tech Supplies Co", po.SupplierName)
	require.Equal(t, "pending", po.Status)
	require.Equal(t, 6000.0, po.TotalAmount)
	require.Len(t, po.Items, 1)
	require.Equal(t, "Laptop", po.Items[0].ItemName)

	// Skipping approval is rejected.
	status, _ = doJSON(t, app, "PATCH", "/api/purchase-orders/"+po.ID+"/status", token,
		fiber.Map{"status": "shipped"})
	require.Equal(t, fiber.StatusBadRequest, status)

	status, body = doJSON(t, app, "PATCH", "/api/purchase-orders/"+po.ID+"/status", token,
		fiber.Map{"status": "approved"})
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &po))
	require.Equal(t, "approved", po.Status)
}

func TestPurchaseOrderValidationResponse(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, body := doJSON(t, app, "POST", "/api/purchase-orders", token, fiber.Map{})
	require.Equal(t, fiber.StatusUnprocessableEntity, status, string(body))

	var out struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "at least one item is required", out.Errors["items"])
	require.Contains(t, out.Errors, "supplierId")
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, body := doJSON(t, app, "GET", "/api/dashboard/stats", token, nil)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var stats struct {
		TotalInventoryItems int `json:"totalInventoryItems"`
		LowStockItems       int `json:"lowStockItems"`
		PendingOrders       int `json:"pendingOrders"`
		ActiveShipments     int `json:"activeShipments"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	require.Equal(t, 6, stats.TotalInventoryItems)
	require.Equal(t, 3, stats.LowStockItems)
	require.Equal(t, 1, stats.PendingOrders)
	require.Equal(t, 2, stats.ActiveShipments)
}
