package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshleyKendi786/Delivery-App/internal/config"
	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(config.ClientConfig{BaseURL: ts.URL, Timeout: 5 * time.Second})
}

func TestAuthGateway_Login_ReturnsUserAndToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sam@example.com", req["email"])
		assert.Equal(t, "customer", req["type"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 3, "name": "Sam", "email": "sam@example.com", "type": "customer", "token": "signed-token",
		})
	}))
	defer ts.Close()

	gw := NewAuthGateway(newTestClient(ts))

	user, token, err := gw.Login(context.Background(), "sam@example.com", "hunter22", "customer")

	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.Equal(t, "customer", user.Type)
	assert.Equal(t, "signed-token", token)
}

func TestAuthGateway_Login_SurfacesServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer ts.Close()

	gw := NewAuthGateway(newTestClient(ts))

	_, _, err := gw.Login(context.Background(), "sam@example.com", "wrong", "customer")

	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ge.StatusCode)
	assert.Equal(t, "invalid email or password", ge.Message)
}

func TestAuthGateway_Signup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "name": "Sam", "type": "customer"})
	}))
	defer ts.Close()

	gw := NewAuthGateway(newTestClient(ts))

	assert.NoError(t, gw.Signup(context.Background(), "Sam", "sam@example.com", "hunter22", "customer"))
}

func TestOrderGateway_Create_SendsWireShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// customer_id is snake_case on create, unlike the camelCase reads.
		assert.Equal(t, float64(3), req["customer_id"])
		assert.Equal(t, "pending", req["status"])
		assert.Equal(t, "Book", req["productName"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Order{
			ID: 11, CustomerID: 3, ProductName: "Book", Address: "221B Baker St", Price: 25, Status: domain.StatusPending,
		})
	}))
	defer ts.Close()

	gw := NewOrderGateway(newTestClient(ts))

	order, err := gw.Create(context.Background(), 3, domain.OrderDraft{
		ProductName: "Book", Address: "221B Baker St", Price: 25,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestOrderGateway_Update_OmitsAbsentFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/7", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "start delivery", req["status"])
		assert.NotContains(t, req, "productName")
		assert.NotContains(t, req, "price")

		json.NewEncoder(w).Encode(domain.Order{ID: 7, Status: domain.StatusInTransit, ProductName: "Book"})
	}))
	defer ts.Close()

	gw := NewOrderGateway(newTestClient(ts))

	status := domain.StatusInTransit
	order, err := gw.Update(context.Background(), 7, domain.OrderPatch{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, order.Status)
}

func TestOrderGateway_List_AttachesBearerToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.Order{})
	}))
	defer ts.Close()

	client := newTestClient(ts)
	client.SetToken("signed-token")
	gw := NewOrderGateway(client)

	_, err := gw.List(context.Background())
	assert.NoError(t, err)
}

func TestOrderGateway_Delete_NonSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "order with id 3 not found"})
	}))
	defer ts.Close()

	gw := NewOrderGateway(newTestClient(ts))

	err := gw.Delete(context.Background(), 3)

	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ge.StatusCode)
}

func TestClient_TransportFailureWrapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	gw := NewOrderGateway(newTestClient(ts))

	_, err := gw.List(context.Background())

	require.Error(t, err)
	_, ok := errors.IsGatewayError(err)
	assert.False(t, ok)
}

func TestClient_ErrorBodyFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer ts.Close()

	gw := NewOrderGateway(newTestClient(ts))

	err := gw.Delete(context.Background(), 1)

	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "request failed with status 502", ge.Message)
}
