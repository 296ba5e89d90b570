package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
	"github.com/AshleyKendi786/Delivery-App/internal/testutil"
)

func TestGormProductRepository_SeedOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewGormProductRepository(db)

	seed := []domain.Product{{Name: "Book", Price: 25}, {Name: "Lamp", Price: 40}}
	require.NoError(t, repo.Seed(context.Background(), seed))

	// A second seed is a no-op once the table has rows.
	require.NoError(t, repo.Seed(context.Background(), []domain.Product{{Name: "Flowers", Price: 15}}))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Book", products[0].Name)
	assert.Equal(t, "Lamp", products[1].Name)
}

func TestController_HandleListProducts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctrl, repo := NewModule(db, zap.NewNop())
	require.NoError(t, repo.Seed(context.Background(), []domain.Product{{Name: "Book", Price: 25}}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	ctrl.HandleListProducts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Book", products[0].Name)
	assert.Equal(t, 25.0, products[0].Price)
}
