package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_Success(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 2})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(400), cart.Subtotal)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p2"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItem_MergesDuplicates(t *testing.T) {
	env := setupEnv(t)

	env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 2})
	recorder := env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 3})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItem_Validation(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 100})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "ghost", Quantity: 1})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	env := setupEnv(t)
	env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 3})

	recorder := env.do(t, http.MethodPatch, "/v1/cart/items/p1", UpdateQuantityRequestDTO{Delta: -50})
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestUpdateQuantity_AbsentItem(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodPatch, "/v1/cart/items/p1", UpdateQuantityRequestDTO{Delta: 1})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRemoveItem(t *testing.T) {
	env := setupEnv(t)
	env.do(t, http.MethodPost, "/v1/cart/items", AddItemRequestDTO{ProductID: "p1", Quantity: 1})

	recorder := env.do(t, http.MethodDelete, "/v1/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Subtotal)
}

func TestGetCart_Empty(t *testing.T) {
	env := setupEnv(t)

	recorder := env.do(t, http.MethodGet, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart CartResponse
	decode(t, recorder, &cart)
	assert.Empty(t, cart.Items)
}
