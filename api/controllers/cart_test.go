package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crustcraft/crustcraft-backend/api/middleware"
	cartsvc "github.com/crustcraft/crustcraft-backend/internal/cart"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
	"github.com/crustcraft/crustcraft-backend/pkg/types"
)

type memoryCartStore struct {
	snapshots map[string]cartsvc.Snapshot
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{snapshots: map[string]cartsvc.Snapshot{}}
}

func (m *memoryCartStore) Load(_ context.Context, sessionID string) (cartsvc.Snapshot, bool, error) {
	snap, ok := m.snapshots[sessionID]
	return snap, ok, nil
}

func (m *memoryCartStore) Save(_ context.Context, sessionID string, snap cartsvc.Snapshot) error {
	m.snapshots[sessionID] = snap
	return nil
}

func (m *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

type staticOutletDirectory struct {
	dir cartsvc.Directory
}

func (s staticOutletDirectory) Directory(context.Context) (cartsvc.Directory, error) {
	return s.dir, nil
}

func newCartTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{Output: io.Discard})
	svc, err := cartsvc.NewService(newMemoryCartStore(), staticOutletDirectory{
		dir: cartsvc.Directory{
			"sector17": {
				Key:     "sector17",
				Name:    "Sector 17",
				Phone:   "+91 98765 00017",
				Address: "SCO 42, Sector 17-C, Chandigarh",
			},
		},
	}, logg, cartsvc.ServiceOptions{
		Delivery: cartsvc.DeliveryPolicy{FlatFee: 30, FreeAbove: 299},
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/cart", func(r chi.Router) {
		r.Use(middleware.CartSession(logg))
		r.Get("/", GetCart(svc, logg))
		r.Post("/items", AddCartItem(svc, logg))
		r.Patch("/items/{itemID}", UpdateCartItemQuantity(svc, logg))
		r.Delete("/items/{itemID}", RemoveCartItem(svc, logg))
		r.Post("/items/{itemID}/addons", ToggleCartAddOn(svc, logg))
		r.Put("/outlet", SelectCartOutlet(svc, logg))
		r.Delete("/", ClearCart(svc, logg))
		r.Get("/message", GetCartMessage(svc, logg))
		r.Post("/checkout", CheckoutCart(svc, logg))
	})
	return r
}

func doCartRequest(t *testing.T, handler http.Handler, session, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if session != "" {
		req.Header.Set("X-Cart-Session", session)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) cartsvc.View {
	t.Helper()

	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestCartSessionMintedWhenMissing(t *testing.T) {
	router := newCartTestRouter(t)

	rec := doCartRequest(t, router, "", http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	minted := rec.Header().Get("X-Cart-Session")
	_, err := uuid.Parse(minted)
	assert.NoError(t, err, "minted session should be a uuid, got %q", minted)
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	router := newCartTestRouter(t)
	session := uuid.NewString()

	rec := doCartRequest(t, router, session, http.MethodPost, "/cart/items",
		`{"name":"Margherita","size_name":"Medium","price_rupees":200,"category":"classic"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, rec.Header().Get("X-Cart-Session"))

	view := decodeCartView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 200, view.Subtotal)
	assert.Equal(t, 30, view.DeliveryCharge)
	assert.Equal(t, 230, view.Total)

	itemID := view.Items[0].ID

	// Same item merges into the existing line.
	rec = doCartRequest(t, router, session, http.MethodPost, "/cart/items",
		`{"name":"Margherita","size_name":"Medium","price_rupees":200,"category":"classic"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeCartView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 400, view.Subtotal)
	assert.Equal(t, "FREE", view.DeliveryLabel)

	rec = doCartRequest(t, router, session, http.MethodPatch, "/cart/items/"+itemID, `{"quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeCartView(t, rec)
	assert.Equal(t, 200, view.Subtotal)

	rec = doCartRequest(t, router, session, http.MethodPost, "/cart/items/"+itemID+"/addons", `{"add_on":"extraCheese"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeCartView(t, rec)
	assert.Equal(t, 240, view.Subtotal)

	// No message preview and no checkout until an outlet is chosen.
	rec = doCartRequest(t, router, session, http.MethodGet, "/cart/message", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var preview struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Empty(t, preview.Data["message"])

	rec = doCartRequest(t, router, session, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doCartRequest(t, router, session, http.MethodPut, "/cart/outlet", `{"outlet_key":"sector17"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doCartRequest(t, router, session, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var checkout struct {
		Data cartsvc.CheckoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkout))
	assert.True(t, strings.HasPrefix(checkout.Data.WhatsAppLink, "https://wa.me/919876500017?"))
	assert.Contains(t, checkout.Data.Message, "Sector 17")
	assert.Contains(t, checkout.Data.Message, "Total: Rs.270")

	rec = doCartRequest(t, router, session, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeCartView(t, rec)
	assert.Empty(t, view.Items)
	assert.Equal(t, "sector17", view.SelectedOutlet)
}

func TestAddCartItemRejectsMissingName(t *testing.T) {
	router := newCartTestRouter(t)

	rec := doCartRequest(t, router, uuid.NewString(), http.MethodPost, "/cart/items",
		`{"size_name":"Medium","price_rupees":200}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	router := newCartTestRouter(t)
	session := uuid.NewString()

	rec := doCartRequest(t, router, session, http.MethodPut, "/cart/outlet", `{"outlet_key":"sector17"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doCartRequest(t, router, session, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "empty")
}
