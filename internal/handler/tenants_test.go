package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

type fakeTenantService struct {
	err  error
	last dto.TenantIntakeRequest
}

func (f *fakeTenantService) Intake(_ context.Context, req dto.TenantIntakeRequest) (model.Tenant, error) {
	f.last = req
	if f.err != nil {
		return model.Tenant{}, f.err
	}
	return model.Tenant{Slug: "demo"}, nil
}

func intakeRouter(svc *fakeTenantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.NewMemory()
	tenants := repository.NewTenantRepository(st, schema.NewTenantSchema(schema.ProductionDefaults()))
	h := NewTenantsHandler(svc, tenants)

	r := gin.New()
	r.POST("/api/tenant", h.Intake)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntakeEndpointSuccess(t *testing.T) {
	svc := &fakeTenantService{}
	r := intakeRouter(svc)

	w := postJSON(t, r, "/api/tenant", `{
		"businessName": "Ferretería Los Amigos",
		"storeName": "ferreteria",
		"storePhone": 51987654321,
		"email": "ana@example.com",
		"password": "secreto"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, "ferreteria", svc.last.StoreName)
	assert.Equal(t, float64(51987654321), svc.last.StorePhone, "numeric phone reaches the service untouched")
}

func TestIntakeEndpointMissingRequiredFields(t *testing.T) {
	cases := []string{
		`{"storeName": "demo", "password": "x"}`,
		`{"storeName": "demo", "email": "a@example.com"}`,
		`{"email": "a@example.com", "password": "x"}`,
	}
	for _, body := range cases {
		w := postJSON(t, intakeRouter(&fakeTenantService{}), "/api/tenant", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "email, password y storeName son requeridos", w.Body.String())
	}
}

func TestIntakeEndpointDownstreamFailure(t *testing.T) {
	svc := &fakeTenantService{err: errors.New("la tienda \"demo\" ya existe")}
	w := postJSON(t, intakeRouter(svc), "/api/tenant", `{
		"storeName": "demo", "email": "a@example.com", "password": "x"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Fallo la creación de la tienda", w.Body.String())
}

func TestIntakeEndpointMalformedJSON(t *testing.T) {
	w := postJSON(t, intakeRouter(&fakeTenantService{}), "/api/tenant", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
