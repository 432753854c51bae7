package supply

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func putSupply(t *testing.T, h *SupplyHandler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/supplies/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.UpdateApplied(c))
	return rec
}

func TestUpdateAppliedHandlerStatusLadder(t *testing.T) {
	store := newFakeSupplyStore()
	service := NewSupplyService(store)
	handler := NewSupplyHandler(service)

	supply := &Supply{Email: "owner@example.com", Title: "Rice"}
	require.NoError(t, service.AddSupply(context.Background(), supply))

	rec := putSupply(t, handler, "abc", `{"isApplied":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = putSupply(t, handler, primitive.NewObjectID().Hex(), `{"isApplied":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = putSupply(t, handler, supply.ID.Hex(), `{"isApplied":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.supplies[supply.ID].IsApplied)
}
