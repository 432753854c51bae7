package campaign

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putCampaign(t *testing.T, h *CampaignHandler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/campains/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Contribute(c))
	return rec
}

func TestContributeHandlerRejectsNonNumericAmount(t *testing.T) {
	store := newFakeCampaignStore()
	service := NewCampaignService(store)
	handler := NewCampaignHandler(service)

	campaign := &Campaign{Email: "owner@example.com", Title: "Flood relief", CollectedAmount: 100}
	require.NoError(t, service.AddCampaign(context.Background(), campaign))

	rec := putCampaign(t, handler, campaign.ID.Hex(), `{"newAmount":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 100.0, numericAmount(store.docs[campaign.ID]["collectedAmount"]))

	rec = putCampaign(t, handler, campaign.ID.Hex(), `{"newAmount":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 100.0, numericAmount(store.docs[campaign.ID]["collectedAmount"]))
}

func TestContributeHandlerSuccess(t *testing.T) {
	store := newFakeCampaignStore()
	service := NewCampaignService(store)
	handler := NewCampaignHandler(service)

	campaign := &Campaign{Email: "owner@example.com", Title: "Flood relief", CollectedAmount: 100}
	require.NoError(t, service.AddCampaign(context.Background(), campaign))

	rec := putCampaign(t, handler, campaign.ID.Hex(), `{"newAmount":50}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"collectedAmount":150`)
}
