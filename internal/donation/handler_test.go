package donation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentProvider struct {
	lastAmount int64
	secret     string
	err        error
}

func (f *fakePaymentProvider) CreateIntent(amount int64) (string, error) {
	f.lastAmount = amount
	return f.secret, f.err
}

func postPaymentIntent(t *testing.T, h *DonationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/create-payment-intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreatePaymentIntent(e.NewContext(req, rec)))
	return rec
}

func TestCreatePaymentIntentConvertsToCents(t *testing.T) {
	provider := &fakePaymentProvider{secret: "pi_123_secret_456"}
	handler := NewDonationHandler(NewDonationService(&fakeDonationStore{}, nil), provider)

	rec := postPaymentIntent(t, handler, `{"price":19.99}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1999), provider.lastAmount)
	assert.Contains(t, rec.Body.String(), "pi_123_secret_456")
}

func TestCreatePaymentIntentRejectsBadPrice(t *testing.T) {
	provider := &fakePaymentProvider{secret: "pi_123_secret_456"}
	handler := NewDonationHandler(NewDonationService(&fakeDonationStore{}, nil), provider)

	rec := postPaymentIntent(t, handler, `{"price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postPaymentIntent(t, handler, `{"price":"ten"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, int64(0), provider.lastAmount)
}
