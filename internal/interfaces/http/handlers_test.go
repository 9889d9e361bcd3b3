package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/application/usecase"
	"github.com/lithrlnd12/keyhubcentral/internal/application/webhook"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	apphttp "github.com/lithrlnd12/keyhubcentral/internal/interfaces/http"
	"github.com/lithrlnd12/keyhubcentral/pkg/signature"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type memCalls struct {
	byVendor map[string]entity.InboundCall
}

func (m *memCalls) Upsert(_ context.Context, c *entity.InboundCall) (bool, error) {
	if _, ok := m.byVendor[c.VendorCallID]; ok {
		return false, nil
	}
	m.byVendor[c.VendorCallID] = *c
	return true, nil
}

func (m *memCalls) List(context.Context) ([]entity.InboundCall, error) {
	out := make([]entity.InboundCall, 0, len(m.byVendor))
	for _, c := range m.byVendor {
		out = append(out, c)
	}
	return out, nil
}

type memContractors struct {
	items map[string]entity.Contractor
}

func (m *memContractors) GetByID(_ context.Context, id string) (*entity.Contractor, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memContractors) GetByUserID(_ context.Context, userID string) (*entity.Contractor, error) {
	for _, c := range m.items {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memContractors) List(context.Context, int, int) ([]entity.Contractor, error) {
	var out []entity.Contractor
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *memContractors) UpdateRating(_ context.Context, id string, r entity.Rating) error {
	c := m.items[id]
	c.Rating = r
	m.items[id] = c
	return nil
}

// ── webhook ───────────────────────────────────────────────────────────────────

const webhookSecret = "whsec-test"

func webhookApp(secret string) (*fiber.App, *memCalls) {
	calls := &memCalls{byVendor: map[string]entity.InboundCall{}}
	verifier := signature.NewVerifier("voice_webhook", secret, signature.FailClosed, zerolog.Nop())
	uc := webhook.NewVoiceWebhookUseCase(verifier, calls, zerolog.Nop())

	app := fiber.New()
	app.Post("/api/webhooks/voice", apphttp.NewWebhookHandler(uc).Voice)
	return app, calls
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, sig string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/voice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sig != "" {
		req.Header.Set(apphttp.SignatureHeader, sig)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

var callBody = []byte(`{"event":"call.completed","call_id":"vc-1","from":"+15551234567","summary":"roof leak"}`)

func TestWebhookVoice_FirmaValida(t *testing.T) {
	app, calls := webhookApp(webhookSecret)

	resp := postWebhook(t, app, callBody, "sha256="+signature.Sign(callBody, webhookSecret))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ack dto.WebhookAck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Created)
	assert.Equal(t, "vc-1", ack.CallID)
	assert.Len(t, calls.byVendor, 1)

	// Reenvío idempotente.
	resp2 := postWebhook(t, app, callBody, signature.Sign(callBody, webhookSecret))
	defer resp2.Body.Close()
	var ack2 dto.WebhookAck
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&ack2))
	assert.False(t, ack2.Created)
	assert.Len(t, calls.byVendor, 1)
}

func TestWebhookVoice_FirmaInvalida(t *testing.T) {
	app, calls := webhookApp(webhookSecret)

	for _, sig := range []string{"", "deadbeef", signature.Sign(callBody, "otro-secreto"), "zz-not-hex"} {
		resp := postWebhook(t, app, callBody, sig)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "firma %q", sig)
		resp.Body.Close()
	}
	assert.Empty(t, calls.byVendor)
}

func TestWebhookVoice_SinSecretoRechaza(t *testing.T) {
	app, calls := webhookApp("")
	resp := postWebhook(t, app, callBody, signature.Sign(callBody, webhookSecret))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, calls.byVendor)
}

func TestWebhookVoice_CuerpoInvalido(t *testing.T) {
	app, _ := webhookApp(webhookSecret)
	body := []byte(`{not json`)
	resp := postWebhook(t, app, body, signature.Sign(body, webhookSecret))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── contractors ───────────────────────────────────────────────────────────────

func contractorApp() *fiber.App {
	repo := &memContractors{items: map[string]entity.Contractor{
		"c-own":   {ID: "c-own", UserID: testUserID, BusinessName: "Own Roofing", Rating: entity.Rating{Overall: 3.5}},
		"c-other": {ID: "c-other", UserID: "someone-else", BusinessName: "Other LLC", Rating: entity.Rating{Overall: 4.6}},
	}}
	h := apphttp.NewContractorHandler(usecase.NewContractorUseCase(repo))

	app := fiber.New()
	g := app.Group("/api/contractors", apphttp.AuthMiddleware(testJWTSecret))
	g.Get("/:id", h.GetByID)
	g.Patch("/:id/rating", apphttp.RequireRole(entity.RoleOwner, entity.RoleAdmin), h.UpdateRating)
	return app
}

func getContractor(t *testing.T, app *fiber.App, id string, role entity.Role) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/contractors/"+id, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestContractorGetByID_Visibilidad(t *testing.T) {
	app := contractorApp()

	cases := []struct {
		id   string
		role entity.Role
		want int
	}{
		{"c-own", entity.RoleContractor, http.StatusOK},
		{"c-other", entity.RoleContractor, http.StatusForbidden},
		{"c-other", entity.RolePM, http.StatusOK},
		{"c-other", entity.RoleOwner, http.StatusOK},
		{"c-missing", entity.RoleAdmin, http.StatusNotFound},
	}
	for _, tc := range cases {
		resp := getContractor(t, app, tc.id, tc.role)
		assert.Equal(t, tc.want, resp.StatusCode, "%s como %s", tc.id, tc.role)
		resp.Body.Close()
	}
}

func TestContractorGetByID_IncluyeTier(t *testing.T) {
	app := contractorApp()
	resp := getContractor(t, app, "c-other", entity.RoleAdmin)
	defer resp.Body.Close()

	var out dto.ContractorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "elite", out.Tier)
}

func patchRating(t *testing.T, app *fiber.App, role entity.Role, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/contractors/c-own/rating", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestContractorUpdateRating(t *testing.T) {
	app := contractorApp()

	resp := patchRating(t, app, entity.RoleAdmin, `{"customer":5}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ContractorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 5.0, out.Rating.Customer)

	bad := patchRating(t, app, entity.RoleAdmin, `{"speed":7}`)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	denied := patchRating(t, app, entity.RoleContractor, `{"speed":5}`)
	defer denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)
}
