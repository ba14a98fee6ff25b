package server_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/clients"
	"github.com/mts-ml/eManage-sub000/sales"
)

func TestClientCRUD(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	// Create
	resp := f.post(t, "/api/clients", login.AccessToken, map[string]string{
		"name":  "Padaria Central",
		"email": "contato@padariacentral.com.br",
		"phone": "+55 11 99999-0001",
		"cnpj":  "12.345.678/0001-90",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created clients.Client
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Padaria Central", created.Name)

	// Get
	getResp := f.get(t, "/api/clients/"+created.ID, login.AccessToken)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	getResp.Body.Close()

	// Update
	updResp := f.request(t, http.MethodPut, "/api/clients/"+created.ID, login.AccessToken, map[string]string{
		"name":  "Padaria Central Ltda",
		"email": "contato@padariacentral.com.br",
	})
	require.Equal(t, http.StatusOK, updResp.StatusCode)

	var updated clients.Client
	require.NoError(t, json.NewDecoder(updResp.Body).Decode(&updated))
	updResp.Body.Close()
	require.Equal(t, "Padaria Central Ltda", updated.Name)

	// List
	listResp := f.get(t, "/api/clients", login.AccessToken)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list []*clients.Client
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()
	require.Len(t, list, 1)

	// Delete
	delResp := f.request(t, http.MethodDelete, "/api/clients/"+created.ID, login.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	goneResp := f.get(t, "/api/clients/"+created.ID, login.AccessToken)
	require.Equal(t, http.StatusNotFound, goneResp.StatusCode)
	goneResp.Body.Close()
}

func TestDuplicateClientEmailAnswers409(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	first := f.post(t, "/api/clients", login.AccessToken, map[string]string{
		"name":  "Mercado do Bairro",
		"email": "compras@mercadodobairro.com.br",
	})
	require.Equal(t, http.StatusCreated, first.StatusCode)
	first.Body.Close()

	dup := f.post(t, "/api/clients", login.AccessToken, map[string]string{
		"name":  "Outro Mercado",
		"email": "compras@mercadodobairro.com.br",
	})
	defer dup.Body.Close()
	require.Equal(t, http.StatusConflict, dup.StatusCode)

	field, message := decodeErrorBody(t, dup)
	require.Equal(t, "email", field)
	require.Equal(t, "Email já cadastrado", message)
}

func TestCreateClientValidatesRequiredFields(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	resp := f.post(t, "/api/clients", login.AccessToken, map[string]string{
		"email": "semnome@example.com",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	field, _ := decodeErrorBody(t, resp)
	require.Equal(t, "name", field)
}

func TestSaleComputesTotalServerSide(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	clientResp := f.post(t, "/api/clients", login.AccessToken, map[string]string{
		"name":  "Restaurante Sabor",
		"email": "pedidos@restaurantesabor.com.br",
	})
	require.Equal(t, http.StatusCreated, clientResp.StatusCode)
	var client clients.Client
	require.NoError(t, json.NewDecoder(clientResp.Body).Decode(&client))
	clientResp.Body.Close()

	saleResp := f.post(t, "/api/sales", login.AccessToken, map[string]any{
		"client_id": client.ID,
		"date":      time.Now().Format(time.RFC3339),
		"items": []map[string]any{
			{"product_id": "p1", "quantity": 4, "unit_price": "12.50"},
		},
		"amount_paid": "20.00",
	})
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)

	var sale sales.Sale
	require.NoError(t, json.NewDecoder(saleResp.Body).Decode(&sale))
	saleResp.Body.Close()

	require.True(t, sale.Total.Equal(decimal.RequireFromString("50.00")), "total = %s", sale.Total)
	require.Equal(t, sales.StatusPartial, sale.Status)
}

func TestCreateSaleRejectsUnknownClient(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	resp := f.post(t, "/api/sales", login.AccessToken, map[string]any{
		"client_id": "no-such-client",
		"date":      time.Now().Format(time.RFC3339),
		"items": []map[string]any{
			{"product_id": "p1", "quantity": 1, "unit_price": "1.00"},
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	field, _ := decodeErrorBody(t, resp)
	require.Equal(t, "client_id", field)
}

func TestCashFlowEndpoint(t *testing.T) {
	f := setupTestFixture(t)
	login := f.login(t)

	resp := f.post(t, "/api/expenses", login.AccessToken, map[string]any{
		"description": "combustível",
		"category":    "fuel",
		"amount":      "80.00",
		"date":        time.Now().Format(time.RFC3339),
		"paid":        true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	reportResp := f.get(t, "/api/reports/cashflow", login.AccessToken)
	defer reportResp.Body.Close()
	require.Equal(t, http.StatusOK, reportResp.StatusCode)

	var report struct {
		TotalSpent decimal.Decimal `json:"total_spent"`
		Net        decimal.Decimal `json:"net"`
	}
	require.NoError(t, json.NewDecoder(reportResp.Body).Decode(&report))
	require.True(t, report.TotalSpent.Equal(decimal.RequireFromString("80.00")), "spent = %s", report.TotalSpent)
	require.True(t, report.Net.Equal(decimal.RequireFromString("-80.00")), "net = %s", report.Net)

	badResp := f.get(t, "/api/reports/cashflow?from=not-a-date", login.AccessToken)
	defer badResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}
