package soc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-care/vitalis-backend-go/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.SOCConfig{BaseURL: baseURL, Timeout: 5 * time.Second})
}

func TestExportDataSendsParametroBlob(t *testing.T) {
	var gotParametro string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParametro = r.URL.Query().Get("parametro")
		w.Write([]byte(`[{"CODIGO":"123","NOME":"Maria"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	body, err := client.ExportData(context.Background(), EmployeeParams{
		Empresa:   "999",
		Codigo:    "999",
		Chave:     "abc",
		TipoSaida: "json",
		Ativo:     "Sim",
	})
	require.NoError(t, err)

	var params map[string]string
	require.NoError(t, json.Unmarshal([]byte(gotParametro), &params))
	assert.Equal(t, "999", params["empresa"])
	assert.Equal(t, "abc", params["chave"])
	assert.Equal(t, "json", params["tipoSaida"])
	assert.Equal(t, "Sim", params["ativo"])
	assert.Equal(t, "", params["inativo"])

	rows, err := DecodeArray(body)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportDataNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ExportData(context.Background(), AbsenceParams{TipoSaida: "json"})
	assert.Error(t, err)
}

func TestDecodeArray(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		rows, err := DecodeArray([]byte(`[{"A":1},{"A":2}]`))
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("double encoded payload", func(t *testing.T) {
		inner := `[{"CODIGO":"1"}]`
		outer, err := json.Marshal(inner)
		require.NoError(t, err)

		rows, err := DecodeArray(outer)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("error object is rejected", func(t *testing.T) {
		_, err := DecodeArray([]byte(`{"Erro":"chave inválida"}`))
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("empty and null bodies are rejected", func(t *testing.T) {
		for _, body := range []string{"", "   ", "null", `""`} {
			_, err := DecodeArray([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidResponse, "body %q", body)
		}
	})

	t.Run("bad row does not fail the decode", func(t *testing.T) {
		rows, err := DecodeArray([]byte(`[{"SEXO":"abc"},{"SEXO":1}]`))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		var rec AbsenceRecord
		assert.Error(t, json.Unmarshal(rows[0], &rec))
		assert.NoError(t, json.Unmarshal(rows[1], &rec))
		assert.Equal(t, 1, rec.Sexo.Value)
	})
}
