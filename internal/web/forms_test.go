package web

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iphones-store/internal/catalog"
)

func postFormContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestBindProductForm(t *testing.T) {
	values := url.Values{
		"nome":             {" iPhone 15 Pro "},
		"modelo":           {"15 Pro"},
		"armazenamento_gb": {"256"},
		"preco_tabela":     {"7999.90"},
		"estoque":          {"5"},
		"cores_disponiveis": {"Azul", "", "Preto", "   "},
		"tipo_conexao":      {"5G", "LTE"},
	}

	c := postFormContext(t, values)
	form := BindProductForm(c)

	assert.Equal(t, "iPhone 15 Pro", form.Nome)
	// Blank repeatable entries are dropped.
	assert.Equal(t, []string{"Azul", "Preto"}, form.CoresDisponiveis)
	assert.Equal(t, []string{"5G", "LTE"}, form.TipoConexao)
}

func TestProductForm_ToInput(t *testing.T) {
	base := ProductForm{
		Nome:            "iPhone 15",
		Modelo:          "15",
		ArmazenamentoGB: "128",
		PrecoTabela:     "5000",
		Estoque:         "10",
	}

	t.Run("RequiredNumericsCoerced", func(t *testing.T) {
		input, err := base.ToInput()
		require.NoError(t, err)
		assert.Equal(t, 128, input.ArmazenamentoGB)
		assert.Equal(t, 5000.0, input.PrecoTabela)
		assert.Equal(t, 10, input.Estoque)
		assert.Equal(t, "Ativo", input.StatusProduto)
	})

	t.Run("EmptyOptionalsBecomeNull", func(t *testing.T) {
		input, err := base.ToInput()
		require.NoError(t, err)
		assert.Nil(t, input.PrecoPromocional)
		assert.Nil(t, input.TamanhoTelaPolegadas)
		assert.Nil(t, input.PesoG)
		assert.Nil(t, input.GarantiaMeses)

		payload, err := json.Marshal(input)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"preco_promocional":null`)
		assert.Contains(t, string(payload), `"garantia_meses":null`)
	})

	t.Run("FilledOptionalsParsed", func(t *testing.T) {
		form := base
		form.PrecoPromocional = "4500.50"
		form.GarantiaMeses = "12"

		input, err := form.ToInput()
		require.NoError(t, err)
		require.NotNil(t, input.PrecoPromocional)
		assert.Equal(t, 4500.50, *input.PrecoPromocional)
		require.NotNil(t, input.GarantiaMeses)
		assert.Equal(t, 12, *input.GarantiaMeses)
	})

	t.Run("BadRequiredNumeric", func(t *testing.T) {
		form := base
		form.PrecoTabela = "caro"
		_, err := form.ToInput()
		assert.ErrorContains(t, err, "preço de tabela")
	})

	t.Run("BadOptionalNumeric", func(t *testing.T) {
		form := base
		form.PesoG = "pesado"
		_, err := form.ToInput()
		assert.ErrorContains(t, err, "peso")
	})
}

func TestFormFromProduct(t *testing.T) {
	promo := 4500.0
	p := &catalog.Product{
		ID:               3,
		Nome:             "iPhone 15 Pro",
		Modelo:           "15 Pro",
		ArmazenamentoGB:  256,
		PrecoTabela:      7999.9,
		PrecoPromocional: &promo,
		Estoque:          4,
		TipoConexao:      json.RawMessage(`["5G","LTE"]`),
		RecursosCamera:   json.RawMessage(`"[\"Modo Noite\",\"ProRAW\"]"`),
		Biometria:        json.RawMessage(`"Face ID"`),
		GarantiaMeses:    json.RawMessage(`12`),
		ImagensURLs:      []string{"a.jpg", "b.jpg"},
	}

	form := FormFromProduct(p)

	assert.Equal(t, "256", form.ArmazenamentoGB)
	assert.Equal(t, "7999.9", form.PrecoTabela)
	assert.Equal(t, "4500", form.PrecoPromocional)
	assert.Equal(t, "12", form.GarantiaMeses)
	// Real arrays come back item by item.
	assert.Equal(t, []string{"5G", "LTE"}, form.TipoConexao)
	// JSON-encoded arrays are recovered through the normalizer.
	assert.Equal(t, []string{"Modo Noite", "ProRAW"}, form.RecursosCamera)
	// Scalar attributes stay single-item lists.
	assert.Equal(t, []string{"Face ID"}, form.Biometria)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, form.ImagensURLs)
}
