package catalog

import (
	"encoding/json"
	"time"
)

// Product is the wire shape delivered by the backend. The technical
// attributes are not firmly typed at the source (arrays, objects,
// JSON-encoded strings and plain strings all occur), so they are kept
// raw here and decoded exactly once through DisplayValue.
type Product struct {
	ID                 int      `json:"id"`
	Nome               string   `json:"nome"`
	Modelo             string   `json:"modelo"`
	ArmazenamentoGB    int      `json:"armazenamento_gb"`
	PrecoTabela        float64  `json:"preco_tabela"`
	PrecoPromocional   *float64 `json:"preco_promocional"`
	Estoque            int      `json:"estoque"`
	SKU                string   `json:"sku"`
	DescricaoDetalhada string   `json:"descricao_detalhada"`

	OpcoesParcelamento    json.RawMessage `json:"opcoes_parcelamento,omitempty"`
	TamanhoTelaPolegadas  json.RawMessage `json:"tamanho_tela_polegadas,omitempty"`
	ProcessadorChip       json.RawMessage `json:"processador_chip,omitempty"`
	CapacidadeBateria     json.RawMessage `json:"capacidade_bateria,omitempty"`
	TipoConexao           json.RawMessage `json:"tipo_conexao,omitempty"`
	TipoConector          json.RawMessage `json:"tipo_conector,omitempty"`
	RecursosCamera        json.RawMessage `json:"recursos_camera,omitempty"`
	ResistenciaAguaPoeira json.RawMessage `json:"resistencia_agua_poeira,omitempty"`
	SistemaOperacional    json.RawMessage `json:"sistema_operacional,omitempty"`
	Biometria             json.RawMessage `json:"biometria,omitempty"`
	DimensoesAxLxC        json.RawMessage `json:"dimensoes_axlxc,omitempty"`
	PesoG                 json.RawMessage `json:"peso_g,omitempty"`
	GarantiaMeses         json.RawMessage `json:"garantia_meses,omitempty"`
	CondicaoAparelho      json.RawMessage `json:"condicao_aparelho,omitempty"`
	CoresDisponiveis      json.RawMessage `json:"cores_disponiveis,omitempty"`

	ImagensURLs   []string  `json:"imagens_urls"`
	VideoURL      string    `json:"video_url"`
	StatusProduto string    `json:"status_produto"`
	DataCriacao   time.Time `json:"data_criacao"`
}

// EffectivePrice prefers a nonzero promotional price over the list price.
func (p *Product) EffectivePrice() float64 {
	if p.PrecoPromocional != nil && *p.PrecoPromocional != 0 {
		return *p.PrecoPromocional
	}
	return p.PrecoTabela
}

// OnSale reports whether the struck-through list price should be shown.
func (p *Product) OnSale() bool {
	return p.PrecoPromocional != nil && *p.PrecoPromocional != 0
}

// MainImage returns the first gallery image, or empty when there is none.
func (p *Product) MainImage() string {
	if len(p.ImagensURLs) > 0 {
		return p.ImagensURLs[0]
	}
	return ""
}

// Spec is one normalized technical attribute ready for display.
type Spec struct {
	Label string
	Value string
}

// Specs renders the technical attributes in the storefront's fixed
// order, omitting everything that normalizes to nothing.
func (p *Product) Specs() []Spec {
	candidates := []struct {
		label string
		raw   json.RawMessage
	}{
		{"Tela", p.TamanhoTelaPolegadas},
		{"Chip", p.ProcessadorChip},
		{"Bateria", p.CapacidadeBateria},
		{"Conectividade", p.TipoConexao},
		{"Conector", p.TipoConector},
		{"Câmera", p.RecursosCamera},
		{"Resistência", p.ResistenciaAguaPoeira},
		{"Sistema", p.SistemaOperacional},
		{"Biometria", p.Biometria},
		{"Dimensões", p.DimensoesAxLxC},
		{"Peso", p.PesoG},
		{"Garantia", p.GarantiaMeses},
		{"Condição", p.CondicaoAparelho},
		{"Cores", p.CoresDisponiveis},
	}

	specs := make([]Spec, 0, len(candidates))
	for _, c := range candidates {
		if v := DisplayValue(c.raw); v != "" {
			specs = append(specs, Spec{Label: c.label, Value: v})
		}
	}
	return specs
}

// ProductInput is the admin form payload sent to the backend. Optional
// numeric fields are pointers so that empty form inputs serialize as null.
type ProductInput struct {
	Nome                  string   `json:"nome"`
	Modelo                string   `json:"modelo"`
	ArmazenamentoGB       int      `json:"armazenamento_gb"`
	CoresDisponiveis      []string `json:"cores_disponiveis"`
	CondicaoAparelho      string   `json:"condicao_aparelho"`
	PrecoTabela           float64  `json:"preco_tabela"`
	PrecoPromocional      *float64 `json:"preco_promocional"`
	OpcoesParcelamento    string   `json:"opcoes_parcelamento"`
	Estoque               int      `json:"estoque"`
	SKU                   string   `json:"sku"`
	DescricaoDetalhada    string   `json:"descricao_detalhada"`
	TamanhoTelaPolegadas  *float64 `json:"tamanho_tela_polegadas"`
	ProcessadorChip       string   `json:"processador_chip"`
	CapacidadeBateria     string   `json:"capacidade_bateria"`
	TipoConexao           []string `json:"tipo_conexao"`
	TipoConector          string   `json:"tipo_conector"`
	RecursosCamera        []string `json:"recursos_camera"`
	ResistenciaAguaPoeira string   `json:"resistencia_agua_poeira"`
	SistemaOperacional    string   `json:"sistema_operacional"`
	Biometria             []string `json:"biometria"`
	ImagensURLs           []string `json:"imagens_urls"`
	VideoURL              string   `json:"video_url"`
	DimensoesAxLxC        string   `json:"dimensoes_axlxc"`
	PesoG                 *float64 `json:"peso_g"`
	GarantiaMeses         *int     `json:"garantia_meses"`
	StatusProduto         string   `json:"status_produto"`
}
