package web

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"iphones-store/internal/catalog"
)

// ProductForm holds the admin product form exactly as posted: every
// field a string (or list of strings), coerced only on submission.
type ProductForm struct {
	Nome                  string
	Modelo                string
	ArmazenamentoGB       string
	CondicaoAparelho      string
	PrecoTabela           string
	PrecoPromocional      string
	OpcoesParcelamento    string
	Estoque               string
	SKU                   string
	DescricaoDetalhada    string
	TamanhoTelaPolegadas  string
	ProcessadorChip       string
	CapacidadeBateria     string
	TipoConector          string
	ResistenciaAguaPoeira string
	SistemaOperacional    string
	VideoURL              string
	DimensoesAxLxC        string
	PesoG                 string
	GarantiaMeses         string
	StatusProduto         string

	CoresDisponiveis []string
	TipoConexao      []string
	RecursosCamera   []string
	Biometria        []string
	ImagensURLs      []string
}

func BindProductForm(c *gin.Context) ProductForm {
	return ProductForm{
		Nome:                  strings.TrimSpace(c.PostForm("nome")),
		Modelo:                strings.TrimSpace(c.PostForm("modelo")),
		ArmazenamentoGB:       strings.TrimSpace(c.PostForm("armazenamento_gb")),
		CondicaoAparelho:      strings.TrimSpace(c.PostForm("condicao_aparelho")),
		PrecoTabela:           strings.TrimSpace(c.PostForm("preco_tabela")),
		PrecoPromocional:      strings.TrimSpace(c.PostForm("preco_promocional")),
		OpcoesParcelamento:    strings.TrimSpace(c.PostForm("opcoes_parcelamento")),
		Estoque:               strings.TrimSpace(c.PostForm("estoque")),
		SKU:                   strings.TrimSpace(c.PostForm("sku")),
		DescricaoDetalhada:    strings.TrimSpace(c.PostForm("descricao_detalhada")),
		TamanhoTelaPolegadas:  strings.TrimSpace(c.PostForm("tamanho_tela_polegadas")),
		ProcessadorChip:       strings.TrimSpace(c.PostForm("processador_chip")),
		CapacidadeBateria:     strings.TrimSpace(c.PostForm("capacidade_bateria")),
		TipoConector:          strings.TrimSpace(c.PostForm("tipo_conector")),
		ResistenciaAguaPoeira: strings.TrimSpace(c.PostForm("resistencia_agua_poeira")),
		SistemaOperacional:    strings.TrimSpace(c.PostForm("sistema_operacional")),
		VideoURL:              strings.TrimSpace(c.PostForm("video_url")),
		DimensoesAxLxC:        strings.TrimSpace(c.PostForm("dimensoes_axlxc")),
		PesoG:                 strings.TrimSpace(c.PostForm("peso_g")),
		GarantiaMeses:         strings.TrimSpace(c.PostForm("garantia_meses")),
		StatusProduto:         strings.TrimSpace(c.PostForm("status_produto")),

		CoresDisponiveis: cleanList(c.PostFormArray("cores_disponiveis")),
		TipoConexao:      cleanList(c.PostFormArray("tipo_conexao")),
		RecursosCamera:   cleanList(c.PostFormArray("recursos_camera")),
		Biometria:        cleanList(c.PostFormArray("biometria")),
		ImagensURLs:      cleanList(c.PostFormArray("imagens_urls")),
	}
}

// ToInput coerces the posted strings into the backend payload. Required
// numerics must parse; optional ones serialize as null when left empty.
func (f ProductForm) ToInput() (catalog.ProductInput, error) {
	var input catalog.ProductInput

	storage, err := atoiField("armazenamento", f.ArmazenamentoGB)
	if err != nil {
		return input, err
	}
	listPrice, err := atofField("preço de tabela", f.PrecoTabela)
	if err != nil {
		return input, err
	}
	stock, err := atoiField("estoque", f.Estoque)
	if err != nil {
		return input, err
	}
	promo, err := optionalFloat("preço promocional", f.PrecoPromocional)
	if err != nil {
		return input, err
	}
	screen, err := optionalFloat("tamanho da tela", f.TamanhoTelaPolegadas)
	if err != nil {
		return input, err
	}
	weight, err := optionalFloat("peso", f.PesoG)
	if err != nil {
		return input, err
	}
	warranty, err := optionalInt("garantia", f.GarantiaMeses)
	if err != nil {
		return input, err
	}

	status := f.StatusProduto
	if status == "" {
		status = "Ativo"
	}

	return catalog.ProductInput{
		Nome:                  f.Nome,
		Modelo:                f.Modelo,
		ArmazenamentoGB:       storage,
		CoresDisponiveis:      f.CoresDisponiveis,
		CondicaoAparelho:      f.CondicaoAparelho,
		PrecoTabela:           listPrice,
		PrecoPromocional:      promo,
		OpcoesParcelamento:    f.OpcoesParcelamento,
		Estoque:               stock,
		SKU:                   f.SKU,
		DescricaoDetalhada:    f.DescricaoDetalhada,
		TamanhoTelaPolegadas:  screen,
		ProcessadorChip:       f.ProcessadorChip,
		CapacidadeBateria:     f.CapacidadeBateria,
		TipoConexao:           f.TipoConexao,
		TipoConector:          f.TipoConector,
		RecursosCamera:        f.RecursosCamera,
		ResistenciaAguaPoeira: f.ResistenciaAguaPoeira,
		SistemaOperacional:    f.SistemaOperacional,
		Biometria:             f.Biometria,
		ImagensURLs:           f.ImagensURLs,
		VideoURL:              f.VideoURL,
		DimensoesAxLxC:        f.DimensoesAxLxC,
		PesoG:                 weight,
		GarantiaMeses:         warranty,
		StatusProduto:         status,
	}, nil
}

// FormFromProduct prefills the edit form from a fetched product.
func FormFromProduct(p *catalog.Product) ProductForm {
	return ProductForm{
		Nome:                  p.Nome,
		Modelo:                p.Modelo,
		ArmazenamentoGB:       strconv.Itoa(p.ArmazenamentoGB),
		CondicaoAparelho:      catalog.DisplayValue(p.CondicaoAparelho),
		PrecoTabela:           trimFloat(p.PrecoTabela),
		PrecoPromocional:      optionalFloatString(p.PrecoPromocional),
		OpcoesParcelamento:    catalog.DisplayValue(p.OpcoesParcelamento),
		Estoque:               strconv.Itoa(p.Estoque),
		SKU:                   p.SKU,
		DescricaoDetalhada:    p.DescricaoDetalhada,
		TamanhoTelaPolegadas:  catalog.DisplayValue(p.TamanhoTelaPolegadas),
		ProcessadorChip:       catalog.DisplayValue(p.ProcessadorChip),
		CapacidadeBateria:     catalog.DisplayValue(p.CapacidadeBateria),
		TipoConector:          catalog.DisplayValue(p.TipoConector),
		ResistenciaAguaPoeira: catalog.DisplayValue(p.ResistenciaAguaPoeira),
		SistemaOperacional:    catalog.DisplayValue(p.SistemaOperacional),
		VideoURL:              p.VideoURL,
		DimensoesAxLxC:        catalog.DisplayValue(p.DimensoesAxLxC),
		PesoG:                 catalog.DisplayValue(p.PesoG),
		GarantiaMeses:         catalog.DisplayValue(p.GarantiaMeses),
		StatusProduto:         p.StatusProduto,

		CoresDisponiveis: listField(p.CoresDisponiveis),
		TipoConexao:      listField(p.TipoConexao),
		RecursosCamera:   listField(p.RecursosCamera),
		Biometria:        listField(p.Biometria),
		ImagensURLs:      p.ImagensURLs,
	}
}

// listField recovers the editable items behind a loosely-typed list
// attribute: a real string array when the wire had one, otherwise the
// normalized display split back on commas.
func listField(raw json.RawMessage) []string {
	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		return cleanList(items)
	}

	display := catalog.DisplayValue(raw)
	if display == "" {
		return nil
	}
	return cleanList(strings.Split(display, ","))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func atoiField(label, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("campo %s inválido", label)
	}
	return n, nil
}

func atofField(label, value string) (float64, error) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("campo %s inválido", label)
	}
	return n, nil
}

func optionalFloat(label, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	n, err := atofField(label, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalInt(label, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := atoiField(label, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalFloatString(v *float64) string {
	if v == nil {
		return ""
	}
	return trimFloat(*v)
}
