package order

import "time"

// Status values are stored by the backend with the storefront's
// original labels.
type Status string

const (
	StatusPending    Status = "Pendente"
	StatusProcessing Status = "Em processamento"
	StatusCompleted  Status = "Concluído"
	StatusCancelled  Status = "Cancelado"
)

// AllStatuses in table-select order.
var AllStatuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Item struct {
	IphoneID      int     `json:"iphone_id"`
	Nome          string  `json:"nome"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	ImagemURL     string  `json:"imagem_url"`
}

type Order struct {
	ID              int       `json:"id"`
	ClienteNome     string    `json:"cliente_nome"`
	ClienteEmail    string    `json:"cliente_email"`
	ClienteTelefone string    `json:"cliente_telefone"`
	ClienteEndereco string    `json:"cliente_endereco"`
	Produtos        []Item    `json:"produtos"`
	Total           float64   `json:"total"`
	Status          Status    `json:"status"`
	DataCriacao     time.Time `json:"data_criacao"`
}

// NewOrderInput is the checkout payload posted to the backend.
type NewOrderInput struct {
	ClienteNome     string  `json:"cliente_nome"`
	ClienteEmail    string  `json:"cliente_email"`
	ClienteTelefone string  `json:"cliente_telefone"`
	ClienteEndereco string  `json:"cliente_endereco"`
	Produtos        []Item  `json:"produtos"`
	Total           float64 `json:"total"`
}
