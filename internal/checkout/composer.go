package checkout

import (
	"fmt"
	"net/url"

	"iphones-store/internal/catalog"
	"iphones-store/internal/order"
)

// Summary is the order-summary view model: a single line item, quantity
// always 1.
type Summary struct {
	Nome      string
	Image     string
	Quantity  int
	UnitPrice string
	Total     string
}

func BuildSummary(p *catalog.Product) Summary {
	price := catalog.FormatBRL(p.EffectivePrice())
	return Summary{
		Nome:      p.Nome,
		Image:     p.MainImage(),
		Quantity:  1,
		UnitPrice: price,
		Total:     price,
	}
}

// ComposeMessage builds the outbound purchase message from the product
// and the validated contact data.
func ComposeMessage(p *catalog.Product, d Draft) string {
	return fmt.Sprintf(`Olá! Tenho interesse no iPhone %s - %dGB, pelo preço de %s.

Meus dados para a compra são:
Nome: %s
Email: %s
Telefone: %s
Endereço: %s`,
		p.Nome, p.ArmazenamentoGB, catalog.FormatBRL(p.EffectivePrice()),
		d.Nome, d.Email, d.Telefone, d.Endereco,
	)
}

// WhatsAppLink is the messaging deep link carrying the composed,
// URL-escaped message.
func WhatsAppLink(number string, message string) string {
	return "https://api.whatsapp.com/send?phone=" + number + "&text=" + url.QueryEscape(message)
}

// BuildOrderInput assembles the order-creation payload for backend
// fulfillment.
func BuildOrderInput(p *catalog.Product, d Draft) order.NewOrderInput {
	price := p.EffectivePrice()
	return order.NewOrderInput{
		ClienteNome:     d.Nome,
		ClienteEmail:    d.Email,
		ClienteTelefone: d.Telefone,
		ClienteEndereco: d.Endereco,
		Produtos: []order.Item{{
			IphoneID:      p.ID,
			Nome:          p.Nome,
			Quantidade:    1,
			PrecoUnitario: price,
			ImagemURL:     p.MainImage(),
		}},
		Total: price,
	}
}
