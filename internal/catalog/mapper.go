package catalog

import "strings"

const placeholderImage = "https://placehold.co/300x300/e0e0e0/333333?text=iPhone"

// ListItem is a product card on the home grid.
type ListItem struct {
	ID            int
	Nome          string
	Modelo        string
	Armazenamento int
	Image         string
	OnSale        bool
	ListPrice     string
	Price         string
}

func MapListItem(p *Product) ListItem {
	image := p.MainImage()
	if image == "" {
		image = placeholderImage
	}
	return ListItem{
		ID:            p.ID,
		Nome:          p.Nome,
		Modelo:        p.Modelo,
		Armazenamento: p.ArmazenamentoGB,
		Image:         image,
		OnSale:        p.OnSale(),
		ListPrice:     FormatBRL(p.PrecoTabela),
		Price:         FormatBRL(p.EffectivePrice()),
	}
}

func MapListItems(products []Product) []ListItem {
	items := make([]ListItem, 0, len(products))
	for i := range products {
		items = append(items, MapListItem(&products[i]))
	}
	return items
}

// DetailView is the product detail page model.
type DetailView struct {
	ID            int
	Nome          string
	Modelo        string
	Armazenamento int
	Descricao     string
	OnSale        bool
	ListPrice     string
	Price         string
	Parcelamento  string
	Images        []string
	MainImage     string
	VideoEmbedURL string
	Specs         []Spec
}

func MapDetailView(p *Product) DetailView {
	mainImage := p.MainImage()
	if mainImage == "" {
		mainImage = placeholderImage
	}
	return DetailView{
		ID:            p.ID,
		Nome:          p.Nome,
		Modelo:        p.Modelo,
		Armazenamento: p.ArmazenamentoGB,
		Descricao:     p.DescricaoDetalhada,
		OnSale:        p.OnSale(),
		ListPrice:     FormatBRL(p.PrecoTabela),
		Price:         FormatBRL(p.EffectivePrice()),
		Parcelamento:  DisplayValue(p.OpcoesParcelamento),
		Images:        p.ImagensURLs,
		MainImage:     mainImage,
		VideoEmbedURL: EmbedURL(p.VideoURL),
		Specs:         p.Specs(),
	}
}

// EmbedURL rewrites a YouTube watch link into its embeddable form.
func EmbedURL(videoURL string) string {
	if videoURL == "" {
		return ""
	}
	return strings.Replace(videoURL, "watch?v=", "embed/", 1)
}
