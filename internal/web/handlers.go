package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"iphones-store/internal/auth"
	"iphones-store/internal/backend"
	"iphones-store/internal/catalog"
	"iphones-store/internal/checkout"
	"iphones-store/internal/config"
	"iphones-store/internal/order"
)

const connectionNotice = "Erro de conexão com o servidor."

type Handler struct {
	catalog  catalog.Service
	orders   order.Service
	checkout checkout.Service
	idp      auth.IdentityProvider
	sessions *auth.SessionProvider
	poller   *order.Poller
	cfg      *config.Config
}

func NewHandler(
	catalogSvc catalog.Service,
	orderSvc order.Service,
	checkoutSvc checkout.Service,
	idp auth.IdentityProvider,
	sessions *auth.SessionProvider,
	poller *order.Poller,
	cfg *config.Config,
) *Handler {
	return &Handler{
		catalog:  catalogSvc,
		orders:   orderSvc,
		checkout: checkoutSvc,
		idp:      idp,
		sessions: sessions,
		poller:   poller,
		cfg:      cfg,
	}
}

// notice extracts the message a failed backend call should show: the
// generic connection notice for transport failures, the server-provided
// message otherwise.
func notice(err error) string {
	if errors.Is(err, backend.ErrConnection) {
		return connectionNotice
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// HomePage renders the product grid with the listing filters applied.
func (h *Handler) HomePage(c *gin.Context) {
	storage, _ := strconv.Atoi(c.Query("storage"))
	opts := catalog.ListOptions{
		Search:    c.Query("q"),
		Model:     c.Query("model"),
		StorageGB: storage,
		Sort:      c.DefaultQuery("sort", catalog.SortLatest),
	}

	res, err := h.catalog.List(c.Request.Context(), opts)
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Title":   "Erro ao carregar iPhones",
			"Message": notice(err),
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Products": catalog.MapListItems(res.Products),
		"Models":   res.Models,
		"Storages": res.Storages,
		"Search":   opts.Search,
		"Model":    opts.Model,
		"Storage":  opts.StorageGB,
		"Sort":     opts.Sort,
		"Notice":   c.Query("notice"),
	})
}

// ProductDetailPage renders one product with its normalized spec table.
func (h *Handler) ProductDetailPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Title":   "iPhone não encontrado.",
			"Message": "ID do iPhone não fornecido na URL.",
		})
		return
	}

	p, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		c.HTML(statusFor(err), "error.html", gin.H{
			"Title":   "Erro ao carregar iPhone",
			"Message": notice(err),
		})
		return
	}

	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Product": catalog.MapDetailView(p),
	})
}

// CheckoutPage renders the contact form next to the order summary.
func (h *Handler) CheckoutPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("iphoneId"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/?notice="+escapeQuery("Nenhum iPhone selecionado para a compra."))
		return
	}

	p, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		c.HTML(statusFor(err), "error.html", gin.H{
			"Title":   "Erro no Checkout",
			"Message": notice(err),
		})
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"IphoneID": p.ID,
		"Summary":  checkout.BuildSummary(p),
		"Draft":    checkout.Draft{},
	})
}

// PlaceOrder validates the draft and runs the configured fulfillment.
// Validation failures re-render the form with the entered values and
// make no backend call.
func (h *Handler) PlaceOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("iphone_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/?notice="+escapeQuery("Nenhum iPhone selecionado para a compra."))
		return
	}

	p, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		c.HTML(statusFor(err), "error.html", gin.H{
			"Title":   "Erro no Checkout",
			"Message": notice(err),
		})
		return
	}

	draft := checkout.Draft{
		Nome:     c.PostForm("nome"),
		Email:    c.PostForm("email"),
		Telefone: c.PostForm("telefone"),
		Endereco: c.PostForm("endereco"),
	}

	res, err := h.checkout.Submit(c.Request.Context(), p, draft)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, checkout.ErrMissingFields) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "checkout.html", gin.H{
			"IphoneID": p.ID,
			"Summary":  checkout.BuildSummary(p),
			"Draft":    draft,
			"Notice":   notice(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, res.RedirectURL)
}

// OrderConfirmationPage shows the confirmation card after backend
// fulfillment.
func (h *Handler) OrderConfirmationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"OrderID": c.Query("orderId"),
	})
}

func escapeQuery(s string) string {
	return url.QueryEscape(s)
}

func statusFor(err error) int {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
