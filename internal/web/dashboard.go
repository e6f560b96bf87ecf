package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iphones-store/internal/auth"
	"iphones-store/internal/catalog"
	"iphones-store/internal/logger"
	"iphones-store/internal/order"
)

// LoginPage shows the dashboard login form; already-authenticated
// admins skip straight to the dashboard.
func (h *Handler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil {
		if _, err := h.sessions.ParseToken(token); err == nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

// Login delegates to the identity provider and opens the session.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ident, err := h.idp.SignIn(c.Request.Context(), email, password)
	if err != nil {
		msg := "Erro ao fazer login. Verifique suas credenciais."
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			msg = "E-mail ou senha inválidos."
		case errors.Is(err, auth.ErrTooManyAttempts):
			msg = "Muitas tentativas de login. Tente novamente mais tarde."
		case errors.Is(err, auth.ErrProviderUnreachable):
			msg = "Erro de conexão. Verifique sua internet."
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": msg,
			"Email": email,
		})
		return
	}

	token, err := h.sessions.IssueToken(ident)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("session token issue failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Erro ao fazer login. Tente novamente.",
			"Email": email,
		})
		return
	}

	h.sessions.SignIn(ident)
	c.SetCookie(auth.SessionCookie, token, 3600, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout tears the session down and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.SignOut()
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard/login")
}

// DashboardPage is the admin overview.
func (h *Handler) DashboardPage(c *gin.Context) {
	ident, _ := auth.IdentityFrom(c.Request.Context())

	email := ""
	if ident != nil {
		email = ident.Email
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Email": email,
	})
}

// AdminProductsPage lists every product with edit/delete actions.
func (h *Handler) AdminProductsPage(c *gin.Context) {
	res, err := h.catalog.List(c.Request.Context(), catalog.ListOptions{})
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Title":   "Erro ao carregar produtos",
			"Message": notice(err),
		})
		return
	}

	c.HTML(http.StatusOK, "admin_products.html", gin.H{
		"Products": catalog.MapListItems(res.Products),
		"Notice":   c.Query("notice"),
	})
}

// NewProductPage renders an empty product form.
func (h *Handler) NewProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Title":  "Cadastrar Novo Produto",
		"Action": "/dashboard/products/new",
		"Form":   ProductForm{StatusProduto: "Ativo"},
	})
}

// CreateProduct coerces the form and posts it to the backend.
func (h *Handler) CreateProduct(c *gin.Context) {
	form := BindProductForm(c)

	input, err := form.ToInput()
	if err != nil {
		c.HTML(http.StatusBadRequest, "product_form.html", gin.H{
			"Title":  "Cadastrar Novo Produto",
			"Action": "/dashboard/products/new",
			"Form":   form,
			"Notice": err.Error(),
		})
		return
	}

	msg, err := h.catalog.Create(c.Request.Context(), input)
	if err != nil {
		c.HTML(http.StatusBadGateway, "product_form.html", gin.H{
			"Title":  "Cadastrar Novo Produto",
			"Action": "/dashboard/products/new",
			"Form":   form,
			"Notice": notice(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/products?notice="+escapeQuery(msg))
}

// EditProductPage renders the form prefilled from the backend record.
func (h *Handler) EditProductPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/products")
		return
	}

	p, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		c.HTML(statusFor(err), "error.html", gin.H{
			"Title":   "Erro ao carregar produto",
			"Message": notice(err),
		})
		return
	}

	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Title":  "Editar Produto",
		"Action": "/dashboard/products/edit/" + c.Param("id"),
		"Form":   FormFromProduct(p),
	})
}

// UpdateProduct coerces the form and puts it to the backend.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/products")
		return
	}

	form := BindProductForm(c)
	input, err := form.ToInput()
	if err != nil {
		c.HTML(http.StatusBadRequest, "product_form.html", gin.H{
			"Title":  "Editar Produto",
			"Action": "/dashboard/products/edit/" + c.Param("id"),
			"Form":   form,
			"Notice": err.Error(),
		})
		return
	}

	msg, err := h.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		c.HTML(http.StatusBadGateway, "product_form.html", gin.H{
			"Title":  "Editar Produto",
			"Action": "/dashboard/products/edit/" + c.Param("id"),
			"Form":   form,
			"Notice": notice(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/products?notice="+escapeQuery(msg))
}

// DeleteProduct removes a product and returns to the listing.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/products")
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/products?notice="+escapeQuery(notice(err)))
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/products?notice="+escapeQuery("Produto deletado com sucesso!"))
}

// AdminOrdersPage renders the order table from the poller snapshot; the
// page refreshes itself on the polling interval.
func (h *Handler) AdminOrdersPage(c *gin.Context) {
	snap := h.poller.Snapshot()

	errMsg := ""
	if snap.Err != nil {
		errMsg = notice(snap.Err)
	}

	c.HTML(http.StatusOK, "admin_orders.html", gin.H{
		"Orders":   snap.Orders,
		"Error":    errMsg,
		"Statuses": order.AllStatuses,
		"Notice":   c.Query("notice"),
		// The table refreshes itself on the polling interval.
		"Refresh": "5",
	})
}

// UpdateOrderStatus applies a status transition from the table select.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/orders")
		return
	}

	status := order.Status(c.PostForm("status"))
	if err := h.orders.UpdateStatus(c.Request.Context(), id, status); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/orders?notice="+escapeQuery(notice(err)))
		return
	}

	h.poller.Refresh(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/dashboard/orders")
}

// DeleteOrder removes an order from the table.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/orders")
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/orders?notice="+escapeQuery(notice(err)))
		return
	}

	h.poller.Refresh(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/dashboard/orders")
}
