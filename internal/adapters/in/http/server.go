package http

import (
	"net/http"
	"strconv"

	"github.com/thtta/farmlend/internal/core/application/usecases/commands"
	"github.com/thtta/farmlend/internal/core/application/usecases/queries"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	serviceName        = "farmlend"
	serviceVersion     = "1.0.0"
	serviceDescription = "Trade management backend for farm produce"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrganization commands.CreateOrganizationCommandHandler
	UpdateOrganization commands.UpdateOrganizationCommandHandler
	DeleteOrganization commands.DeleteOrganizationCommandHandler
	CreateProduct      commands.CreateProductCommandHandler
	UpdateProduct      commands.UpdateProductCommandHandler
	DeleteProduct      commands.DeleteProductCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetAllOrganizations queries.GetAllOrganizationsQueryHandler
	GetOrganization     queries.GetOrganizationQueryHandler
	GetAllProducts      queries.GetAllProductsQueryHandler
	GetProduct          queries.GetProductQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
// Mutations go through command handlers; created and updated resources are
// read back through the query side so responses carry the full relation
// graph.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Resource
// routes live under /api; the root route reports service info.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)

	api := e.Group("/api")

	api.POST("/organizations", s.CreateOrganization)
	api.GET("/organizations", s.GetOrganizations)
	api.GET("/organizations/:id", s.GetOrganization)
	api.PUT("/organizations/:id", s.UpdateOrganization)
	api.DELETE("/organizations/:id", s.DeleteOrganization)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Root handles GET / and reports the service's name and version.
func (s *Server) Root(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, serviceDescription, map[string]string{
		"service": serviceName,
		"version": serviceVersion,
	})
}

type organizationRequest struct {
	Name string  `json:"name"`
	Type *string `json:"type"`
}

type productRequest struct {
	Category       string `json:"category"`
	Variety        string `json:"variety"`
	Packaging      string `json:"packaging"`
	OrganizationID int64  `json:"organization_id"`
}

type orderLineRequest struct {
	ProductID    int64  `json:"product_id"`
	Volume       string `json:"volume"`
	PricePerUnit string `json:"price_per_unit"`
}

type orderRequest struct {
	Type           string             `json:"type"`
	OrganizationID int64              `json:"organization_id"`
	Orders         []int64            `json:"orders"`
	Products       []orderLineRequest `json:"products"`
}

func (r orderRequest) lines() []commands.OrderLineInput {
	lines := make([]commands.OrderLineInput, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, commands.OrderLineInput{
			ProductID:    p.ProductID,
			Volume:       p.Volume,
			PricePerUnit: p.PricePerUnit,
		})
	}
	return lines
}

// idParam parses the :id path parameter.
func idParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

// pageParams parses the ?page and ?perPage query parameters. Defaulting of
// missing or invalid values happens in the query constructors.
func pageParams(ctx echo.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	perPage, _ := strconv.Atoi(ctx.QueryParam("perPage"))
	return page, perPage
}

// CreateOrganization handles POST /api/organizations.
func (s *Server) CreateOrganization(ctx echo.Context) error {
	var req organizationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrganizationCommand(req.Name, req.Type)
	if err != nil {
		return handleError(ctx, err)
	}

	id, err := s.commands.CreateOrganization.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrganizationQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	detail, err := s.queries.GetOrganization.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "Organization has been created", detail)
}

// GetOrganizations handles GET /api/organizations.
func (s *Server) GetOrganizations(ctx echo.Context) error {
	page, perPage := pageParams(ctx)
	query := queries.NewGetAllOrganizationsQuery(page, perPage)

	items, meta, err := s.queries.GetAllOrganizations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respondPage(ctx, http.StatusOK, "Retrieved Organizations", map[string]any{
		"organizations": items,
	}, meta)
}

// GetOrganization handles GET /api/organizations/:id.
func (s *Server) GetOrganization(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrganizationQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}

	detail, err := s.queries.GetOrganization.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Retrieved Organization", detail)
}

// UpdateOrganization handles PUT /api/organizations/:id.
func (s *Server) UpdateOrganization(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req organizationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrganizationCommand(id, req.Name, req.Type)
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.UpdateOrganization.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrganizationQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	detail, err := s.queries.GetOrganization.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Organization has been updated", detail)
}

// DeleteOrganization handles DELETE /api/organizations/:id.
func (s *Server) DeleteOrganization(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrganizationCommand(id)
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.DeleteOrganization.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Organization has been deleted", nil)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Category, req.Variety, req.Packaging, req.OrganizationID)
	if err != nil {
		return handleError(ctx, err)
	}

	id, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	resp, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "Product has been created", resp)
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	page, perPage := pageParams(ctx)
	query := queries.NewGetAllProductsQuery(page, perPage)

	items, meta, err := s.queries.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respondPage(ctx, http.StatusOK, "Retrieved Products", map[string]any{
		"products": items,
	}, meta)
}

// GetProduct handles GET /api/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}

	resp, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Retrieved Product", resp)
}

// UpdateProduct handles PUT /api/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, req.Category, req.Variety, req.Packaging)
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	resp, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Product has been updated", resp)
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Product has been deleted", nil)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.Type, req.OrganizationID, req.Orders, req.lines())
	if err != nil {
		return handleError(ctx, err)
	}

	id, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	resp, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "Order has been created", resp)
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, perPage := pageParams(ctx)
	query := queries.NewGetAllOrdersQuery(page, perPage)

	items, meta, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respondPage(ctx, http.StatusOK, "Retrieved Orders", map[string]any{
		"orders": items,
	}, meta)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}

	resp, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Retrieved Order", resp)
}

// UpdateOrder handles PUT /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req orderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.Type, req.Orders, req.lines())
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return handleError(ctx, err)
	}
	resp, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Order has been updated", resp)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return handleError(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Order has been deleted", nil)
}
