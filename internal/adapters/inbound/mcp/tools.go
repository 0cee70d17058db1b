package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/partsdesk/partsdesk/internal/domain"
)

func registerTools(s *server.MCPServer, src *source) {
	s.AddTool(
		mcplib.NewTool("partsdesk_search_products",
			mcplib.WithDescription("Search the saved catalog. All filters are optional and combine; with none, every product is returned."),
			mcplib.WithString("name", mcplib.Description("Case-insensitive substring of the product name")),
			mcplib.WithString("category", mcplib.Description("Case-insensitive substring of the category")),
			mcplib.WithString("min_price", mcplib.Description("Lowest unit price, inclusive")),
			mcplib.WithString("max_price", mcplib.Description("Highest unit price, inclusive")),
			mcplib.WithNumber("min_inventory", mcplib.Description("Minimum units in stock")),
		),
		handleSearchProducts(src),
	)

	s.AddTool(
		mcplib.NewTool("partsdesk_pending_payments",
			mcplib.WithDescription("Lists credit installments still awaiting payment, with their due dates"),
		),
		handlePendingPayments(src),
	)

	s.AddTool(
		mcplib.NewTool("partsdesk_search_payments",
			mcplib.WithDescription("Search saved payments by customer identifier, day, instrument or currency"),
			mcplib.WithString("customer", mcplib.Description("National ID or tax ID of the payer")),
			mcplib.WithString("date", mcplib.Description("Day of the payment, YYYY-MM-DD")),
			mcplib.WithString("instrument", mcplib.Description("Payment instrument, e.g. Zelle")),
			mcplib.WithString("currency", mcplib.Description("USD or Bolívares")),
		),
		handleSearchPayments(src),
	)

	s.AddTool(
		mcplib.NewTool("partsdesk_statistics",
			mcplib.WithDescription("Sales, payment and shipment statistics over the saved session"),
		),
		handleStatistics(src),
	)
}

// paymentView flattens the references a payment keeps to its customer and sale.
type paymentView struct {
	*domain.Payment
	Customer string `json:"customer"`
	SaleID   int    `json:"sale_id"`
}

func viewPayments(payments []*domain.Payment) []paymentView {
	views := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		v := paymentView{Payment: p, SaleID: -1}
		if p.Customer != nil {
			v.Customer = p.Customer.DisplayName()
		}
		if p.Sale != nil {
			v.SaleID = p.Sale.ID
		}
		views = append(views, v)
	}
	return views
}

func handleSearchProducts(src *source) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filter, err := productFilter(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		sess, err := src.open()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		products, err := sess.Catalog.Search(filter)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if products == nil {
			products = []*domain.Product{}
		}
		return jsonResult(products)
	}
}

func productFilter(request mcplib.CallToolRequest) (domain.ProductFilter, error) {
	args := request.GetArguments()
	filter := domain.ProductFilter{}
	filter.Name, _ = args["name"].(string)
	filter.Category, _ = args["category"].(string)
	for arg, dst := range map[string]**decimal.Decimal{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		raw, _ := args[arg].(string)
		if raw == "" {
			continue
		}
		v, err := domain.ParseAmount(raw)
		if err != nil {
			return filter, fmt.Errorf("%s: %q is not a number", arg, raw)
		}
		*dst = &v
	}
	if n, ok := args["min_inventory"].(float64); ok {
		units := int(n)
		filter.MinInventory = &units
	}
	return filter, nil
}

func handlePendingPayments(src *source) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sess, err := src.open()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(viewPayments(sess.Payments.ListPending()))
	}
}

func handleSearchPayments(src *source) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sess, err := src.open()
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		var criterion domain.PaymentCriterion
		criterion.Instrument, _ = args["instrument"].(string)
		criterion.Currency, _ = args["currency"].(string)
		if id, _ := args["customer"].(string); id != "" {
			c, err := sess.Customers.FindByIdentifier(id)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			criterion.CustomerKey = c.Key()
		}
		if raw, _ := args["date"].(string); raw != "" {
			var day time.Time
			if day, err = domain.ParseDay(raw); err != nil {
				return errorResult(err.Error()), nil
			}
			criterion.Date = &day
		}
		return jsonResult(viewPayments(sess.Payments.Search(criterion)))
	}
}

func handleStatistics(src *source) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sess, err := src.open()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(sess.Stats.Compute())
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
