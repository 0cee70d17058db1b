package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/partsdesk/partsdesk/internal/domain"
)

const (
	productsURI = "partsdesk://products"
	salesURI    = "partsdesk://sales"
)

func registerResources(s *server.MCPServer, src *source) {
	s.AddResource(
		mcplib.NewResource(
			productsURI,
			"Catalog",
			mcplib.WithResourceDescription("Every product of the saved catalog with its stock"),
			mcplib.WithMIMEType("application/json"),
		),
		handleResource(src, productsURI, func(sess *application.Session) any {
			return sess.Catalog.All()
		}),
	)

	s.AddResource(
		mcplib.NewResource(
			salesURI,
			"Sales",
			mcplib.WithResourceDescription("Every saved sale with its breakdown and customer"),
			mcplib.WithMIMEType("application/json"),
		),
		handleResource(src, salesURI, func(sess *application.Session) any {
			return viewSales(sess.Sales.All())
		}),
	)
}

type saleView struct {
	*domain.Sale
	Customer string `json:"customer"`
}

func viewSales(sales []*domain.Sale) []saleView {
	views := make([]saleView, 0, len(sales))
	for _, s := range sales {
		v := saleView{Sale: s}
		if s.Customer != nil {
			v.Customer = s.Customer.DisplayName()
		}
		views = append(views, v)
	}
	return views
}

func handleResource(src *source, uri string, pick func(*application.Session) any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		sess, err := src.open()
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(pick(sess), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", uri, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
