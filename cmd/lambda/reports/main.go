package main

import (
	"context"

	"store-profit-api/internal/config"
	"store-profit-api/internal/handlers"
	"store-profit-api/pkg/lambda"
	"store-profit-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	cfg = config.AdaptConfigForServerless(cfg)

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	reportsHandler := handlers.NewReportsHandler(
		container.Services.EconomicsService,
		container.Services.PnLService,
		container.Services.CashFlowService,
		container.Services.InventoryService,
		container.Services.ProductMetricsService,
		container.Services.DecisionService,
	)

	var resp *lambda.Response
	var err error

	switch {
	case req.Method == "GET" && req.Path == "/api/v1/reports/pnl":
		resp, err = reportsHandler.HandlePnL(ctx, req)
	case req.Method == "GET" && req.Path == "/api/v1/reports/cashflow":
		resp, err = reportsHandler.HandleCashFlow(ctx, req)
	case req.Method == "GET" && req.Path == "/api/v1/reports/inventory":
		resp, err = reportsHandler.HandleInventory(ctx, req)
	case req.Method == "GET" && req.Path == "/api/v1/ceo/decision":
		resp, err = reportsHandler.HandleDecision(ctx, req)
	default:
		resp = &lambda.Response{
			StatusCode: 404,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Not found"}`),
		}
	}

	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
