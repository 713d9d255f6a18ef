package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"

	"github.com/example/perfdash/internal/container"
	"github.com/example/perfdash/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		ObjectiveHandler: c.ObjectiveContainer.Handler,
		ProfileHandler:   c.ProfileContainer.Handler,
		ContractHandler:  c.ContractContainer.Handler,
	})

	r := chi.NewRouter()
	r.Mount("/", handler)
	chiLambda = chiadapter.New(r)
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handleRequest)
}
