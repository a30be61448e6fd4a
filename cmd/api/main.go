package main

import (
	_ "webpay_billing/docs"
	"webpay_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WebPay Billing API
// @version         1.0
// @description     Card payments through the WebPay gateway: stored sources, authorize/capture, void and refunds. Backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
