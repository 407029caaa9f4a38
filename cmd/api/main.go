package main

import (
	_ "socis_remeses/docs"
	"socis_remeses/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Socis & Remeses API
// @version         1.0
// @description     Association members, SEPA mandates, quotes and pain.008 direct-debit remittances.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
