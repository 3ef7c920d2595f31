package handlers

// @title Store Profit API
// @version 1.0
// @description Financial derivation service for e-commerce stores: order economics, P&L, cash flow, inventory valuation and advisory signals
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/your-org/store-profit-api
// @contact.email support@store-profit.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name reports
// @tag.description Derived financial reports

// @tag.name advisory
// @tag.description Decision engine and executive briefing

// @tag.name registry
// @tag.description Cost rules, catalog and ledger mutations

// @tag.name system
// @tag.description Store connection, demo mode and invoice uploads
