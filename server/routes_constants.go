package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteAuthLogin   = "/api/auth/login"
	RouteAuthRefresh = "/api/auth/refresh"
	RouteAuthLogout  = "/api/auth/logout"

	// Registry Routes
	RouteClients      = "/api/clients"
	RouteClientByID   = "/api/clients/{id}"
	RouteSuppliers    = "/api/suppliers"
	RouteSupplierByID = "/api/suppliers/{id}"
	RouteProducts     = "/api/products"
	RouteProductByID  = "/api/products/{id}"
	RouteSales        = "/api/sales"
	RouteSaleByID     = "/api/sales/{id}"
	RoutePurchases    = "/api/purchases"
	RoutePurchaseByID = "/api/purchases/{id}"
	RouteExpenses     = "/api/expenses"
	RouteExpenseByID  = "/api/expenses/{id}"

	// Report Routes
	RouteReportCashFlow = "/api/reports/cashflow"
)
