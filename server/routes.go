package server

import "net/http"

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.PublicMiddleware(s.RateLimitMiddleware)...))
	s.RegisterRouteHandler("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), s.PublicMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// CLIENTS
	s.RegisterRouteHandler("GET "+RouteClients, ChainMiddleware(s.ListClientsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteClients, ChainMiddleware(s.CreateClientHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteClientByID, ChainMiddleware(s.GetClientHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteClientByID, ChainMiddleware(s.UpdateClientHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteClientByID, ChainMiddleware(s.DeleteClientHandler(), s.APIMiddleware()...))

	// SUPPLIERS
	s.RegisterRouteHandler("GET "+RouteSuppliers, ChainMiddleware(s.ListSuppliersHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteSuppliers, ChainMiddleware(s.CreateSupplierHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSupplierByID, ChainMiddleware(s.GetSupplierHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteSupplierByID, ChainMiddleware(s.UpdateSupplierHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteSupplierByID, ChainMiddleware(s.DeleteSupplierHandler(), s.APIMiddleware()...))

	// PRODUCTS
	s.RegisterRouteHandler("GET "+RouteProducts, ChainMiddleware(s.ListProductsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteProducts, ChainMiddleware(s.CreateProductHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteProductByID, ChainMiddleware(s.GetProductHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteProductByID, ChainMiddleware(s.UpdateProductHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteProductByID, ChainMiddleware(s.DeleteProductHandler(), s.APIMiddleware()...))

	// SALES
	s.RegisterRouteHandler("GET "+RouteSales, ChainMiddleware(s.ListSalesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteSales, ChainMiddleware(s.CreateSaleHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSaleByID, ChainMiddleware(s.GetSaleHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteSaleByID, ChainMiddleware(s.UpdateSaleHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteSaleByID, ChainMiddleware(s.DeleteSaleHandler(), s.APIMiddleware()...))

	// PURCHASES
	s.RegisterRouteHandler("GET "+RoutePurchases, ChainMiddleware(s.ListPurchasesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RoutePurchases, ChainMiddleware(s.CreatePurchaseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePurchaseByID, ChainMiddleware(s.GetPurchaseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RoutePurchaseByID, ChainMiddleware(s.UpdatePurchaseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePurchaseByID, ChainMiddleware(s.DeletePurchaseHandler(), s.APIMiddleware()...))

	// EXPENSES
	s.RegisterRouteHandler("GET "+RouteExpenses, ChainMiddleware(s.ListExpensesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteExpenses, ChainMiddleware(s.CreateExpenseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteExpenseByID, ChainMiddleware(s.GetExpenseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteExpenseByID, ChainMiddleware(s.UpdateExpenseHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteExpenseByID, ChainMiddleware(s.DeleteExpenseHandler(), s.APIMiddleware()...))

	// REPORTS
	s.RegisterRouteHandler("GET "+RouteReportCashFlow, ChainMiddleware(s.CashFlowHandler(), s.APIMiddleware()...))

	// CORS preflight for the SPA
	s.RegisterRouteFunc("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, s.CorsMiddleware))
}
