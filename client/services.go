package client

import (
	"context"
	"net/url"
	"time"

	"github.com/mts-ml/eManage-sub000/clients"
	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/gateway"
	"github.com/mts-ml/eManage-sub000/products"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/reports"
	"github.com/mts-ml/eManage-sub000/sales"
	"github.com/mts-ml/eManage-sub000/suppliers"
)

const (
	pathClients        = "/api/clients"
	pathSuppliers      = "/api/suppliers"
	pathProducts       = "/api/products"
	pathSales          = "/api/sales"
	pathPurchases      = "/api/purchases"
	pathExpenses       = "/api/expenses"
	pathReportCashFlow = "/api/reports/cashflow"
)

// ClientsService accesses the customer registry.
type ClientsService struct {
	gw *gateway.Gateway
}

func (s *ClientsService) List(ctx context.Context) ([]*clients.Client, error) {
	var out []*clients.Client
	if err := s.gw.Get(ctx, pathClients, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ClientsService) Create(ctx context.Context, client *clients.Client) (*clients.Client, error) {
	var out clients.Client
	if err := s.gw.Post(ctx, pathClients, client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientsService) Get(ctx context.Context, id string) (*clients.Client, error) {
	var out clients.Client
	if err := s.gw.Get(ctx, pathClients+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientsService) Update(ctx context.Context, id string, client *clients.Client) (*clients.Client, error) {
	var out clients.Client
	if err := s.gw.Put(ctx, pathClients+"/"+id, client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientsService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathClients+"/"+id)
}

// SuppliersService accesses the supplier registry.
type SuppliersService struct {
	gw *gateway.Gateway
}

func (s *SuppliersService) List(ctx context.Context) ([]*suppliers.Supplier, error) {
	var out []*suppliers.Supplier
	if err := s.gw.Get(ctx, pathSuppliers, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SuppliersService) Create(ctx context.Context, supplier *suppliers.Supplier) (*suppliers.Supplier, error) {
	var out suppliers.Supplier
	if err := s.gw.Post(ctx, pathSuppliers, supplier, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SuppliersService) Get(ctx context.Context, id string) (*suppliers.Supplier, error) {
	var out suppliers.Supplier
	if err := s.gw.Get(ctx, pathSuppliers+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SuppliersService) Update(ctx context.Context, id string, supplier *suppliers.Supplier) (*suppliers.Supplier, error) {
	var out suppliers.Supplier
	if err := s.gw.Put(ctx, pathSuppliers+"/"+id, supplier, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SuppliersService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathSuppliers+"/"+id)
}

// ProductsService accesses the product catalog.
type ProductsService struct {
	gw *gateway.Gateway
}

func (s *ProductsService) List(ctx context.Context) ([]*products.Product, error) {
	var out []*products.Product
	if err := s.gw.Get(ctx, pathProducts, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductsService) Create(ctx context.Context, product *products.Product) (*products.Product, error) {
	var out products.Product
	if err := s.gw.Post(ctx, pathProducts, product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Get(ctx context.Context, id string) (*products.Product, error) {
	var out products.Product
	if err := s.gw.Get(ctx, pathProducts+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Update(ctx context.Context, id string, product *products.Product) (*products.Product, error) {
	var out products.Product
	if err := s.gw.Put(ctx, pathProducts+"/"+id, product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathProducts+"/"+id)
}

// SalesService accesses sales orders.
type SalesService struct {
	gw *gateway.Gateway
}

func (s *SalesService) List(ctx context.Context) ([]*sales.Sale, error) {
	var out []*sales.Sale
	if err := s.gw.Get(ctx, pathSales, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStatus lists only the sales in the given payment state.
func (s *SalesService) ListByStatus(ctx context.Context, status sales.PaymentStatus) ([]*sales.Sale, error) {
	var out []*sales.Sale
	query := url.Values{"status": {string(status)}}
	if err := s.gw.Get(ctx, pathSales, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SalesService) Create(ctx context.Context, sale *sales.Sale) (*sales.Sale, error) {
	var out sales.Sale
	if err := s.gw.Post(ctx, pathSales, sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SalesService) Get(ctx context.Context, id string) (*sales.Sale, error) {
	var out sales.Sale
	if err := s.gw.Get(ctx, pathSales+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SalesService) Update(ctx context.Context, id string, sale *sales.Sale) (*sales.Sale, error) {
	var out sales.Sale
	if err := s.gw.Put(ctx, pathSales+"/"+id, sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SalesService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathSales+"/"+id)
}

// PurchasesService accesses purchase orders.
type PurchasesService struct {
	gw *gateway.Gateway
}

func (s *PurchasesService) List(ctx context.Context) ([]*purchases.Purchase, error) {
	var out []*purchases.Purchase
	if err := s.gw.Get(ctx, pathPurchases, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PurchasesService) Create(ctx context.Context, purchase *purchases.Purchase) (*purchases.Purchase, error) {
	var out purchases.Purchase
	if err := s.gw.Post(ctx, pathPurchases, purchase, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PurchasesService) Get(ctx context.Context, id string) (*purchases.Purchase, error) {
	var out purchases.Purchase
	if err := s.gw.Get(ctx, pathPurchases+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PurchasesService) Update(ctx context.Context, id string, purchase *purchases.Purchase) (*purchases.Purchase, error) {
	var out purchases.Purchase
	if err := s.gw.Put(ctx, pathPurchases+"/"+id, purchase, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PurchasesService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathPurchases+"/"+id)
}

// ExpensesService accesses operating expenses.
type ExpensesService struct {
	gw *gateway.Gateway
}

func (s *ExpensesService) List(ctx context.Context) ([]*expenses.Expense, error) {
	var out []*expenses.Expense
	if err := s.gw.Get(ctx, pathExpenses, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExpensesService) Create(ctx context.Context, expense *expenses.Expense) (*expenses.Expense, error) {
	var out expenses.Expense
	if err := s.gw.Post(ctx, pathExpenses, expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExpensesService) Get(ctx context.Context, id string) (*expenses.Expense, error) {
	var out expenses.Expense
	if err := s.gw.Get(ctx, pathExpenses+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExpensesService) Update(ctx context.Context, id string, expense *expenses.Expense) (*expenses.Expense, error) {
	var out expenses.Expense
	if err := s.gw.Put(ctx, pathExpenses+"/"+id, expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, pathExpenses+"/"+id)
}

// ReportsService accesses financial reports.
type ReportsService struct {
	gw *gateway.Gateway
}

// CashFlow fetches the period summary. Zero times are omitted, letting the
// server apply its defaults.
func (s *ReportsService) CashFlow(ctx context.Context, from, to time.Time) (*reports.CashFlow, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.Format(time.RFC3339))
	}
	var out reports.CashFlow
	if err := s.gw.Get(ctx, pathReportCashFlow, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
