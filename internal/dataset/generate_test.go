package dataset

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/datasmiths/shopforge/internal/synth"
)

var testNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func newProvider(t *testing.T) *synth.Provider {
	t.Helper()
	return synth.NewAt(42, testNow)
}

func TestGenerateCustomersDenseIDs(t *testing.T) {
	for _, n := range []int{0, 1, 25} {
		customers := GenerateCustomers(newProvider(t), n)
		if len(customers) != n {
			t.Fatalf("n=%d: got %d customers", n, len(customers))
		}
		for i, c := range customers {
			if c.CustomerID != i+1 {
				t.Errorf("n=%d: customer %d has id %d", n, i, c.CustomerID)
			}
			if c.Name == "" || c.Email == "" || c.City == "" {
				t.Errorf("n=%d: customer %d has empty fields: %+v", n, i, c)
			}
		}
	}
}

func TestGenerateProductsDenseIDsAndCategories(t *testing.T) {
	valid := map[string]bool{"Electronics": true, "Fashion": true, "Home": true, "Sports": true, "Beauty": true}

	products := GenerateProducts(newProvider(t), 25)
	if len(products) != 25 {
		t.Fatalf("got %d products", len(products))
	}
	for i, p := range products {
		if p.ProductID != i+1 {
			t.Errorf("product %d has id %d", i, p.ProductID)
		}
		if !valid[p.Category] {
			t.Errorf("product %d has category %q", i, p.Category)
		}
		f, _ := p.Price.Float64()
		if f < 10 || f > 500 {
			t.Errorf("product %d has price %s", i, p.Price)
		}
	}
}

func TestGenerateOrdersReferencesCustomers(t *testing.T) {
	p := newProvider(t)
	customers := GenerateCustomers(p, 5)
	ids := map[int]bool{}
	for _, c := range customers {
		ids[c.CustomerID] = true
	}

	orders, err := GenerateOrders(p, customers, 20)
	if err != nil {
		t.Fatalf("GenerateOrders failed: %v", err)
	}
	if len(orders) != 20 {
		t.Fatalf("got %d orders", len(orders))
	}
	for i, o := range orders {
		if o.OrderID != i+1 {
			t.Errorf("order %d has id %d", i, o.OrderID)
		}
		if !ids[o.CustomerID] {
			t.Errorf("order %d references unknown customer %d", i, o.CustomerID)
		}
	}
}

func TestGenerateOrdersEmptyCustomers(t *testing.T) {
	_, err := GenerateOrders(newProvider(t), nil, 5)
	if err == nil {
		t.Fatal("expected an error for empty customers")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestGenerateOrderItemsProperties(t *testing.T) {
	p := newProvider(t)
	customers := GenerateCustomers(p, 5)
	products := GenerateProducts(p, 4)
	orders, err := GenerateOrders(p, customers, 10)
	if err != nil {
		t.Fatalf("GenerateOrders failed: %v", err)
	}

	items, err := GenerateOrderItems(p, orders, products)
	if err != nil {
		t.Fatalf("GenerateOrderItems failed: %v", err)
	}

	orderIDs := map[int]bool{}
	for _, o := range orders {
		orderIDs[o.OrderID] = true
	}
	perOrder := map[int]int{}

	for i, item := range items {
		if item.ItemID != i+1 {
			t.Errorf("item %d has id %d, want dense 1-based ids", i, item.ItemID)
		}
		if !orderIDs[item.OrderID] {
			t.Errorf("item %d references unknown order %d", i, item.OrderID)
		}
		if item.ProductID < 1 || item.ProductID > len(products) {
			t.Errorf("item %d references unknown product %d", i, item.ProductID)
		}
		if item.Quantity < 1 || item.Quantity > 4 {
			t.Errorf("item %d has quantity %d", i, item.Quantity)
		}
		if !item.ItemPrice.Equal(products[item.ProductID-1].Price.Decimal) {
			t.Errorf("item %d price %s does not snapshot product price %s",
				i, item.ItemPrice, products[item.ProductID-1].Price)
		}
		perOrder[item.OrderID]++
	}

	for _, o := range orders {
		if n := perOrder[o.OrderID]; n < 1 || n > 3 {
			t.Errorf("order %d has %d items, want between 1 and 3", o.OrderID, n)
		}
	}
}

func TestGenerateOrderItemsEmptyOrders(t *testing.T) {
	items, err := GenerateOrderItems(newProvider(t), nil, GenerateProducts(newProvider(t), 3))
	if err != nil {
		t.Fatalf("expected no error for zero orders, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty relation, got %d items", len(items))
	}
}

func TestGenerateOrderItemsNoProducts(t *testing.T) {
	p := newProvider(t)
	customers := GenerateCustomers(p, 2)
	orders, err := GenerateOrders(p, customers, 2)
	if err != nil {
		t.Fatalf("GenerateOrders failed: %v", err)
	}

	_, err = GenerateOrderItems(p, orders, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestGeneratePaymentsBijection(t *testing.T) {
	p := newProvider(t)
	customers := GenerateCustomers(p, 3)
	orders, err := GenerateOrders(p, customers, 10)
	if err != nil {
		t.Fatalf("GenerateOrders failed: %v", err)
	}

	payments := GeneratePayments(p, orders)
	if len(payments) != len(orders) {
		t.Fatalf("got %d payments for %d orders", len(payments), len(orders))
	}

	validMethods := map[string]bool{"Credit Card": true, "UPI": true, "NetBanking": true, "Wallet": true}
	validStatuses := map[string]bool{"Success": true, "Failed": true, "Pending": true}

	seen := map[int]bool{}
	for i, pay := range payments {
		if pay.PaymentID != i+1 {
			t.Errorf("payment %d has id %d", i, pay.PaymentID)
		}
		if pay.OrderID != orders[i].OrderID {
			t.Errorf("payment %d covers order %d, want %d (same row order)", i, pay.OrderID, orders[i].OrderID)
		}
		if seen[pay.OrderID] {
			t.Errorf("order %d has more than one payment", pay.OrderID)
		}
		seen[pay.OrderID] = true
		if !pay.PaymentDate.Equal(orders[i].OrderDate.Time) {
			t.Errorf("payment %d date %v does not copy order date %v", i, pay.PaymentDate, orders[i].OrderDate)
		}
		if !validMethods[pay.Method] {
			t.Errorf("payment %d has method %q", i, pay.Method)
		}
		if !validStatuses[pay.Status] {
			t.Errorf("payment %d has status %q", i, pay.Status)
		}
	}
	if len(seen) != len(orders) {
		t.Errorf("payments cover %d distinct orders, want %d", len(seen), len(orders))
	}
}

func TestGeneratePaymentsEmptyOrders(t *testing.T) {
	payments := GeneratePayments(newProvider(t), nil)
	if len(payments) != 0 {
		t.Fatalf("expected an empty relation, got %d payments", len(payments))
	}
}

func TestGenerateEndToEndSeed42(t *testing.T) {
	ds, err := Generate(newProvider(t), Counts{Customers: 3, Products: 2, Orders: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.Customers) != 3 || len(ds.Products) != 2 || len(ds.Orders) != 2 || len(ds.Payments) != 2 {
		t.Fatalf("unexpected relation sizes: customers=%d products=%d orders=%d payments=%d",
			len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.Payments))
	}
	for _, o := range ds.Orders {
		if o.CustomerID < 1 || o.CustomerID > 3 {
			t.Errorf("order %d references customer %d", o.OrderID, o.CustomerID)
		}
	}
	if n := len(ds.OrderItems); n < 2 || n > 6 {
		t.Errorf("got %d order items for 2 orders, want between 2 and 6", n)
	}
	for i, item := range ds.OrderItems {
		if item.ItemID != i+1 {
			t.Errorf("item %d has id %d", i, item.ItemID)
		}
	}
	if ds.Payments[0].OrderID != 1 || ds.Payments[1].OrderID != 2 {
		t.Errorf("payments cover orders %d and %d, want 1 and 2",
			ds.Payments[0].OrderID, ds.Payments[1].OrderID)
	}
}

func TestGenerateReproducible(t *testing.T) {
	counts := Counts{Customers: 10, Products: 5, Orders: 8}

	first, err := Generate(synth.NewAt(42, testNow), counts)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Generate(synth.NewAt(42, testNow), counts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same seed produced different datasets")
	}
}
