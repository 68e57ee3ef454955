package dataset

import (
	"github.com/datasmiths/shopforge/internal/synth"
)

var (
	categories      = []string{"Electronics", "Fashion", "Home", "Sports", "Beauty"}
	paymentMethods  = []string{"Credit Card", "UPI", "NetBanking", "Wallet"}
	paymentStatuses = []string{"Success", "Failed", "Pending"}
)

const (
	signupWindowDays = 730
	orderWindowDays  = 365
	maxItemsPerOrder = 3
	maxItemQuantity  = 4
)

// Counts configures how many rows each root relation gets.
type Counts struct {
	Customers int
	Products  int
	Orders    int
}

// GenerateCustomers produces n customers with dense 1-based ids.
func GenerateCustomers(p *synth.Provider, n int) []Customer {
	customers := make([]Customer, 0, n)
	for i := 1; i <= n; i++ {
		customers = append(customers, Customer{
			CustomerID: i,
			Name:       p.FullName(),
			Email:      p.Email(),
			City:       p.City(),
			SignupDate: NewDate(p.DateWithin(signupWindowDays)),
		})
	}
	return customers
}

// GenerateProducts produces n products with dense 1-based ids and a category
// drawn from the fixed five-element set.
func GenerateProducts(p *synth.Provider, n int) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, Product{
			ProductID: i,
			Name:      p.Word(),
			Category:  p.Pick(categories),
			Price:     NewMoney(p.Money(10, 500)),
		})
	}
	return products
}

// GenerateOrders produces n orders whose customer_id is sampled with
// replacement from the given customers. total_amount is sampled independently
// of the order's eventual item line totals; the two are not reconciled.
func GenerateOrders(p *synth.Provider, customers []Customer, n int) ([]Order, error) {
	if len(customers) == 0 {
		return nil, &ValidationError{Op: "generate orders", Reason: "no customers to reference"}
	}
	orders := make([]Order, 0, n)
	for i := 1; i <= n; i++ {
		orders = append(orders, Order{
			OrderID:     i,
			CustomerID:  customers[p.IntBetween(0, len(customers)-1)].CustomerID,
			OrderDate:   NewDate(p.DateWithin(orderWindowDays)),
			TotalAmount: NewMoney(p.Money(20, 1000)),
		})
	}
	return orders, nil
}

// GenerateOrderItems walks every order once, in order, giving each between 1
// and 3 items. Products are sampled with replacement, so an order may carry
// the same product twice. item_id is a single dense counter across the whole
// relation, and item_price snapshots the product's price at generation time.
func GenerateOrderItems(p *synth.Provider, orders []Order, products []Product) ([]OrderItem, error) {
	items := []OrderItem{}
	if len(orders) == 0 {
		return items, nil
	}
	if len(products) == 0 {
		return nil, &ValidationError{Op: "generate order items", Reason: "no products to reference"}
	}
	itemID := 1
	for _, order := range orders {
		count := p.IntBetween(1, maxItemsPerOrder)
		for j := 0; j < count; j++ {
			product := products[p.IntBetween(0, len(products)-1)]
			items = append(items, OrderItem{
				ItemID:    itemID,
				OrderID:   order.OrderID,
				ProductID: product.ProductID,
				Quantity:  p.IntBetween(1, maxItemQuantity),
				ItemPrice: product.Price,
			})
			itemID++
		}
	}
	return items, nil
}

// GeneratePayments produces exactly one payment per order, in the same row
// order. payment_date copies order_date verbatim.
func GeneratePayments(p *synth.Provider, orders []Order) []Payment {
	payments := make([]Payment, 0, len(orders))
	for i, order := range orders {
		payments = append(payments, Payment{
			PaymentID:   i + 1,
			OrderID:     order.OrderID,
			Method:      p.Pick(paymentMethods),
			Status:      p.Pick(paymentStatuses),
			PaymentDate: order.OrderDate,
		})
	}
	return payments
}

// Generate runs the five generators in dependency order against a single
// provider, so one seed fixes the entire dataset.
func Generate(p *synth.Provider, c Counts) (*Dataset, error) {
	customers := GenerateCustomers(p, c.Customers)
	products := GenerateProducts(p, c.Products)

	orders, err := GenerateOrders(p, customers, c.Orders)
	if err != nil {
		return nil, err
	}
	items, err := GenerateOrderItems(p, orders, products)
	if err != nil {
		return nil, err
	}
	payments := GeneratePayments(p, orders)

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Payments:   payments,
	}, nil
}
