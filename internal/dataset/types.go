// Package dataset defines the fixed five-table e-commerce schema, the
// referential generators that populate it, and the CSV writer that persists
// a generated run.
package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a day-precision value serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalCSV() (string, error) {
	return d.Format(dateLayout), nil
}

func (d *Date) UnmarshalCSV(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Money is a currency amount with two-decimal precision. Its CSV form trims
// trailing zeros, matching how the generated amounts were always persisted.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

func (m Money) MarshalCSV() (string, error) {
	return m.String(), nil
}

func (m *Money) UnmarshalCSV(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

type Customer struct {
	CustomerID int    `csv:"customer_id"`
	Name       string `csv:"name"`
	Email      string `csv:"email"`
	City       string `csv:"city"`
	SignupDate Date   `csv:"signup_date"`
}

type Product struct {
	ProductID int    `csv:"product_id"`
	Name      string `csv:"name"`
	Category  string `csv:"category"`
	Price     Money  `csv:"price"`
}

type Order struct {
	OrderID     int   `csv:"order_id"`
	CustomerID  int   `csv:"customer_id"`
	OrderDate   Date  `csv:"order_date"`
	TotalAmount Money `csv:"total_amount"`
}

type OrderItem struct {
	ItemID    int   `csv:"item_id"`
	OrderID   int   `csv:"order_id"`
	ProductID int   `csv:"product_id"`
	Quantity  int   `csv:"quantity"`
	ItemPrice Money `csv:"item_price"`
}

type Payment struct {
	PaymentID   int    `csv:"payment_id"`
	OrderID     int    `csv:"order_id"`
	Method      string `csv:"method"`
	Status      string `csv:"status"`
	PaymentDate Date   `csv:"payment_date"`
}

// Dataset holds one coherent generation run: every foreign key in the child
// relations resolves within the same run.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}
