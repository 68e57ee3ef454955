package dataset

import (
	"fmt"
	"strings"
)

// Column is one named, typed field of a table.
type Column struct {
	Name    string
	SQLType string
}

// Table describes one relation of the fixed schema.
type Table struct {
	Name    string
	Columns []Column
}

// Tables is the schema registry in ingestion order: parent tables before the
// relations that reference them.
var Tables = []Table{
	{Name: "customers", Columns: []Column{
		{Name: "customer_id", SQLType: "INTEGER"},
		{Name: "name", SQLType: "TEXT"},
		{Name: "email", SQLType: "TEXT"},
		{Name: "city", SQLType: "TEXT"},
		{Name: "signup_date", SQLType: "TEXT"},
	}},
	{Name: "products", Columns: []Column{
		{Name: "product_id", SQLType: "INTEGER"},
		{Name: "name", SQLType: "TEXT"},
		{Name: "category", SQLType: "TEXT"},
		{Name: "price", SQLType: "NUMERIC"},
	}},
	{Name: "orders", Columns: []Column{
		{Name: "order_id", SQLType: "INTEGER"},
		{Name: "customer_id", SQLType: "INTEGER"},
		{Name: "order_date", SQLType: "TEXT"},
		{Name: "total_amount", SQLType: "NUMERIC"},
	}},
	{Name: "order_items", Columns: []Column{
		{Name: "item_id", SQLType: "INTEGER"},
		{Name: "order_id", SQLType: "INTEGER"},
		{Name: "product_id", SQLType: "INTEGER"},
		{Name: "quantity", SQLType: "INTEGER"},
		{Name: "item_price", SQLType: "NUMERIC"},
	}},
	{Name: "payments", Columns: []Column{
		{Name: "payment_id", SQLType: "INTEGER"},
		{Name: "order_id", SQLType: "INTEGER"},
		{Name: "method", SQLType: "TEXT"},
		{Name: "status", SQLType: "TEXT"},
		{Name: "payment_date", SQLType: "TEXT"},
	}},
}

// Lookup finds a registry entry by table name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// ColumnNames returns the declared column order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// CreateSQL renders CREATE TABLE DDL under the given physical name, so the
// same registry entry can build both a staging table and the live one.
func (t Table) CreateSQL(name string) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = fmt.Sprintf("%s %s", c.Name, c.SQLType)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))
}
