package domain

// SmartphoneCategory is the only category whose prices the tool ever changes.
const SmartphoneCategory = "Смартфони"

// OrderDateLayout is the order_date text format, local time.
const OrderDateLayout = "2006-01-02 15:04:05"

type Product struct {
	ID       int64   `db:"product_id" json:"product_id"`
	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	Price    float64 `db:"price" json:"price"`
}

type Customer struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
}

type Order struct {
	ID         int64  `db:"id" json:"id"`
	CustomerID int64  `db:"customer_id" json:"customer_id"`
	ProductID  int64  `db:"product_id" json:"product_id"`
	Quantity   int64  `db:"quantity" json:"quantity"`
	OrderDate  string `db:"order_date" json:"order_date"`
}

// CategoryCount is a category label with a row count (orders or products,
// depending on the report).
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int64  `db:"count" json:"count"`
}

type CustomerOrders struct {
	CustomerID  int64  `db:"id" json:"customer_id"`
	Customer    string `db:"customer" json:"customer"`
	TotalOrders int64  `db:"total_orders" json:"total_orders"`
}
