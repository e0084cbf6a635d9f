package console

import (
	"context"
	"errors"

	applog "storedesk/internal/log"
	"storedesk/internal/report"
	"storedesk/internal/services"
)

// PriceUpdated is printed after every price update, whether or not a row changed.
const PriceUpdated = "Ціна оновлена."

func (c *Console) addProduct(ctx context.Context) error {
	name, err := c.ask(ctx, "Введіть назву товару: ")
	if err != nil {
		return err
	}
	category, err := c.ask(ctx, "Введіть категорію товару (Смартфони/Ноутбуки/Планшети): ")
	if err != nil {
		return err
	}
	price, err := c.askFloat(ctx, "Введіть ціну товару: ")
	if err != nil {
		return err
	}
	id, err := c.st.Catalog.AddProduct(ctx, name, category, price)
	if err != nil {
		return err
	}
	applog.Audit("product.add", map[string]any{"product_id": id, "category": category, "price": price})
	c.println("Товар додано.")
	return nil
}

func (c *Console) addCustomer(ctx context.Context) error {
	first, err := c.ask(ctx, "Введіть ім'я клієнта: ")
	if err != nil {
		return err
	}
	last, err := c.ask(ctx, "Введіть прізвище клієнта: ")
	if err != nil {
		return err
	}
	email, err := c.ask(ctx, "Введіть email клієнта: ")
	if err != nil {
		return err
	}
	id, err := c.st.Catalog.AddCustomer(ctx, first, last, email)
	if err != nil {
		return err
	}
	applog.Audit("customer.add", map[string]any{"customer_id": id})
	c.println("Клієнт додано.")
	return nil
}

func (c *Console) createOrder(ctx context.Context) error {
	customerID, err := c.askInt(ctx, "Введіть ID клієнта: ")
	if err != nil {
		return err
	}
	productID, err := c.askInt(ctx, "Введіть ID товару: ")
	if err != nil {
		return err
	}
	qty, err := c.askInt(ctx, "Введіть кількість товару: ")
	if err != nil {
		return err
	}
	o, err := c.st.Orders.Place(ctx, customerID, productID, qty)
	if err != nil {
		return err
	}
	applog.Audit("order.insert", map[string]any{"order_id": o.ID, "customer_id": customerID, "product_id": productID, "quantity": qty})
	c.println("Замовлення створено.")
	return nil
}

func (c *Console) totalSales(ctx context.Context) error {
	total, ok, err := c.st.Reports.TotalSales(ctx)
	if err != nil {
		return err
	}
	c.println(report.TotalSalesLine(total, ok))
	return nil
}

func (c *Console) ordersPerCustomer(ctx context.Context) error {
	id, err := c.askInt(ctx, "Введіть ID клієнта: ")
	if err != nil {
		return err
	}
	rows, err := c.st.Reports.OrdersPerCustomer(ctx, id)
	if err != nil {
		return err
	}
	for _, r := range rows {
		c.println(report.CustomerOrdersLine(r))
	}
	return nil
}

func (c *Console) averageOrderValue(ctx context.Context) error {
	avg, err := c.st.Reports.AverageOrderValue(ctx)
	if errors.Is(err, services.ErrNoOrders) {
		applog.Warn("report.average.empty", nil)
		c.println(report.NoOrdersForAverage)
		return nil
	}
	if err != nil {
		return err
	}
	c.println(report.AverageLine(avg))
	return nil
}

func (c *Console) mostPopularCategory(ctx context.Context) error {
	top, ok, err := c.st.Reports.MostPopularCategory(ctx)
	if err != nil {
		return err
	}
	c.println(report.PopularCategoryLine(top, ok))
	return nil
}

func (c *Console) productsPerCategory(ctx context.Context) error {
	counts, err := c.st.Inventory.ProductsPerCategory(ctx)
	if err != nil {
		return err
	}
	for _, cc := range counts {
		c.println(report.CategoryProductsLine(cc))
	}
	return nil
}

func (c *Console) raiseSmartphonePrices(ctx context.Context) error {
	n, err := c.st.Pricing.UpdatePrice(ctx, 0, 0)
	if err != nil {
		return err
	}
	applog.Audit("price.update", map[string]any{"rows": n, "factor": services.SmartphoneMarkup})
	c.println(PriceUpdated)
	return nil
}

func (c *Console) commit(ctx context.Context) error {
	if err := c.st.Commit(ctx); err != nil {
		return err
	}
	c.println("Зміни збережено в базі даних.")
	return nil
}
