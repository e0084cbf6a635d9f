package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	html "github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Write renders snap as "text", "json" or "html".
func Write(w io.Writer, format string, snap Snapshot) error {
	switch format {
	case "text":
		return WriteText(w, snap)
	case "json":
		return WriteJSON(w, snap)
	case "html":
		return WriteHTML(w, snap)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func WriteText(w io.Writer, snap Snapshot) error {
	v := newView(snap)
	lines := []string{
		"Звіт станом на " + snap.GeneratedAt,
		v.TotalSales,
		v.Average,
		v.PopularCategory,
	}
	lines = append(lines, v.Categories...)
	lines = append(lines, v.Customers...)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func WriteHTML(w io.Writer, snap Snapshot) error {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	if err := engine.Load(); err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	return engine.Render(w, "report", newView(snap))
}

// view is the snapshot pre-formatted with the same wording as the console.
type view struct {
	GeneratedAt     string
	OrderCount      int64
	TotalSales      string
	Average         string
	PopularCategory string
	Categories      []string
	Customers       []string
	Products        []productRow
}

type productRow struct {
	ID       int64
	Name     string
	Category string
	Price    string
}

func newView(snap Snapshot) view {
	v := view{GeneratedAt: snap.GeneratedAt, OrderCount: snap.OrderCount}
	if snap.TotalSales != nil {
		v.TotalSales = TotalSalesLine(*snap.TotalSales, true)
	} else {
		v.TotalSales = TotalSalesLine(0, false)
	}
	if snap.AverageOrderValue != nil {
		v.Average = AverageLine(*snap.AverageOrderValue)
	} else {
		v.Average = NoOrdersForAverage
	}
	if snap.MostPopularCategory != nil {
		v.PopularCategory = PopularCategoryLine(*snap.MostPopularCategory, true)
	} else {
		v.PopularCategory = NoSalesData
	}
	for _, c := range snap.ProductsPerCategory {
		v.Categories = append(v.Categories, CategoryProductsLine(c))
	}
	for _, c := range snap.OrdersPerCustomer {
		v.Customers = append(v.Customers, CustomerOrdersLine(c))
	}
	for _, p := range snap.Products {
		v.Products = append(v.Products, productRow{ID: p.ID, Name: p.Name, Category: p.Category, Price: Amount(p.Price)})
	}
	return v
}
