package storefront

import (
	"fmt"
	"strings"

	"czone-store/internal/cart"
	"czone-store/internal/order"
	"czone-store/internal/product"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02 15:04:05"

// Renderer formats catalog, cart and order views.
type Renderer struct {
	product *color.Color
	total   *color.Color
	order   *color.Color
}

// NewRenderer builds a renderer; colors are forced on or off regardless of
// whether stdout is a terminal.
func NewRenderer(colored bool) *Renderer {
	r := &Renderer{
		product: color.New(color.FgCyan),
		total:   color.New(color.FgYellow),
		order:   color.New(color.FgMagenta),
	}
	for _, c := range []*color.Color{r.product, r.total, r.order} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) Product(p *product.Product) string {
	return r.productAt(p, p.Price)
}

// productAt renders p with the given unit price instead of the live one.
func (r *Renderer) productAt(p *product.Product, price decimal.Decimal) string {
	return r.product.Sprintf("Product ID: %d, Name: %s, Description: %s, Price: %s, Quantity: %d",
		p.ID, p.Name, p.Description, price.String(), p.Quantity)
}

func (r *Renderer) Catalog(products []*product.Product) string {
	if len(products) == 0 {
		return "No products available."
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, r.Product(p))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) Cart(c *cart.Cart) string {
	var b strings.Builder
	if c.Empty() {
		b.WriteString("Your cart is empty.\n")
	}
	for _, l := range c.Lines() {
		// reserved price, so the lines add up to the total
		fmt.Fprintf(&b, "%s, Quantity you've added: %d\n", r.productAt(l.Product, l.UnitPrice), l.Quantity)
	}
	b.WriteString(r.total.Sprintf("Total price: %s", c.Total().String()))
	return b.String()
}

func (r *Renderer) Order(o *order.Order) string {
	var b strings.Builder
	b.WriteString(r.order.Sprintf("Order ID: %s, Date: %s", o.ID(), o.PlacedAt().Format(dateLayout)))
	b.WriteString("\n")
	for _, it := range o.Items() {
		fmt.Fprintf(&b, "%s, Quantity you've purchased: %d\n",
			r.product.Sprintf("Product ID: %d, Name: %s, Description: %s, Price: %s",
				it.ProductID, it.Name, it.Description, it.UnitPrice.String()),
			it.Quantity)
	}
	b.WriteString(r.total.Sprintf("Total price: %s", o.Total().String()))
	return b.String()
}

func (r *Renderer) History(orders []*order.Order) string {
	if len(orders) == 0 {
		return "No orders yet."
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		parts = append(parts, r.Order(o))
	}
	return strings.Join(parts, "\n\n")
}
