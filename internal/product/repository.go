package product

// Repository is the catalog storage used by the product service and the cart.
type Repository interface {
	Add(p *Product)
	Remove(id int) int
	FindByID(id int) (*Product, bool)
	FindByName(name string) (*Product, bool)
	List() []*Product
	NextID() int
}

// Catalog keeps products in insertion order. It is not safe for concurrent use;
// the storefront is driven by a single interactive session.
type Catalog struct {
	products []*Product
	// lastID only grows, so ids of removed products are never handed out again.
	lastID int
}

// NewCatalog returns a catalog holding the given products in order.
func NewCatalog(seed ...*Product) *Catalog {
	c := &Catalog{products: make([]*Product, 0, len(seed))}
	for _, p := range seed {
		c.Add(p)
	}
	return c
}

// Add appends p without checking for id collisions.
func (c *Catalog) Add(p *Product) {
	if p == nil {
		return
	}
	c.products = append(c.products, p)
	if p.ID > c.lastID {
		c.lastID = p.ID
	}
}

// Remove drops every product with the given id and returns how many went away.
// Carts that already reserved the product keep their reference.
func (c *Catalog) Remove(id int) int {
	kept := c.products[:0]
	removed := 0
	for _, p := range c.products {
		if p.ID == id {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.products); i++ {
		c.products[i] = nil
	}
	c.products = kept
	return removed
}

func (c *Catalog) FindByID(id int) (*Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindByName returns the first product whose name matches exactly.
func (c *Catalog) FindByName(name string) (*Product, bool) {
	for _, p := range c.products {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// List returns a copy of the product slice; the products themselves are shared.
func (c *Catalog) List() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// NextID is one past the highest id the catalog has ever held.
func (c *Catalog) NextID() int {
	return c.lastID + 1
}
