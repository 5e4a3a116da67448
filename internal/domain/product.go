package domain

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int     `json:"stock" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required,max=100"`
	Actor
}

// UpdateProductRequest carries a partial update. Zero fields keep the stored
// value.
type UpdateProductRequest struct {
	Name     string  `json:"name" validate:"omitempty,max=200"`
	Price    float64 `json:"price" validate:"omitempty,gt=0"`
	Stock    int     `json:"stock" validate:"omitempty,gt=0"`
	Category string  `json:"category" validate:"omitempty,max=100"`
	Actor
}

func (r UpdateProductRequest) Apply(p Product) Product {
	if r.Name != "" {
		p.Name = r.Name
	}
	if r.Price != 0 {
		p.Price = r.Price
	}
	if r.Stock != 0 {
		p.Stock = r.Stock
	}
	if r.Category != "" {
		p.Category = r.Category
	}
	return p
}
