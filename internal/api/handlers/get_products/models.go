package get_products

import (
	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/internal/service/catalog"
)

// ProductsResponse HTTP response model
type ProductsResponse struct {
	Products   map[string][]ProductResponse `json:"products"`
	Categories []string                     `json:"categories"`
	LaborRate  float64                      `json:"laborRate"`
	Currency   string                       `json:"currency"`
	Source     string                       `json:"source"`
}

// ProductResponse товар; необязательные атрибуты опускаются
type ProductResponse struct {
	ID             string   `json:"id"`
	SKU            string   `json:"sku"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	LaborHours     float64  `json:"laborHours"`
	Image          string   `json:"image,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Finish         *string  `json:"finish,omitempty"`
	Warranty       *string  `json:"warranty,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Size           *string  `json:"size,omitempty"`
	Set            *int     `json:"set,omitempty"`
	Stars          *int     `json:"stars,omitempty"`
	Fiber          *string  `json:"fiber,omitempty"`
	Shooting       *bool    `json:"shooting,omitempty"`
	Constellations *bool    `json:"constellations,omitempty"`
	Includes       []string `json:"includes,omitempty"`
	Materials      []string `json:"materials,omitempty"`
	Colors         []string `json:"colors,omitempty"`
}

// FromListing конвертирует выборку каталога в HTTP response
func FromListing(l *catalog.Listing) *ProductsResponse {
	resp := &ProductsResponse{
		Products:   make(map[string][]ProductResponse, len(l.Products)),
		Categories: make([]string, 0, len(l.Categories)),
		LaborRate:  l.LaborRate,
		Currency:   l.Currency,
		Source:     l.Source,
	}

	for _, c := range l.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	for category, products := range l.Products {
		items := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			items = append(items, fromDomain(p))
		}
		resp.Products[string(category)] = items
	}

	return resp
}

func fromDomain(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Category:       string(p.Category),
		Price:          p.Price,
		Currency:       p.Currency,
		LaborHours:     p.LaborHours,
		Image:          p.Image,
		Color:          p.Color,
		Finish:         p.Finish,
		Warranty:       p.Warranty,
		Type:           p.Type,
		Size:           p.Size,
		Set:            p.Set,
		Stars:          p.Stars,
		Fiber:          p.Fiber,
		Shooting:       p.Shooting,
		Constellations: p.Constellations,
		Includes:       p.Includes,
		Materials:      p.Materials,
		Colors:         p.Colors,
	}
}
