package catalog

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

// Listing ответ каталога: товары по категориям
type Listing struct {
	Products   map[domain.ProductCategory][]*domain.Product
	Categories []domain.ProductCategory // по алфавиту
	LaborRate  float64
	Currency   string
	Source     string
}

// Pricing ставки, которые каталог отдает вместе с товарами
type Pricing struct {
	LaborRate float64
	Currency  string
}
