package turso

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// SourceName имя источника в ответе каталога
const SourceName = "turso"

// Name имя источника
func (c *Client) Name() string {
	return SourceName
}

// ListProducts читает каталог из таблицы products
func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query, args, err := buildProductsQuery(filter)
	if err != nil {
		return nil, err
	}

	c.log.Info("Turso: listing products category=%q search=%q", filter.Category, filter.Search)

	rows, err := c.Execute(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, nil
}

func buildProductsQuery(filter domain.ProductFilter) (string, []string, error) {
	filter = filter.Normalize()

	// SQLite: плейсхолдеры "?"
	builder := squirrel.Select("*").From("products")

	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.Like{"LOWER(name)": pattern},
			squirrel.Like{"LOWER(sku)": pattern},
		})
	}

	query, rawArgs, err := builder.OrderBy("category", "name").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to build query: %v", ErrInternal, err)
	}

	args := make([]string, 0, len(rawArgs))
	for _, a := range rawArgs {
		args = append(args, fmt.Sprint(a))
	}
	return query, args, nil
}

func (r Row) toProduct() *domain.Product {
	p := &domain.Product{
		ID:         r["id"],
		SKU:        r["sku"],
		Name:       r["name"],
		Category:   domain.ProductCategory(r["category"]),
		Price:      parseFloat(r["price"]),
		Currency:   domain.DefaultCurrency,
		LaborHours: parseFloat(r["labor_hours"]),
		Image:      r["image"],
	}
	if v := r["currency"]; v != "" {
		p.Currency = v
	}

	p.Color = r.optString("color")
	p.Finish = r.optString("finish")
	p.Warranty = r.optString("warranty")
	p.Type = r.optString("type")
	p.Size = r.optString("size")
	p.Fiber = r.optString("fiber")
	p.Set = r.optInt("set_count")
	p.Stars = r.optInt("stars")
	p.Shooting = r.optBool("shooting")
	p.Constellations = r.optBool("constellations")

	p.Includes = domain.ParseStringList(r["includes"])
	p.Materials = domain.ParseStringList(r["materials"])
	p.Colors = domain.ParseStringList(r["colors"])

	return p
}

func (r Row) optString(col string) *string {
	v, ok := r[col]
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (r Row) optInt(col string) *int {
	v, ok := r[col]
	if !ok || v == "" {
		return nil
	}
	n := int(parseFloat(v))
	if n == 0 {
		return nil
	}
	return &n
}

// optBool "0"/"1" в SQLite; пустое значение означает отсутствие атрибута
func (r Row) optBool(col string) *bool {
	v, ok := r[col]
	if !ok || v == "" {
		return nil
	}
	b := parseFloat(v) != 0
	return &b
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
