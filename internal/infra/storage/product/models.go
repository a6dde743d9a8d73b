package product

import (
	"database/sql"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

// productRow строка таблицы products, необязательные колонки nullable
type productRow struct {
	ID             string
	SKU            string
	Name           string
	Category       string
	Price          float64
	Currency       sql.NullString
	LaborHours     sql.NullFloat64
	Image          sql.NullString
	Color          sql.NullString
	Finish         sql.NullString
	Warranty       sql.NullString
	Type           sql.NullString
	Size           sql.NullString
	SetCount       sql.NullInt64
	Stars          sql.NullInt64
	Fiber          sql.NullString
	Shooting       sql.NullBool
	Constellations sql.NullBool
	Includes       sql.NullString
	Materials      sql.NullString
	Colors         sql.NullString
}

// fields порядок совпадает с productColumns
func (r *productRow) fields() []interface{} {
	return []interface{}{
		&r.ID,
		&r.SKU,
		&r.Name,
		&r.Category,
		&r.Price,
		&r.Currency,
		&r.LaborHours,
		&r.Image,
		&r.Color,
		&r.Finish,
		&r.Warranty,
		&r.Type,
		&r.Size,
		&r.SetCount,
		&r.Stars,
		&r.Fiber,
		&r.Shooting,
		&r.Constellations,
		&r.Includes,
		&r.Materials,
		&r.Colors,
	}
}

func (r *productRow) toDomain() *domain.Product {
	p := &domain.Product{
		ID:         r.ID,
		SKU:        r.SKU,
		Name:       r.Name,
		Category:   domain.ProductCategory(r.Category),
		Price:      r.Price,
		Currency:   domain.DefaultCurrency,
		LaborHours: r.LaborHours.Float64,
		Image:      r.Image.String,
	}
	if r.Currency.String != "" {
		p.Currency = r.Currency.String
	}

	p.Color = optString(r.Color)
	p.Finish = optString(r.Finish)
	p.Warranty = optString(r.Warranty)
	p.Type = optString(r.Type)
	p.Size = optString(r.Size)
	p.Fiber = optString(r.Fiber)
	p.Set = optInt(r.SetCount)
	p.Stars = optInt(r.Stars)

	if r.Shooting.Valid {
		v := r.Shooting.Bool
		p.Shooting = &v
	}
	if r.Constellations.Valid {
		v := r.Constellations.Bool
		p.Constellations = &v
	}

	p.Includes = domain.ParseStringList(r.Includes.String)
	p.Materials = domain.ParseStringList(r.Materials.String)
	p.Colors = domain.ParseStringList(r.Colors.String)

	return p
}

func optString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

func optInt(n sql.NullInt64) *int {
	if !n.Valid || n.Int64 == 0 {
		return nil
	}
	v := int(n.Int64)
	return &v
}
