package locations

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

// Directory неизменяемый справочник точек
type Directory struct {
	locations []domain.Location
	byID      map[string]domain.Location
}

// NewDirectory создает справочник. Порядок списка сохраняется.
func NewDirectory(locations []domain.Location) *Directory {
	d := &Directory{
		locations: make([]domain.Location, len(locations)),
		byID:      make(map[string]domain.Location, len(locations)),
	}
	copy(d.locations, locations)
	for _, loc := range locations {
		d.byID[loc.ID] = loc
	}
	return d
}

// List возвращает копию списка точек
func (d *Directory) List() []domain.Location {
	out := make([]domain.Location, len(d.locations))
	copy(out, d.locations)
	return out
}

// Get ищет точку по ID
func (d *Directory) Get(id string) (domain.Location, bool) {
	loc, ok := d.byID[id]
	return loc, ok
}

// Timezone часовой пояс точки, для неизвестной точки пояс по умолчанию
func (d *Directory) Timezone(id string) string {
	if loc, ok := d.byID[id]; ok && loc.Timezone != "" {
		return loc.Timezone
	}
	return domain.DefaultTimezone
}
