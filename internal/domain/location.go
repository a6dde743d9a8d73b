package domain

// Location a physical shop where appointments take place
type Location struct {
	ID       string
	Name     string
	Address  string
	Phone    string
	Hours    string
	Timezone string
}

// DefaultLocations returns the three shops of the network
func DefaultLocations() []Location {
	return []Location{
		{
			ID:       "casa",
			Name:     "Casablanca Flagship",
			Address:  "123 Boulevard Mohammed V, Casablanca",
			Phone:    "+212 522 123 456",
			Hours:    "09:00 - 18:00",
			Timezone: DefaultTimezone,
		},
		{
			ID:       "marrakech",
			Name:     "Marrakech Studio",
			Address:  "45 Avenue Mohammed VI, Guéliz, Marrakech",
			Phone:    "+212 524 987 654",
			Hours:    "09:00 - 18:00",
			Timezone: DefaultTimezone,
		},
		{
			ID:       "tangier",
			Name:     "Tangier Workshop",
			Address:  "78 Rue de Fès, Tangier",
			Phone:    "+212 539 456 789",
			Hours:    "09:00 - 18:00",
			Timezone: DefaultTimezone,
		},
	}
}
