package schema

// Supplies maps a supply category (food, water, medical, blankets) to a stock level in percent
type Supplies map[string]int

// SafeZone is a shelter, hospital or aid station survivors can go to
type SafeZone struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"`
	Address   string   `json:"address" yaml:"address"`
	Latitude  float64  `json:"lat" yaml:"lat"`
	Longitude float64  `json:"lng" yaml:"lng"`
	Capacity  int      `json:"capacity" yaml:"capacity"`
	Occupancy int      `json:"occupancy" yaml:"occupancy"`
	Supplies  Supplies `json:"supplies" yaml:"supplies"`
}

// Copy returns a copy of the zone that shares no map with z
func (z SafeZone) Copy() SafeZone {
	c := z
	if z.Supplies != nil {
		c.Supplies = make(Supplies, len(z.Supplies))
		for k, v := range z.Supplies {
			c.Supplies[k] = v
		}
	}
	return c
}

// SafeZonePatch is a partial update of a safe zone. Supplies, when given,
// replaces the whole map.
type SafeZonePatch struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	Capacity  *int     `json:"capacity"`
	Occupancy *int     `json:"occupancy"`
	Supplies  Supplies `json:"supplies"`
}

func (p SafeZonePatch) Apply(z *SafeZone) {
	if p.Name != nil {
		z.Name = *p.Name
	}
	if p.Type != nil {
		z.Type = *p.Type
	}
	if p.Address != nil {
		z.Address = *p.Address
	}
	if p.Latitude != nil {
		z.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		z.Longitude = *p.Longitude
	}
	if p.Capacity != nil {
		z.Capacity = *p.Capacity
	}
	if p.Occupancy != nil {
		z.Occupancy = *p.Occupancy
	}
	if p.Supplies != nil {
		z.Supplies = make(Supplies, len(p.Supplies))
		for k, v := range p.Supplies {
			z.Supplies[k] = v
		}
	}
}
