package store

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/geoshield-inc/geoshield-api/schema"
)

// Seed is the layout of a safe-zone seed file
type Seed struct {
	SafeZones []schema.SafeZone `yaml:"safeZones"`
}

// LoadSafeZones reads the safe zones of a yaml seed file. An empty path
// returns the built-in Hamilton list.
func LoadSafeZones(file string) ([]schema.SafeZone, error) {
	if file == "" {
		return DefaultSafeZones(), nil
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}

	log.WithField("file", file).WithField("count", len(seed.SafeZones)).Info("loaded safe zone seed")
	return seed.SafeZones, nil
}

func supplies(food, water, medical, blankets int) schema.Supplies {
	return schema.Supplies{
		"food":     food,
		"water":    water,
		"medical":  medical,
		"blankets": blankets,
	}
}

// DefaultSafeZones is the demo set of safe zones around Hamilton, Ontario
func DefaultSafeZones() []schema.SafeZone {
	return []schema.SafeZone{
		{ID: "sz1", Name: "Hamilton Emergency Shelter", Type: "Shelter", Address: "155 James St N, Hamilton, ON L8R 2K9", Latitude: 43.2567, Longitude: -79.8694, Capacity: 200, Occupancy: 145, Supplies: supplies(75, 80, 60, 90)},
		{ID: "sz2", Name: "McMaster University Medical Centre", Type: "Hospital", Address: "1200 Main St W, Hamilton, ON L8N 3Z5", Latitude: 43.2609, Longitude: -79.9192, Capacity: 500, Occupancy: 320, Supplies: supplies(50, 70, 95, 40)},
		{ID: "sz3", Name: "FirstOntario Centre", Type: "Aid Station", Address: "101 York Blvd, Hamilton, ON L8R 3L4", Latitude: 43.2581, Longitude: -79.8778, Capacity: 1000, Occupancy: 650, Supplies: supplies(45, 55, 70, 80)},
		{ID: "sz4", Name: "Hamilton General Hospital", Type: "Hospital", Address: "237 Barton St E, Hamilton, ON L8L 2X2", Latitude: 43.2536, Longitude: -79.8503, Capacity: 400, Occupancy: 280, Supplies: supplies(60, 65, 90, 50)},
		{ID: "sz5", Name: "Westdale Community Centre", Type: "Shelter", Address: "955 King St W, Hamilton, ON L8S 1K8", Latitude: 43.2644, Longitude: -79.9067, Capacity: 150, Occupancy: 95, Supplies: supplies(70, 75, 50, 85)},
		{ID: "sz6", Name: "St. Joseph's Healthcare Hamilton", Type: "Hospital", Address: "50 Charlton Ave E, Hamilton, ON L8N 4A6", Latitude: 43.2431, Longitude: -79.8722, Capacity: 350, Occupancy: 210, Supplies: supplies(55, 60, 85, 45)},
		{ID: "sz7", Name: "Mohawk Sports Park", Type: "Aid Station", Address: "385 Mohawk Rd W, Hamilton, ON L9C 1W1", Latitude: 43.2306, Longitude: -79.8889, Capacity: 300, Occupancy: 180, Supplies: supplies(65, 70, 55, 75)},
		{ID: "sz8", Name: "Dundas Community Centre", Type: "Shelter", Address: "10 Market St S, Dundas, ON L9H 1A1", Latitude: 43.2658, Longitude: -79.9556, Capacity: 120, Occupancy: 75, Supplies: supplies(80, 85, 40, 90)},
	}
}
