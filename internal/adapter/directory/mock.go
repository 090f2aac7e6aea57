package directory

import "github.com/chargehub/chargehub/internal/domain"

// MockChargers returns the fixed Helsinki-area charger set served by the
// local lookup variant. Callers receive a fresh copy; the realtime
// perturbation never writes back here.
func MockChargers() []domain.Charger {
	return []domain.Charger{
		{
			ID: "k-kamppi-1", Name: "K-Market Kamppi", Network: "K-Lataus",
			Latitude: 60.1695, Longitude: 24.9354,
			Available: 2, Total: 4, PowerKW: 50, PricePerKWh: 0.45,
			Status:    domain.ChargerStatusAvailable,
			Address:   "Urho Kekkosen katu 1, Helsinki",
			Amenities: []string{"Kauppa", "Kahvila", "WC"},
		},
		{
			ID: "abc-herttoniemi-1", Name: "ABC Herttoniemi", Network: "ABC Lataus",
			Latitude: 60.1867, Longitude: 25.0312,
			Available: 1, Total: 2, PowerKW: 150, PricePerKWh: 0.52,
			Status:    domain.ChargerStatusAvailable,
			Address:   "Itäväylä 1, Helsinki",
			Amenities: []string{"Ravintola", "Kauppa", "WC", "Suihku"},
		},
		{
			ID: "helen-pasila-1", Name: "Helen Charging Hub Pasila", Network: "Helen",
			Latitude: 60.1988, Longitude: 24.9339,
			Available: 0, Total: 6, PowerKW: 22, PricePerKWh: 0.38,
			Status:    domain.ChargerStatusBusy,
			Address:   "Pasilanraitio 5, Helsinki",
			Amenities: []string{"Kauppa", "WC"},
		},
		{
			ID: "virta-kalasatama-1", Name: "Virta Kalasatama", Network: "Virta",
			Latitude: 60.1756, Longitude: 24.9756,
			Available: 3, Total: 4, PowerKW: 75, PricePerKWh: 0.48,
			Status:    domain.ChargerStatusAvailable,
			Address:   "Sörnäistenkatu 1, Helsinki",
			Amenities: []string{"Ravintola", "WC"},
		},
		{
			ID: "fortum-vantaa-1", Name: "Fortum Charge Vantaa", Network: "Fortum",
			Latitude: 60.2934, Longitude: 25.0378,
			Available: 2, Total: 3, PowerKW: 100, PricePerKWh: 0.55,
			Status:    domain.ChargerStatusAvailable,
			Address:   "Lentäjänkuja 3, Vantaa",
			Amenities: []string{"Kauppa", "Kahvila"},
		},
	}
}
