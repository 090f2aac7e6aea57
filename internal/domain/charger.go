package domain

import "fmt"

type ChargerStatus string

const (
	ChargerStatusAvailable ChargerStatus = "available"
	ChargerStatusBusy      ChargerStatus = "busy"
	ChargerStatusOffline   ChargerStatus = "offline"
)

// StatusForAvailability derives the charger status from its availability
// counter. Offline is never derived; it is reserved for explicit
// out-of-service marking.
func StatusForAvailability(available int) ChargerStatus {
	if available > 0 {
		return ChargerStatusAvailable
	}
	return ChargerStatusBusy
}

type Charger struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Network          string        `json:"network"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Available        int           `json:"available"`
	Total            int           `json:"total"`
	PowerKW          float64       `json:"power_kw"`
	PricePerKWh      float64       `json:"price_per_kwh"`
	Status           ChargerStatus `json:"status"`
	AccountConnected bool          `json:"account_connected"` // joined at read time, never stored
	Address          string        `json:"address"`
	Amenities        []string      `json:"amenities,omitempty"`
}

// ChargerWithDistance annotates a charger with the distance (km) from the
// query origin. The distance is computed per lookup and never persisted.
type ChargerWithDistance struct {
	Charger
	Distance float64 `json:"distance"`
}

// FormatDistance renders a distance in km for display, switching to metres
// below one kilometre.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000+0.5))
	}
	return fmt.Sprintf("%.1f km", km)
}
