// Package directory resolves a coordinate to nearby charging stations,
// annotated with distance and the linked-account flag.
package directory

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/geo"
	"github.com/chargehub/chargehub/internal/observability/telemetry"
	"github.com/chargehub/chargehub/internal/ports"
)

// DefaultRadiusKm is applied when the caller does not constrain the search.
const DefaultRadiusKm = 10

// Source supplies the candidate charger set for a coordinate.
type Source interface {
	Fetch(ctx context.Context, lat, lng float64) ([]domain.Charger, error)
}

type Service struct {
	source   Source
	accounts ports.AccountService
	log      *zap.Logger
}

func NewService(source Source, accounts ports.AccountService, log *zap.Logger) ports.DirectoryService {
	return &Service{
		source:   source,
		accounts: accounts,
		log:      log,
	}
}

// Lookup returns chargers within radiusKm of the origin, sorted by
// ascending distance. The radius filter applies here, in the local
// variant; the proxied fixture surface never filters. An empty result
// means "no chargers found" and is not an error.
func (s *Service) Lookup(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ChargerWithDistance, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	chargers, err := s.source.Fetch(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	telemetry.ChargerLookupsTotal.Inc()

	result := make([]domain.ChargerWithDistance, 0, len(chargers))
	for _, charger := range chargers {
		distance := geo.Distance(lat, lon, charger.Latitude, charger.Longitude)
		if distance > radiusKm {
			continue
		}
		charger.AccountConnected = s.accounts.IsConnected(ctx, charger.Network)
		result = append(result, domain.ChargerWithDistance{
			Charger:  charger,
			Distance: distance,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	s.log.Debug("Charger lookup",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("radius_km", radiusKm),
		zap.Int("results", len(result)),
	)
	return result, nil
}
