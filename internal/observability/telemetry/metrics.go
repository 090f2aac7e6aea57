package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	ActiveChargingSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chargehub_active_charging_sessions",
		Help: "Number of charging sessions currently in the active slot",
	})

	EnergyDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chargehub_energy_delivered_kwh_total",
		Help: "Total simulated energy delivered in kWh",
	})

	SessionsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chargehub_sessions_started_total",
		Help: "Total session start attempts by outcome",
	}, []string{"outcome"})

	ChargerLookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chargehub_charger_lookups_total",
		Help: "Total charger directory lookups",
	})

	NotificationsEmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chargehub_notifications_emitted_total",
		Help: "Total notifications emitted by type",
	}, []string{"type"})

	// Infrastructure metrics
	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chargehub_realtime_clients",
		Help: "Connected realtime websocket clients",
	})
)
