package domain

import (
	"fmt"
	"time"
)

type SessionStatus string

const (
	SessionStatusStarting  SessionStatus = "starting"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusStopping  SessionStatus = "stopping"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusError     SessionStatus = "error"
)

// Terminal reports whether no further transition is defined for the status.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusError
}

// ChargingSession is a single charging session. The charger fields are
// copied by value at creation time; there is no live reference back to the
// charger record.
type ChargingSession struct {
	ID              string        `json:"id"`
	ChargerID       string        `json:"charger_id"`
	ChargerName     string        `json:"charger_name"`
	Network         string        `json:"network"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         *time.Time    `json:"end_time,omitempty"`
	Status          SessionStatus `json:"status"`
	EnergyDelivered float64       `json:"energy_delivered"` // kWh
	CurrentPower    float64       `json:"current_power"`    // kW, fixed once active
	EstimatedCost   float64       `json:"estimated_cost"`   // euros
	MaxEnergy       float64       `json:"max_energy,omitempty"`  // kWh target, 0 = none
	TargetTime      *time.Time    `json:"target_time,omitempty"` // stored, not enforced
	ErrorMessage    string        `json:"error_message,omitempty"`
}

// FormatDuration renders the elapsed session time for display ("42 min",
// "2h 5min"). A running session is measured against now.
func FormatDuration(start time.Time, end *time.Time, now time.Time) string {
	stop := now
	if end != nil {
		stop = *end
	}
	minutes := int(stop.Sub(start).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
