package domain

import "time"

type AccountStatus string

const (
	AccountStatusConnected    AccountStatus = "connected"
	AccountStatusNotConnected AccountStatus = "not_connected"
	AccountStatusConnecting   AccountStatus = "connecting"
	AccountStatusError        AccountStatus = "error"
)

// NetworkAccount tracks the simulated link between the user and one
// charging network. The set of known networks is fixed; records are never
// deleted, only reset to not_connected.
type NetworkAccount struct {
	Name          string        `json:"name"`
	Logo          string        `json:"logo"`
	Status        AccountStatus `json:"status"`
	Stations      string        `json:"stations"` // informational capacity string
	AccountEmail  string        `json:"account_email,omitempty"`
	LastConnected *time.Time    `json:"last_connected,omitempty"`
	ErrorMessage  string        `json:"error_message,omitempty"`
}

// DefaultAccounts returns the fixed set of six known charging networks in
// their unlinked state.
func DefaultAccounts() []NetworkAccount {
	return []NetworkAccount{
		{Name: "Virta", Logo: "⚡", Status: AccountStatusNotConnected, Stations: "2,400+"},
		{Name: "Helen", Logo: "🔋", Status: AccountStatusNotConnected, Stations: "800+"},
		{Name: "K-Lataus", Logo: "🏪", Status: AccountStatusNotConnected, Stations: "1,200+"},
		{Name: "ABC Lataus", Logo: "⛽", Status: AccountStatusNotConnected, Stations: "600+"},
		{Name: "Fortum", Logo: "🌿", Status: AccountStatusNotConnected, Stations: "38,000+"},
		{Name: "Recharge", Logo: "🔌", Status: AccountStatusNotConnected, Stations: "15,000+"},
	}
}
