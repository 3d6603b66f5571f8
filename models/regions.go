package models

// StateRegion is one entry of the static state -> districts reference
// table used by district selection and report filtering.
type StateRegion struct {
	State     string   `json:"state"`
	Districts []string `json:"districts"`
}

// States is the reference table. Registration and issue submission
// accept only (state, district) pairs listed here.
var States = []StateRegion{
	{State: "Jharkhand", Districts: []string{"Ranchi", "Dhanbad", "Jamshedpur", "Bokaro", "Hazaribagh"}},
	{State: "Bihar", Districts: []string{"Patna", "Gaya", "Muzaffarpur", "Bhagalpur", "Darbhanga"}},
	{State: "Uttar Pradesh", Districts: []string{"Lucknow", "Kanpur", "Varanasi", "Agra", "Prayagraj"}},
	{State: "Maharashtra", Districts: []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"}},
	{State: "Delhi", Districts: []string{"New Delhi", "North Delhi", "South Delhi", "East Delhi", "West Delhi"}},
}

// StateNames returns the state column of the reference table.
func StateNames() []string {
	names := make([]string, 0, len(States))
	for _, s := range States {
		names = append(names, s.State)
	}
	return names
}

// DistrictsForState returns the districts of a state, or nil for an
// unknown state.
func DistrictsForState(state string) []string {
	for _, s := range States {
		if s.State == state {
			return s.Districts
		}
	}
	return nil
}

// ValidRegion reports whether the (state, district) pair exists in the
// reference table.
func ValidRegion(state, district string) bool {
	for _, d := range DistrictsForState(state) {
		if d == district {
			return true
		}
	}
	return false
}
