package dto

import "time"

type CreateWeddingProfileRequest struct {
	BrideName         string   `json:"bride_name"`
	GroomName         string   `json:"groom_name"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	Venue             string   `json:"venue"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	GuestCountTarget  int      `json:"guest_count_target"`
	BudgetTarget      float64  `json:"budget_target"`
	SelectedFunctions []string `json:"selected_functions"`
	Theme             string   `json:"theme"`
}

type UpdateWeddingProfileRequest struct {
	BrideName         *string   `json:"bride_name"`
	GroomName         *string   `json:"groom_name"`
	StartDate         *string   `json:"start_date"`
	EndDate           *string   `json:"end_date"`
	Venue             *string   `json:"venue"`
	City              *string   `json:"city"`
	State             *string   `json:"state"`
	GuestCountTarget  *int      `json:"guest_count_target"`
	BudgetTarget      *float64  `json:"budget_target"`
	SelectedFunctions *[]string `json:"selected_functions"`
	Theme             *string   `json:"theme"`
	IsComplete        *bool     `json:"is_complete"`
}

// DateLayout is the wire format for wedding dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
