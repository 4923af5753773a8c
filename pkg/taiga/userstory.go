package taiga

// UserStory keeps its dates as the raw strings the API returned. Date
// parsing happens late, in the timeline package, because an unparseable
// date is a per-story condition and not a decoding failure.
type UserStory struct {
	ID          int     `json:"id"`
	Ref         int     `json:"ref"`
	Subject     string  `json:"subject"`
	CreatedDate string  `json:"created_date"`
	DueDate     *string `json:"due_date"`
	FinishDate  *string `json:"finish_date"`
	IsClosed    bool    `json:"is_closed"`
	IsBlocked   bool    `json:"is_blocked"`
	Milestone   int     `json:"milestone"`
	Project     int     `json:"project"`
	TotalPoints float64 `json:"total_points"`
	Version     int     `json:"version"`
}
