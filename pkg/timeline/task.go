package timeline

// Task is one render-ready timeline bar. Start and End are inclusive
// calendar dates in DateFormat. The builder does not enforce
// Start <= End; a malformed range is handed through and the renderer
// is the final arbiter of what to do with it.
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Progress int    `json:"progress"`
}
