package models

// schedule_daily_survey request, time is epoch milliseconds
type ScheduleRequest struct {
	Action string `json:"action" mapstructure:"action"`
	Time   int64  `json:"time" mapstructure:"time"`
}

// next_occurrence request, date is epoch milliseconds
type NextOccurrenceRequest struct {
	Action string `json:"action" mapstructure:"action"`
	Date   int64  `json:"date" mapstructure:"date"`
}

type NextOccurrenceResponse struct {
	Next    int64  `json:"next"`
	NextISO string `json:"next_iso"`
}
