package domain

import "time"

type EntryView struct {
	ScheduleEntry
	Active bool `json:"active"`
}

type Board struct {
	Day          string         `json:"day"`
	Clock        string         `json:"clock"`
	NowMinutes   int            `json:"now_minutes"`
	CurrentClass *ScheduleEntry `json:"current_class"`
	NextClass    *ScheduleEntry `json:"next_class"`
	Countdown    string         `json:"countdown"`
	Today        []EntryView    `json:"today"`
	Revision     string         `json:"revision"`
	FetchedAt    *time.Time     `json:"fetched_at"`
}
