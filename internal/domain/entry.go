package domain

type ScheduleEntry struct {
	ID         int64  `json:"id" yaml:"id"`
	Day        string `json:"day" yaml:"day"`
	CourseName string `json:"course_name" yaml:"course_name"`
	Instructor string `json:"instructor" yaml:"instructor"`
	Location   string `json:"location" yaml:"location"`
	StartTime  string `json:"start_time" yaml:"start_time"`
	EndTime    string `json:"end_time" yaml:"end_time"`
}
