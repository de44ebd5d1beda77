package domain

import "time"

type Upload struct {
	Name         string     `db:"name"          json:"name"`
	Status       Status     `db:"status"        json:"status"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	ReportPath   string     `db:"report_path"   json:"report_path,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at"  json:"processed_at,omitempty"`
}
