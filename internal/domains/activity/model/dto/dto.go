package dto

import (
	"hus/internal/domains/activity/model"
)

type ActivityLogResponse struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	Role       string           `json:"role"`
	ActionType model.ActionType `json:"action_type"`
	EntityType model.EntityType `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Details    string           `json:"details"`
	Timestamp  string           `json:"timestamp"`
}

func (r *ActivityLogResponse) FromModel(entry model.ActivityLog) {
	r.ID = entry.ID
	r.UserID = entry.UserID
	r.UserName = entry.UserName
	r.Role = entry.Role
	r.ActionType = entry.ActionType
	r.EntityType = entry.EntityType
	r.EntityID = entry.EntityID
	r.Details = entry.Details
	r.Timestamp = entry.Timestamp
}

// GetActivityLogsResponse carries the capped history, newest first.
type GetActivityLogsResponse struct {
	Logs      []ActivityLogResponse `json:"logs"`
	TotalData int                   `json:"total_data"`
}

func (r *GetActivityLogsResponse) FromModels(entries []model.ActivityLog) {
	r.TotalData = len(entries)
	r.Logs = make([]ActivityLogResponse, len(entries))

	for i, entry := range entries {
		r.Logs[i].FromModel(entry)
	}
}
