package dto

import "cluey.app/bridge/internal/model"

type SendMessageRequest struct {
	AlertID string `json:"alertId" binding:"required,min=1,max=255"`
	Message string `json:"message" binding:"required"`
}

type SendMessageResponse struct {
	Status  string `json:"status"`
	SID     string `json:"sid"`
	AlertID string `json:"alertId"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	Direction string `json:"direction"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func ToMessageResponse(r model.MessageRecord) MessageResponse {
	return MessageResponse{
		ID:        r.ID,
		Direction: string(r.Direction),
		Text:      r.Text,
		Timestamp: r.Timestamp,
	}
}

func ToMessageResponses(records []model.MessageRecord) []MessageResponse {
	out := make([]MessageResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToMessageResponse(r))
	}
	return out
}
