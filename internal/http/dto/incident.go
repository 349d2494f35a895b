package dto

type StartIncidentRequest struct {
	AlertID     string `json:"alertId" binding:"required,min=1,max=255"`
	Participant string `json:"participant" binding:"required,min=1,max=64"`
	// PID is the id of the user owning the alert.
	PID string `json:"pid" binding:"omitempty,max=255"`
	// ClueyToken is the per-user token used when forwarding to Cluey.
	ClueyToken string `json:"clueyToken" binding:"omitempty,max=4096"`
}

type StartIncidentResponse struct {
	Status      string `json:"status"`
	AlertID     string `json:"alertId"`
	Participant string `json:"participant"`
}
