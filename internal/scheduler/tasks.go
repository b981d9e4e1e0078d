// Package scheduler provides the asynq client/worker pair for durable
// background tasks backed by Redis.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskHotLeadAlert = "notification.hot_lead_alert"

type HotLeadAlertPayload struct {
	LeadID string `json:"leadId"`
	Score  int    `json:"score"`
}

func NewHotLeadAlertTask(payload HotLeadAlertPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskHotLeadAlert, data), nil
}

func ParseHotLeadAlertPayload(task *asynq.Task) (HotLeadAlertPayload, error) {
	var payload HotLeadAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return HotLeadAlertPayload{}, err
	}
	return payload, nil
}
