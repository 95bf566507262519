package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"roomly/models"
	"roomly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailSend is the asynq task type for outbound booking emails.
const TypeEmailSend = "email:send"

// EmailTask is the queued payload for one outbound email.
type EmailTask struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AsynqMailer queues emails onto Redis via asynq; the worker in cron/
// delivers them. Enqueue failures are logged and swallowed.
type AsynqMailer struct {
	Client *asynq.Client
}

func NewAsynqMailer(client *asynq.Client) *AsynqMailer {
	return &AsynqMailer{Client: client}
}

func (m *AsynqMailer) enqueue(task EmailTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal email task: %w", err)
	}
	if _, err := m.Client.Enqueue(asynq.NewTask(TypeEmailSend, payload)); err != nil {
		utils.GetLogger().Error("failed to enqueue email",
			zap.String("to", task.To), zap.String("subject", task.Subject), zap.Error(err))
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}

func (m *AsynqMailer) SendBookingConfirmed(ctx context.Context, b *models.Booking, manageURL string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking on %s at %s is confirmed.\nTotal: %.2f\n\n"+
			"Need to change plans? Reschedule or cancel here:\n%s\n",
		b.CustomerName, b.Date, b.TimeString(), b.TotalPrice, manageURL)
	return m.enqueue(EmailTask{
		To:      b.CustomerEmail,
		Subject: "Your booking is confirmed",
		Body:    body,
	})
}

func (m *AsynqMailer) SendBookingRescheduled(ctx context.Context, b *models.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking has been moved to %s at %s.\n",
		b.CustomerName, b.Date, b.TimeString())
	return m.enqueue(EmailTask{
		To:      b.CustomerEmail,
		Subject: "Your booking was rescheduled",
		Body:    body,
	})
}

func (m *AsynqMailer) SendBookingCancelled(ctx context.Context, b *models.Booking) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking on %s at %s has been cancelled.\n",
		b.CustomerName, b.Date, b.TimeString())
	return m.enqueue(EmailTask{
		To:      b.CustomerEmail,
		Subject: "Your booking was cancelled",
		Body:    body,
	})
}
