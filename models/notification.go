package models

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

const (
	NotificationQueued = "queued"
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

type Notification struct {
	Channel  *string `json:"channel" validate:"required,oneof=sms whatsapp"`
	To       *string `json:"to" validate:"required"`
	Message  *string `json:"message" validate:"required"`
	Status   *string `json:"status" validate:"omitempty,oneof=queued sent failed"`
	Provider *string `json:"provider"`
	Error    *string `json:"error"`
}

func ValidateNotification(raw map[string]any) (*Notification, error) {
	r := newFieldReader(raw)
	n := &Notification{
		Channel:  r.str("channel"),
		To:       r.str("to"),
		Message:  r.str("message"),
		Status:   r.str("status"),
		Provider: r.str("provider"),
		Error:    r.str("error"),
	}
	if err := r.check(KindNotification, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notification) Kind() Kind { return KindNotification }

func (n *Notification) StorageRecord() map[string]any {
	return map[string]any{
		"channel":  strOrNil(n.Channel),
		"to":       strOrNil(n.To),
		"message":  strOrNil(n.Message),
		"status":   strOrDefault(n.Status, NotificationQueued),
		"provider": strOrNil(n.Provider),
		"error":    strOrNil(n.Error),
	}
}
