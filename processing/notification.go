package processing

import "fmt"

// NotificationService reports status changes to a sink.
// Register its SendNotification method on an order.
type NotificationService struct {
	sink Sink
}

func NewNotificationService(sink Sink) *NotificationService {
	return &NotificationService{sink: sink}
}

// SendNotification satisfies domain.StatusListener
func (n *NotificationService) SendNotification(status string) error {
	return n.sink.Report(fmt.Sprintf("Notification: Order status changed to '%s'.", status))
}
