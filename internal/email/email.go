package email

import (
	"context"
	"fmt"

	"github.com/akozyreva/airlines/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers an order confirmation to the user. Delivery is a stub:
// the message is written to stdout.
func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("notify user %d: order %s (%s) with %d ticket(s)\n",
		event.UserID, event.Reference, event.Type, len(event.Tickets))
	return nil
}
