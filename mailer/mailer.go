// Package mailer sends transactional email through a pluggable provider.
// Sends are fire-and-forget relative to the user-facing response: a failed
// email never fails the order that triggered it.
package mailer

import (
	"context"
	"log"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// SendAsync dispatches the message on a goroutine and logs failures.
func SendAsync(p Provider, msg Message) {
	go func() {
		if err := p.Send(context.Background(), msg); err != nil {
			log.Printf("mailer: send to %s failed: %v", msg.To, err)
		}
	}()
}

// LogProvider is the development fallback: it just logs.
type LogProvider struct{}

func (LogProvider) Send(ctx context.Context, msg Message) error {
	log.Printf("mailer: [log provider] to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
