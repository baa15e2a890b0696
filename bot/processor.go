package bot

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/chopexpress/chopexpress/database/dbhelper"
	"github.com/chopexpress/chopexpress/models"
)

var (
	greetingKeywords = []string{"commander", "menu", "bonjour", "salut", "hi", "hello"}
	helpKeywords     = []string{"aide", "help"}
)

// Processor resolves the customer behind each inbound message and routes it
// to a reply.
type Processor struct {
	store  *dbhelper.Store
	sender Sender
}

func NewProcessor(store *dbhelper.Store, sender Sender) *Processor {
	return &Processor{store: store, sender: sender}
}

// ProcessValue fans out every message in a webhook change value. Failures
// are collected per message so one bad message never blocks the rest; the
// caller logs the aggregate and acknowledges the webhook regardless.
func (p *Processor) ProcessValue(value models.WebhookValue) error {
	var result *multierror.Error
	for _, msg := range value.Messages {
		if err := p.processMessage(value, msg); err != nil {
			result = multierror.Append(result, fmt.Errorf("message %s: %w", msg.ID, err))
		}
	}
	return result.ErrorOrNil()
}

func (p *Processor) processMessage(value models.WebhookValue, msg models.WebhookMessage) error {
	if p.store == nil {
		return errors.New("backing store not configured")
	}

	user, err := p.store.GetOrCreateUserByPhone(msg.From, value.SenderName(msg.From))
	if err != nil {
		return fmt.Errorf("resolve user %s: %w", msg.From, err)
	}

	log := logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"from":    msg.From,
		"type":    msg.Type,
	})

	switch msg.Type {
	case "text":
		if msg.Text == nil {
			log.Warn("text message without body")
			return nil
		}
		return p.handleText(msg.From, msg.Text.Body)
	case "interactive":
		log.WithField("interactive", string(msg.Interactive)).Info("interactive message received")
		return nil
	default:
		// Unknown message types (image, audio, location, ...) are ignored.
		log.Debug("ignoring unsupported message type")
		return nil
	}
}

func (p *Processor) handleText(phoneNumber, body string) error {
	text := strings.ToLower(strings.TrimSpace(body))

	switch {
	case slices.Contains(greetingKeywords, text):
		return p.sender.SendWelcome(phoneNumber)
	case slices.Contains(helpKeywords, text):
		return p.sender.SendHelp(phoneNumber)
	default:
		return p.sender.SendDefault(phoneNumber, body)
	}
}
