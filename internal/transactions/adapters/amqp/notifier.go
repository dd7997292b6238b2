// Package amqp publishes and consumes the transactions.imported event.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/platform/messaging"
	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/ports"
)

const RoutingKeyImported = "transactions.imported"

type Publisher interface {
	PublishJSON(ctx context.Context, routingKey string, body []byte) error
}

type ImportNotifier struct {
	pub Publisher
}

func NewImportNotifier(pub Publisher) *ImportNotifier {
	return &ImportNotifier{pub: pub}
}

var _ ports.ImportNotifierPort = (*ImportNotifier)(nil)

func (n *ImportNotifier) NotifyImported(ctx context.Context, evt domain.ImportedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal import event: %w", err)
	}
	if err := n.pub.PublishJSON(ctx, RoutingKeyImported, body); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"component": "import_notifier",
		"batch_id":  evt.BatchID,
		"client":    evt.ClientName,
		"inserted":  evt.Inserted,
	}).Info("published import event")
	return nil
}

// ImportedHandler decodes import events for handler. Undecodable or
// client-less messages are permanent failures.
func ImportedHandler(handle func(ctx context.Context, evt domain.ImportedEvent) error) messaging.Handler {
	return func(ctx context.Context, body []byte) error {
		var evt domain.ImportedEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			return fmt.Errorf("decode import event: %v: %w", err, messaging.ErrPermanent)
		}
		if strings.TrimSpace(evt.ClientName) == "" {
			return fmt.Errorf("import event without client: %w", messaging.ErrPermanent)
		}
		return handle(ctx, evt)
	}
}
