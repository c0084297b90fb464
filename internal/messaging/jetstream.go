package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/logger"
)

// Config holds the NATS JetStream connection configuration
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type jetstreamPublisher struct {
	nc         *nats.Conn
	js         jetstream.JetStream
	streamName string
}

// NewJetStreamPublisher connects to NATS and ensures the broker stream exists
func NewJetStreamPublisher(cfg Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{SubjectSaleConfirmed, SubjectPurchaseReconciled},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &jetstreamPublisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
	}, nil
}

func (p *jetstreamPublisher) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// PublishSaleConfirmed publishes a confirmed track sale
func (p *jetstreamPublisher) PublishSaleConfirmed(ctx context.Context, event *SaleConfirmedEvent) error {
	return p.publish(ctx, SubjectSaleConfirmed, event)
}

// PublishPurchaseReconciled publishes a swept purchase attempt
func (p *jetstreamPublisher) PublishPurchaseReconciled(ctx context.Context, event *PurchaseReconciledEvent) error {
	return p.publish(ctx, SubjectPurchaseReconciled, event)
}

// Close closes the NATS connection
func (p *jetstreamPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
