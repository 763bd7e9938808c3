// posthog_client.go wraps posthog.Client so callers need not care whether
// analytics is configured.
package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/posthog/posthog-go"
)

const defaultPosthogEndpoint = "https://eu.i.posthog.com"

// PosthogClientWrapper is safe to use with a nil client; every call is then a no-op.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
	idKey         []byte
}

// InitializePosthogClient returns an uninitialized wrapper when apiKey is empty.
// idSalt keys DistinctID; when empty a random key is used, so ids are only
// stable for the life of the process.
func InitializePosthogClient(apiKey, endpoint, idSalt string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Info("Posthog API key is empty, analytics disabled")
		return &PosthogClientWrapper{}
	}
	if endpoint == "" {
		endpoint = defaultPosthogEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	w := NewPosthogClientWrapper(client, logger)
	if idSalt != "" {
		w.idKey = []byte(idSalt)
	}
	return w
}

// NewPosthogClientWrapper wraps an existing client with a random id key.
func NewPosthogClientWrapper(client posthog.Client, logger *slog.Logger) *PosthogClientWrapper {
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return &PosthogClientWrapper{posthogClient: client, logger: logger, idKey: key}
}

// DistinctID pseudonymizes a client identifier such as an IP address so the
// raw value never leaves the process.
func (w *PosthogClientWrapper) DistinctID(clientID string) string {
	mac := hmac.New(sha256.New, w.idKey)
	mac.Write([]byte(clientID))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctId string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctId), slog.String("event", event))
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
