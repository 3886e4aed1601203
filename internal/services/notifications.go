package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

const DefaultTextbeltURL = "https://textbelt.com/text"

// NotificationService sends booking confirmations by SMS through Textbelt.
// With an empty API key it only logs.
type NotificationService struct {
	apiKey string
	url    string
	client *http.Client
	logger zerolog.Logger
	wg     sync.WaitGroup
}

func NewNotificationService(apiKey, url string, logger zerolog.Logger) *NotificationService {
	if url == "" {
		url = DefaultTextbeltURL
	}
	return &NotificationService{
		apiKey: apiKey,
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With().Str("component", "notifications").Logger(),
	}
}

// SendBookingConfirmation texts the patient's phone number, if the booking
// carries one. Delivery runs in the background so it never delays the API
// response.
func (s *NotificationService) SendBookingConfirmation(b *models.Booking) {
	phone := b.StringField("phone")
	if phone == "" {
		s.logger.Debug().Str("patient", b.Patient).Msg("SMS not sent: booking has no phone number")
		return
	}
	if s.apiKey == "" {
		s.logger.Debug().Str("patient", b.Patient).Msg("SMS not sent: Textbelt key not configured")
		return
	}

	msg := confirmationMessage(b)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.send(ctx, phone, msg); err != nil {
			s.logger.Error().Err(err).Str("patient", b.Patient).Msg("failed to send booking SMS")
			return
		}
		s.logger.Info().Str("patient", b.Patient).Msg("booking SMS sent")
	}()
}

// Wait blocks until in-flight deliveries finish.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func confirmationMessage(b *models.Booking) string {
	return fmt.Sprintf("Booking confirmed: %s on %s at %s.", b.Treatment, b.Date, b.Slot)
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *NotificationService) send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("textbelt request: %w", err)
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("textbelt response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt rejected message: %s", result.Error)
	}
	return nil
}
