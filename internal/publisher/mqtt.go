package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/wattlab/wattboard/internal/config"
	"github.com/wattlab/wattboard/pkg/models"
)

// Publisher pushes monthly figures to an MQTT broker and/or Home Assistant
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	haConfig    config.HAConfig
}

// New creates a new publisher (supports both MQTT and HA HTTP API)
func New(mqttCfg config.MQTTConfig, topicPrefix string, haCfg config.HAConfig) (*Publisher, error) {
	// Validate HA config if enabled
	if haCfg.Enabled {
		if haCfg.URL == "" {
			return nil, fmt.Errorf("Home Assistant URL is required when enabled")
		}
		if haCfg.Token == "" {
			return nil, fmt.Errorf("Home Assistant token is required when enabled")
		}
		if haCfg.EntityID == "" {
			return nil, fmt.Errorf("Home Assistant entity_id is required when enabled")
		}
	}

	var client mqtt.Client
	if mqttCfg.Enabled {
		if mqttCfg.Broker == "" {
			return nil, fmt.Errorf("MQTT broker address is required when enabled")
		}

		// Configure MQTT client options
		opts := mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
		opts.SetClientID("wattboard")
		opts.SetAutoReconnect(true)
		opts.SetConnectRetry(true)
		opts.SetConnectTimeout(10 * time.Second)

		if mqttCfg.Username != "" {
			opts.SetUsername(mqttCfg.Username)
		}
		if mqttCfg.Password != "" {
			opts.SetPassword(mqttCfg.Password)
		}

		// Create and connect client
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
		}
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
		haConfig:    haCfg,
	}, nil
}

// monthPayload is the MQTT message body for one monthly record
type monthPayload struct {
	Building string  `json:"building"`
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	UsageKWh float64 `json:"usage_kwh"`
	CostWon  int64   `json:"cost_won"`
}

// HAPayload matches the Home Assistant backfill service call data
type HAPayload struct {
	EntityID    string `json:"entity_id"`
	State       string `json:"state"`
	LastChanged string `json:"last_changed"`
	LastUpdated string `json:"last_updated"`
}

// PublishMonthly sends one monthly record to the configured sinks: the MQTT
// topic <prefix>/<building>/month/<n> and the Home Assistant backfill API,
// stamped at the start of the month.
func (p *Publisher) PublishMonthly(building string, year int, rec models.MonthlyRecord) error {
	if p.client != nil {
		payload := monthPayload{
			Building: building,
			Year:     year,
			Month:    rec.Month,
			UsageKWh: rec.UsageKWh,
			CostWon:  rec.CostWon,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding MQTT payload: %w", err)
		}

		topic := fmt.Sprintf("%s/%s/month/%d", p.topicPrefix, building, rec.Month)
		if token := p.client.Publish(topic, 1, true, body); token.Wait() && token.Error() != nil {
			return fmt.Errorf("publishing to %s: %w", topic, token.Error())
		}
	}

	if p.haConfig.Enabled {
		if err := p.publishHA(year, rec); err != nil {
			return err
		}
	}

	return nil
}

// publishHA sends a monthly state to Home Assistant via HTTP API
func (p *Publisher) publishHA(year int, rec models.MonthlyRecord) error {
	// Build the full API URL (AppDaemon API endpoint)
	apiURL := fmt.Sprintf("%s/api/appdaemon/backfill_state", p.haConfig.URL)

	timestamp := time.Date(year, time.Month(rec.Month), 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)

	payload := HAPayload{
		EntityID:    p.haConfig.EntityID,
		State:       fmt.Sprintf("%.2f", rec.UsageKWh),
		LastChanged: timestamp,
		LastUpdated: timestamp,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.haConfig.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read error response body for debugging
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
