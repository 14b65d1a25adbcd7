package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/interfaces"
	"github.com/iwtcode/cncSimulator/internal/middleware/logging"
)

const (
	qos             = 0
	connectTimeout  = 10 * time.Second
	disconnectQuiet = 250 // мс
)

type MqttPublisher struct {
	client paho.Client
	prefix string
	logger *logging.Logger
}

// NewMqttPublisher подключается к брокеру. Снимок каждого станка
// публикуется в топик <prefix>/<id>/telemetry.
func NewMqttPublisher(cfg *config.AppConfig, logger *logging.Logger) (interfaces.SnapshotPublisher, error) {
	log := logger.WithPrefix("MQTT")

	opts := paho.NewClientOptions().
		AddBroker(cfg.Mqtt.Broker).
		SetClientID(cfg.Mqtt.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warn("Connection to broker lost", "broker", cfg.Mqtt.Broker, "error", err)
		}).
		SetOnConnectHandler(func(paho.Client) {
			log.Info("Connected to broker", "broker", cfg.Mqtt.Broker)
		})

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("таймаут подключения к MQTT брокеру %s", cfg.Mqtt.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MQTT брокеру %s: %w", cfg.Mqtt.Broker, err)
	}

	return newPublisher(client, cfg.Mqtt.TopicPrefix, log), nil
}

func newPublisher(client paho.Client, prefix string, logger *logging.Logger) *MqttPublisher {
	return &MqttPublisher{client: client, prefix: prefix, logger: logger}
}

// Topic возвращает топик телеметрии станка.
func (p *MqttPublisher) Topic(machineID string) string {
	return fmt.Sprintf("%s/%s/telemetry", p.prefix, machineID)
}

func (p *MqttPublisher) Name() string {
	return "mqtt:" + p.prefix
}

func (p *MqttPublisher) Publish(ctx context.Context, snapshots []models.MachineSnapshot) error {
	for _, snap := range snapshots {
		payload, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("не удалось сериализовать снимок %s: %w", snap.ID, err)
		}

		token := p.client.Publish(p.Topic(snap.ID), qos, false, payload)
		select {
		case <-token.Done():
			if err := token.Error(); err != nil {
				return fmt.Errorf("публикация %s: %w", snap.ID, err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (p *MqttPublisher) Close() error {
	p.client.Disconnect(disconnectQuiet)
	return nil
}
