package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

const connectTimeout = 5 * time.Second

// Publisher mirrors samples to an MQTT topic as JSON, QoS 0, not retained.
// Publish never waits for the broker.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// Connect dials the broker named in opts.
func Connect(opts options.MQTTOptions) (*Publisher, error) {
	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetAutoReconnect(false).
		SetConnectTimeout(connectTimeout)

	client := mqtt.NewClient(clientOpts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect %s: timed out", opts.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", opts.Broker, err)
	}
	log.Printf("telemetry connected to MQTT broker at %s, topic %s", opts.Broker, opts.Topic)

	return newPublisher(client, opts.Topic), nil
}

func newPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

// Encode returns the JSON payload published for s.
func Encode(s orientation.Sample) ([]byte, error) {
	return json.Marshal(s)
}

func (p *Publisher) Publish(s orientation.Sample) {
	payload, err := Encode(s)
	if err != nil {
		log.Printf("telemetry encode: %v", err)
		return
	}
	p.client.Publish(p.topic, 0, false, payload)
}

// Close disconnects, giving in-flight messages 250ms.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
