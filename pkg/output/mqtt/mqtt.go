package mqtt

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/output"
)

const (
	// defaults
	DefaultServer     = "tcp://localhost:1883"
	DefaultClientID   = "greenhouse-client"
	DefaultStateTopic = "greenhouse/state"
	// discovery payload keys/values
	keyName                = "name"
	keyStateTopic          = "state_topic"
	keyUnitOfMeasurement   = "unit_of_measurement"
	keyDeviceClass         = "device_class"
	keyStateClass          = "state_class"
	keyValueTemplate       = "value_template"
	keyJSONAttributesTopic = "json_attributes_topic"
	keyUniqueID            = "unique_id"
	stateClassMeasurement  = "measurement"
)

// quantity describes one discoverable measurement in the snapshot payload.
type quantity struct {
	id            string
	unit          string
	deviceClass   string
	valueTemplate string
}

var quantities = []quantity{
	{"temperature", "°C", "temperature", "{{ value_json.temperature_c }}"},
	{"illuminance", "lx", "illuminance", "{{ value_json.lux }}"},
	{"soil_moisture", "", "", "{{ value_json.soil_raw }}"},
}

type MQTTOutput struct {
	client     mqtt.Client
	stateTopic string
}

func NewMQTT(cfg config.MQTTConfig) (output.Output, error) {
	server := cfg.Server
	if server == "" {
		server = DefaultServer
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}
	opts := mqtt.NewClientOptions().AddBroker(server).SetClientID(clientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	st := cfg.StateTopic
	if st == "" {
		st = DefaultStateTopic
	}
	m := &MQTTOutput{client: client, stateTopic: st}

	// Publish Home Assistant discovery payload(s) if requested. The topic
	// may carry a %s formatter for per-quantity discovery entries.
	if cfg.DiscoveryTopic != "" {
		for _, q := range quantities {
			dTopic := cfg.DiscoveryTopic
			if strings.Contains(dTopic, "%s") {
				dTopic = fmt.Sprintf(dTopic, q.id)
			}
			payload := discoveryPayload(cfg, q, m.stateTopic)
			if err := publishJSON(client, dTopic, true, payload); err != nil {
				log.Printf("mqtt discovery publish error: %v", err)
			}
			if !strings.Contains(cfg.DiscoveryTopic, "%s") {
				break // single topic, single payload
			}
		}
	}

	return m, nil
}

func (m *MQTTOutput) Publish(s output.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	token := m.client.Publish(m.stateTopic, 0, false, b)
	token.Wait()
	return token.Error()
}

func (m *MQTTOutput) Close() error {
	if m.client != nil {
		m.client.Disconnect(250)
	}
	return nil
}

// PublishRaw publishes a raw payload to the given topic. The caller can set the
// retain flag which is useful for discovery messages.
func (m *MQTTOutput) PublishRaw(topic string, payload []byte, retained bool) error {
	if m.client == nil {
		return fmt.Errorf("mqtt client not connected")
	}
	token := m.client.Publish(topic, 0, retained, payload)
	token.Wait()
	return token.Error()
}

// helper: build a discovery payload for one quantity
func discoveryPayload(cfg config.MQTTConfig, q quantity, stateTopic string) map[string]interface{} {
	payload := map[string]interface{}{
		keyName:                discoveryName(cfg, q),
		keyStateTopic:          stateTopic,
		keyStateClass:          stateClassMeasurement,
		keyValueTemplate:       q.valueTemplate,
		keyJSONAttributesTopic: stateTopic,
	}
	if q.unit != "" {
		payload[keyUnitOfMeasurement] = q.unit
	}
	if q.deviceClass != "" {
		payload[keyDeviceClass] = q.deviceClass
	}
	if uid := discoveryUniqueID(cfg, q); uid != "" {
		payload[keyUniqueID] = uid
	}
	return payload
}

// helper: build a human-friendly discovery name
func discoveryName(cfg config.MQTTConfig, q quantity) string {
	name := cfg.DiscoveryName
	if name == "" {
		name = fmt.Sprintf("Greenhouse %s", cfg.ClientID)
	}
	return fmt.Sprintf("%s %s", name, q.id)
}

// helper: build a unique id for discovery
func discoveryUniqueID(cfg config.MQTTConfig, q quantity) string {
	uid := cfg.DiscoveryUniqueID
	if uid == "" {
		uid = cfg.ClientID
	}
	if uid != "" {
		uid = fmt.Sprintf("%s_%s", uid, q.id)
	}
	return uid
}

// helper: marshal and publish JSON payload
func publishJSON(client mqtt.Client, topic string, retained bool, payload map[string]interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := client.Publish(topic, 0, retained, b)
	token.Wait()
	return token.Error()
}
