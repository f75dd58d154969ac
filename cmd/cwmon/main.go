package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v6"

	"github.com/robotalks/cwkeyer/pkg/remote/comm/mqtt"
	"github.com/robotalks/cwkeyer/pkg/remote/msgs"
)

var config = struct {
	MQTTBrokerURL string `env:"KEYER_MQTT_URL"`
}{
	MQTTBrokerURL: "mqtt://localhost:1883/cwkeyer/",
}

func init() {
	if err := env.Parse(&config); err != nil {
		log.Println(err)
	}
	flag.StringVar(&config.MQTTBrokerURL, "mqtt", config.MQTTBrokerURL, "MQTT broker URL.")
}

func describe(topic string, payload []byte) string {
	if strings.HasSuffix(topic, "/meta") {
		if len(payload) == 0 {
			return topic + ": gone"
		}
		return topic + ": " + string(payload)
	}
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		return topic + ": bad message: " + err.Error()
	}
	msg, err := typed.Decode()
	if err != nil {
		return topic + ": decode error: " + err.Error()
	}
	return topic + ": [" + reflect.Indirect(reflect.ValueOf(msg)).Type().Name() + "] " + msg.String()
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	q, err := mqtt.NewQueueFromURL(config.MQTTBrokerURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err := q.ConnectWait(ctx); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()
	q.Sub("#", func(topic string, payload []byte) {
		log.Println(describe(topic, payload))
	})
	<-ctx.Done()
}
