package messaging

import (
	"carelink-service/internal/app/config"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

func buildAMQPURI(driverConfig *config.DriverConfig) string {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}
	return uri.String()
}

func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(fmt.Sprintf("carelink-service-%s", internalConfig.App.Env))

	conn, err := amqp091.DialConfig(buildAMQPURI(driverConfig), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
