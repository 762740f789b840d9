package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"WorkTrail/config"
)

// 考勤事件走 topic 交换机，worker 侧的活动流队列绑定 scan.* 路由。
const (
	AttendanceExchange = "worktrail.attendance"
	ActivityQueue      = "attendance.activity"
	ScanRoutingKey     = "scan.event"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()
		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		var ch *amqp.Channel
		ch, connErr = conn.Channel()
		if connErr != nil {
			return
		}
		defer ch.Close()

		connErr = declareTopology(ch)
	})

	return connErr
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		AttendanceExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		ActivityQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	return ch.QueueBind(ActivityQueue, "scan.*", AttendanceExchange, false, nil)
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
