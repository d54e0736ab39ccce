package submitqueue

import (
	"context"
	"fmt"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SubmittedMessage is the payload published for every accepted request.
type SubmittedMessage struct {
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	FlowKind      string    `json:"flow_kind"`
	Title         string    `json:"title"`
	Priority      string    `json:"priority"`
	SampleCount   int       `json:"sample_count"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type submitQueue struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewSubmitQueue declares the durable submission queue and enables publisher
// confirms so an accepted request is never silently dropped.
func NewSubmitQueue(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.SubmissionQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &submitQueue{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

func (s *submitQueue) PublishSubmitted(ctx context.Context, testRequest models.TestRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SubmitQueue.PublishSubmitted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("request_number", testRequest.RequestNumber),
	)

	payload := SubmittedMessage{
		RequestID:     testRequest.ID,
		RequestNumber: testRequest.RequestNumber,
		FlowKind:      testRequest.FlowKind,
		Title:         testRequest.Title,
		Priority:      testRequest.Priority,
		SampleCount:   len(testRequest.Draft.Samples.Items),
		SubmittedAt:   testRequest.SubmittedAt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}
