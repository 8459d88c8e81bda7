package service

import (
	"context"
	"sync/atomic"

	"giftshop-chatbot-be/internal/constant"
	"giftshop-chatbot-be/internal/pkg/logger"
	"giftshop-chatbot-be/pkg/events"
	pktNats "giftshop-chatbot-be/pkg/nats"
)

// IAnalyticsService tails recommendation events off the NATS bus. It keeps
// a running counter and writes each event to the analytics log; heavier
// aggregation belongs to downstream consumers on the same stream.
type IAnalyticsService interface {
	Start() error
	RecommendationCount() int64
}

type analyticsService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger

	recommendations atomic.Int64
}

func NewAnalyticsService(subscriber *pktNats.Subscriber, log logger.ILogger) IAnalyticsService {
	return &analyticsService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *analyticsService) Start() error {
	subject := "chat." + constant.EventChatRecommendation
	return s.subscriber.Subscribe(subject, "chat-analytics", s.handleEvent)
}

func (s *analyticsService) handleEvent(_ context.Context, event events.Event) error {
	s.recommendations.Add(1)
	s.logger.Info("AnalyticsService", "Recommendation served", event.Payload())
	return nil
}

func (s *analyticsService) RecommendationCount() int64 {
	return s.recommendations.Load()
}
