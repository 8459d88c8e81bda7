package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"giftshop-chatbot-be/internal/dto"
	"giftshop-chatbot-be/internal/entity"
	"giftshop-chatbot-be/internal/repository/specification"
	"giftshop-chatbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPersisterService interface {
	Consume(ctx context.Context) error
}

// persisterService drains the chat-persist topic and writes conversation
// logs to Postgres. Persistence is asynchronous so a slow or down database
// never blocks a chat turn.
type persisterService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewPersisterService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IPersisterService {
	return &persisterService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (ps *persisterService) Consume(ctx context.Context) error {
	messages, err := ps.pubSub.Subscribe(ctx, ps.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ps.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ps *persisterService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PersistChatPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal persist payload: %v", err)
		msg.Ack() // poison message, never retriable
		return
	}

	sessionId, err := uuid.Parse(payload.SessionId)
	if err != nil {
		log.Printf("[ERROR] Invalid session id %q: %v", payload.SessionId, err)
		msg.Ack()
		return
	}

	if len(payload.Messages) == 0 {
		msg.Ack()
		return
	}

	uow := ps.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to look up chat session %s: %v", sessionId, err)
		msg.Nack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	now := time.Now()
	if existing == nil {
		session := entity.ChatSession{
			Id:        sessionId,
			UserId:    payload.UserId,
			Title:     payload.Title,
			CreatedAt: now,
		}
		if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
			log.Printf("[ERROR] Failed to create chat session %s: %v", sessionId, err)
			msg.Nack()
			return
		}
	} else {
		existing.UpdatedAt = &now
		if err := uow.ChatSessionRepository().Update(ctx, existing); err != nil {
			log.Printf("[ERROR] Failed to touch chat session %s: %v", sessionId, err)
			msg.Nack()
			return
		}
	}

	logEntries := make([]*entity.ChatMessage, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		id, err := uuid.Parse(m.Id)
		if err != nil {
			id = uuid.New()
		}
		logEntries = append(logEntries, &entity.ChatMessage{
			Id:            id,
			ChatSessionId: sessionId,
			Role:          m.Role,
			Content:       m.Content,
			CategoryId:    m.CategoryId,
			OccasionId:    m.OccasionId,
			ProductCount:  m.ProductCount,
			CreatedAt:     m.CreatedAt,
		})
	}

	if err := uow.ChatMessageRepository().CreateBulk(ctx, logEntries); err != nil {
		log.Printf("[ERROR] Failed to persist %d chat messages for session %s: %v", len(logEntries), sessionId, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit chat persistence: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
