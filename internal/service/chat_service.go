package service

import (
	"context"
	"encoding/json"

	"giftshop-chatbot-be/internal/dto"
	"giftshop-chatbot-be/internal/pkg/logger"
	"giftshop-chatbot-be/internal/repository/memory"
	"giftshop-chatbot-be/internal/repository/specification"
	"giftshop-chatbot-be/internal/repository/unitofwork"
	"giftshop-chatbot-be/internal/websocket"
	"giftshop-chatbot-be/pkg/chat/dialog"
	"giftshop-chatbot-be/pkg/events"
	pktNats "giftshop-chatbot-be/pkg/nats"
	"giftshop-chatbot-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(ctx context.Context, userId *uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ResetConversation(ctx context.Context, req *dto.ResetConversationRequest) error
	GetHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, filter dto.HistoryFilter) ([]*dto.GetChatHistoryResponse, error)
}

type chatService struct {
	engine           *dialog.Engine
	sessions         *memory.SessionRepository
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	hub              *websocket.Hub
	persistHistory   bool
	logger           logger.ILogger
}

func NewChatService(
	engine *dialog.Engine,
	sessions *memory.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	hub *websocket.Hub,
	persistHistory bool,
	log logger.ILogger,
) IChatService {
	return &chatService{
		engine:           engine,
		sessions:         sessions,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		hub:              hub,
		persistHistory:   persistHistory,
		logger:           log,
	}
}

// SendMessage runs one conversation turn. The engine does the thinking;
// this layer owns session lifecycle and the fire-and-forget side effects
// (persistence command, analytics event, websocket push), none of which may
// fail the turn.
func (s *chatService) SendMessage(ctx context.Context, userId *uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	session, greeting := s.loadOrCreateSession(req.SessionId, userId)

	result := s.engine.HandleUtterance(ctx, session, req.Chat)
	s.sessions.Save(session)

	turnMessages := result.Messages
	if greeting != nil {
		turnMessages = append([]store.ChatMessage{*greeting}, turnMessages...)
	}

	if userId != nil && s.persistHistory {
		s.publishPersist(ctx, session, *userId, turnMessages)
	}

	if result.Recommended && s.eventPublisher != nil {
		productCount := 0
		for _, m := range turnMessages {
			productCount += len(m.Products)
		}
		evt := events.NewRecommendationEvent(session.ID, session.UserID, productCount)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ChatService", "Failed to publish recommendation event", map[string]interface{}{
				"session_id": session.ID,
				"error":      err.Error(),
			})
		}
	}

	response := &dto.SendMessageResponse{
		SessionId:    session.ID,
		State:        session.State,
		StateChanged: result.StateChanged,
		Messages:     toMessageDTOs(turnMessages),
	}

	if s.hub != nil {
		s.hub.SendToSession(session.ID, response)
	}

	return response, nil
}

// ResetConversation wipes the session's log, state and recipient slots.
// Resetting an unknown or already-clean session succeeds silently.
func (s *chatService) ResetConversation(ctx context.Context, req *dto.ResetConversationRequest) error {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil
	}
	session.Reset()
	s.sessions.Save(session)
	return nil
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, filter dto.HistoryFilter) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil // not found or not owned
	}

	specs := []specification.Specification{
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	}
	if filter.Role == store.RoleUser || filter.Role == store.RoleBot {
		specs = append(specs, specification.ByRole{Role: filter.Role})
	}
	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, m := range messages {
		history = append(history, &dto.GetChatHistoryResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return history, nil
}

// loadOrCreateSession returns the existing session, or a fresh one seeded
// with the greeting. The greeting message is returned separately so the
// caller can prepend it to the turn's response.
func (s *chatService) loadOrCreateSession(sessionId string, userId *uuid.UUID) (*store.Session, *store.ChatMessage) {
	if sessionId != "" {
		if session, found := s.sessions.Get(sessionId); found {
			return session, nil
		}
	}

	session := &store.Session{
		ID:    uuid.NewString(),
		State: store.StateIdle,
	}
	if userId != nil {
		session.UserID = userId.String()
	}

	greeting := dialog.GreetingMessage()
	session.Messages = append(session.Messages, greeting)
	return session, &greeting
}

// publishPersist hands this turn's log entries to the watermill bus. A
// publish failure is logged and swallowed; the user already has the reply.
func (s *chatService) publishPersist(ctx context.Context, session *store.Session, userId uuid.UUID, messages []store.ChatMessage) {
	payload := dto.PersistChatPayload{
		SessionId: session.ID,
		UserId:    userId,
		Title:     sessionTitle(session),
		Messages:  make([]dto.PersistMessage, 0, len(messages)),
	}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, dto.PersistMessage{
			Id:           m.Id,
			Role:         m.Role,
			Content:      m.Content,
			CategoryId:   m.CategoryId,
			OccasionId:   m.OccasionId,
			ProductCount: len(m.Products),
			CreatedAt:    m.CreatedAt,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("ChatService", "Failed to marshal persist payload", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, data); err != nil {
		s.logger.Warn("ChatService", "Failed to publish persist command", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

// sessionTitle derives a listing title from the first user utterance.
func sessionTitle(session *store.Session) string {
	for _, m := range session.Messages {
		if m.Role == store.RoleUser {
			if len([]rune(m.Content)) > 60 {
				return string([]rune(m.Content)[:60])
			}
			return m.Content
		}
	}
	return "Cuộc trò chuyện mới"
}

func toMessageDTOs(messages []store.ChatMessage) []dto.ChatMessageDTO {
	out := make([]dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ChatMessageDTO{
			Id:             m.Id,
			Role:           m.Role,
			Content:        m.Content,
			CreatedAt:      m.CreatedAt,
			Products:       m.Products,
			ShowCategories: m.ShowCategories,
			CategoryId:     m.CategoryId,
			CategoryName:   m.CategoryName,
			OccasionId:     m.OccasionId,
			OccasionName:   m.OccasionName,
		})
	}
	return out
}
