package mapper

import (
	"giftshop-chatbot-be/internal/entity"
	"giftshop-chatbot-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatSessionToModel(e *entity.ChatSession) *model.ChatSession {
	return &model.ChatSession{
		Id:        e.Id,
		UserId:    e.UserId,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToEntity(mod *model.ChatSession) *entity.ChatSession {
	return &entity.ChatSession{
		Id:        mod.Id,
		UserId:    mod.UserId,
		Title:     mod.Title,
		CreatedAt: mod.CreatedAt,
		UpdatedAt: mod.UpdatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		CategoryId:    e.CategoryId,
		OccasionId:    e.OccasionId,
		ProductCount:  e.ProductCount,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToEntity(mod *model.ChatMessage) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:            mod.Id,
		ChatSessionId: mod.ChatSessionId,
		Role:          mod.Role,
		Content:       mod.Content,
		CategoryId:    mod.CategoryId,
		OccasionId:    mod.OccasionId,
		ProductCount:  mod.ProductCount,
		CreatedAt:     mod.CreatedAt,
	}
}
