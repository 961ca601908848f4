package models

import (
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// StateResponse модель состояния для внешних слоёв
type StateResponse struct {
	ID        int64  `json:"id"`
	Context   string `json:"context"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// StateListResponse список состояний контекста
type StateListResponse struct {
	Context string           `json:"context"`
	States  []*StateResponse `json:"states"`
}

// CreateStateRequest запрос на создание состояния
// Code пустой - код будет сгенерирован автоматически
type CreateStateRequest struct {
	Context   domain.StateContext
	Code      string
	Name      string
	Kind      string
	SortOrder *int
}

// TransitionsResponse граф переходов контекста
type TransitionsResponse struct {
	Context     string              `json:"context"`
	Transitions map[string][]string `json:"transitions"`
}

// FromDomainState конвертирует доменное состояние в response
func FromDomainState(s *domain.State) *StateResponse {
	return &StateResponse{
		ID:        s.ID,
		Context:   string(s.Context),
		Code:      s.Code,
		Name:      s.Name,
		Kind:      string(s.Kind),
		SortOrder: s.SortOrder,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainStateList конвертирует список состояний в response
func FromDomainStateList(context domain.StateContext, list []*domain.State) *StateListResponse {
	states := make([]*StateResponse, 0, len(list))
	for _, s := range list {
		states = append(states, FromDomainState(s))
	}
	return &StateListResponse{
		Context: string(context),
		States:  states,
	}
}
