package create_state

import (
	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

// CreateStateRequest HTTP request model
type CreateStateRequest struct {
	Code      string `json:"code,omitempty"` // Пустой код генерируется автоматически
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	SortOrder *int   `json:"sortOrder,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateStateRequest) ToServiceRequest(stateContext domain.StateContext) *models.CreateStateRequest {
	return &models.CreateStateRequest{
		Context:   stateContext,
		Code:      r.Code,
		Name:      r.Name,
		Kind:      r.Kind,
		SortOrder: r.SortOrder,
	}
}
