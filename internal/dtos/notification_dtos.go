package dtos

import "github.com/google/uuid"

type SendSMSRequest struct {
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`
	Message  string    `json:"message" validate:"required,max=1600"`
}
