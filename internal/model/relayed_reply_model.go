package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RelayedReply archives every owner reply that passed through the webhook.
// The live delivery path goes through the reply store; this table only
// feeds the admin recent-activity view.
type RelayedReply struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionId  string         `gorm:"type:varchar(128);not null;index" json:"session_id"`
	Reply      string         `gorm:"type:text;not null" json:"reply"`
	RawPayload datatypes.JSON `gorm:"type:jsonb" json:"raw_payload,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (RelayedReply) TableName() string {
	return "relayed_replies"
}
