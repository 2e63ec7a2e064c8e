package models

import (
	"net/url"
	"time"

	"gorm.io/datatypes"
)

// IDField is the key the document store uses for the record identifier.
const IDField = "_id"

// Signup is one submitted record: an open-ended mapping from field name to
// value. There is no schema and no required field.
type Signup map[string]any

// WithoutID returns a copy of s with the identifier key removed.
func (s Signup) WithoutID() Signup {
	out := make(Signup, len(s))
	for k, v := range s {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// SignupFromForm keeps the first value of every form key.
func SignupFromForm(values url.Values) Signup {
	out := make(Signup, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// SignupRow is the relational shape of a signup record.
type SignupRow struct {
	ID        string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	Fields    datatypes.JSONMap `gorm:"not null" json:"fields"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName sets the table name for SignupRow
func (SignupRow) TableName() string {
	return "signups"
}

// SubmitResponse is the backend reply to a stored submission.
type SubmitResponse struct {
	InsertedID string `json:"inserted_id"`
}

// ViewResponse lists every stored record without identifiers.
type ViewResponse struct {
	Data []Signup `json:"data"`
}

// SignupCreatedEvent is published after a record is stored.
type SignupCreatedEvent struct {
	ID         string    `json:"id"`
	Fields     Signup    `json:"fields"`
	ReceivedAt time.Time `json:"received_at"`
}
