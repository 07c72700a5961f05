package sessions

import "time"

// Session represents a persistent operator refresh session. Stored in Redis
// when available, MongoDB otherwise.
type Session struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	RefreshToken string    `bson:"refreshToken" json:"refreshToken"`
	OperatorID   string    `bson:"operatorId" json:"operatorId"`
	ExpiresAt    time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
