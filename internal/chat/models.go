package chat

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Message is one persisted chat entry. Message identity for duplicate
// suppression is (sender_token, content_hash, sent_at): content itself can
// exceed index-length limits, so a sha256 of it stands in. First writer
// wins; a colliding insert is rejected by the store, never overwritten.
type Message struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	MsgID       string    `gorm:"type:varchar(26);uniqueIndex;not null" json:"msg_id"`
	SenderToken string    `gorm:"type:varchar(128);not null;index:uniq_chat_msg_identity,unique,priority:1" json:"sender_token"`
	ContentHash string    `gorm:"type:char(64);not null;index:uniq_chat_msg_identity,unique,priority:2" json:"-"`
	SentAt      int64     `gorm:"not null;index:uniq_chat_msg_identity,unique,priority:3" json:"sent_at"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Message) TableName() string { return "chat_messages" }

func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
