package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListAll returns every stored message in the store's natural return order.
// No ORDER BY is applied; callers must not rely on a stronger ordering
// guarantee than that.
func (r *Repo) ListAll(ctx context.Context) ([]Message, error) {
	var msgs []Message
	if err := r.db.WithContext(ctx).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Message{}).Count(&n).Error
	return n, err
}
