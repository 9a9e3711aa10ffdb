package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/devray27/studypal-backend/internal/common"
	"gorm.io/gorm"
)

var ErrPersistence = errors.New("persistence failure")

// Inbound is one client-submitted message before it gets a server identity.
type Inbound struct {
	Content string `json:"content"`
	SentAt  int64  `json:"sent_at"`
}

type SaveResult struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
}

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// SaveAll inserts every message of the batch. A uniqueness collision on an
// individual row is counted, not raised, so clients can resubmit the same
// batch after a transient failure without duplicating history. Any other
// store failure aborts the batch; rows already accepted stay committed.
func (s *Service) SaveAll(ctx context.Context, senderToken string, batch []Inbound) (SaveResult, error) {
	var res SaveResult
	for _, in := range batch {
		msgID, err := common.NewULID()
		if err != nil {
			return res, fmt.Errorf("%w: new msg id: %s", ErrPersistence, err)
		}
		m := Message{
			MsgID:       msgID,
			SenderToken: senderToken,
			ContentHash: HashContent(in.Content),
			SentAt:      in.SentAt,
			Content:     in.Content,
		}
		if err := s.repo.Insert(ctx, &m); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res.Duplicates++
				continue
			}
			return res, fmt.Errorf("%w: insert message: %s", ErrPersistence, err)
		}
		res.Inserted++
	}
	return res, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Message, error) {
	msgs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list messages: %s", ErrPersistence, err)
	}
	return msgs, nil
}
