package storage

import (
	"context"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/actionlog"
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type actionRow struct {
	RoomID      string `gorm:"primaryKey"`
	Seq         int64  `gorm:"primaryKey;autoIncrement:false"`
	GameIdx     int
	StepIndex   int
	Type        string
	Side        string
	CharacterID string
	SwapFrom    *int
	SwapTo      *int
	SwapIndex   *int
	Winner      string
	Reason      string
	ActorRole   string
	At          time.Time
}

func (actionRow) TableName() string { return "draft_actions" }

func toRow(roomID string, a engine.DraftAction) actionRow {
	r := actionRow{
		RoomID:      roomID,
		Seq:         a.Seq,
		GameIdx:     a.GameIdx,
		StepIndex:   a.StepIndex,
		Type:        string(a.Type),
		Side:        string(a.Side),
		CharacterID: a.CharacterID,
		SwapIndex:   a.SwapIndex,
		Winner:      string(a.Winner),
		Reason:      a.Reason,
		ActorRole:   string(a.ActorRole),
		At:          a.At.UTC(),
	}
	if a.Swap != nil {
		r.SwapFrom, r.SwapTo = &a.Swap.From, &a.Swap.To
	}
	return r
}

func (r actionRow) action() engine.DraftAction {
	a := engine.DraftAction{
		Seq:         r.Seq,
		GameIdx:     r.GameIdx,
		StepIndex:   r.StepIndex,
		Type:        engine.CommandType(r.Type),
		Side:        engine.Side(r.Side),
		CharacterID: r.CharacterID,
		SwapIndex:   r.SwapIndex,
		Winner:      engine.TeamID(r.Winner),
		Reason:      r.Reason,
		ActorRole:   engine.Role(r.ActorRole),
		At:          r.At,
	}
	if r.SwapFrom != nil && r.SwapTo != nil {
		a.Swap = &engine.SwapIndices{From: *r.SwapFrom, To: *r.SwapTo}
	}
	return a
}

// ActionStore implements actionlog.Store on the draft_actions table.
type ActionStore struct {
	db *gorm.DB
}

var _ actionlog.Store = (*ActionStore)(nil)

func NewActionStore(db *gorm.DB) *ActionStore {
	return &ActionStore{db: db}
}

func (s *ActionStore) Append(ctx context.Context, roomID string, act engine.DraftAction) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&actionRow{}).
			Where("room_id = ?", roomID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		if act.Seq != last+1 {
			return errors.Wrapf(actionlog.ErrOutOfOrder, "room %s: got seq %d, want %d", roomID, act.Seq, last+1)
		}
		row := toRow(roomID, act)
		return tx.Create(&row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrapf(actionlog.ErrOutOfOrder, "room %s: seq %d already stored", roomID, act.Seq)
	}
	return errors.Wrap(err, "append action")
}

func (s *ActionStore) After(ctx context.Context, roomID string, afterSeq int64) ([]engine.DraftAction, error) {
	var rows []actionRow
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND seq > ?", roomID, afterSeq).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "load actions")
	}
	out := make([]engine.DraftAction, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.action())
	}
	return out, nil
}
