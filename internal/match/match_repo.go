package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	CreateMatch(m *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatchesByTeamID(teamID uint, page, limit int) ([]Match, int64, error)
	GetAllMatchesByTeamID(teamID uint) ([]Match, error) // full set with ledgers, for aggregation
	UpdateMatch(m *Match) error
	DeleteMatch(id uint) error

	// Ball ledger operations
	AppendBallEvent(ev *BallEvent) error
	SaveBallEvent(ev *BallEvent) error

	// Result / sync lifecycle
	SetResult(id uint, result MatchResult) error
	MarkPendingSync(id uint) error
	MarkSynced(id uint) error
	GetPendingSync() ([]Match, error)

	WithTransaction(txFunc func(MatchRepository) error) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	err := r.db.Preload("Balls", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq asc")
	}).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetMatchesByTeamID(teamID uint, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{}).Where("team_id = ?", teamID)
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("match_date desc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// GetAllMatchesByTeamID loads every match of a team with its full ball ledger
// in one query, so aggregation always sees a consistent snapshot.
func (r *matchRepository) GetAllMatchesByTeamID(teamID uint) ([]Match, error) {
	var matches []Match
	err := r.db.Preload("Balls", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq asc")
	}).Where("team_id = ?", teamID).Order("match_date asc").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) DeleteMatch(id uint) error {
	if err := r.db.Where("match_id = ?", id).Delete(&BallEvent{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&Match{}, id).Error
}

func (r *matchRepository) AppendBallEvent(ev *BallEvent) error {
	return r.db.Create(ev).Error
}

func (r *matchRepository) SaveBallEvent(ev *BallEvent) error {
	return r.db.Save(ev).Error
}

func (r *matchRepository) SetResult(id uint, result MatchResult) error {
	return r.db.Model(&Match{}).Where("id = ?", id).
		Updates(map[string]interface{}{"result": result, "sync_state": SyncPending}).Error
}

func (r *matchRepository) MarkPendingSync(id uint) error {
	return r.db.Model(&Match{}).Where("id = ?", id).Update("sync_state", SyncPending).Error
}

func (r *matchRepository) MarkSynced(id uint) error {
	return r.db.Model(&Match{}).Where("id = ?", id).Update("sync_state", SyncDone).Error
}

func (r *matchRepository) GetPendingSync() ([]Match, error) {
	var matches []Match
	err := r.db.Preload("Balls", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq asc")
	}).Where("sync_state = ?", SyncPending).Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &matchRepository{db: tx}
		return txFunc(txRepo)
	})
}
