package memory

import (
	"context"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/question"
)

type DailyRepository struct {
	mu      sync.RWMutex
	records map[string]progression.DailyRecord
}

func NewDailyRepository() *DailyRepository {
	return &DailyRepository{records: make(map[string]progression.DailyRecord)}
}

func (r *DailyRepository) GetByDate(_ context.Context, dateKey string) (progression.DailyRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[dateKey]
	if !ok {
		return progression.DailyRecord{}, false, nil
	}

	return cloneDailyRecord(record), true, nil
}

func (r *DailyRepository) Save(_ context.Context, record progression.DailyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.DateKey] = cloneDailyRecord(record)

	return nil
}

func cloneDailyRecord(record progression.DailyRecord) progression.DailyRecord {
	out := record
	out.Questions = append([]question.Question(nil), record.Questions...)
	out.Mistakes = append([]question.Mistake(nil), record.Mistakes...)

	return out
}
