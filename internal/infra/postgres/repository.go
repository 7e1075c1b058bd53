package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"question-bank-service/internal/domain"
)

// columns maps predicate fields to questions table columns. Predicate
// fields are the only names that ever reach SQL identifiers; anything
// outside this map is rejected before the query is built.
var columns = map[string]string{
	domain.FieldID:           "id",
	domain.FieldText:         "text",
	domain.FieldTopicID:      "topic_id",
	domain.FieldTopicName:    "topic_name",
	domain.FieldLanguageID:   "language_id",
	domain.FieldLanguageName: "language_name",
	domain.FieldPositionID:   "position_id",
	domain.FieldPositionName: "position_name",
	domain.FieldDifficulty:   "difficulty",
	domain.FieldTags:         "tags",
}

// sortColumns whitelists the deterministic sort fields. SortFieldRandom
// never reaches this map: the service routes it to Sample instead.
var sortColumns = map[domain.SortField]string{
	domain.SortFieldCreatedAt:  "created_at",
	domain.SortFieldDifficulty: "difficulty",
	domain.SortFieldText:       "text",
}

// QuestionRepository implements domain.QuestionStore using PostgreSQL.
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new PostgreSQL question repository.
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Count returns the number of questions matching the predicate.
func (r *QuestionRepository) Count(ctx context.Context, pred domain.Predicate) (int64, error) {
	query, err := r.translate(pred)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.WithContext(ctx).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}

	return count, nil
}

// Find returns every question matching the predicate, in storage order.
// It backs the in-memory shuffle path, so it carries no ORDER BY.
func (r *QuestionRepository) Find(ctx context.Context, pred domain.Predicate) ([]*domain.Question, error) {
	query, err := r.translate(pred)
	if err != nil {
		return nil, err
	}

	var models []QuestionModel
	if err := query.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("finding questions: %w", err)
	}

	return toDomainSlice(models), nil
}

// FindSorted returns one page of matching questions under a
// deterministic sort. Ties on the primary column are broken by
// created_at DESC so page walks never repeat or skip rows.
func (r *QuestionRepository) FindSorted(ctx context.Context, pred domain.Predicate, sortBy domain.SortField, order domain.SortOrder, skip, limit int) ([]*domain.Question, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field: %q", sortBy)
	}

	direction := "DESC"
	if order == domain.SortOrderAsc {
		direction = "ASC"
	}

	query, err := r.translate(pred)
	if err != nil {
		return nil, err
	}

	query = query.WithContext(ctx).Order(column + " " + direction)
	if column != "created_at" {
		query = query.Order("created_at DESC")
	}

	var models []QuestionModel
	if err := query.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("searching questions: %w", err)
	}

	return toDomainSlice(models), nil
}

// Sample returns up to size matching questions drawn uniformly at
// random by the database.
func (r *QuestionRepository) Sample(ctx context.Context, pred domain.Predicate, size int) ([]*domain.Question, error) {
	query, err := r.translate(pred)
	if err != nil {
		return nil, err
	}

	var models []QuestionModel
	if err := query.WithContext(ctx).Order("RANDOM()").Limit(size).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("sampling questions: %w", err)
	}

	return toDomainSlice(models), nil
}

// GetByID retrieves a single question by its identifier.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	var model QuestionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting question by id: %w", err)
	}

	return model.ToDomain(), nil
}

// BulkUpsert creates or updates questions in batches, keyed by the
// feed's identifier.
func (r *QuestionRepository) BulkUpsert(ctx context.Context, questions []*domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := FromDomainSlice(questions)
	for _, m := range models {
		m.UpdatedAt = now
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text", "answer", "options",
			"topic_id", "topic_name", "language_id", "language_name",
			"position_id", "position_name",
			"difficulty", "tags", "source", "updated_at",
		}),
	}).CreateInBatches(models, 100).Error

	if err != nil {
		return fmt.Errorf("bulk upserting questions: %w", err)
	}

	return nil
}

// translate builds the WHERE clause for a predicate. Column names come
// from the whitelist; every value is bound, so nothing user-controlled
// reaches SQL text.
func (r *QuestionRepository) translate(pred domain.Predicate) (*gorm.DB, error) {
	query := r.db.Model(&QuestionModel{})

	for _, c := range pred.Clauses {
		column, ok := columns[c.Field]
		if !ok {
			return nil, fmt.Errorf("unknown predicate field: %q", c.Field)
		}

		switch c.Op {
		case domain.OpEq:
			query = query.Where(column+" = ?", c.Value)
		case domain.OpIn:
			query = query.Where(column+" IN ?", c.Values)
		case domain.OpInFold:
			query = query.Where("LOWER("+column+") IN ?", lowerAll(c.Values))
		case domain.OpNotIn:
			query = query.Where(column+" NOT IN ?", c.Values)
		case domain.OpContainsFold:
			query = query.Where(column+" ILIKE ?", "%"+escapeLike(c.Value)+"%")
		case domain.OpRange:
			query = query.Where(column+" BETWEEN ? AND ?", c.Lo, c.Hi)
		case domain.OpOverlaps:
			query = query.Where(column+" && ?", pq.StringArray(c.Values))
		default:
			return nil, fmt.Errorf("unknown predicate op: %q", c.Op)
		}
	}

	return query, nil
}

// escapeLike neutralizes LIKE metacharacters in user text so a search
// for "100%" matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)

	return s
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}

	return lowered
}

func toDomainSlice(models []QuestionModel) []*domain.Question {
	questions := make([]*domain.Question, len(models))
	for i := range models {
		questions[i] = models[i].ToDomain()
	}

	return questions
}
