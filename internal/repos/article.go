package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/types"
)

type ArticleRepo interface {
	InsertBatch(ctx context.Context, articles []*types.Article) error
	FindByGroup(ctx context.Context, l1, l2, outcomeType, outcomeName string) ([]*types.Article, error)
}

type articleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	return &articleRepo{db: db, log: baseLog.With("repo", "ArticleRepo")}
}

func (r *articleRepo) InsertBatch(ctx context.Context, articles []*types.Article) error {
	if len(articles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(articles, 200).Error
}

func (r *articleRepo) FindByGroup(ctx context.Context, l1, l2, outcomeType, outcomeName string) ([]*types.Article, error) {
	var out []*types.Article
	err := r.db.WithContext(ctx).
		Where("capability_l1 = ? AND capability_l2 = ? AND outcome_type = ? AND outcome_name = ?",
			l1, l2, outcomeType, outcomeName).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
