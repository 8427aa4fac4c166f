package services

import (
	"context"
	"fmt"

	"github.com/onehealthlab/evidence-map/internal/chart"
	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/repos"
	"github.com/onehealthlab/evidence-map/internal/types"
)

// Prompts shown in place of a detail title when there is nothing to resolve.
const (
	PromptNoClick = "Click a bubble to see the article list."
	PromptHeader  = "Select a bubble (row Level 2 × outcome) to see details."
)

type DetailResult struct {
	Title   string           `json:"title"`
	Records []*types.Article `json:"records"`
}

// DetailService resolves a clicked bubble back to its contributing articles.
type DetailService interface {
	Resolve(ctx context.Context, xKey, yKey string) (*DetailResult, error)
}

type detailService struct {
	articleRepo repos.ArticleRepo
	log         *logger.Logger
}

func NewDetailService(articleRepo repos.ArticleRepo, log *logger.Logger) DetailService {
	return &detailService{
		articleRepo: articleRepo,
		log:         log.With("service", "DetailService"),
	}
}

// Resolve parses the synthetic axis keys and filters the long table on the
// recovered group. Missing keys and header (non-clickable) keys yield an
// empty record list with a prompt title, never an error.
func (s *detailService) Resolve(ctx context.Context, xKey, yKey string) (*DetailResult, error) {
	if xKey == "" || yKey == "" {
		return &DetailResult{Title: PromptNoClick, Records: []*types.Article{}}, nil
	}
	if !chart.IsXColKey(xKey) || !chart.IsYRowKey(yKey) {
		return &DetailResult{Title: PromptHeader, Records: []*types.Article{}}, nil
	}

	outcomeType, outcomeName, ok := chart.ParseXColKey(xKey)
	if !ok {
		return &DetailResult{Title: PromptHeader, Records: []*types.Article{}}, nil
	}
	l1, l2, ok := chart.ParseYRowKey(yKey)
	if !ok {
		return &DetailResult{Title: PromptHeader, Records: []*types.Article{}}, nil
	}

	records, err := s.articleRepo.FindByGroup(ctx, l1, l2, outcomeType, outcomeName)
	if err != nil {
		s.log.Error("FindByGroup failed", "error", err,
			"outcome_type", outcomeType, "outcome_name", outcomeName)
		return nil, err
	}
	if records == nil {
		records = []*types.Article{}
	}

	title := fmt.Sprintf("%s — \"%s\"  |  %s → %s  |  %d articles",
		outcomeType, outcomeName, l1, l2, len(records))
	return &DetailResult{Title: title, Records: records}, nil
}
