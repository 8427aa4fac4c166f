package services

import (
	"context"
	"errors"
	"testing"

	"github.com/onehealthlab/evidence-map/internal/chart"
	"github.com/onehealthlab/evidence-map/internal/platform/logger"
	"github.com/onehealthlab/evidence-map/internal/types"
)

type fakeArticleRepo struct {
	records []*types.Article
	err     error

	gotL1, gotL2, gotType, gotName string
	calls                          int
}

func (f *fakeArticleRepo) InsertBatch(ctx context.Context, articles []*types.Article) error {
	return nil
}

func (f *fakeArticleRepo) FindByGroup(ctx context.Context, l1, l2, outcomeType, outcomeName string) ([]*types.Article, error) {
	f.calls++
	f.gotL1, f.gotL2, f.gotType, f.gotName = l1, l2, outcomeType, outcomeName
	return f.records, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init failed: %v", err)
	}
	return log
}

func TestResolveNoClick(t *testing.T) {
	t.Parallel()

	repo := &fakeArticleRepo{}
	svc := NewDetailService(repo, testLogger(t))

	res, err := svc.Resolve(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Title != PromptNoClick {
		t.Fatalf("title: got=%q want=%q", res.Title, PromptNoClick)
	}
	if len(res.Records) != 0 || res.Records == nil {
		t.Fatalf("records: got=%v want empty non-nil", res.Records)
	}
	if repo.calls != 0 {
		t.Fatalf("repo queried on empty click: calls=%d", repo.calls)
	}
}

func TestResolveHeaderKeysPrompt(t *testing.T) {
	t.Parallel()

	repo := &fakeArticleRepo{}
	svc := NewDetailService(repo, testLogger(t))

	cases := []struct{ x, y string }{
		{chart.XHeaderKey("Final Outcomes"), chart.YRowKey("A", "1. X")},
		{chart.XColKey("Final Outcomes", "o"), chart.YHeaderKey("A")},
		{chart.XHeaderKey("Impact"), chart.YHeaderKey("A")},
	}
	for _, tc := range cases {
		res, err := svc.Resolve(context.Background(), tc.x, tc.y)
		if err != nil {
			t.Fatalf("Resolve(%q,%q) failed: %v", tc.x, tc.y, err)
		}
		if res.Title != PromptHeader {
			t.Fatalf("title: got=%q want=%q", res.Title, PromptHeader)
		}
		if len(res.Records) != 0 {
			t.Fatalf("records on header click: got=%d", len(res.Records))
		}
	}
	if repo.calls != 0 {
		t.Fatalf("repo queried on header click: calls=%d", repo.calls)
	}
}

func TestResolveFiltersOnRecoveredGroup(t *testing.T) {
	t.Parallel()

	title := "Article A"
	repo := &fakeArticleRepo{records: []*types.Article{
		{Title: &title},
		{},
		{},
	}}
	svc := NewDetailService(repo, testLogger(t))

	x := chart.XColKey("Final Outcomes", "Reduced AMR incidence")
	y := chart.YRowKey("Surveillance systems", "2. Data sharing")
	res, err := svc.Resolve(context.Background(), x, y)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if repo.gotL1 != "Surveillance systems" || repo.gotL2 != "2. Data sharing" {
		t.Fatalf("taxonomy filter: got=(%q,%q)", repo.gotL1, repo.gotL2)
	}
	if repo.gotType != "Final Outcomes" || repo.gotName != "Reduced AMR incidence" {
		t.Fatalf("outcome filter: got=(%q,%q)", repo.gotType, repo.gotName)
	}
	if len(res.Records) != 3 {
		t.Fatalf("records: got=%d want=3", len(res.Records))
	}

	want := `Final Outcomes — "Reduced AMR incidence"  |  Surveillance systems → 2. Data sharing  |  3 articles`
	if res.Title != want {
		t.Fatalf("title:\n got=%q\nwant=%q", res.Title, want)
	}
}

func TestResolveRepoErrorPropagates(t *testing.T) {
	t.Parallel()

	repo := &fakeArticleRepo{err: errors.New("query failed")}
	svc := NewDetailService(repo, testLogger(t))

	_, err := svc.Resolve(context.Background(),
		chart.XColKey("Impact", "AMR burden reduced"),
		chart.YRowKey("A", "1. X"))
	if err == nil {
		t.Fatal("expected repo error to propagate")
	}
}

func TestResolveEmptyGroupStillTitled(t *testing.T) {
	t.Parallel()

	repo := &fakeArticleRepo{}
	svc := NewDetailService(repo, testLogger(t))

	res, err := svc.Resolve(context.Background(),
		chart.XColKey("Impact", "AMR burden reduced"),
		chart.YRowKey("A", "1. X"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Records == nil {
		t.Fatal("records must be non-nil for JSON shape")
	}
	want := `Impact — "AMR burden reduced"  |  A → 1. X  |  0 articles`
	if res.Title != want {
		t.Fatalf("title: got=%q want=%q", res.Title, want)
	}
}
