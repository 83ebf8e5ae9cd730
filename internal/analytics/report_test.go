package analytics

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
)

func TestInsights(t *testing.T) {
	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{InsightKeepLogging}},
		{6, []string{InsightKeepLogging}},
		{7, []string{InsightOneWeek}},
		{29, []string{InsightOneWeek}},
		{30, []string{InsightOneWeek, InsightOneMonth}},
	}
	for _, tt := range tests {
		got := Insights(make([]models.Entry, tt.n))
		if len(got) != len(tt.want) {
			t.Fatalf("Insights(%d) = %v, want %v", tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Insights(%d)[%d] = %q, want %q", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBuild(t *testing.T) {
	entries := []models.Entry{
		entryOn(1, 4, 4, 4, 2),
		entryOn(0, 5, 5, 5, 1),
		entryOn(2, 3, 3, 3, 3),
	}

	r, err := Build(entries, today)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if r.Total != 3 || r.Streak != 3 || r.LongestStreak != 3 {
		t.Errorf("Build() totals = %d/%d/%d, want 3/3/3", r.Total, r.Streak, r.LongestStreak)
	}
	if !r.TodayLogged {
		t.Error("TodayLogged = false, want true")
	}
	if r.Latest == nil || r.Latest.Date != "2024-03-15" {
		t.Errorf("Latest = %+v, want today's entry", r.Latest)
	}
	if len(r.Month) != 31 || len(r.Week) != 7 || len(r.Summaries) != 4 {
		t.Errorf("Build() sizes month=%d week=%d summaries=%d", len(r.Month), len(r.Week), len(r.Summaries))
	}
}

func TestBuildFailsFast(t *testing.T) {
	bad := append(daysAgo(0, 1), entryOn(2, 3, 9, 3, 3))
	if _, err := Build(bad, today); !errors.Is(err, apperrors.ErrInvalidMetric) {
		t.Errorf("Build() error = %v, want ErrInvalidMetric", err)
	}

	dup := append(daysAgo(0, 1), entryOn(1, 2, 2, 2, 2))
	if _, err := Build(dup, today); !errors.Is(err, ErrDuplicateDate) {
		t.Errorf("Build() error = %v, want ErrDuplicateDate", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	r, err := Build(nil, today)
	if err != nil {
		t.Fatalf("Build(nil) error = %v", err)
	}
	if r.Streak != 0 || r.Latest != nil || r.TodayLogged {
		t.Errorf("Build(nil) = %+v, want zero streak and no latest", r)
	}
}
