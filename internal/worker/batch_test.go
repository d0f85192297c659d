package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/cartofolio/internal/model"
)

// MockLoader implements Loader
type MockLoader struct {
	FailFor model.Language
}

func (m *MockLoader) Load(ctx context.Context, lang model.Language) (*model.Snapshot, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if lang == m.FailFor {
		return nil, errors.New("load error")
	}
	return &model.Snapshot{
		Language:  lang,
		SourceURL: "http://example.com/" + string(lang) + ".json",
	}, nil
}

func TestBatchProcessor_ProcessLanguages(t *testing.T) {
	processor := NewBatchProcessor(&MockLoader{}, 2)

	langs := []model.Language{model.LanguageEnglish, model.LanguageFrench, model.LanguageSpanish}
	results := processor.ProcessLanguages(context.Background(), langs)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, res := range results {
		if res.Language != langs[i] {
			t.Errorf("result %d: expected %s, got %s", i, langs[i], res.Language)
		}
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Language, res.Error)
		}
		if res.Snapshot == nil || res.Snapshot.Language != res.Language {
			t.Errorf("expected snapshot for %s", res.Language)
		}
	}
}

func TestBatchProcessor_ProcessLanguages_PartialFailure(t *testing.T) {
	processor := NewBatchProcessor(&MockLoader{FailFor: model.LanguageSpanish}, 3)

	results := processor.ProcessLanguages(context.Background(), model.SupportedLanguages())

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	failures := 0
	for _, res := range results {
		if res.Error != nil {
			failures++
			if res.Language != model.LanguageSpanish {
				t.Errorf("unexpected failure for %s", res.Language)
			}
			if res.Snapshot != nil {
				t.Error("expected nil snapshot on error")
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_ProcessLanguages_Duplicates(t *testing.T) {
	processor := NewBatchProcessor(&MockLoader{}, 2)

	results := processor.ProcessLanguages(context.Background(), []model.Language{"en", "en", "fr"})
	if len(results) != 2 {
		t.Errorf("expected duplicates to load once, got %d results", len(results))
	}
}

func TestBatchProcessor_ProcessLanguages_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockLoader{}, 2)

	results := processor.ProcessLanguages(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessLanguages_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&MockLoader{}, 1)
	results := processor.ProcessLanguages(ctx, model.SupportedLanguages())

	if len(results) != 3 {
		t.Fatalf("expected a result per language, got %d", len(results))
	}
}
