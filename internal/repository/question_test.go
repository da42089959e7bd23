package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testCatalog = `{
  "patterns": [
    {
      "slug": "singleton",
      "name": "Singleton",
      "category": "Creational",
      "questions": [
        {
          "id": "singleton-1",
          "prompt": "How many instances does a singleton allow?",
          "options": [
            {"text": "Exactly one", "correct": true},
            {"text": "One per thread"}
          ],
          "explanation": "The class controls its only instance."
        }
      ]
    },
    {
      "slug": "builder",
      "name": "Builder",
      "category": "creational",
      "questions": [
        {
          "id": "builder-1",
          "prompt": "What does a builder separate?",
          "options": [
            {"text": "Construction from representation", "correct": true},
            {"text": "Interface from implementation"}
          ]
        }
      ]
    },
    {
      "slug": "observer",
      "name": "Observer",
      "category": "behavioral",
      "questions": [
        {
          "id": "observer-1",
          "prompt": "Who is notified when the subject changes?",
          "options": [
            {"text": "Subscribers", "correct": true},
            {"text": "Nobody"},
            {"text": "Only the last subscriber"}
          ]
        }
      ]
    }
  ]
}`

func newTestRepository(t *testing.T) *QuestionRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	r, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("NewQuestionRepository() error = %v", err)
	}
	return r
}

func TestQuestionRepositoryGetAll(t *testing.T) {
	r := newTestRepository(t)

	qs, err := r.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("GetAll() returned %d questions, want 3", len(qs))
	}
	if qs[0].Pattern != "singleton" || qs[0].Category != "creational" {
		t.Fatalf("first question = %+v, want pattern and category filled in", qs[0])
	}

	qs[0].Options[0].Text = "mutated"
	again, _ := r.GetAll(context.Background())
	if again[0].Options[0].Text != "Exactly one" {
		t.Fatal("caller mutation leaked into the catalog")
	}
}

func TestQuestionRepositoryGetByCategory(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		category string
		want     int
		wantErr  error
	}{
		{category: "creational", want: 2},
		{category: " Behavioral ", want: 1},
		{category: "all", want: 3},
		{category: "", want: 3},
		{category: "structural", wantErr: ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			qs, err := r.GetByCategory(ctx, tt.category)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetByCategory() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByCategory() error = %v", err)
			}
			if len(qs) != tt.want {
				t.Fatalf("GetByCategory() returned %d questions, want %d", len(qs), tt.want)
			}
		})
	}
}

func TestQuestionRepositoryGetByPattern(t *testing.T) {
	r := newTestRepository(t)

	qs, err := r.GetByPattern(context.Background(), "observer")
	if err != nil || len(qs) != 1 || qs[0].ID != "observer-1" {
		t.Fatalf("GetByPattern(observer) = %v, %v", qs, err)
	}

	if _, err := r.GetByPattern(context.Background(), "visitor"); !errors.Is(err, ErrPatternNotFound) {
		t.Fatalf("GetByPattern(visitor) error = %v, want ErrPatternNotFound", err)
	}
}

func TestQuestionRepositoryCategories(t *testing.T) {
	r := newTestRepository(t)

	cats, err := r.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("Categories() = %+v, want 2 entries", cats)
	}
	if cats[0].Slug != "creational" || cats[0].Patterns != 2 || cats[0].Questions != 2 {
		t.Errorf("creational = %+v", cats[0])
	}
	if cats[1].Slug != "behavioral" || cats[1].Patterns != 1 || cats[1].Questions != 1 {
		t.Errorf("behavioral = %+v", cats[1])
	}
}

func TestParseCatalogRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{`},
		{name: "empty", data: `{"patterns": []}`},
		{name: "missing category", data: `{"patterns": [{"slug": "x", "questions": []}]}`},
		{name: "reserved category", data: `{"patterns": [{"slug": "x", "category": "all"}]}`},
		{
			name: "two correct options",
			data: `{"patterns": [{"slug": "x", "category": "c", "questions": [
				{"id": "x1", "prompt": "p", "options": [{"text": "a", "correct": true}, {"text": "b", "correct": true}]}
			]}]}`,
		},
		{
			name: "duplicate ids",
			data: `{"patterns": [{"slug": "x", "category": "c", "questions": [
				{"id": "x1", "prompt": "p", "options": [{"text": "a", "correct": true}, {"text": "b"}]},
				{"id": "x1", "prompt": "q", "options": [{"text": "a", "correct": true}, {"text": "b"}]}
			]}]}`,
		},
		{
			name: "duplicate patterns",
			data: `{"patterns": [{"slug": "x", "category": "c"}, {"slug": "x", "category": "c"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tt.data)); err == nil {
				t.Fatal("parseCatalog() error = nil, want error")
			}
		})
	}
}

func TestBundledCatalogIsValid(t *testing.T) {
	r, err := NewQuestionRepository(filepath.Join("..", "..", "assets", "data", "patterns.json"))
	if err != nil {
		t.Fatalf("bundled catalog: %v", err)
	}
	cats, _ := r.Categories(context.Background())
	if len(cats) != 3 {
		t.Fatalf("bundled catalog has %d categories, want 3", len(cats))
	}
}
