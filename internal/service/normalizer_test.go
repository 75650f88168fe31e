package service

import (
	"reflect"
	"testing"

	"github.com/user/cinematch/internal/model"
)

const testImageBase = "https://image.tmdb.org/t/p/w500"

func newTestNormalizer() *Normalizer {
	return NewNormalizer(NewGenreTable(), testImageBase)
}

func TestNormalizeFullRecord(t *testing.T) {
	n := newTestNormalizer()

	poster := "/abc123.jpg"
	raw := model.TMDBMovie{
		ID:          603,
		Title:       "The Matrix",
		GenreIDs:    []int{28, 878},
		PosterPath:  &poster,
		Overview:    "A hacker discovers reality is a simulation.",
		VoteAverage: 8.2,
		ReleaseDate: "1999-03-31",
	}

	got := n.Normalize(raw)

	if got.TMDBID != 603 || got.Title != "The Matrix" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.PosterURL == nil || *got.PosterURL != testImageBase+"/abc123.jpg" {
		t.Fatalf("poster url = %v, want %s/abc123.jpg", got.PosterURL, testImageBase)
	}
	if !reflect.DeepEqual([]string(got.Genres), []string{"Action", "Science Fiction"}) {
		t.Fatalf("genres = %v", got.Genres)
	}
	if got.Rating != 8.2 || got.ReleaseDate != "1999-03-31" {
		t.Fatalf("unexpected metadata: %+v", got)
	}
}

func TestNormalizeDegenerateRecord(t *testing.T) {
	n := newTestNormalizer()

	// 只有 ID 和标题，其余全部缺失
	got := n.Normalize(model.TMDBMovie{ID: 42, Title: "Unknown"})

	if got.PosterURL != nil {
		t.Fatalf("poster url = %v, want nil", got.PosterURL)
	}
	if len(got.Genres) != 0 {
		t.Fatalf("genres = %v, want empty", got.Genres)
	}
	if got.Description != "" || got.Rating != 0 || got.ReleaseDate != "" {
		t.Fatalf("expected zero defaults, got %+v", got)
	}
}

func TestNormalizeEmptyPosterPath(t *testing.T) {
	n := newTestNormalizer()

	empty := ""
	got := n.Normalize(model.TMDBMovie{ID: 1, Title: "x", PosterPath: &empty})
	if got.PosterURL != nil {
		t.Fatalf("poster url = %v, want nil for empty path", got.PosterURL)
	}
}

func TestNormalizeAllNilInput(t *testing.T) {
	n := newTestNormalizer()

	got := n.NormalizeAll(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("NormalizeAll(nil) = %v, want empty non-nil slice", got)
	}
}
