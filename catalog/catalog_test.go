package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/unkn0wn-root/recwindow"
	"github.com/unkn0wn-root/recwindow/codec"
)

func testMovies() []Movie {
	return []Movie{
		{ID: 1, Title: "Toy Story"},
		{ID: 2, Title: "Jumanji"},
		{ID: 3, Title: "Heat"},
	}
}

func mustNew(t *testing.T, movies []Movie) *Memory {
	t.Helper()
	m, err := New(movies)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestLoadJSONAndYAML(t *testing.T) {
	js := []byte(`[{"id":1,"title":"Toy Story"},{"id":-5,"title":"Heat"}]`)
	got, err := Load(js, codec.JSON[[]Movie]{})
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(got) != 2 || got[1].ID != -5 || got[1].Title != "Heat" {
		t.Fatalf("json: got %+v", got)
	}

	ym := []byte("- id: 1\n  title: Toy Story\n- id: 2\n  title: Jumanji\n")
	got, err = Load(ym, codec.YAML[[]Movie]{})
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if len(got) != 2 || got[1].Title != "Jumanji" {
		t.Fatalf("yaml: got %+v", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero id":     `[{"id":0,"title":"Padding"}]`,
		"empty title": `[{"id":4,"title":""}]`,
		"duplicate":   `[{"id":4,"title":"A"},{"id":4,"title":"B"}]`,
		"not json":    `{`,
	}
	for name, in := range cases {
		if _, err := Load([]byte(in), codec.JSON[[]Movie]{}); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	_, err := Load([]byte(cases["duplicate"]), codec.JSON[[]Movie]{})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate: want ErrDuplicateID, got %v", err)
	}
}

func TestTitleLookup(t *testing.T) {
	m := mustNew(t, testMovies())
	var cat recwindow.Catalog = m
	if title, ok := cat.Title(2); !ok || title != "Jumanji" {
		t.Fatalf("Title(2)=%q,%v", title, ok)
	}
	if _, ok := cat.Title(99); ok {
		t.Fatalf("Title(99) should miss")
	}
}

func TestToggleOrder(t *testing.T) {
	m := mustNew(t, testMovies())

	for _, id := range []recwindow.ID{3, 1, 2} {
		if liked, err := m.Toggle(id); err != nil || !liked {
			t.Fatalf("Toggle(%d)=%v,%v", id, liked, err)
		}
	}
	if got := m.Liked(); !slices.Equal(got, []recwindow.ID{3, 1, 2}) {
		t.Fatalf("liked order %v", got)
	}

	// unlike then relike moves to the end
	if liked, _ := m.Toggle(3); liked {
		t.Fatalf("second toggle should unlike")
	}
	if _, err := m.Toggle(3); err != nil {
		t.Fatal(err)
	}
	if got := m.Liked(); !slices.Equal(got, []recwindow.ID{1, 2, 3}) {
		t.Fatalf("liked order after relike %v", got)
	}

	if _, err := m.Toggle(42); !errors.Is(err, ErrUnknownMovie) {
		t.Fatalf("want ErrUnknownMovie, got %v", err)
	}
}

func TestLikeUnlikeIdempotent(t *testing.T) {
	m := mustNew(t, testMovies())
	if err := m.Like(2); err != nil {
		t.Fatal(err)
	}
	if err := m.Like(1); err != nil {
		t.Fatal(err)
	}
	if err := m.Like(2); err != nil {
		t.Fatal(err)
	}
	if got := m.Liked(); !slices.Equal(got, []recwindow.ID{2, 1}) {
		t.Fatalf("liked %v", got)
	}
	m.Unlike(2)
	m.Unlike(2)
	if m.IsLiked(2) || !m.IsLiked(1) {
		t.Fatalf("IsLiked mismatch: %v", m.Liked())
	}
	if err := m.Like(7); !errors.Is(err, ErrUnknownMovie) {
		t.Fatalf("want ErrUnknownMovie, got %v", err)
	}
}

func TestReplaceKeepsSurvivingLikes(t *testing.T) {
	m := mustNew(t, testMovies())
	_ = m.Like(3)
	_ = m.Like(2)
	_ = m.Like(1)

	if err := m.Replace([]Movie{{ID: 1, Title: "Toy Story"}, {ID: 3, Title: "Heat (1995)"}}); err != nil {
		t.Fatal(err)
	}
	if got := m.Liked(); !slices.Equal(got, []recwindow.ID{3, 1}) {
		t.Fatalf("liked after replace %v", got)
	}
	if title, _ := m.Title(3); title != "Heat (1995)" {
		t.Fatalf("title not replaced: %q", title)
	}
	if err := m.Replace([]Movie{{ID: 0, Title: "bad"}}); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(m.Movies()) != 2 {
		t.Fatalf("failed Replace must not modify catalog")
	}
}
