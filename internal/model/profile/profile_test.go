package profile

import (
	"strings"
	"testing"
)

func TestFactsCoverEverySection(t *testing.T) {
	p := Seed()
	joined := strings.Join(p.Facts(), "\n")

	for _, want := range []string{
		p.Name,
		"Senior Product Manager",
		"Python",
		"Wells Fargo",
		"Washington State University",
		"Introduction to Model Context Protocol",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("facts missing %q", want)
		}
	}

	if strings.Contains(joined, "GitHub:") {
		t.Fatal("expected no GitHub fact for a profile without GitHub")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(Seed())

	got := store.Get()
	got.Name = "changed"
	got.Experience[0].Highlights[0] = "changed"

	again := store.Get()
	if again.Name == "changed" {
		t.Fatal("name mutation leaked into the store")
	}
	if again.Experience[0].Highlights[0] == "changed" {
		t.Fatal("highlight mutation leaked into the store")
	}
}

func TestSkillsByCategory(t *testing.T) {
	store := NewMemoryStore(Seed())

	languages := store.SkillsByCategory(CategoryLanguages)
	if len(languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(languages))
	}
	if languages[0].Name != "Python" || languages[1].Name != "SQL" {
		t.Fatalf("unexpected language order: %+v", languages)
	}

	if got := store.SkillsByCategory(CategoryDatabases); len(got) != 0 {
		t.Fatalf("expected no database skills, got %d", len(got))
	}
}

func TestShareLinks(t *testing.T) {
	links := Seed().ShareLinks("https://example.com/?a=b")
	if len(links) != 4 {
		t.Fatalf("expected 4 share links, got %d", len(links))
	}

	linkedIn := links[0]
	if linkedIn.URL != "https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Fexample.com%2F%3Fa%3Db" {
		t.Fatalf("unexpected linkedin url: %s", linkedIn.URL)
	}

	email := links[1]
	if !strings.HasPrefix(email.URL, "mailto:?subject=Check+out+Dakota+Radigan+-+Senior+Product+Manager&body=") {
		t.Fatalf("unexpected email url: %s", email.URL)
	}

	if links[3].URL != "https://example.com/?a=b" {
		t.Fatalf("copy link should carry the page url, got %s", links[3].URL)
	}
}
