package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeStorage struct {
	entries []ConfigEntry
	saves   int
	saveErr error
}

func (f *fakeStorage) LoadCatalog(_ context.Context) ([]ConfigEntry, error) {
	return append([]ConfigEntry(nil), f.entries...), nil
}

func (f *fakeStorage) SaveCatalog(_ context.Context, entries []ConfigEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.entries = append([]ConfigEntry(nil), entries...)
	return nil
}

func sequence(values ...int) func() int {
	i := 0
	return func() int {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestValidateURI(t *testing.T) {
	tests := []struct {
		uri  string
		want bool
	}{
		{"vless://x@h:443", true},
		{"vmess://eyJhZGQiOiJoIn0=", true},
		{"trojan://pw@h:443", true},
		{"ss://abc@h:8388", true},
		{"ssr://abc", true},
		{"tuic://u:p@h:443", true},
		{"hysteria://h:443", true},
		{"hy2://pw@h:443", true},
		{"http://x", false},
		{"vlesss://x", false},
		{"VLESS://x@h:443", false},
		{" vless://x", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateURI(tt.uri); got != tt.want {
			t.Errorf("ValidateURI(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "flag and spaces dropped", input: "VLESS - USA 3 🇺🇸", expected: "vless-usa3"},
		{name: "separators trimmed", input: "__Edge-Node--", expected: "edge-node"},
		{name: "underscore kept inside", input: "de_trojan", expected: "de_trojan"},
		{name: "non latin becomes fallback", input: "سرور آلمان", expected: "cfg"},
		{name: "empty becomes fallback", input: "", expected: "cfg"},
		{name: "long name capped", input: strings.Repeat("ab", 30), expected: strings.Repeat("ab", 20)},
		{name: "cap then trim", input: strings.Repeat("a", 39) + "-tail", expected: strings.Repeat("a", 39)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewServiceKeepsStoredOrder(t *testing.T) {
	storage := &fakeStorage{entries: DefaultEntries()}

	svc, err := NewService(context.Background(), storage)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	list := svc.List(context.Background())
	if len(list) != 10 {
		t.Fatalf("List returned %d entries, want 10", len(list))
	}
	if list[0].ID != "us_vless_1" || list[9].ID != "sg_vless_1" {
		t.Errorf("List order = %s..%s, want us_vless_1..sg_vless_1", list[0].ID, list[9].ID)
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{}

	// the second and third adds collide on 1234 first and must re-roll
	svc, err := NewService(ctx, storage, WithSuffixSource(sequence(1234, 1234, 5678, 1234, 5678, 9012)))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		id, err := svc.Add(ctx, "Germany", "vless://u@de.example.com:443")
		if err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("Add #%d returned duplicate id %q", i, id)
		}
		seen[id] = true

		if !strings.HasPrefix(id, "germany_") {
			t.Errorf("Add #%d id = %q, want germany_ prefix", i, id)
		}
		if _, err := svc.Get(ctx, id); err != nil {
			t.Errorf("Get(%q) after Add: %v", id, err)
		}
	}

	if storage.saves != 3 {
		t.Errorf("storage saved %d times, want 3", storage.saves)
	}
	if len(storage.entries) != 3 {
		t.Errorf("storage holds %d entries, want 3", len(storage.entries))
	}
}

func TestAddRandomIDsNeverCollide(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(ctx, &fakeStorage{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := svc.Add(ctx, "same", "trojan://pw@h:443")
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d adds", id, i)
		}
		seen[id] = true
	}
	if svc.Count() != 200 {
		t.Errorf("Count() = %d, want 200", svc.Count())
	}
}

func TestAddRejectsInvalidURI(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{}
	svc, _ := NewService(ctx, storage)

	_, err := svc.Add(ctx, "bad", "http://x")
	if !errors.Is(err, ErrInvalidURI) {
		t.Fatalf("Add error = %v, want ErrInvalidURI", err)
	}
	if svc.Count() != 0 || storage.saves != 0 {
		t.Errorf("catalog changed after invalid add: count=%d saves=%d", svc.Count(), storage.saves)
	}
}

func TestAddKeepsCatalogWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{saveErr: errors.New("disk full")}
	svc, _ := NewService(ctx, storage)

	if _, err := svc.Add(ctx, "x", "vless://u@h:443"); err == nil {
		t.Fatal("Add succeeded with failing storage")
	}
	if svc.Count() != 0 {
		t.Errorf("Count() = %d after failed save, want 0", svc.Count())
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{entries: DefaultEntries()}
	svc, _ := NewService(ctx, storage)

	removed, err := svc.Remove(ctx, "nl_trojan_1")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Name != "Trojan - Netherlands 1 🇳🇱" {
		t.Errorf("removed.Name = %q", removed.Name)
	}
	if _, err := svc.Get(ctx, "nl_trojan_1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
	}

	list := svc.List(ctx)
	if len(list) != 9 || list[2].ID != "ca_vless_1" {
		t.Errorf("List after Remove = %d entries, third %q", len(list), list[2].ID)
	}

	if _, err := svc.Remove(ctx, "nl_trojan_1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove error = %v, want ErrNotFound", err)
	}
	if storage.saves != 1 {
		t.Errorf("storage saved %d times, want 1", storage.saves)
	}
}
