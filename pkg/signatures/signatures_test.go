package signatures

import "testing"

func TestDefaultAppIDsAreUnique(t *testing.T) {
	db := Default()
	seen := make(map[string]struct{})
	for _, a := range db.Apps() {
		if _, dup := seen[a.ID]; dup {
			t.Fatalf("duplicate app id: %s", a.ID)
		}
		seen[a.ID] = struct{}{}
	}
}

func TestAppByID(t *testing.T) {
	db := Default()

	app, ok := db.AppByID("klaviyo")
	if !ok {
		t.Fatal("expected to find klaviyo")
	}
	if app.Category != "Email Marketing" {
		t.Fatalf("unexpected category: %s", app.Category)
	}

	if _, ok := db.AppByID("nonexistent-app"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestThemeByStoreID(t *testing.T) {
	db := Default()

	theme, ok := db.ThemeByStoreID(828)
	if !ok {
		t.Fatal("expected to find theme 828")
	}
	if theme.Name != "Dawn" || theme.Tier != "free" {
		t.Fatalf("unexpected theme: %+v", theme)
	}
	if theme.StoreURL == "" {
		t.Fatal("expected a theme store URL")
	}

	// Unknown ids are a miss, never an error.
	if _, ok := db.ThemeByStoreID(999999); ok {
		t.Fatal("expected miss for unknown theme store id")
	}
}

func TestEveryAppHasPatternFields(t *testing.T) {
	for _, a := range Default().Apps() {
		if a.ID == "" || a.Name == "" || a.Category == "" {
			t.Fatalf("incomplete app entry: %+v", a)
		}
		if a.Patterns.BlockMarkers == nil {
			t.Fatalf("app %s has nil block markers", a.ID)
		}
	}
}

func TestCategoriesSortedAndDistinct(t *testing.T) {
	cats := Default().Categories()
	if len(cats) == 0 {
		t.Fatal("expected at least one category")
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Fatalf("categories not sorted/distinct: %v", cats)
		}
	}
}
