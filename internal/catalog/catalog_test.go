package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return c
}

func TestLoadEmbedded(t *testing.T) {
	c := testCatalog(t)
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, p := range c.Parts() {
		if p.PartNumber == "" {
			t.Errorf("part %q has empty part number", p.Name)
		}
		if len(p.InstallInstructions) == 0 {
			t.Errorf("part %s has no install instructions", p.PartNumber)
		}
	}
}

func TestFindByPartNumberCaseInsensitive(t *testing.T) {
	c := testCatalog(t)

	for _, id := range []string{"PS11752778", "ps11752778", "Ps11752778", "  PS11752778  "} {
		part, ok := c.FindByPartNumber(id)
		if !ok {
			t.Fatalf("FindByPartNumber(%q): not found", id)
		}
		if part.PartNumber != "PS11752778" {
			t.Errorf("FindByPartNumber(%q) = %s", id, part.PartNumber)
		}
	}
}

func TestFindByPartNumberUnknown(t *testing.T) {
	c := testCatalog(t)
	if _, ok := c.FindByPartNumber("PS00000000"); ok {
		t.Error("expected unknown part to return not found")
	}
}

func TestSearchMatchesAllFields(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		query string
		want  string
	}{
		{"ice maker assembly", "PS11752778"}, // name
		{"nsf certified", "PS12745711"},      // description
		{"w10465232", "W10465232"},           // part number
		{"door pops open", "PS11722254"},     // symptom
	}
	for _, tt := range tests {
		results := c.Search(tt.query)
		if len(results) == 0 {
			t.Errorf("Search(%q): no results", tt.query)
			continue
		}
		found := false
		for _, p := range results {
			if p.PartNumber == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q): %s not in results", tt.query, tt.want)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	c := testCatalog(t)
	// Every seed part description mentions its appliance; "for" appears in all.
	results := c.Search("e")
	if len(results) > 5 {
		t.Errorf("Search returned %d results, limit is 5", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := testCatalog(t)
	if got := c.Search("   "); got != nil {
		t.Errorf("Search on blank query = %v, want nil", got)
	}
}

func TestFindBySymptomOnlyMatchesSymptoms(t *testing.T) {
	c := testCatalog(t)

	results := c.FindBySymptom("ice maker not working")
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	for _, p := range results {
		matched := false
		for _, s := range p.SymptomsFixed {
			if strings.Contains(strings.ToLower(s), "ice maker not working") {
				matched = true
			}
		}
		if !matched {
			t.Errorf("part %s returned without a matching symptom", p.PartNumber)
		}
	}

	// "Whirlpool" appears in names and descriptions but not in symptoms.
	if got := c.FindBySymptom("whirlpool"); len(got) != 0 {
		t.Errorf("FindBySymptom matched non-symptom fields: %d results", len(got))
	}
}

func TestCheckCompatibility(t *testing.T) {
	c := testCatalog(t)

	res, ok := c.CheckCompatibility("PS11756119", "wdt750sahz0")
	if !ok {
		t.Fatal("part not found")
	}
	if !res.IsCompatible {
		t.Error("expected compatible model match (case-insensitive)")
	}

	res, ok = c.CheckCompatibility("W10465232", "WDT750SAHZ0")
	if !ok {
		t.Fatal("part not found")
	}
	if res.IsCompatible {
		t.Error("expected incompatible: model absent from list")
	}
	if len(res.CompatibleModels) == 0 {
		t.Error("expected compatible models to be echoed back")
	}

	if _, ok := c.CheckCompatibility("PS99999999", "WDT750SAHZ0"); ok {
		t.Error("expected not-found for unknown part")
	}
}

func TestNewDropsDuplicatePartNumbers(t *testing.T) {
	c := New([]PartRecord{
		{PartNumber: "PS1", Name: "first"},
		{PartNumber: "ps1", Name: "duplicate"},
		{PartNumber: "PS2", Name: "second"},
	})
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	part, _ := c.FindByPartNumber("PS1")
	if part.Name != "first" {
		t.Errorf("duplicate replaced the original: got %q", part.Name)
	}
}

func TestInstallInstructionsDecodeForms(t *testing.T) {
	var fromArray InstallInstructions
	if err := json.Unmarshal([]byte(`["step one","step two"]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if len(fromArray) != 2 || fromArray[1] != "step two" {
		t.Errorf("array form = %v", fromArray)
	}

	var fromBlock InstallInstructions
	block := `"1. Unplug the unit. 2. Remove the panel. 3. Swap the part."`
	if err := json.Unmarshal([]byte(block), &fromBlock); err != nil {
		t.Fatalf("block form: %v", err)
	}
	want := []string{"Unplug the unit.", "Remove the panel.", "Swap the part."}
	if len(fromBlock) != len(want) {
		t.Fatalf("block form = %v, want %v", fromBlock, want)
	}
	for i := range want {
		if fromBlock[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i+1, fromBlock[i], want[i])
		}
	}

	var fromLines InstallInstructions
	lines := `"1. First line\n2. Second line\n3. Third line"`
	if err := json.Unmarshal([]byte(lines), &fromLines); err != nil {
		t.Fatalf("newline form: %v", err)
	}
	if len(fromLines) != 3 || fromLines[0] != "First line" {
		t.Errorf("newline form = %v", fromLines)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.json", `{"parts":[{"part_number":"PS1","name":"a","install_instructions":["x"]}]}`)
	write("b.json", `{"parts":[{"part_number":"PS2","name":"b","install_instructions":"1. y"}]}`)
	write("notes.txt", "not a catalog file")

	c, err := LoadDir(dir, []string{"**/*.json"})
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.FindByPartNumber("PS2"); !ok {
		t.Error("PS2 missing after merged load")
	}
}

func TestLoadDirNoMatches(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadDir(dir, []string{"**/*.json"}); err == nil {
		t.Error("expected error for empty catalog dir")
	}
}
