package search

import "testing"

func testRecords() []LetterRecord {
	return []LetterRecord{
		{ID: "crosswalk-safety", Title: "Crosswalk Safety on Main Street", Description: "Ask the council to fund a marked crosswalk", Date: "2026-01-10", Tags: []string{"safety", "traffic"}},
		{ID: "park-funding", Title: "Restore Park Maintenance Funding", Description: "Urgent request about the park budget", Date: "2026-02-01", Tags: []string{"parks"}},
		{ID: "transit-hours", Title: "Extend Evening Transit Hours", Description: "Later bus service for shift workers", Date: "2026-03-05", Tags: []string{"transit", "safety"}},
	}
}

func TestMemorySearchEmptyQueryPreservesOrder(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	results, total, err := m.Search(Query{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	want := []string{"crosswalk-safety", "park-funding", "transit-hours"}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, id)
		}
	}
}

func TestMemorySearchTitleRanksFirst(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	// "safety" is in the first letter's title and the third letter's tags.
	results, total, err := m.Search(Query{Text: "safety"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if results[0].ID != "crosswalk-safety" {
		t.Errorf("results[0].ID = %q, want crosswalk-safety", results[0].ID)
	}
	if results[1].ID != "transit-hours" {
		t.Errorf("results[1].ID = %q, want transit-hours", results[1].ID)
	}
}

func TestMemorySearchCaseInsensitive(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	results, _, err := m.Search(Query{Text: "PARK"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "park-funding" {
		t.Fatalf("results = %+v, want single park-funding hit", results)
	}
}

func TestMemorySearchTagFilter(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	results, total, err := m.Search(Query{FilterTag: "safety"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, r := range results {
		if !hasTag(r.Tags, "safety") {
			t.Errorf("result %s missing safety tag", r.ID)
		}
	}
}

func TestMemorySearchNoMatch(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	results, total, err := m.Search(Query{Text: "zoning"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 0 || len(results) != 0 {
		t.Fatalf("got %d results (total %d), want none", len(results), total)
	}
}

func TestMemorySearchPagination(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())

	results, total, err := m.Search(Query{Limit: 2})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 3 || len(results) != 2 {
		t.Fatalf("got %d results (total %d), want 2 of 3", len(results), total)
	}

	results, _, err = m.Search(Query{Offset: 2})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "transit-hours" {
		t.Fatalf("offset page = %+v, want single transit-hours hit", results)
	}

	results, _, err = m.Search(Query{Offset: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("past-end page = %+v, want empty", results)
	}
}

func TestServiceFallsBackWithoutMeili(t *testing.T) {
	m := NewMemory()
	m.Load(testRecords())
	svc := NewService(nil, m)

	resp := svc.Search(Query{Text: "bus"})
	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("resp = %+v, want single hit", resp)
	}
	if resp.Results[0].ID != "transit-hours" {
		t.Errorf("hit = %q, want transit-hours", resp.Results[0].ID)
	}
	if resp.Query != "bus" {
		t.Errorf("query echoed as %q", resp.Query)
	}
}
