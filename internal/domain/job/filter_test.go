package job

import "testing"

func sampleJobs() []Job {
	return []Job{
		{ID: "1", Title: "Software Engineer", Company: "Gator Labs", Location: "Gainesville, FL", Type: "Full-time", Category: CategoryTechnology, Status: StatusActive},
		{ID: "2", Title: "Registered Nurse", Company: "Shands Hospital", Location: "Gainesville, FL", Type: "Full-time", Category: CategoryHealthcare, Status: StatusActive},
		{ID: "3", Title: "Graphic Designer", Company: "Swamp Studio", Location: "Orlando, FL", Type: "Part-time", Category: CategoryCreative, Status: StatusActive},
		{ID: "4", Title: "Math Teacher", Company: "Gainesville High", Location: "Gainesville, FL", Type: "Full-time", Category: CategoryEducation, Status: StatusClosed},
	}
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	jobs := sampleJobs()

	got := Filter(jobs, Criteria{})
	if len(got) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(got))
	}
	for i := range got {
		if got[i].ID != jobs[i].ID {
			t.Fatalf("order changed at %d: got %s want %s", i, got[i].ID, jobs[i].ID)
		}
	}
}

func TestFilterQueryMatchesTitleCompanyLocation(t *testing.T) {
	jobs := sampleJobs()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"title substring", "engineer", []string{"1"}},
		{"company substring", "swamp", []string{"3"}},
		{"location substring", "orlando", []string{"3"}},
		{"case insensitive", "GAINESVILLE", []string{"1", "2", "4"}},
		{"no match", "astronaut", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(jobs, Criteria{Query: tc.query})
			assertIDs(t, got, tc.want)
		})
	}
}

func TestFilterCategoryAllIsInactive(t *testing.T) {
	jobs := sampleJobs()

	if got := Filter(jobs, Criteria{Category: CategoryAll}); len(got) != len(jobs) {
		t.Fatalf("CategoryAll should not filter, got %d jobs", len(got))
	}
	assertIDs(t, Filter(jobs, Criteria{Category: CategoryHealthcare}), []string{"2"})
}

func TestFilterAllKeywordIsInactive(t *testing.T) {
	jobs := sampleJobs()

	if got := Filter(jobs, Criteria{Type: "all", Location: "All", Status: "ALL"}); len(got) != len(jobs) {
		t.Fatalf("\"all\" values should not filter, got %d jobs", len(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	jobs := sampleJobs()

	got := Filter(jobs, Criteria{
		Query:    "gainesville",
		Type:     "Full-time",
		Status:   StatusActive,
		Location: "Gainesville, FL",
	})
	assertIDs(t, got, []string{"1", "2"})
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	jobs := sampleJobs()

	_ = Filter(jobs, Criteria{Category: CategoryTechnology})

	want := sampleJobs()
	for i := range jobs {
		if jobs[i].ID != want[i].ID {
			t.Fatalf("input slice modified at %d", i)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	jobs := sampleJobs()
	criteria := []Criteria{
		{},
		{Query: "gainesville"},
		{Category: CategoryTechnology},
		{Query: "nurse", Type: "Full-time", Status: StatusActive},
	}

	for _, c := range criteria {
		once := Filter(jobs, c)
		twice := Filter(once, c)
		if len(twice) != len(once) {
			t.Fatalf("criteria %+v: second pass changed the result, %d != %d", c, len(twice), len(once))
		}
		for i := range once {
			if twice[i].ID != once[i].ID {
				t.Fatalf("criteria %+v: second pass reordered at %d", c, i)
			}
		}
	}
}

func TestFilterReturnsMatchingSubset(t *testing.T) {
	jobs := sampleJobs()
	criteria := []Criteria{
		{Query: "gator"},
		{Category: CategoryCreative},
		{Type: "Part-time", Location: "Orlando"},
		{Query: "teacher", Status: "closed"},
	}

	indexOf := func(id string) int {
		for i, j := range jobs {
			if j.ID == id {
				return i
			}
		}
		return -1
	}

	for _, c := range criteria {
		got := Filter(jobs, c)
		if len(got) > len(jobs) {
			t.Fatalf("criteria %+v: result larger than input", c)
		}
		prev := -1
		for _, j := range got {
			if !Matches(j, c) {
				t.Fatalf("criteria %+v: %s does not match its own criteria", c, j.ID)
			}
			idx := indexOf(j.ID)
			if idx < 0 {
				t.Fatalf("criteria %+v: %s is not in the input", c, j.ID)
			}
			if idx <= prev {
				t.Fatalf("criteria %+v: input order not preserved at %s", c, j.ID)
			}
			prev = idx
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(c) {
			t.Fatalf("%s should be valid", c)
		}
	}
	if ValidCategory(CategoryAll) {
		t.Fatal("CategoryAll is a filter sentinel, not a storable category")
	}
	if ValidCategory("Finance") {
		t.Fatal("unknown category accepted")
	}
}

func assertIDs(t *testing.T, got []Job, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("at %d: got %s want %s", i, got[i].ID, want[i])
		}
	}
}
