package yamlmall

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/domain/domaintest"
)

const referenceMall = `
name: La Vie Funchal
guards:
  John Oliver: {age: 34, years_experience: 7}
  Bob Schumacher: {age: 53, years_experience: 15}
floors:
  Ground Floor:
    size_limit: 300
    stores:
      Footzo:
        square_meters: 50
        employees:
          Finbar Haines: {age: 36, working_hours: [9, 14], salary: 650.88}
          Sienna-Rose Penn: {age: 26, working_hours: [9, 22], salary: 1000.43}
      Swashion:
        square_meters: 43
        employees:
          Abdallah Stafford: {age: 54, working_hours: [8, 22], salary: 1234.21}
          Marian Snyder: {age: 21, working_hours: [8, 14], salary: 831.9}
  Supermarket:
    size_limit: 1000
    stores:
      Pretail:
        square_meters: 950
        employees:
          Yara Wickens: {age: 39, working_hours: [9, 14], salary: 853.42}
          Indiana Baxter: {age: 33, working_hours: [13, 20], salary: 991.71}
          Jadine Page: {age: 48, working_hours: [13, 20], salary: 743.21}
          Tyler Hunt: {age: 63, working_hours: [13, 20], salary: 668.25}
          Mohsin Mcgee: {age: 30, working_hours: [19, 24], salary: 703.83}
          Antoine Goulding: {age: 45, working_hours: [19, 24], salary: 697.12}
          Mark Barnard: {age: 53, working_hours: [19, 24], salary: 788.81}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadMall_Reference(t *testing.T) {
	p := writeFile(t, "mall.yaml", referenceMall)

	m, err := NewLoader().LoadMall(p)
	if err != nil {
		t.Fatalf("LoadMall error: %v", err)
	}

	if diff := cmp.Diff(domaintest.LaVieFunchal(), m); diff != "" {
		t.Fatalf("mall mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMall_EmptyCollectionsAreInitialized(t *testing.T) {
	p := writeFile(t, "mall.yaml", `
name: Tiny
floors:
  Ground:
    size_limit: 10
    stores:
      Kiosk:
        square_meters: 4
`)

	m, err := NewLoader().LoadMall(p)
	if err != nil {
		t.Fatalf("LoadMall error: %v", err)
	}
	if m.Guards == nil {
		t.Fatalf("expected guards map")
	}
	if m.Floors["Ground"].Stores["Kiosk"].Employees == nil {
		t.Fatalf("expected employees map")
	}
}

func TestLoadMall_AcceptsInconsistentBusinessValues(t *testing.T) {
	p := writeFile(t, "mall.yaml", `
name: Odd
floors:
  Ground:
    size_limit: 10
    stores:
      Huge:
        square_meters: 5000
        employees:
          Night Owl: {age: 40, working_hours: [22, 6], salary: -5}
`)

	m, err := NewLoader().LoadMall(p)
	if err != nil {
		t.Fatalf("expected business values to pass through, got %v", err)
	}
	e := m.Floors["Ground"].Stores["Huge"].Employees["Night Owl"]
	if e.Salary != -5 || e.WorkedHours() != -16 {
		t.Fatalf("unexpected employee %+v", e)
	}
}

func TestLoadMall_MissingName(t *testing.T) {
	p := writeFile(t, "mall.yaml", "floors: {}\n")

	_, err := NewLoader().LoadMall(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected invalid data, got %v", err)
	}
	if !strings.Contains(err.Error(), "field name") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), p) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadMall_BadWorkingHours(t *testing.T) {
	p := writeFile(t, "mall.yaml", `
name: Bad
floors:
  Ground:
    size_limit: 10
    stores:
      S:
        square_meters: 5
        employees:
          Ann: {age: 30, working_hours: [9], salary: 10}
`)

	_, err := NewLoader().LoadMall(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "working_hours") {
		t.Fatalf("expected working_hours in error, got %v", err)
	}
}

func TestLoadMall_NegativeArea(t *testing.T) {
	p := writeFile(t, "mall.yaml", `
name: Bad
floors:
  Ground:
    size_limit: -10
`)

	_, err := NewLoader().LoadMall(p)
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected invalid data, got %v", err)
	}
}

func TestLoadMall_NotFound(t *testing.T) {
	_, err := NewLoader().LoadMall(filepath.Join(t.TempDir(), "missing.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadMall_MalformedYAML(t *testing.T) {
	p := writeFile(t, "mall.yaml", "name: [unterminated\n")

	_, err := NewLoader().LoadMall(p)
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected invalid data, got %v", err)
	}
}

func TestLoadCandidates_KeepsOrder(t *testing.T) {
	p := writeFile(t, "candidates.yaml", `
candidates:
  - {name: Peter Solomons, age: 45, years_experience: 20}
  - {name: William Charles, age: 32, years_experience: 10}
  - {name: Leonardo Changretta, age: 23, years_experience: 0}
`)

	got, err := NewLoader().LoadCandidates(p)
	if err != nil {
		t.Fatalf("LoadCandidates error: %v", err)
	}

	want := domaintest.Candidates()[:3]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCandidates_RequiresName(t *testing.T) {
	p := writeFile(t, "candidates.yaml", `
candidates:
  - {age: 45, years_experience: 20}
`)

	_, err := NewLoader().LoadCandidates(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "candidates[0].name") {
		t.Fatalf("expected field path in error, got %v", err)
	}
}

func TestLoadCandidates_Empty(t *testing.T) {
	p := writeFile(t, "candidates.yaml", "candidates: []\n")

	got, err := NewLoader().LoadCandidates(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}
