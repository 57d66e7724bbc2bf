// Package domaintest provides shared mall fixtures for tests.
package domaintest

import "github.com/aalvaropc/mallctl/internal/domain"

// LaVieFunchal returns the reference mall: two floors (300 and 1000 m²),
// three stores, eleven employees and two guards.
func LaVieFunchal() domain.Mall {
	return domain.NewMall(
		"La Vie Funchal",
		map[string]domain.Guard{
			"John Oliver":    {Age: 34, YearsExperience: 7},
			"Bob Schumacher": {Age: 53, YearsExperience: 15},
		},
		map[string]domain.Floor{
			"Ground Floor": domain.NewFloor(map[string]domain.Store{
				"Footzo": domain.NewStore(map[string]domain.Employee{
					"Finbar Haines":    employee(36, 9, 14, 650.88),
					"Sienna-Rose Penn": employee(26, 9, 22, 1000.43),
				}, 50),
				"Swashion": domain.NewStore(map[string]domain.Employee{
					"Abdallah Stafford": employee(54, 8, 22, 1234.21),
					"Marian Snyder":     employee(21, 8, 14, 831.9),
				}, 43),
			}, 300),
			"Supermarket": domain.NewFloor(map[string]domain.Store{
				"Pretail": domain.NewStore(map[string]domain.Employee{
					"Yara Wickens":     employee(39, 9, 14, 853.42),
					"Indiana Baxter":   employee(33, 13, 20, 991.71),
					"Jadine Page":      employee(48, 13, 20, 743.21),
					"Tyler Hunt":       employee(63, 13, 20, 668.25),
					"Mohsin Mcgee":     employee(30, 19, 24, 703.83),
					"Antoine Goulding": employee(45, 19, 24, 697.12),
					"Mark Barnard":     employee(53, 19, 24, 788.81),
				}, 950),
			}, 1000),
		},
	)
}

// Candidates returns ten guard candidates with distinct names.
func Candidates() []domain.GuardCandidate {
	return []domain.GuardCandidate{
		{Name: "Peter Solomons", Guard: domain.Guard{Age: 45, YearsExperience: 20}},
		{Name: "William Charles", Guard: domain.Guard{Age: 32, YearsExperience: 10}},
		{Name: "Leonardo Changretta", Guard: domain.Guard{Age: 23, YearsExperience: 0}},
		{Name: "Vlad Levi", Guard: domain.Guard{Age: 38, YearsExperience: 8}},
		{Name: "Faruk Berkai", Guard: domain.Guard{Age: 40, YearsExperience: 15}},
		{Name: "Christopher Smith", Guard: domain.Guard{Age: 35, YearsExperience: 9}},
		{Name: "Jason Mackie", Guard: domain.Guard{Age: 26, YearsExperience: 2}},
		{Name: "Kenzie Mair", Guard: domain.Guard{Age: 34, YearsExperience: 8}},
		{Name: "Bentley Larson", Guard: domain.Guard{Age: 33, YearsExperience: 10}},
		{Name: "Ray Storey", Guard: domain.Guard{Age: 37, YearsExperience: 12}},
	}
}

func employee(age, start, end int, salary float64) domain.Employee {
	return domain.Employee{
		Age:          age,
		WorkingHours: domain.WorkingHours{Start: start, End: end},
		Salary:       salary,
	}
}
