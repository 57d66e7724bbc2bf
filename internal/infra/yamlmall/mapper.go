package yamlmall

import "github.com/aalvaropc/mallctl/internal/domain"

func mapMall(ym yamlMall) domain.Mall {
	guards := make(map[string]domain.Guard, len(ym.Guards))
	for name, g := range ym.Guards {
		guards[name] = domain.Guard{Age: g.Age, YearsExperience: g.YearsExperience}
	}

	floors := make(map[string]domain.Floor, len(ym.Floors))
	for floorName, yf := range ym.Floors {
		stores := make(map[string]domain.Store, len(yf.Stores))
		for storeName, ys := range yf.Stores {
			employees := make(map[string]domain.Employee, len(ys.Employees))
			for name, ye := range ys.Employees {
				employees[name] = domain.Employee{
					Age: ye.Age,
					WorkingHours: domain.WorkingHours{
						Start: ye.WorkingHours[0],
						End:   ye.WorkingHours[1],
					},
					Salary: ye.Salary,
				}
			}
			stores[storeName] = domain.NewStore(employees, ys.SquareMeters)
		}
		floors[floorName] = domain.NewFloor(stores, yf.SizeLimit)
	}

	return domain.NewMall(ym.Name, guards, floors)
}

func mapCandidates(yc yamlCandidates) []domain.GuardCandidate {
	out := make([]domain.GuardCandidate, 0, len(yc.Candidates))
	for _, c := range yc.Candidates {
		out = append(out, domain.GuardCandidate{
			Name:  c.Name,
			Guard: domain.Guard{Age: c.Age, YearsExperience: c.YearsExperience},
		})
	}
	return out
}
