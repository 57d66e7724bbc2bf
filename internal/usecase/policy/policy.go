// Package policy applies the mall's batch business rules in place.
//
// Both rules assume exclusive access to the mall for their duration and
// always run to completion; neither can fail.
package policy

import (
	"math"

	"github.com/aalvaropc/mallctl/internal/domain"
)

// TotalArea sums the allotted area of every floor.
func TotalArea(m domain.Mall) uint64 {
	var total uint64
	for _, floor := range m.Floors {
		total += floor.SizeLimit
	}
	return total
}

// GuardTarget is the number of guards the mall should employ:
// total area divided by the area one guard covers, rounded down and capped
// at math.MaxInt.
func GuardTarget(m domain.Mall, cfg domain.PolicyConfig) int {
	cfg = cfg.WithDefaults()
	target := TotalArea(m) / cfg.AreaPerGuard
	if target > math.MaxInt {
		return math.MaxInt
	}
	return int(target)
}

// CheckForSecurities hires candidates, in order, until the guard count
// equals the target.
//
// The stop condition is equality, checked before each hire. A mall already at
// target hires nobody; a mall already above target hires every candidate,
// because its count never comes back down to the target.
//
// The count starts at the staff size and grows by one per hire. A candidate
// whose name is already on staff overwrites that guard but still counts as a
// hire, so GuardsAfter can end below Target.
func CheckForSecurities(m *domain.Mall, candidates []domain.GuardCandidate, cfg domain.PolicyConfig) domain.SecurityOutcome {
	out := domain.SecurityOutcome{
		TotalArea:    TotalArea(*m),
		Target:       GuardTarget(*m, cfg),
		GuardsBefore: len(m.Guards),
	}

	count := len(m.Guards)
	for _, c := range candidates {
		if count == out.Target {
			break
		}
		replaced := m.HireGuard(c.Name, c.Guard)
		out.Hires = append(out.Hires, domain.Hire{Name: c.Name, Guard: c.Guard, Replaced: replaced})
		count++
	}

	out.GuardsAfter = len(m.Guards)
	return out
}

// CutOrRaise adjusts every salary by AdjustmentRate of its current value:
// up when the employee works at least RaiseThresholdHours a day, down
// otherwise. Repeated calls compound.
func CutOrRaise(m *domain.Mall, cfg domain.PolicyConfig) []domain.SalaryChange {
	cfg = cfg.WithDefaults()

	var changes []domain.SalaryChange
	for _, floorName := range m.FloorNames() {
		floor := m.Floors[floorName]
		for _, storeName := range floor.StoreNames() {
			store := floor.Stores[storeName]
			for _, name := range store.EmployeeNames() {
				e := store.Employees[name]
				before := e.Salary
				worked := e.WorkedHours()
				delta := e.Salary * cfg.AdjustmentRate

				raised := worked >= cfg.RaiseThresholdHours
				if raised {
					e.Raise(delta)
				} else {
					e.Cut(delta)
				}
				store.Employees[name] = e

				changes = append(changes, domain.SalaryChange{
					Floor:       floorName,
					Store:       storeName,
					Employee:    name,
					WorkedHours: worked,
					Before:      before,
					After:       e.Salary,
					Raised:      raised,
				})
			}
		}
	}
	return changes
}
