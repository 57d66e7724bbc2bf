// Package query holds the read-only aggregates over a mall.
//
// Every function walks floors, stores and employees in lexicographic name
// order, so ties resolve the same way on every run. Nothing here mutates
// the mall or returns an error.
package query

import "github.com/aalvaropc/mallctl/internal/domain"

// BiggestStore returns the store with the largest area. Comparison is strict,
// so among equal areas the first store in (floor, store) name order wins.
// ok is false when the mall has no stores.
func BiggestStore(m domain.Mall) (ref domain.StoreRef, ok bool) {
	for _, floorName := range m.FloorNames() {
		floor := m.Floors[floorName]
		for _, storeName := range floor.StoreNames() {
			store := floor.Stores[storeName]
			if !ok || store.SquareMeters > ref.Store.SquareMeters {
				ref = domain.StoreRef{Floor: floorName, Name: storeName, Store: store}
				ok = true
			}
		}
	}

	if ok {
		ref.Store = ref.Store.Clone()
	}
	return ref, ok
}

// HighestPaidEmployees returns every employee sharing the maximum salary, in
// traversal order. Salaries are compared with exact float equality.
// The first employee seeds the maximum, so negative salaries still qualify.
func HighestPaidEmployees(m domain.Mall) []domain.EmployeeRef {
	var (
		out []domain.EmployeeRef
		top float64
	)

	for _, floorName := range m.FloorNames() {
		floor := m.Floors[floorName]
		for _, storeName := range floor.StoreNames() {
			store := floor.Stores[storeName]
			for _, name := range store.EmployeeNames() {
				e := store.Employees[name]
				ref := domain.EmployeeRef{Floor: floorName, Store: storeName, Name: name, Employee: e}

				switch {
				case len(out) == 0 || e.Salary > top:
					top = e.Salary
					out = append(out[:0], ref)
				case e.Salary == top:
					out = append(out, ref)
				}
			}
		}
	}

	return out
}

// EmployeeCount is the headcount of the mall: every store employee plus
// every guard.
func EmployeeCount(m domain.Mall) int {
	n := 0
	for _, floor := range m.Floors {
		for _, store := range floor.Stores {
			n += len(store.Employees)
		}
	}
	return n + len(m.Guards)
}

// Run computes all aggregates at once.
func Run(m domain.Mall) domain.QueryReport {
	report := domain.QueryReport{
		MallName:    m.Name,
		HighestPaid: HighestPaidEmployees(m),
		Headcount:   EmployeeCount(m),
	}
	if ref, ok := BiggestStore(m); ok {
		report.BiggestStore = &ref
	}
	return report
}
