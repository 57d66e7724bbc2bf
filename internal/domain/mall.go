package domain

// Guard is a security guard employed directly by the mall.
// Its identity is the name it is stored under in Mall.Guards.
type Guard struct {
	Age             int `json:"age" yaml:"age"`
	YearsExperience int `json:"years_experience" yaml:"years_experience"`
}

// WorkingHours is a daily shift expressed in whole hours.
// End > Start is expected but not enforced.
type WorkingHours struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Employee is a store employee. Its identity is its name within a Store.
type Employee struct {
	Age          int          `json:"age" yaml:"age"`
	WorkingHours WorkingHours `json:"working_hours" yaml:"working_hours"`
	Salary       float64      `json:"salary" yaml:"salary"`
}

// WorkedHours returns End - Start. Malformed shifts yield a negative value.
func (e Employee) WorkedHours() int {
	return e.WorkingHours.End - e.WorkingHours.Start
}

func (e *Employee) Raise(amount float64) {
	e.Salary += amount
}

func (e *Employee) Cut(amount float64) {
	e.Salary -= amount
}

// Store owns its employees. SquareMeters is a static capacity figure,
// independent of how many employees work there.
type Store struct {
	Employees    map[string]Employee `json:"employees" yaml:"employees"`
	SquareMeters uint64              `json:"square_meters" yaml:"square_meters"`
}

func NewStore(employees map[string]Employee, squareMeters uint64) Store {
	if employees == nil {
		employees = map[string]Employee{}
	}
	return Store{Employees: employees, SquareMeters: squareMeters}
}

// EmployeeNames returns the employee names in lexicographic order.
func (s Store) EmployeeNames() []string {
	return sortedKeys(s.Employees)
}

// Clone returns a deep copy.
func (s Store) Clone() Store {
	out := Store{
		Employees:    make(map[string]Employee, len(s.Employees)),
		SquareMeters: s.SquareMeters,
	}
	for name, e := range s.Employees {
		out.Employees[name] = e
	}
	return out
}

// Floor owns its stores. SizeLimit is the floor's allotted area; it is not
// checked against the sum of its stores' areas.
type Floor struct {
	Stores    map[string]Store `json:"stores" yaml:"stores"`
	SizeLimit uint64           `json:"size_limit" yaml:"size_limit"`
}

func NewFloor(stores map[string]Store, sizeLimit uint64) Floor {
	if stores == nil {
		stores = map[string]Store{}
	}
	return Floor{Stores: stores, SizeLimit: sizeLimit}
}

// StoreNames returns the store names in lexicographic order.
func (f Floor) StoreNames() []string {
	return sortedKeys(f.Stores)
}

// Clone returns a deep copy.
func (f Floor) Clone() Floor {
	out := Floor{
		Stores:    make(map[string]Store, len(f.Stores)),
		SizeLimit: f.SizeLimit,
	}
	for name, s := range f.Stores {
		out.Stores[name] = s.Clone()
	}
	return out
}

// Mall is the root of the hierarchy. Guards hang directly off the mall,
// not off floors.
type Mall struct {
	Name   string           `json:"name" yaml:"name"`
	Guards map[string]Guard `json:"guards" yaml:"guards"`
	Floors map[string]Floor `json:"floors" yaml:"floors"`
}

// NewMall builds a mall from already-formed collections. No validation is performed.
func NewMall(name string, guards map[string]Guard, floors map[string]Floor) Mall {
	if guards == nil {
		guards = map[string]Guard{}
	}
	if floors == nil {
		floors = map[string]Floor{}
	}
	return Mall{Name: name, Guards: guards, Floors: floors}
}

// HireGuard inserts the guard under name. An existing guard with the same
// name is overwritten and replaced reports true.
func (m *Mall) HireGuard(name string, g Guard) (replaced bool) {
	if m.Guards == nil {
		m.Guards = map[string]Guard{}
	}
	_, replaced = m.Guards[name]
	m.Guards[name] = g
	return replaced
}

// FloorNames returns the floor names in lexicographic order.
func (m Mall) FloorNames() []string {
	return sortedKeys(m.Floors)
}

// GuardNames returns the guard names in lexicographic order.
func (m Mall) GuardNames() []string {
	return sortedKeys(m.Guards)
}

// Clone returns a deep copy.
func (m Mall) Clone() Mall {
	out := Mall{
		Name:   m.Name,
		Guards: make(map[string]Guard, len(m.Guards)),
		Floors: make(map[string]Floor, len(m.Floors)),
	}
	for name, g := range m.Guards {
		out.Guards[name] = g
	}
	for name, f := range m.Floors {
		out.Floors[name] = f.Clone()
	}
	return out
}

// GuardCandidate is a guard offered for hiring. Candidates are kept in a
// slice so hiring order is the order the caller supplied.
type GuardCandidate struct {
	Name  string `json:"name" yaml:"name"`
	Guard Guard  `json:"guard" yaml:"guard"`
}
