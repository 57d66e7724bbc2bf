package domain

import "time"

// StoreRef locates a store in the hierarchy. Store is a copy.
type StoreRef struct {
	Floor string `json:"floor" yaml:"floor"`
	Name  string `json:"name" yaml:"name"`
	Store Store  `json:"store" yaml:"store"`
}

// EmployeeRef locates an employee in the hierarchy. Employee is a copy.
type EmployeeRef struct {
	Floor    string   `json:"floor" yaml:"floor"`
	Store    string   `json:"store" yaml:"store"`
	Name     string   `json:"name" yaml:"name"`
	Employee Employee `json:"employee" yaml:"employee"`
}

// QueryReport bundles the read-only aggregates computed over a mall.
type QueryReport struct {
	MallName string `json:"mall" yaml:"mall"`

	// BiggestStore is nil when the mall has no stores.
	BiggestStore *StoreRef `json:"biggest_store" yaml:"biggest_store"`

	HighestPaid []EmployeeRef `json:"highest_paid" yaml:"highest_paid"`
	Headcount   int           `json:"headcount" yaml:"headcount"`
}

// Hire records one guard insertion made by the security policy.
type Hire struct {
	Name     string `json:"name" yaml:"name"`
	Guard    Guard  `json:"guard" yaml:"guard"`
	Replaced bool   `json:"replaced" yaml:"replaced"`
}

// SecurityOutcome is the result of the security staffing policy.
type SecurityOutcome struct {
	TotalArea    uint64 `json:"total_area" yaml:"total_area"`
	Target       int    `json:"target" yaml:"target"`
	GuardsBefore int    `json:"guards_before" yaml:"guards_before"`
	GuardsAfter  int    `json:"guards_after" yaml:"guards_after"`
	Hires        []Hire `json:"hires" yaml:"hires"`
}

// SalaryChange records one payroll adjustment.
type SalaryChange struct {
	Floor       string  `json:"floor" yaml:"floor"`
	Store       string  `json:"store" yaml:"store"`
	Employee    string  `json:"employee" yaml:"employee"`
	WorkedHours int     `json:"worked_hours" yaml:"worked_hours"`
	Before      float64 `json:"before" yaml:"before"`
	After       float64 `json:"after" yaml:"after"`
	Raised      bool    `json:"raised" yaml:"raised"`
}

// PolicyReport is the audit artifact of one policy run.
type PolicyReport struct {
	ID       string `json:"id" yaml:"id"`
	MallName string `json:"mall" yaml:"mall"`
	DataPath string `json:"data_path" yaml:"data_path"`

	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	EndedAt   time.Time `json:"ended_at" yaml:"ended_at"`

	Security *SecurityOutcome `json:"security,omitempty" yaml:"security,omitempty"`
	Payroll  []SalaryChange   `json:"payroll,omitempty" yaml:"payroll,omitempty"`

	// Mall is the hierarchy after every policy in the run was applied.
	Mall Mall `json:"mall_after" yaml:"mall_after"`
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
