package yamlmall

type yamlMall struct {
	Name   string               `yaml:"name" validate:"required"`
	Guards map[string]yamlGuard `yaml:"guards" validate:"dive,keys,required,endkeys"`
	Floors map[string]yamlFloor `yaml:"floors" validate:"dive,keys,required,endkeys"`
}

type yamlGuard struct {
	Age             int `yaml:"age"`
	YearsExperience int `yaml:"years_experience"`
}

type yamlFloor struct {
	SizeLimit uint64               `yaml:"size_limit"`
	Stores    map[string]yamlStore `yaml:"stores" validate:"dive,keys,required,endkeys"`
}

type yamlStore struct {
	SquareMeters uint64                  `yaml:"square_meters"`
	Employees    map[string]yamlEmployee `yaml:"employees" validate:"dive,keys,required,endkeys"`
}

type yamlEmployee struct {
	Age int `yaml:"age"`
	// [start, end] in whole hours.
	WorkingHours []int   `yaml:"working_hours" validate:"len=2"`
	Salary       float64 `yaml:"salary"`
}

type yamlCandidates struct {
	Candidates []yamlCandidate `yaml:"candidates" validate:"dive"`
}

type yamlCandidate struct {
	Name            string `yaml:"name" validate:"required"`
	Age             int    `yaml:"age"`
	YearsExperience int    `yaml:"years_experience"`
}
