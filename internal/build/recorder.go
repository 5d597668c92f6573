package build

// Op names a Builder operation.
type Op string

const (
	OpAddTeam                 Op = "add_team"
	OpAddExecutionStrategy    Op = "add_execution_strategy"
	OpAddOffice               Op = "add_office"
	OpBindManagedObjectSource Op = "bind_managed_object_source"
	OpBindManagedObject       Op = "bind_managed_object"
	OpBindInputManagedObject  Op = "bind_input_managed_object"
	OpBindManagedFunction     Op = "bind_managed_function"
	OpLinkPreAdministration   Op = "link_pre_administration"
	OpLinkPostAdministration  Op = "link_post_administration"
	OpAddStartupFunction      Op = "add_startup_function"
)

// Call is one recorded Builder invocation.
type Call struct {
	Op   Op     `json:"op" yaml:"op"`
	Name string `json:"name" yaml:"name"`
	Spec any    `json:"spec" yaml:"spec"`
}

// Recorder is a Builder that keeps every call in order. It backs the plan
// output of the CLI. Fail makes the named operation return an error.
type Recorder struct {
	Calls []Call
	Fail  map[Op]error
}

var _ Builder = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op Op, name string, spec any) error {
	if err := r.Fail[op]; err != nil {
		return err
	}
	r.Calls = append(r.Calls, Call{Op: op, Name: name, Spec: spec})
	return nil
}

// Names returns the names of the recorded calls for op, in order.
func (r *Recorder) Names(op Op) []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c.Name)
		}
	}
	return out
}

// Index returns the position of the first call for (op, name), or -1.
func (r *Recorder) Index(op Op, name string) int {
	for i, c := range r.Calls {
		if c.Op == op && c.Name == name {
			return i
		}
	}
	return -1
}

func (r *Recorder) AddTeam(s TeamSpec) error { return r.record(OpAddTeam, s.Name, s) }

func (r *Recorder) AddExecutionStrategy(s ExecutionStrategySpec) error {
	return r.record(OpAddExecutionStrategy, s.Name, s)
}

func (r *Recorder) AddOffice(s OfficeSpec) error { return r.record(OpAddOffice, s.Name, s) }

func (r *Recorder) BindManagedObjectSource(s ManagedObjectSourceSpec) error {
	return r.record(OpBindManagedObjectSource, s.Name, s)
}

func (r *Recorder) BindManagedObject(s ManagedObjectSpec) error {
	return r.record(OpBindManagedObject, s.Name, s)
}

func (r *Recorder) BindInputManagedObject(s InputManagedObjectSpec) error {
	return r.record(OpBindInputManagedObject, s.Name, s)
}

func (r *Recorder) BindManagedFunction(s ManagedFunctionSpec) error {
	return r.record(OpBindManagedFunction, s.Office+"."+s.Name, s)
}

func (r *Recorder) LinkPreAdministration(s AdministrationSpec) error {
	return r.record(OpLinkPreAdministration, s.Function, s)
}

func (r *Recorder) LinkPostAdministration(s AdministrationSpec) error {
	return r.record(OpLinkPostAdministration, s.Function, s)
}

func (r *Recorder) AddStartupFunction(s StartupSpec) error {
	return r.record(OpAddStartupFunction, s.Office+"."+s.Function, s)
}
