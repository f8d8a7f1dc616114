// Package values is the scaffolded values resource. It holds no state: reads
// return fixed literals and writes are accepted and discarded.
package values

// Service is the values resource contract consumed by the REST handlers.
type Service interface {
	List() []string
	Get(id int64) string
	Create(value string)
	Update(id int64, value string)
	Remove(id int64)
}

// New returns the stateless values service.
func New() Service {
	return service{}
}

type service struct{}

// List returns a fresh slice on every call so callers cannot affect later reads.
func (service) List() []string {
	return []string{"value1", "value2"}
}

func (service) Get(int64) string {
	return "value"
}

func (service) Create(string) {}

func (service) Update(int64, string) {}

func (service) Remove(int64) {}
