package workers

// Worker is a background job owned by Manager.
type Worker interface {
	Start() error
	Stop()
	Name() string
}
