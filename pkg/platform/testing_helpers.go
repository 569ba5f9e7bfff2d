package platform

// SetupTestHost installs a fresh MemoryHost and a synchronous dispatch
// function for testing, and returns the host. The cleanup function should be
// testing.T.Cleanup or equivalent; it registers a teardown that calls
// ResetForTest.
//
//	host := platform.SetupTestHost(t.Cleanup)
func SetupTestHost(cleanup func(func())) *MemoryHost {
	host := NewMemoryHost()
	SetHost(host)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return host
}
