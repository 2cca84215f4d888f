package paramutils

// MockFlagSet answers from fixed values; unset flags fall back to the default.
type MockFlagSet struct {
	Strings map[string]string
	Bools   map[string]bool
}

func (m *MockFlagSet) GetStringOrDefault(flag, d string) string {
	if v := m.Strings[flag]; v != "" {
		return v
	}

	return d
}

func (m *MockFlagSet) GetBoolOrDefault(flag string, d bool) bool {
	if v, ok := m.Bools[flag]; ok {
		return v
	}

	return d
}
