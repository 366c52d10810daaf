package ui

// Prompter defines interface for user interaction
type Prompter interface {
	PromptName(defaultName string) (string, error)
	PromptInt(label string, defaultValue int) (int, error)
	PromptBool(label string, defaultValue bool) (bool, error)
}

// Progress receives one tick per fetched pull request
type Progress interface {
	Start(total int)
	Advance(title string)
	Finish()
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// PromptName asks for the display name to report on
func (p *DefaultPrompter) PromptName(defaultName string) (string, error) {
	return PromptName(defaultName)
}

// PromptInt asks for a non-negative number
func (p *DefaultPrompter) PromptInt(label string, defaultValue int) (int, error) {
	return PromptInt(label, defaultValue)
}

// PromptBool asks a yes/no question
func (p *DefaultPrompter) PromptBool(label string, defaultValue bool) (bool, error) {
	return PromptBool(label, defaultValue)
}

// NopProgress discards progress ticks
type NopProgress struct{}

func (NopProgress) Start(int)      {}
func (NopProgress) Advance(string) {}
func (NopProgress) Finish()        {}

// MockPrompter for testing
type MockPrompter struct {
	Name      string
	NameError error

	// Ints and Bools are keyed by prompt label
	Ints      map[string]int
	IntError  error
	Bools     map[string]bool
	BoolError error

	// Call tracking
	PromptNameCalled bool
	IntLabels        []string
	BoolLabels       []string
}

// PromptName mocks name entry
func (m *MockPrompter) PromptName(defaultName string) (string, error) {
	m.PromptNameCalled = true
	if m.Name == "" && m.NameError == nil {
		return defaultName, nil
	}
	return m.Name, m.NameError
}

// PromptInt mocks number entry, falling back to the default for unknown labels
func (m *MockPrompter) PromptInt(label string, defaultValue int) (int, error) {
	m.IntLabels = append(m.IntLabels, label)
	if m.IntError != nil {
		return 0, m.IntError
	}
	if v, ok := m.Ints[label]; ok {
		return v, nil
	}
	return defaultValue, nil
}

// PromptBool mocks yes/no entry, falling back to the default for unknown labels
func (m *MockPrompter) PromptBool(label string, defaultValue bool) (bool, error) {
	m.BoolLabels = append(m.BoolLabels, label)
	if m.BoolError != nil {
		return false, m.BoolError
	}
	if v, ok := m.Bools[label]; ok {
		return v, nil
	}
	return defaultValue, nil
}

// MockProgress records ticks for testing
type MockProgress struct {
	Total    int
	Titles   []string
	Finished bool
}

func (m *MockProgress) Start(total int)      { m.Total = total }
func (m *MockProgress) Advance(title string) { m.Titles = append(m.Titles, title) }
func (m *MockProgress) Finish()              { m.Finished = true }
