package prompts

import "io"

// mockTerminal implements terminalInterface for tests.
//
// Input comes from a pre-configured rune sequence and io.EOF is returned once
// it is consumed, which is how a closed input stream looks to the engine.
// Raw mode is a plain flag so tests can check it is restored.
type mockTerminal struct {
	input        []rune // Pre-configured input sequence for testing
	inputPos     int    // Current position in the input sequence
	rawMode      bool   // Track raw mode state for test verification
	rawToggles   int    // Number of EnableRawMode/DisableRawMode calls that changed the mode
	terminalSize [2]int // Fixed terminal dimensions [width, height]
	closed       bool
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) EnableRawMode() error {
	if !m.rawMode {
		m.rawToggles++
	}
	m.rawMode = true
	return nil
}

func (m *mockTerminal) DisableRawMode() error {
	if m.rawMode {
		m.rawToggles++
	}
	m.rawMode = false
	return nil
}

func (m *mockTerminal) IsRawModeEnabled() bool {
	return m.rawMode
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
