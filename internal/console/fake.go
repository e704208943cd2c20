package console

import "fmt"

// Fake is an in-memory Console for tests.
// With Reject set, both setters fail and leave the code pages untouched.
type Fake struct {
	Output uint32
	Input  uint32
	Reject bool

	Calls []string
}

// NewFake returns a Fake starting at the given code page
func NewFake(initial uint32) *Fake {
	return &Fake{Output: initial, Input: initial}
}

func (f *Fake) SetOutputCodePage(cp uint32) error {
	f.Calls = append(f.Calls, fmt.Sprintf("SetOutputCodePage(%d)", cp))
	if f.Reject {
		return fmt.Errorf("set output code page %d: console rejected request", cp)
	}
	f.Output = cp
	return nil
}

func (f *Fake) SetInputCodePage(cp uint32) error {
	f.Calls = append(f.Calls, fmt.Sprintf("SetInputCodePage(%d)", cp))
	if f.Reject {
		return fmt.Errorf("set input code page %d: console rejected request", cp)
	}
	f.Input = cp
	return nil
}

func (f *Fake) OutputCodePage() uint32 {
	f.Calls = append(f.Calls, "OutputCodePage()")
	return f.Output
}
