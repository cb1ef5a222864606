package dispatcher

// Input is the question text control
type Input interface {
	Value() string
}

// Region is the output container. Show always replaces the whole view.
type Region interface {
	Show(v View)
	Current() View
}

// Button is the submit control
type Button interface {
	// OnClick registers handler to run on every activation
	OnClick(handler func())
	// Click activates the control
	Click()
}

// Controls are the three page elements the dispatcher binds to
type Controls struct {
	Input  Input
	Submit Button
	Output Region
}

// SubmitButton is a plain Button for hosts without a widget of their own
type SubmitButton struct {
	handlers []func()
}

// NewSubmitButton creates a button with no handlers
func NewSubmitButton() *SubmitButton {
	return &SubmitButton{}
}

func (b *SubmitButton) OnClick(handler func()) {
	b.handlers = append(b.handlers, handler)
}

func (b *SubmitButton) Click() {
	for _, h := range b.handlers {
		h()
	}
}

// StaticInput is an Input with a fixed value
type StaticInput string

func (s StaticInput) Value() string {
	return string(s)
}

// KeyEnter is the primary activation key
const KeyEnter = "enter"

// KeyEvent is a key press inside the input control.
// Modified is set when the secondary modifier (shift, or alt in a
// terminal) is held.
type KeyEvent struct {
	Key      string
	Modified bool
}
