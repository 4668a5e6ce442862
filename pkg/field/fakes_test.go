package field

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-fieldchrome/pkg/chrome"
)

// fakeChrome emits compact markers so tests can assert order and presence
// without depending on template output.
type fakeChrome struct {
	calls map[string]int
}

func newFakeChrome() *fakeChrome {
	return &fakeChrome{calls: make(map[string]int)}
}

func (c *fakeChrome) Label(id, label string) (string, error) {
	c.calls["label"]++
	if label == "" {
		return "", nil
	}
	return fmt.Sprintf("<label for=%s>%s</label>", id, label), nil
}

func (c *fakeChrome) HelpText(help string) (string, error) {
	c.calls["help"]++
	if help == "" {
		return "", nil
	}
	return "<help>" + help + "</help>", nil
}

func (c *fakeChrome) Error(message string) (string, error) {
	c.calls["error"]++
	if message == "" {
		return "", nil
	}
	return "<error>" + message + "</error>", nil
}

func (c *fakeChrome) Toolbar(actions ...chrome.Action) (string, error) {
	c.calls["toolbar"]++
	if len(actions) == 0 {
		return "", nil
	}
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, action.Name)
	}
	return "<tools>" + strings.Join(names, ",") + "</tools>", nil
}

func (c *fakeChrome) Wrap(_ string, parts ...string) (string, error) {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "|"), nil
}

// bodyField renders a fixed control and nothing else.
type bodyField struct{}

func (bodyField) Render(props Props) (string, error) {
	return "<input name=" + props.Input.Name + ">", nil
}

// ownsErrorField renders its own validation feedback.
type ownsErrorField struct{ bodyField }

func (ownsErrorField) Contract() Contract {
	return NewContract("error", "placeholder")
}

// customField overrides every behaviour.
type customField struct {
	bodyField
	mounts  int
	mountFn func(ctx context.Context, props Props) error
}

func (f *customField) RenderLabel(_ Props, label string) (string, error) {
	return "<custom-label>" + label + "</custom-label>", nil
}

func (f *customField) RenderHelpText(_ Props, help string) (string, error) {
	return "<custom-help>" + help + "</custom-help>", nil
}

func (f *customField) RenderError(_ Props, message string) (string, error) {
	return "<custom-error>" + message + "</custom-error>", nil
}

func (f *customField) DisplayValue(_ Props, value any) DisplayValue {
	return Immediate(fmt.Sprintf("display:%v", value))
}

func (f *customField) OnMount(ctx context.Context, props Props) error {
	f.mounts++
	if f.mountFn != nil {
		return f.mountFn(ctx, props)
	}
	return nil
}

type warning struct {
	msg  string
	args []any
}

type recordingDiagnostics struct {
	warnings []warning
}

func (d *recordingDiagnostics) Warn(_ context.Context, msg string, args ...any) {
	d.warnings = append(d.warnings, warning{msg: msg, args: args})
}

func decorateWithFake(t *testing.T, impl Field, opts ...Option) (*Decorated, *fakeChrome) {
	t.Helper()
	fake := newFakeChrome()
	decorated, err := Decorate(impl, append([]Option{WithChrome(fake)}, opts...)...)
	if err != nil {
		t.Fatalf("decorate: %v", err)
	}
	return decorated, fake
}
