package field

import (
	"context"
	"errors"
	"testing"
)

type recordingRegistry struct {
	records      []Registration
	unregistered []string
}

func (r *recordingRegistry) register(record Registration) func() {
	r.records = append(r.records, record)
	return func() {
		r.unregistered = append(r.unregistered, record.ID)
	}
}

func TestMountRegistersOnce(t *testing.T) {
	registry := &recordingRegistry{}
	decorated, _ := decorateWithFake(t, bodyField{})

	instance, err := decorated.Mount(context.Background(), Props{
		ID:                  "fg-status",
		Input:               Input{Name: "status", Value: "draft"},
		RegisterFilterField: registry.register,
	})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}

	if _, err := instance.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	instance.Update(instance.Props())
	if _, err := instance.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(registry.records) != 1 {
		t.Fatalf("expected exactly one registration, got %d", len(registry.records))
	}
	record := registry.records[0]
	if record.ID != "fg-status" || record.Name != "status" {
		t.Fatalf("unexpected registration identity %+v", record)
	}
	if record.GetDisplayValue == nil {
		t.Fatalf("expected a callable GetDisplayValue")
	}
	if got := record.GetDisplayValue("draft").Value(); got != "draft" {
		t.Fatalf("expected identity display value, got %v", got)
	}
}

func TestMountWithoutRegistryIsNoop(t *testing.T) {
	decorated, _ := decorateWithFake(t, bodyField{})
	instance, err := decorated.Mount(context.Background(), Props{})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if !instance.Mounted() {
		t.Fatalf("expected instance to be mounted")
	}
	instance.Unmount()
	if instance.Mounted() {
		t.Fatalf("expected instance to be unmounted")
	}
}

func TestMountSurfacesDisplayValueOverride(t *testing.T) {
	registry := &recordingRegistry{}
	decorated, _ := decorateWithFake(t, &customField{})

	if _, err := decorated.Mount(context.Background(), Props{RegisterFilterField: registry.register}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if got := registry.records[0].GetDisplayValue(3).Value(); got != "display:3" {
		t.Fatalf("expected override display value, got %v", got)
	}
}

type deferredField struct{ bodyField }

func (deferredField) DisplayValue(_ Props, value any) DisplayValue {
	return Deferred(func(context.Context) (any, error) {
		return "Resolved " + value.(string), nil
	})
}

func TestMountSurfacesDeferredDisplayValue(t *testing.T) {
	registry := &recordingRegistry{}
	decorated, _ := decorateWithFake(t, deferredField{})

	if _, err := decorated.Mount(context.Background(), Props{RegisterFilterField: registry.register}); err != nil {
		t.Fatalf("mount: %v", err)
	}

	display := registry.records[0].GetDisplayValue("a-1")
	if !display.IsDeferred() {
		t.Fatalf("expected deferred display value")
	}
	got, err := display.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "Resolved a-1" {
		t.Fatalf("unexpected resolution %v", got)
	}
}

func TestMountRunsWrappedHook(t *testing.T) {
	registry := &recordingRegistry{}
	impl := &customField{}
	decorated, _ := decorateWithFake(t, impl)

	if _, err := decorated.Mount(context.Background(), Props{RegisterFilterField: registry.register}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if impl.mounts != 1 {
		t.Fatalf("expected wrapped mount hook to run once, ran %d", impl.mounts)
	}
	if len(registry.records) != 1 {
		t.Fatalf("expected registration alongside the wrapped hook")
	}
}

func TestMountHookFailureUnregisters(t *testing.T) {
	boom := errors.New("mount exploded")
	registry := &recordingRegistry{}
	impl := &customField{mountFn: func(context.Context, Props) error { return boom }}
	decorated, _ := decorateWithFake(t, impl)

	instance, err := decorated.Mount(context.Background(), Props{
		ID:                  "fg-x",
		RegisterFilterField: registry.register,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mount error to propagate, got %v", err)
	}
	if instance != nil {
		t.Fatalf("expected no instance on failure")
	}
	if len(registry.unregistered) != 1 || registry.unregistered[0] != "fg-x" {
		t.Fatalf("expected failed mount to drop its registration, got %v", registry.unregistered)
	}
}

func TestRemountCreatesNewRegistration(t *testing.T) {
	registry := &recordingRegistry{}
	decorated, _ := decorateWithFake(t, bodyField{})

	first, err := decorated.Mount(context.Background(), Props{ID: "a", RegisterFilterField: registry.register})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if _, err := decorated.Mount(context.Background(), Props{ID: "b", RegisterFilterField: registry.register}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if len(registry.records) != 2 {
		t.Fatalf("expected one registration per mount, got %d", len(registry.records))
	}

	if err := first.Remount(context.Background()); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("expected ErrAlreadyMounted, got %v", err)
	}

	first.Unmount()
	first.Unmount()
	if len(registry.unregistered) != 1 {
		t.Fatalf("expected unmount to unregister once, got %v", registry.unregistered)
	}

	if err := first.Remount(context.Background()); err != nil {
		t.Fatalf("remount: %v", err)
	}
	if len(registry.records) != 3 {
		t.Fatalf("expected remount to register again, got %d", len(registry.records))
	}
}

func TestMountGeneratesID(t *testing.T) {
	decorated, _ := decorateWithFake(t, bodyField{}, WithIDGenerator(func() string { return "fc-fixed" }))

	instance, err := decorated.Mount(context.Background(), Props{Label: "Name"})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if instance.Props().ID != "fc-fixed" {
		t.Fatalf("expected generated id, got %q", instance.Props().ID)
	}

	instance.Update(Props{Label: "Renamed"})
	if instance.Props().ID != "fc-fixed" {
		t.Fatalf("expected id to survive updates, got %q", instance.Props().ID)
	}
	got, err := instance.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<label for=fc-fixed>Renamed</label>|<input name=>" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestMountDefaultIDUsesUUID(t *testing.T) {
	decorated, _ := decorateWithFake(t, bodyField{})
	instance, err := decorated.Mount(context.Background(), Props{})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if id := instance.Props().ID; len(id) != len("fc-")+36 {
		t.Fatalf("expected fc-<uuid> id, got %q", id)
	}
}

func TestDeferredRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	display := Deferred(func(context.Context) (any, error) { return "late", nil })
	if _, err := display.Resolve(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}

	immediate := Immediate("now")
	got, err := immediate.Resolve(ctx)
	if err != nil || got != "now" {
		t.Fatalf("expected immediate value regardless of context, got %v %v", got, err)
	}
}
