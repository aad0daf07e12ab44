package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

func checkPass(t *testing.T, src string) *semantic.Pass {
	t.Helper()
	pass, err := semantic.CheckSource("vm.go", src, "1.24")
	require.NoError(t, err)
	return pass
}

func extractCommand(t *testing.T, pass *semantic.Pass, typeName, methodName string) (model.CommandInfo, bool, *diagnostics.Bag) {
	t.Helper()
	td, ok := pass.Type(typeName)
	require.True(t, ok, "type %s not found", typeName)
	for _, m := range td.Methods {
		if m.Name != methodName {
			continue
		}
		marker, ok := semantic.FindMarker(m.Markers, MarkerCommand)
		require.True(t, ok, "method %s has no command marker", methodName)
		bag := diagnostics.NewBag()
		info, extracted := Command(pass, td, m, marker, bag)
		return info, extracted, bag
	}
	t.Fatalf("method %s not found on %s", methodName, typeName)
	return model.CommandInfo{}, false, nil
}

func firstID(bag *diagnostics.Bag) string {
	if bag.Len() == 0 {
		return ""
	}
	return bag.Items()[0].Descriptor.ID
}

func TestCommand_SignatureTable(t *testing.T) {
	// Test: every supported shape maps to its kind; everything else fails
	// with the invalid-signature diagnostic
	tests := []struct {
		name     string
		method   string
		wantKind model.CommandKind
		wantArg  string
		wantFail bool
	}{
		{"void no params", "func (v *VM) Do() {}", model.KindSync, "", false},
		{"void one param", "func (v *VM) Do(n int) {}", model.KindSyncTyped, "int", false},
		{"error no params", "func (v *VM) Do() error { return nil }", model.KindAsync, "", false},
		{"error context", "func (v *VM) Do(ctx context.Context) error { return nil }", model.KindAsyncCancelable, "", false},
		{"error one param", "func (v *VM) Do(n int) error { return nil }", model.KindAsyncTyped, "int", false},
		{"error context and param", "func (v *VM) Do(ctx context.Context, n int) error { return nil }", model.KindAsyncTypedCancelable, "int", false},
		{"void context param is typed", "func (v *VM) Do(ctx context.Context) {}", model.KindSyncTyped, "context.Context", false},
		{"three params", "func (v *VM) Do(ctx context.Context, a, b int) error { return nil }", 0, "", true},
		{"two params without context", "func (v *VM) Do(a, b int) error { return nil }", 0, "", true},
		{"context not first", "func (v *VM) Do(n int, ctx context.Context) error { return nil }", 0, "", true},
		{"two contexts", "func (v *VM) Do(a context.Context, b context.Context) error { return nil }", 0, "", true},
		{"non-error result", "func (v *VM) Do() int { return 0 }", 0, "", true},
		{"two results", "func (v *VM) Do() (int, error) { return 0, nil }", 0, "", true},
		{"two params void", "func (v *VM) Do(a int, b int) {}", 0, "", true},
		{"variadic", "func (v *VM) Do(ns ...int) {}", 0, "", true},
		{"func param", "func (v *VM) Do(f func()) {}", 0, "", true},
		{"chan param", "func (v *VM) Do(ch chan int) {}", 0, "", true},
		{"unsafe pointer param", "func (v *VM) Do(p unsafe.Pointer) {}", 0, "", true},
		{"uintptr param", "func (v *VM) Do(p uintptr) {}", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fmt.Sprintf(`package viewmodels

import (
	"context"
	"unsafe"
)

var _ = context.Background
var _ = unsafe.Sizeof(0)

type VM struct{}

//mvvm:command
%s
`, tt.method)
			pass := checkPass(t, src)
			info, ok, bag := extractCommand(t, pass, "VM", "Do")

			if tt.wantFail {
				assert.False(t, ok)
				assert.Equal(t, diagnostics.InvalidCommandSignature.ID, firstID(bag))
				return
			}
			require.True(t, ok, "diagnostics: %v", bag.Items())
			assert.Equal(t, tt.wantKind, info.Kind)
			assert.Equal(t, tt.wantArg, info.ArgType)
			assert.Equal(t, "DoCommand", info.PropertyName)
			assert.Equal(t, "doCommand", info.FieldName)
			assert.Zero(t, bag.Len())
		})
	}
}

func TestCommand_NameDerivation(t *testing.T) {
	// Test: the derived accessor and field names follow the On/Async rules
	src := `package viewmodels

type VM struct{}

//mvvm:command
func (v *VM) LoadDataAsync() error { return nil }

//mvvm:command
func (v *VM) OnSave() {}

//mvvm:command
func (v *VM) Onboard() {}
`
	pass := checkPass(t, src)

	info, ok, _ := extractCommand(t, pass, "VM", "LoadDataAsync")
	require.True(t, ok)
	assert.Equal(t, "LoadDataCommand", info.PropertyName)
	assert.Equal(t, "loadDataCommand", info.FieldName)

	info, ok, _ = extractCommand(t, pass, "VM", "OnSave")
	require.True(t, ok)
	assert.Equal(t, "SaveCommand", info.PropertyName)
	assert.Equal(t, "saveCommand", info.FieldName)

	info, ok, _ = extractCommand(t, pass, "VM", "Onboard")
	require.True(t, ok)
	assert.Equal(t, "OnboardCommand", info.PropertyName)
	assert.Equal(t, "onboardCommand", info.FieldName)
}

func TestCommand_OptionValidation(t *testing.T) {
	// Test: each switch is validated against the resolved kind
	tests := []struct {
		name   string
		marker string
		method string
		wantID string
	}{
		{
			"allowConcurrent on sync",
			"//mvvm:command allowConcurrent",
			"func (v *VM) Do() {}",
			diagnostics.ConcurrencyOnSyncCommand.ID,
		},
		{
			"flowExceptions on sync",
			"//mvvm:command flowExceptions",
			"func (v *VM) Do() {}",
			diagnostics.ExceptionFlowOnSyncCommand.ID,
		},
		{
			"includeCancel without context",
			"//mvvm:command includeCancel",
			"func (v *VM) Do() error { return nil }",
			diagnostics.CancelCommandWithoutCancellation.ID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fmt.Sprintf("package viewmodels\n\ntype VM struct{}\n\n%s\n%s\n", tt.marker, tt.method)
			pass := checkPass(t, src)
			_, ok, bag := extractCommand(t, pass, "VM", "Do")
			assert.False(t, ok)
			assert.Equal(t, tt.wantID, firstID(bag))
		})
	}
}

func TestCommand_OptionValidationReportsAll(t *testing.T) {
	// Test: independently misused switches are all reported at once
	src := `package viewmodels

type VM struct{}

//mvvm:command allowConcurrent flowExceptions
func (v *VM) Do() {}
`
	pass := checkPass(t, src)
	_, ok, bag := extractCommand(t, pass, "VM", "Do")
	assert.False(t, ok)
	require.Equal(t, 2, bag.Len())
	assert.Equal(t, diagnostics.ConcurrencyOnSyncCommand.ID, bag.Items()[0].Descriptor.ID)
	assert.Equal(t, diagnostics.ExceptionFlowOnSyncCommand.ID, bag.Items()[1].Descriptor.ID)
}

func TestCommand_OptionFlagsOnValidKinds(t *testing.T) {
	// Test: valid switch combinations land in the model as independent flags
	src := `package viewmodels

import "context"

type VM struct{}

//mvvm:command allowConcurrent flowExceptions includeCancel
func (v *VM) SyncAsync(ctx context.Context) error { return nil }
`
	pass := checkPass(t, src)
	info, ok, bag := extractCommand(t, pass, "VM", "SyncAsync")
	require.True(t, ok, "diagnostics: %v", bag.Items())
	assert.True(t, info.AllowConcurrent)
	assert.True(t, info.FlowExceptions)
	assert.True(t, info.IncludeCancel)
	assert.Equal(t, model.KindAsyncCancelable, info.Kind)
}

func TestCommand_Uniqueness(t *testing.T) {
	// Test: first declared marked method wins; later same-name derivations fail
	src := `package viewmodels

type VM struct{}

//mvvm:command
func (v *VM) Save() {}

//mvvm:command
func (v *VM) SaveAsync() error { return nil }
`
	pass := checkPass(t, src)

	_, ok, bag := extractCommand(t, pass, "VM", "Save")
	assert.True(t, ok)
	assert.Zero(t, bag.Len())

	_, ok, bag = extractCommand(t, pass, "VM", "SaveAsync")
	assert.False(t, ok)
	assert.Equal(t, diagnostics.DuplicateGeneratedMember.ID, firstID(bag))
}

func TestCommand_EmbeddedShadowingFailsUnconditionally(t *testing.T) {
	// Test: a marked method promoted from an embedded type always wins
	src := `package viewmodels

type Base struct{}

//mvvm:command
func (b *Base) Save() {}

type VM struct {
	Base
}

//mvvm:command
func (v *VM) Save() {}
`
	pass := checkPass(t, src)

	_, ok, bag := extractCommand(t, pass, "VM", "Save")
	assert.False(t, ok)
	assert.Equal(t, diagnostics.CommandShadowsEmbeddedCommand.ID, firstID(bag))

	// The embedded declaration itself is unaffected.
	_, ok, bag = extractCommand(t, pass, "Base", "Save")
	assert.True(t, ok)
	assert.Zero(t, bag.Len())
}

func TestCommand_CanExecuteClassification(t *testing.T) {
	// Test: gate classification depends on gate shape and command kind
	src := `package viewmodels

type VM struct {
	ready bool
	//mvvm:observable
	canUpload bool
}

func (v *VM) CanSave() bool { return true }

func (v *VM) CanDrop(n int) bool { return n > 0 }

//mvvm:command canExecute=CanSave
func (v *VM) Save() {}

//mvvm:command canExecute=CanSave
func (v *VM) Push(n int) {}

//mvvm:command canExecute=CanDrop
func (v *VM) Drop(n int) {}

//mvvm:command canExecute=ready
func (v *VM) Refresh() {}

//mvvm:command canExecute=ready
func (v *VM) Resize(n int) {}

//mvvm:command canExecute=CanUpload
func (v *VM) Upload() {}
`
	pass := checkPass(t, src)

	tests := []struct {
		method    string
		wantShape model.CanExecuteShape
		wantName  string
	}{
		{"Save", model.CanExecuteMethodRef, "CanSave"},
		{"Push", model.CanExecuteMethodCall, "CanSave"}, // parameterless gate, typed command
		{"Drop", model.CanExecuteMethodRef, "CanDrop"},  // gate takes the command argument
		{"Refresh", model.CanExecuteFieldRead, "ready"},
		{"Resize", model.CanExecuteFieldReadTyped, "ready"},
		{"Upload", model.CanExecuteMethodRef, "CanUpload"}, // generated-property fallback
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			info, ok, bag := extractCommand(t, pass, "VM", tt.method)
			require.True(t, ok, "diagnostics: %v", bag.Items())
			assert.Equal(t, tt.wantShape, info.CanExecute)
			assert.Equal(t, tt.wantName, info.CanExecuteName)
		})
	}
}

func TestCommand_CanExecuteFallbackTypedCommand(t *testing.T) {
	// Test: the generated getter is parameterless, so a typed command wraps it
	src := `package viewmodels

type VM struct {
	//mvvm:observable
	canUpload bool
}

//mvvm:command canExecute=CanUpload
func (v *VM) Upload(n int) {}
`
	pass := checkPass(t, src)
	info, ok, bag := extractCommand(t, pass, "VM", "Upload")
	require.True(t, ok, "diagnostics: %v", bag.Items())
	assert.Equal(t, model.CanExecuteMethodCall, info.CanExecute)
	assert.Equal(t, "CanUpload", info.CanExecuteName)
}

func TestCommand_CanExecuteResolutionFailures(t *testing.T) {
	// Test: zero matches, ambiguous matches, and wrong shapes each have
	// their own diagnostic
	src := `package viewmodels

type Base struct{}

func (b *Base) Ready() bool { return true }

type VM struct {
	Base
	Ready bool
}

func (v *VM) Broken() int { return 0 }

//mvvm:command canExecute=Missing
func (v *VM) Save() {}

//mvvm:command canExecute=Ready
func (v *VM) Load() {}

//mvvm:command canExecute=Broken
func (v *VM) Drop() {}
`
	pass := checkPass(t, src)

	_, ok, bag := extractCommand(t, pass, "VM", "Save")
	assert.False(t, ok)
	assert.Equal(t, diagnostics.CanExecuteMemberNotFound.ID, firstID(bag))

	_, ok, bag = extractCommand(t, pass, "VM", "Load")
	assert.False(t, ok)
	assert.Equal(t, diagnostics.CanExecuteMemberAmbiguous.ID, firstID(bag))

	_, ok, bag = extractCommand(t, pass, "VM", "Drop")
	assert.False(t, ok)
	assert.Equal(t, diagnostics.CanExecuteMemberInvalid.ID, firstID(bag))
}

func TestCommand_Determinism(t *testing.T) {
	// Test: extraction over fresh passes of identical source yields equal models
	src := `package viewmodels

import "context"

type VM struct{}

func (v *VM) CanSync() bool { return true }

//mvvm:command allowConcurrent canExecute=CanSync
func (v *VM) SyncAsync(ctx context.Context, n int) error { return nil }
`
	first, ok, _ := extractCommand(t, checkPass(t, src), "VM", "SyncAsync")
	require.True(t, ok)
	second, ok, _ := extractCommand(t, checkPass(t, src), "VM", "SyncAsync")
	require.True(t, ok)
	assert.Equal(t, first, second)
}
