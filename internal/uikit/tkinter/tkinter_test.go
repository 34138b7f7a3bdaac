package tkinter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/vpy/internal/field"
	"github.com/vk/vpy/internal/loader"
	"github.com/vk/vpy/internal/widget"
)

func TestKit_ResolvesTkClasses(t *testing.T) {
	kit := New()

	button, ok := kit.Resolve("Button")
	require.True(t, ok)
	assert.Same(t, widget.ButtonType, button)

	frame, ok := kit.Resolve("Frame")
	require.True(t, ok)
	assert.Same(t, widget.FrameType, frame)

	_, ok = kit.Resolve("Canvas")
	assert.False(t, ok)

	assert.Equal(t, []string{"Button", "Frame"}, kit.Classes())
	assert.Equal(t, "tkinter", kit.Name())
}

func TestCompileUserClassDecorator_TopFrame(t *testing.T) {
	frame, err := widget.FrameType.New("Frame1", field.Values{})
	require.NoError(t, err)

	got, err := New().CompileUserClassDecorator(frame)
	require.NoError(t, err)

	want := `import tkinter as tk
import tkinter.ttk as ttk
from typing import TypeVar

_CT = TypeVar("_CT", bound=tk.Misc)

def decorate_class(cls: _CT) -> _CT:
    def _new_init(self, parent: tk.Misc|None = None, **options):
        config = {}
        config.update(options)
        super(cls, self).__init__(parent, **config)

    cls.__init__ = _new_init
    cls.__init__.__qualname__ = f"{cls.__qualname__}.__init__"
    return cls
`
	assert.Equal(t, want, got)
}

func TestCompileUserClassDecorator_ButtonOptions(t *testing.T) {
	kit := New()
	src := "[Frame1]\nclass: Frame\n\n[Ok]\nclass: Button\nparent: Frame1\ntext: Say \"hi\"\npadding_x: 4\n"

	root, err := loader.New(kit).LoadBytes(context.Background(), "dialog.ui", []byte(src))
	require.NoError(t, err)
	button := root.(widget.Container).Children()[0]

	got, err := kit.CompileUserClassDecorator(button)
	require.NoError(t, err)
	assert.Contains(t, got, "        config = {\"text\": \"Say \\\"hi\\\"\", \"padding\": (4, 0)}\n")
	assert.Contains(t, got, "def decorate_class(cls: _CT) -> _CT:\n")
}

type foreign struct{}

func (foreign) Name() string         { return "Dial1" }
func (foreign) Class() string        { return "Dial" }
func (foreign) Values() field.Values { return field.Values{} }

func TestCompileUserClassDecorator_UnknownWidget(t *testing.T) {
	_, err := New().CompileUserClassDecorator(foreign{})
	assert.EqualError(t, err, "tkinter: widget class 'Dial' of 'Dial1' has no Tk equivalent")
}

func TestPyDict(t *testing.T) {
	testCases := []struct {
		name string
		opts []option
		want string
	}{
		{name: "empty", want: "{}"},
		{name: "one", opts: []option{{Key: "text", Value: `"a"`}}, want: `{"text": "a"}`},
		{
			name: "several",
			opts: []option{{Key: "text", Value: `"a"`}, {Key: "padding", Value: "(1, 2)"}},
			want: `{"text": "a", "padding": (1, 2)}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pyDict(tc.opts))
		})
	}
}

func TestPyString(t *testing.T) {
	assert.Equal(t, `"Big, red button!"`, pyString("Big, red button!"))
	assert.Equal(t, `"a\nb"`, pyString("a\nb"))
	assert.Equal(t, `"back\\slash"`, pyString(`back\slash`))
}
