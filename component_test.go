package guinness_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guinness"
)

func TestTextfieldCapacity(t *testing.T) {
	tf, err := guinness.NewTextfield(5, guinness.WithValue("ab"))
	require.NoError(t, err)

	for _, r := range "cde" {
		tf.Write(r)
	}
	assert.Equal(t, "abcde", tf.Value())
	assert.True(t, tf.IsCursorAtEnd())

	tf.Write('f')
	assert.Equal(t, "abcde", tf.Value(), "write past capacity must be a no-op")

	tf.EraseLastChar()
	assert.Equal(t, "abcd", tf.Value())
	buffered, ok := tf.BufferedValue()
	require.True(t, ok)
	assert.Equal(t, "abcde", buffered)
}

func TestWriteEraseRevert(t *testing.T) {
	tf, err := guinness.NewTextfield(3)
	require.NoError(t, err)
	assert.True(t, tf.IsCursorAtBeginning())

	_, ok := tf.BufferedValue()
	assert.False(t, ok)
	tf.Revert()
	assert.Equal(t, "", tf.Value(), "revert without a snapshot does nothing")

	tf.Write('x')
	tf.Write('é')
	assert.Equal(t, "xé", tf.Value())

	tf.EraseLastChar()
	assert.Equal(t, "x", tf.Value())

	tf.Revert()
	assert.Equal(t, "xé", tf.Value())

	tf.EraseLastChar()
	tf.EraseLastChar()
	assert.Equal(t, "", tf.Value())
	tf.EraseLastChar()
	assert.Equal(t, "", tf.Value(), "erase on empty must be a no-op")
	buffered, _ := tf.BufferedValue()
	assert.Equal(t, "x", buffered)
}

func TestNewComponentErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*guinness.Component, error)
		wantErr error
	}{
		{
			name:    "textfield without capacity",
			build:   func() (*guinness.Component, error) { return guinness.NewTextfield(0) },
			wantErr: guinness.ErrInvalidLength,
		},
		{
			name: "negative explicit length",
			build: func() (*guinness.Component, error) {
				return guinness.NewComponent(guinness.ButtonKind{}, guinness.WithLength(-1))
			},
			wantErr: guinness.ErrInvalidLength,
		},
		{
			name: "value longer than capacity",
			build: func() (*guinness.Component, error) {
				return guinness.NewButton("toolong", guinness.WithLength(3))
			},
			wantErr: guinness.ErrValueTooLong,
		},
		{
			name:  "empty button",
			build: func() (*guinness.Component, error) { return guinness.NewButton("") },
		},
		{
			name:  "nil kind",
			build: func() (*guinness.Component, error) { return guinness.NewComponent(nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestSetValueRespectsCapacity(t *testing.T) {
	b, err := guinness.NewButton("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Style().Length())

	assert.False(t, b.SetValue("abcd"))
	assert.Equal(t, "abc", b.Value())

	assert.True(t, b.SetValue("xy"))
	assert.Equal(t, "xy", b.Value())
}

func TestGeneratedShape(t *testing.T) {
	tf, err := guinness.NewTextfield(5, guinness.WithLocation(10, 20))
	require.NoError(t, err)

	// 5 cells of 18px plus inner and border thickness (2 each) on both sides.
	assert.Equal(t, guinness.Rect{X: 10, Y: 20, W: 98, H: 26}, tf.Style().Bounds())

	// Padding is stored but never sizes the shape.
	tf.SetPadding(3, 4)
	assert.Equal(t, float32(26), tf.Style().Bounds().H)
	top, bottom := tf.Style().Padding()
	assert.Equal(t, float32(3), top)
	assert.Equal(t, float32(4), bottom)

	require.True(t, tf.SetLength(10))
	assert.Equal(t, float32(188), tf.Style().Bounds().W)

	tf.SetFont(guinness.DefaultFont().WithSize(10))
	assert.Equal(t, float32(108), tf.Style().Bounds().W)

	tf.SetLocation(guinness.Vec2{X: 0, Y: 0})
	assert.Equal(t, guinness.Vec2{}, tf.Style().Bounds().Pos())
}

func TestSetLengthRejectsShorterThanValue(t *testing.T) {
	tf, err := guinness.NewTextfield(5, guinness.WithValue("abcde"))
	require.NoError(t, err)

	assert.False(t, tf.SetLength(2))
	assert.False(t, tf.SetLength(0))
	assert.Equal(t, 5, tf.Style().Length())
}

func TestExplicitLookKinds(t *testing.T) {
	r, err := guinness.NewRectangle(guinness.Rect{X: 5, Y: 6, W: 30, H: 40}, guinness.ColorRed)
	require.NoError(t, err)
	assert.Equal(t, guinness.Rect{X: 5, Y: 6, W: 30, H: 40}, r.Style().Bounds())
	assert.Equal(t, guinness.ColorRed, r.Style().PrimaryColor())

	// Font changes never touch an explicit look.
	r.SetFont(guinness.DefaultFont().WithSize(40))
	assert.Equal(t, guinness.Rect{X: 5, Y: 6, W: 30, H: 40}, r.Style().Bounds())

	tri := guinness.Polygon{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 10}}
	pb, err := guinness.NewPolyButton("go", tri, guinness.WithLocation(100, 100))
	require.NoError(t, err)
	assert.Equal(t, guinness.Rect{X: 100, Y: 100, W: 20, H: 10}, pb.Style().Bounds())

	cb, err := guinness.NewCheckbox(false, guinness.WithLocation(1, 2))
	require.NoError(t, err)
	assert.Equal(t, guinness.Rect{X: 1, Y: 2, W: 18, H: 18}, cb.Style().Bounds())
}

func TestCheckboxClickToggles(t *testing.T) {
	calls := 0
	cb, err := guinness.NewCheckbox(false, guinness.OnClick(func(*guinness.Component) { calls++ }))
	require.NoError(t, err)
	k := cb.Kind().(*guinness.CheckboxKind)

	cb.Click()
	assert.True(t, k.Checked())
	cb.Click()
	assert.False(t, k.Checked())
	assert.Equal(t, 2, calls)
}

func TestSetActiveRestoresColor(t *testing.T) {
	tf, err := guinness.NewTextfield(4)
	require.NoError(t, err)
	require.Equal(t, guinness.ColorWhite, tf.Style().PrimaryColor())

	require.True(t, tf.SetActive(guinness.ColorGray))
	assert.Equal(t, guinness.ColorGray, tf.Style().PrimaryColor())

	require.True(t, tf.SetInactive())
	assert.Equal(t, guinness.ColorWhite, tf.Style().PrimaryColor())
	assert.False(t, tf.SetInactive(), "nothing left to restore")
}

func TestDefaultsAndOptions(t *testing.T) {
	b, err := guinness.NewButton("ok",
		guinness.WithEnabled(false),
		guinness.WithMovable(false),
		guinness.WithScalable(false),
		guinness.WithLogic(func(l *guinness.Logic) { l.SetDelayMs(25) }),
	)
	require.NoError(t, err)

	assert.False(t, b.Enabled())
	assert.False(t, b.Movable())
	assert.False(t, b.Scalable())
	assert.Equal(t, int64(25), b.Logic().Delay().Milliseconds())
	assert.Equal(t, guinness.TagButton, b.Tag())
	assert.Equal(t, guinness.ClassicDesign().BackgroundColor, b.Style().PrimaryColor())

	l := b.Logic()
	assert.True(t, l.IsInteractionAllowed())
	assert.True(t, l.ActsOnClick())
	assert.True(t, l.ActsOnHover())
	assert.False(t, l.IsDoubleClickAllowed())
	assert.False(t, l.IsMultithreadingOn())
}

func TestComponentLogsAsObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	b, err := guinness.NewButton("ok")
	require.NoError(t, err)
	log.Info().Object("component", b).Msg("x")

	assert.Contains(t, buf.String(), `"kind":"button"`)
	assert.Contains(t, buf.String(), `"value":"ok"`)
	assert.Contains(t, buf.String(), b.ID().String())
}
