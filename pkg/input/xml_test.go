package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet(t *testing.T) *ActionSet {
	t.Helper()
	s := NewActionSet(nil)

	horizontal := NewAction("horizontal")
	require.True(t, horizontal.Add(AxisBinding(DeviceJoystick, "LeftStickX")))
	require.True(t, horizontal.Add(ButtonBinding(DeviceKeyboard, "D", "A")))
	require.True(t, s.Add(horizontal, false))

	fire := NewAction("fire")
	inverted := ButtonBinding(DeviceMouse, "Left", "")
	inverted.Invert = true
	require.True(t, fire.Add(inverted))
	require.True(t, s.Add(fire, false))

	require.True(t, s.Add(NewAction("unbound"), false))
	return s
}

func TestWriteXMLCanonicalForm(t *testing.T) {
	s := sampleSet(t)
	got := s.String()

	want := `<input>
  <action_set>
    <action name="horizontal">
      <axis device="Joystick" value="LeftStickX" invert="false"/>
      <button device="Keyboard" positive="D" negative="A" invert="false"/>
    </action>
    <action name="fire">
      <button device="Mouse" positive="Left" invert="true"/>
    </action>
    <action name="unbound"/>
  </action_set>
</input>
`
	assert.Equal(t, want, got)
}

func TestWriteXMLCanonicalizesIdentifierCase(t *testing.T) {
	s := NewActionSet(nil)
	a := NewAction("move")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "d", "LEFTSHIFT")))
	require.True(t, s.Add(a, false))

	out := s.String()
	assert.Contains(t, out, `positive="D"`)
	assert.Contains(t, out, `negative="LeftShift"`)
}

func TestRoundTrip(t *testing.T) {
	s := sampleSet(t)

	loaded := NewActionSet(nil)
	require.NoError(t, loaded.ReadXML(strings.NewReader(s.String())))

	assert.Equal(t, s.Names(), loaded.Names())
	for _, name := range s.Names() {
		assert.Equal(t, s.Get(name).Bindings(), loaded.Get(name).Bindings(), "action %q", name)
	}

	// save -> load -> save is byte-stable
	assert.Equal(t, s.String(), loaded.String())
}

func TestReadXMLIsCaseInsensitive(t *testing.T) {
	doc := `<INPUT>
  <Action_Set>
    <ACTION NAME="jump">
      <Button DEVICE="keyboard" POSITIVE="space" Invert="TRUE"/>
    </ACTION>
  </Action_Set>
</INPUT>`

	s := NewActionSet(nil)
	require.NoError(t, s.ReadXML(strings.NewReader(doc)))
	require.True(t, s.Contains("jump"))

	b := s.Get("jump").Binding(0)
	assert.Equal(t, DeviceKeyboard, b.Device)
	assert.Equal(t, KindButton, b.Kind)
	assert.Equal(t, "space", b.Positive)
	assert.True(t, b.Invert)
}

func TestReadXMLInvertDefaultsFalse(t *testing.T) {
	doc := `<input><action_set><action name="jump">
		<button device="Keyboard" positive="Space"/>
	</action></action_set></input>`

	s := NewActionSet(nil)
	require.NoError(t, s.ReadXML(strings.NewReader(doc)))
	assert.False(t, s.Get("jump").Binding(0).Invert)
}

func TestReadXMLFailuresLeaveSetUntouched(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown key name",
			doc:  `<input><action_set><action name="a"><button device="Keyboard" positive="NotAKey"/></action></action_set></input>`,
		},
		{
			name: "unknown device",
			doc:  `<input><action_set><action name="a"><button device="Wheel" positive="A"/></action></action_set></input>`,
		},
		{
			name: "axis missing value",
			doc:  `<input><action_set><action name="a"><axis device="Joystick"/></action></action_set></input>`,
		},
		{
			name: "keyboard axis",
			doc:  `<input><action_set><action name="a"><axis device="Keyboard" value="A"/></action></action_set></input>`,
		},
		{
			name: "button with no sides",
			doc:  `<input><action_set><action name="a"><button device="Keyboard"/></action></action_set></input>`,
		},
		{
			name: "bad invert",
			doc:  `<input><action_set><action name="a"><button device="Keyboard" positive="A" invert="maybe"/></action></action_set></input>`,
		},
		{
			name: "action missing name",
			doc:  `<input><action_set><action><button device="Keyboard" positive="A"/></action></action_set></input>`,
		},
		{
			name: "colliding bindings",
			doc: `<input><action_set><action name="a">
				<button device="Keyboard" positive="D" negative="A"/>
				<button device="Keyboard" positive="A" negative="S"/>
			</action></action_set></input>`,
		},
		{
			name: "duplicate action",
			doc: `<input><action_set>
				<action name="a"><button device="Keyboard" positive="D"/></action>
				<action name="A"><button device="Keyboard" positive="S"/></action>
			</action_set></input>`,
		},
		{
			name: "wrong root",
			doc:  `<bindings><action_set/></bindings>`,
		},
		{
			name: "unexpected element",
			doc:  `<input><action_set><wheel/></action_set></input>`,
		},
		{
			name: "malformed xml",
			doc:  `<input><action_set>`,
		},
		{
			name: "empty document",
			doc:  ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSet(t)
			before := s.String()

			err := s.ReadXML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Equal(t, before, s.String(), "failed load must not mutate the set")
		})
	}
}

func TestLoadAndSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.xml")

	s := sampleSet(t)
	require.NoError(t, s.SaveFile(path))

	loaded := NewActionSet(nil)
	require.NoError(t, loaded.LoadFile(path))
	assert.Equal(t, s.String(), loaded.String())

	// unreadable file fails without mutating
	err := loaded.LoadFile(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, s.String(), loaded.String())
}

func TestEscapedActionName(t *testing.T) {
	// action names are restricted, but identifier escaping still matters for
	// forward compatibility of the writer
	s := NewActionSet(nil)
	a := NewAction("jump")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "Space", "")))
	require.True(t, s.Add(a, false))
	assert.NotContains(t, s.String(), "&amp;")
}
