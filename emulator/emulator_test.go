package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/strbf/bf"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.Equal(TICK_LIMIT, emu.TickLimit)

	assert.NoError(emu.Reset())
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func doRunSingle(t *testing.T, emu *Emulator, source string, input string) (output string, err error) {
	assert := assert.New(t)

	prog, err := bf.ParseString(t.Name(), source)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	emu.Input = strings.NewReader(input)
	printed := &bytes.Buffer{}
	emu.Output = printed

	err = emu.Run()
	output = printed.String()
	return
}

func TestEmulatorRun(t *testing.T) {
	table := []struct {
		name     string
		source   string
		input    string
		expected string
	}{
		{"letter", "++++++[>++++++++++<-]>+++++.", "", "A"},
		{"repeat", "++++++[>++++++++++<-]>+++++..", "", "AA"},
		{"echo", ",.>,.", "hi", "hi"},
		{"eof", "+,.", "", "\x01"},
		{"skip", "[.]+.", "", "\x01"},
		{"nested", "++[>+++[>++++++++++<-]<-]>>+++++.", "", "A"},
		{"unicode", "++++++++++[>++++++++++<-]>[<++++++++++>-]<.", "", "\u03e8"},
		{"negative", "-.", "", "\ufffd"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			emu := NewEmulator()
			output, err := doRunSingle(t, emu, entry.source, entry.input)
			assert.NoError(t, err)
			assert.Equal(t, entry.expected, output)
		})
	}
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_INC, bf.OP_RIGHT, bf.OP_DEC}}
	assert.NoError(emu.Reset())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(1, emu.Cell())

	done, err = emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(1, emu.Pointer)
	assert.Equal([]int{1, 0}, emu.Cells)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(-1, emu.Cell())
	assert.Equal(3, emu.Ticks)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorErrors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, err := doRunSingle(t, emu, "+<", "")
	assert.True(errors.Is(err, ErrPointerUnderflow))

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.Ip)
	assert.Equal("<", runtime.Op)

	emu = NewEmulator()
	emu.TickLimit = 100
	_, err = doRunSingle(t, emu, "+[]", "")
	assert.True(errors.Is(err, ErrTickLimit))
	assert.Equal(100, emu.Ticks)
}

func TestEmulatorUnbalanced(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_INC, bf.OP_END}}
	err := emu.Reset()
	assert.True(errors.Is(err, ErrLoopUnbalanced))

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.Ip)

	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_LOOP, bf.OP_LOOP, bf.OP_END}}
	err = emu.Reset()
	assert.True(errors.Is(err, ErrLoopUnbalanced))
	assert.True(errors.As(err, &runtime))
	assert.Equal(0, runtime.Ip)
}

func TestEmulatorVerbose(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Verbose = true
	output, err := doRunSingle(t, emu, "+++.", "")
	assert.NoError(err)
	assert.Equal("\x03", output)
	assert.Equal(4, emu.Ticks)
}

func TestEmulatorTick_WithoutReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.Equal(0, emu.Cell())

	printed := &bytes.Buffer{}
	emu.Output = printed
	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_INC, bf.OP_LOOP, bf.OP_OUTPUT, bf.OP_DEC, bf.OP_END}}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		assert.NoError(err)
		if err != nil {
			t.FailNow()
		}
	}
	assert.Equal("\x01", printed.String())
	assert.Equal(0, emu.Cell())

	// A different program is picked up on the next tick.
	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_LOOP}}
	_, err := emu.Tick()
	assert.True(errors.Is(err, ErrLoopUnbalanced))

	_, err = emu.Tick()
	assert.True(errors.Is(err, ErrLoopUnbalanced))
}

func TestEmulatorInvalidOp(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = &bf.Program{Opcodes: []bf.Op{bf.OP_INC, bf.Op('x')}}

	err := emu.Run()
	assert.True(errors.Is(err, ErrOpInvalid))

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(1, runtime.Ip)
	assert.Equal("Op(120)", runtime.Op)
}
