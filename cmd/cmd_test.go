package cmd

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"github.com/tutils/tkey"
	"github.com/tutils/tkey/crypt"
	"github.com/tutils/tkey/subkey"
)

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

// captureLogs records entries of the global logger for the rest of the test.
func captureLogs(t *testing.T) *logtest.Hook {
	hook := logtest.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})
	return hook
}

func masterKeyWarnings(hook *logtest.Hook) []*logrus.Entry {
	var warnings []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, "invalid master key") {
			warnings = append(warnings, e)
		}
	}
	return warnings
}

func TestParseMasterKey(t *testing.T) {
	tcs := []struct {
		text string
		key  uint64
		ok   bool
		err  error
	}{
		{text: "", ok: false},
		{text: "  \n", ok: false},
		{text: "123456\n", key: 123456, ok: true},
		{text: "0123456", key: 123456, ok: true},
		{text: "0x1E240", err: tkey.ErrParseFailure},
		{text: "0b101", err: tkey.ErrParseFailure},
		{text: "0o17", err: tkey.ErrParseFailure},
		{text: "1_000", err: tkey.ErrParseFailure},
		{text: "18446744073709551615", key: 1<<64 - 1, ok: true},
		{text: "18446744073709551616", err: tkey.ErrParseFailure},
		{text: "-1", err: tkey.ErrParseFailure},
		{text: "abc", err: tkey.ErrParseFailure},
	}
	for _, tc := range tcs {
		key, ok, err := parseMasterKey(tc.text)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, tc.text)
			require.False(t, ok)
			continue
		}
		require.NoError(t, err, tc.text)
		require.Equal(t, tc.ok, ok, tc.text)
		require.Equal(t, tc.key, key, tc.text)
	}
}

func TestReadMasterKey(t *testing.T) {
	prompt := &bytes.Buffer{}
	line, err := readMasterKey(strings.NewReader("42\n99\n"), prompt)
	require.NoError(t, err)
	require.Equal(t, "42\n", line)
	require.Contains(t, prompt.String(), "Master key")

	line, err = readMasterKey(strings.NewReader("7"), nil)
	require.NoError(t, err)
	require.Equal(t, "7", line)
}

func TestScheduleCommand(t *testing.T) {
	out := execute(t, "", "schedule", "--key=0", "--samples=1", "--min=1", "--max=6")
	require.Contains(t, out, "Master key: 0\n")
	require.Contains(t, out, "Subkey  0: 0000000000000000\n")
	require.Contains(t, out, "Subkey  1: 0000000000003039\n")
	require.Contains(t, out, "Subkey 15: 000000000002D357\n")
	require.Contains(t, out, "Raw 1: 0\n")
	require.Contains(t, out, "Range [1, 6] 1: ")
}

func TestScheduleCommandReadsStdin(t *testing.T) {
	out := execute(t, "123456\n", "schedule", "--stdin", "--samples=0")
	require.Contains(t, out, "Master key: 123456\n")
	require.Contains(t, out, "Subkey  0: 0123C0000003C480\n")
}

func TestScheduleCommandFallsBackOnBadInput(t *testing.T) {
	hook := captureLogs(t)
	out := execute(t, "not a number\n", "schedule", "--stdin", "--samples=0")
	require.Contains(t, out, "Master key: ")
	require.NotContains(t, out, "Master key: 0\n")
	require.Equal(t, 17, strings.Count(out, "\n"))

	warnings := masterKeyWarnings(hook)
	require.Len(t, warnings, 1)
	err, ok := warnings[0].Data[logrus.ErrorKey].(error)
	require.True(t, ok, "warning carries the parse error")
	require.True(t, errors.Is(err, tkey.ErrParseFailure), "got %v", err)
}

func TestScheduleCommandEmptyInputIsSilent(t *testing.T) {
	hook := captureLogs(t)
	out := execute(t, "\n", "schedule", "--stdin", "--samples=0")
	require.Contains(t, out, "Master key: ")
	require.Empty(t, masterKeyWarnings(hook))
}

func TestScheduleCommandLeadingZeroIsDecimal(t *testing.T) {
	hook := captureLogs(t)
	out := execute(t, "", "schedule", "--key=0123456", "--samples=0")
	require.Contains(t, out, "Master key: 123456\n")
	require.Empty(t, masterKeyWarnings(hook))
}

func TestScheduleCommandRejectsPrefixedKey(t *testing.T) {
	hook := captureLogs(t)
	out := execute(t, "", "schedule", "--key=0b101", "--samples=0")
	require.NotContains(t, out, "Master key: 5\n")
	require.Len(t, masterKeyWarnings(hook), 1)
}

func TestDiceCommand(t *testing.T) {
	// master key 123456 alternates between faces 1 and 4
	out := execute(t, "", "dice", "--key=123456", "--rolls=160", "--workers=4")
	require.Contains(t, out, "1: 80\n")
	require.Contains(t, out, "4: 80\n")
	require.Contains(t, out, "2: 0\n")
	require.Contains(t, out, "Total: 160\n")
}

func TestRollDiceSplitsRollsAcrossWorkers(t *testing.T) {
	for _, workers := range []int{1, 3, 7, 200} {
		p := subkey.New(subkey.WithMasterKey(123456))
		tl, err := rollDice(p, 100, workers)
		require.NoError(t, err)
		require.Equal(t, int64(100), tl.Total())
		require.Equal(t, []int64{50, 0, 0, 50, 0, 0}, tl.Counts())
		require.Equal(t, 100%subkey.Rounds, p.Cursor())
	}
}

func TestRollLockedRejectsForeignSource(t *testing.T) {
	_, err := rollLocked(tkey.NewSyncSource(crypt.NewLCGSource(1).(rand.Source64)))
	require.Error(t, err)
}

func TestPasswordCommand(t *testing.T) {
	out := execute(t, "", "password", "--key=123456", "--length=8", "--count=1")
	require.Equal(t, "APwnSbq5\n", out)

	out = execute(t, "", "password", "--key=1", "--alphabet=01", "--length=20", "--count=3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Regexp(t, `^[01]{20}$`, l)
	}
}

func TestKeyCommand(t *testing.T) {
	out := execute(t, "", "key", "--seed=123456", "--length=8", "--count=2")
	require.Contains(t, out, "Seed: 123456\n")
	require.Regexp(t, `Key 1: [0-9A-F]{8}\nKey 2: [0-9A-F]{8}\n`, out)
}

func TestXorCommandRoundTrip(t *testing.T) {
	for _, source := range []string{"subkey", "lcg"} {
		cipher := execute(t, "attack at dawn", "xor", "--crypt-key=816559", "--source="+source)
		require.NotEqual(t, "attack at dawn", cipher)
		plain := execute(t, cipher, "xor", "--crypt-key=816559", "--source="+source)
		require.Equal(t, "attack at dawn", plain)
	}
}
